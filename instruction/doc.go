// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package instruction provides the recorded instruction stream shared by the
// scene builder and the frame executor.
//
// A frame is built once into a Set: draw batches, blend changes and mask
// boundaries are appended in traversal order. The Set is later replayed
// linearly against a render target. Instructions are immutable once added;
// the only way to duplicate part of the stream is Set.Replay, which copies
// a previously recorded span to the tail verbatim.
//
// # Example
//
//	var set instruction.Set
//	set.Add(instruction.SetBlendMode{Target: "mask", Mode: instruction.BlendNone})
//	set.Add(instruction.BatchDraw{Renderables: []string{"sprite"}})
//	for _, in := range set.Instructions() {
//	    fmt.Println(in.Kind())
//	}
package instruction
