// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes recorded instruction sets against render targets.
//
// A Runner walks an instruction.Set in order. Draw instructions go to a
// Drawer, mask instructions go to the StencilMaskPipe, which tracks stencil
// depth per Target.
//
//	b := scene.NewBuilder(device)
//	var set instruction.Set
//	_ = b.Build(root, &set)
//
//	r := render.NewRunner(b.Pipe(), drawer)
//	err := r.Run(render.NewTarget("screen"), &set)
//
// The stencil state for a GPU pass comes from stencil.PassDevice, built from
// the host's device with NewStencilPipelines. Trace records the frame as
// text instead.
package render
