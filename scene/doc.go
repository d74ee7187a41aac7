// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene provides a small retained scene graph that builds
// instruction sets through maskpipe.
//
// A Node is either a container or a renderable (sprite). Any node may
// carry one or more stencil masks; a mask is itself a node subtree that is
// excluded from the normal pass and only drawn into the stencil.
//
// Builder wires the three build-time collaborators the mask pipe needs:
//
//   - Collector walks the tree and emits renderables (scene traversal)
//   - Batcher merges consecutive renderables into one BatchDraw (batch breaker)
//   - BlendTracker emits blend changes only when the active mode changes
//
// # Example
//
//	root := scene.NewContainer("root")
//	shape := scene.NewSprite("circle")
//	root.AddMask(shape)
//	root.AddChild(scene.NewSprite("photo"))
//
//	b := scene.NewBuilder(stencil.NewRecorder())
//	var set instruction.Set
//	if err := b.Build(root, &set); err != nil {
//	    return err
//	}
package scene
