// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package maskpipe records and executes nested stencil masks for a
// retained-mode, instruction-driven renderer.
//
// A mask is scene content whose rasterized shape restricts where later
// content is visible. Masks nest: a masked subtree may itself contain a
// masked subtree. StencilMaskPipe handles both halves of the lifecycle.
//
// # Build time
//
// While the scene is walked into an instruction.Set, the traversal calls
// Push when it enters a masked container and Pop when it leaves it:
//
//	Push: break batch, blend none, MaskEnterBegin, <mask content>, break batch, MaskEnterEnd
//	Pop:  break batch, blend none, MaskExitBegin, [replayed mask content], MaskExitEnd
//
// The span of instructions produced by the mask content is cached per mask
// so that Pop can copy it instead of walking the mask subtree again. The
// copy is made only while another mask layer remains open on the same
// container.
//
// # Execution time
//
// When the recorded set is replayed, every mask instruction is passed to
// Execute together with the render target it runs against. Execute keeps a
// nesting depth per target and drives the Device:
//
//	MaskEnterBegin  depth+1, stencil Add(depth), color none
//	MaskEnterEnd    stencil Active(depth), color all
//	MaskExitBegin   depth-1, stencil Remove(depth) unless depth is 0, color none
//	MaskExitEnd     stencil Disabled when depth is 0, else Active(depth), color all
//
// Misuse (a Pop with no matching Push, a depth that would go negative)
// returns an error wrapping ErrProtocolViolation and leaves state
// untouched. Callers should abandon the frame.
//
// # Collaborators
//
// Batching, blend mode changes, scene traversal and the GPU device are
// supplied by the caller through small interfaces. Package scene provides
// a reference scene graph, package stencil a WebGPU device, and package
// render a frame runner.
package maskpipe
