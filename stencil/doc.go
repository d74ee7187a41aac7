// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stencil maps nested mask levels onto WebGPU stencil state.
//
// Nested masks share one 8-bit stencil attachment. A pixel's stencil value
// is the number of masks that currently cover it, so content at nesting
// level L is visible exactly where the stencil equals L. Four modes drive
// the attachment:
//
//	ModeAdd      mask geometry at level L: Equal(L-1), increment on pass
//	ModeActive   clipped content at level L: Equal(L), keep
//	ModeRemove   undo a mask back to level L: Equal(L+1), decrement on pass
//	ModeDisabled no stencil test, no stencil writes
//
// Color writes are controlled separately through gputypes.ColorWriteMask:
// mask geometry is drawn with ColorWriteMaskNone.
//
// PassDevice applies modes to a render pass by switching between
// pipelines owned by a PipelineCache. Recorder captures the same calls as
// a Transition list for tests and tooling.
package stencil
