// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/maskpipe/instruction"
	"github.com/gogpu/maskpipe/stencil"
)

// BatchBreaker flushes deferred draws so that a hard ordering boundary
// exists at the current end of the set.
type BatchBreaker interface {
	Break(set *instruction.Set)
}

// BlendModeSetter records a blend mode change for one drawable.
type BlendModeSetter interface {
	SetBlendMode(d Drawable, mode instruction.BlendMode, set *instruction.Set)
}

// RenderableCollector emits the draw instructions of node and its
// descendants into set. Push calls it for the mask content with the
// content forced into the build.
type RenderableCollector interface {
	CollectRenderables(node Node, set *instruction.Set) error
}

// Device applies stencil and color write state at execution time.
// stencil.PassDevice and stencil.Recorder implement it.
type Device interface {
	SetStencilMode(mode stencil.Mode, level int)
	SetColorMask(mask gputypes.ColorWriteMask)
}

// StencilClearer is implemented by devices that can clear the stencil
// attachment. When the outermost mask on a target begins its exit the
// attachment is cleared, so the next mask starts from zero everywhere.
type StencilClearer interface {
	ClearStencil()
}

// DepthStencilEnsurer is implemented by devices that allocate their stencil
// attachment lazily. It is called before every mask is written.
type DepthStencilEnsurer interface {
	EnsureDepthStencil() error
}

// nopBatchBreaker is used when no batching collaborator is configured.
type nopBatchBreaker struct{}

func (nopBatchBreaker) Break(*instruction.Set) {}

// nopBlendModeSetter is used when no blend collaborator is configured.
type nopBlendModeSetter struct{}

func (nopBlendModeSetter) SetBlendMode(Drawable, instruction.BlendMode, *instruction.Set) {}
