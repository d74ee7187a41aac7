// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import (
	"sync/atomic"

	"github.com/gogpu/maskpipe/instruction"
)

// MaskID identifies a Mask for the lifetime of the process.
type MaskID uint64

// ContainerID identifies the scene node that applies a mask.
type ContainerID uint64

// TargetID identifies a render target. Execution depth is tracked per
// TargetID, so two targets never share stencil nesting state.
type TargetID uint64

var lastMaskID atomic.Uint64

// Node is the part of a scene node the pipe touches: the flag that forces
// an otherwise excluded node into the current build pass.
type Node interface {
	SetIncludeInBuild(include bool)
}

// Drawable is the renderable used to rasterize a mask shape. Its blend mode
// is reset to BlendNone around every mask boundary.
type Drawable interface {
	Label() string
}

// Mask is a stencil masking effect. Its content node defines the stencil
// shape. A Mask's identity is stable across frames and keys the span cache.
type Mask struct {
	id       MaskID
	content  Node
	drawable Drawable
}

// NewMask creates a mask whose shape is the content subtree. drawable may
// be nil when the content has no blend state of its own.
func NewMask(content Node, drawable Drawable) *Mask {
	return &Mask{
		id:       MaskID(lastMaskID.Add(1)),
		content:  content,
		drawable: drawable,
	}
}

// ID returns the mask identity.
func (m *Mask) ID() MaskID { return m.id }

// Content returns the node whose geometry defines the stencil shape.
func (m *Mask) Content() Node { return m.content }

// Drawable returns the drawable used to rasterize the mask, or nil.
func (m *Mask) Drawable() Drawable { return m.drawable }

// MaskInstruction is one of the four stencil mask instructions.
type MaskInstruction struct {
	Action instruction.Kind
	Mask   *Mask
}

// Kind implements instruction.Instruction.
func (in MaskInstruction) Kind() instruction.Kind { return in.Action }
