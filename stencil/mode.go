// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stencil

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Mode is the stencil behavior applied to subsequent draws.
type Mode uint8

const (
	// ModeDisabled turns off stencil testing.
	ModeDisabled Mode = iota

	// ModeAdd writes mask geometry, raising covered pixels one level.
	ModeAdd

	// ModeActive clips drawing to pixels at the current level.
	ModeActive

	// ModeRemove lowers pixels covered by mask geometry one level.
	ModeRemove
)

var modeNames = [...]string{
	ModeDisabled: "Disabled",
	ModeAdd:      "Add",
	ModeActive:   "Active",
	ModeRemove:   "Remove",
}

// String returns the mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// Format is the depth/stencil attachment format every mode assumes.
const Format = gputypes.TextureFormatDepth24PlusStencil8

// MaxLevel is the deepest nesting the 8-bit stencil attachment can hold.
const MaxLevel = 255

// FaceState returns the per-face stencil state for mode. Front and back
// faces behave identically for masks.
func FaceState(mode Mode) hal.StencilFaceState {
	switch mode {
	case ModeAdd:
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionEqual,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationIncrementWrap,
		}
	case ModeRemove:
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionEqual,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationDecrementWrap,
		}
	case ModeActive:
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionEqual,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
	default:
		return hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		}
	}
}

// DepthStencilState returns the pipeline depth/stencil state for mode.
// Depth is never tested or written.
func DepthStencilState(mode Mode) *hal.DepthStencilState {
	face := FaceState(mode)
	state := &hal.DepthStencilState{
		Format:            Format,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      face,
		StencilBack:       face,
		StencilReadMask:   0xFF,
		StencilWriteMask:  0xFF,
	}
	if !mode.Writes() {
		state.StencilWriteMask = 0
	}
	return state
}

// Writes reports whether draws in mode modify the stencil attachment.
func (m Mode) Writes() bool {
	return m == ModeAdd || m == ModeRemove
}

// Reference returns the stencil reference value that mode compares against
// at nesting level.
func Reference(mode Mode, level int) uint32 {
	var ref int
	switch mode {
	case ModeAdd:
		ref = level - 1
	case ModeActive:
		ref = level
	case ModeRemove:
		ref = level + 1
	default:
		return 0
	}
	return uint32(min(max(ref, 0), MaxLevel))
}
