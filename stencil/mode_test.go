// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stencil

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeDisabled, "Disabled"},
		{ModeAdd, "Add"},
		{ModeActive, "Active"},
		{ModeRemove, "Remove"},
		{Mode(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestFaceState(t *testing.T) {
	tests := []struct {
		mode    Mode
		compare gputypes.CompareFunction
		passOp  hal.StencilOperation
	}{
		{ModeDisabled, gputypes.CompareFunctionAlways, hal.StencilOperationKeep},
		{ModeAdd, gputypes.CompareFunctionEqual, hal.StencilOperationIncrementWrap},
		{ModeActive, gputypes.CompareFunctionEqual, hal.StencilOperationKeep},
		{ModeRemove, gputypes.CompareFunctionEqual, hal.StencilOperationDecrementWrap},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			fs := FaceState(tt.mode)
			if fs.Compare != tt.compare {
				t.Errorf("Compare = %v, want %v", fs.Compare, tt.compare)
			}
			if fs.PassOp != tt.passOp {
				t.Errorf("PassOp = %v, want %v", fs.PassOp, tt.passOp)
			}
			if fs.FailOp != hal.StencilOperationKeep {
				t.Errorf("FailOp = %v, want Keep", fs.FailOp)
			}
			if fs.DepthFailOp != hal.StencilOperationKeep {
				t.Errorf("DepthFailOp = %v, want Keep", fs.DepthFailOp)
			}
		})
	}
}

func TestDepthStencilState(t *testing.T) {
	for _, mode := range []Mode{ModeDisabled, ModeAdd, ModeActive, ModeRemove} {
		t.Run(mode.String(), func(t *testing.T) {
			ds := DepthStencilState(mode)
			if ds.Format != gputypes.TextureFormatDepth24PlusStencil8 {
				t.Errorf("Format = %v, want Depth24PlusStencil8", ds.Format)
			}
			if ds.DepthWriteEnabled {
				t.Error("DepthWriteEnabled = true, want false")
			}
			if ds.StencilFront != ds.StencilBack {
				t.Error("front and back stencil state differ")
			}
			wantWrite := mode == ModeAdd || mode == ModeRemove
			if gotWrite := ds.StencilWriteMask != 0; gotWrite != wantWrite {
				t.Errorf("StencilWriteMask = %#x, want writes = %v", ds.StencilWriteMask, wantWrite)
			}
			if mode.Writes() != wantWrite {
				t.Errorf("Writes() = %v, want %v", mode.Writes(), wantWrite)
			}
		})
	}
}

func TestReference(t *testing.T) {
	tests := []struct {
		mode  Mode
		level int
		want  uint32
	}{
		{ModeAdd, 1, 0},
		{ModeAdd, 2, 1},
		{ModeActive, 1, 1},
		{ModeActive, 2, 2},
		{ModeRemove, 1, 2},
		{ModeRemove, 0, 1},
		{ModeDisabled, 3, 0},
		{ModeAdd, 0, 0},
		{ModeActive, 300, MaxLevel},
	}
	for _, tt := range tests {
		if got := Reference(tt.mode, tt.level); got != tt.want {
			t.Errorf("Reference(%v, %d) = %d, want %d", tt.mode, tt.level, got, tt.want)
		}
	}
}
