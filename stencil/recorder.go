// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stencil

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// TransitionKind identifies what a Transition changed.
type TransitionKind uint8

const (
	TransitionStencil TransitionKind = iota
	TransitionColorMask
	TransitionClearStencil
	TransitionEnsureAttachment
)

// Transition is one device state change observed by a Recorder.
type Transition struct {
	Kind      TransitionKind
	Mode      Mode
	Level     int
	ColorMask gputypes.ColorWriteMask
}

// String formats the transition as "stencil Add(1)", "color none",
// "color all", "clear stencil" or "ensure attachment".
func (t Transition) String() string {
	switch t.Kind {
	case TransitionStencil:
		return fmt.Sprintf("stencil %s(%d)", t.Mode, t.Level)
	case TransitionColorMask:
		return "color " + ColorMaskString(t.ColorMask)
	case TransitionClearStencil:
		return "clear stencil"
	case TransitionEnsureAttachment:
		return "ensure attachment"
	default:
		return "unknown"
	}
}

// ColorMaskString returns "none", "all" or the mask in hex.
func ColorMaskString(mask gputypes.ColorWriteMask) string {
	switch mask {
	case gputypes.ColorWriteMaskNone:
		return "none"
	case gputypes.ColorWriteMaskAll:
		return "all"
	default:
		return fmt.Sprintf("%#x", uint32(mask))
	}
}

// Recorder is a device that records every call instead of touching a GPU.
// It is used by tests and by the masktrace tool.
type Recorder struct {
	Transitions []Transition

	mode      Mode
	level     int
	colorMask gputypes.ColorWriteMask
}

// NewRecorder creates a Recorder in the default state: stencil disabled,
// all color channels writable.
func NewRecorder() *Recorder {
	return &Recorder{colorMask: gputypes.ColorWriteMaskAll}
}

// SetStencilMode records a stencil mode change.
func (r *Recorder) SetStencilMode(mode Mode, level int) {
	r.mode, r.level = mode, level
	r.Transitions = append(r.Transitions, Transition{Kind: TransitionStencil, Mode: mode, Level: level})
}

// SetColorMask records a color write mask change.
func (r *Recorder) SetColorMask(mask gputypes.ColorWriteMask) {
	r.colorMask = mask
	r.Transitions = append(r.Transitions, Transition{Kind: TransitionColorMask, ColorMask: mask})
}

// ClearStencil records a stencil clear.
func (r *Recorder) ClearStencil() {
	r.Transitions = append(r.Transitions, Transition{Kind: TransitionClearStencil})
}

// EnsureDepthStencil records that a stencil attachment was requested.
func (r *Recorder) EnsureDepthStencil() error {
	r.Transitions = append(r.Transitions, Transition{Kind: TransitionEnsureAttachment})
	return nil
}

// Mode returns the last stencil mode and level set.
func (r *Recorder) Mode() (Mode, int) {
	return r.mode, r.level
}

// ColorMask returns the last color write mask set.
func (r *Recorder) ColorMask() gputypes.ColorWriteMask {
	return r.colorMask
}

// StencilModes returns only the stencil transitions, in order.
func (r *Recorder) StencilModes() []Transition {
	var out []Transition
	for _, t := range r.Transitions {
		if t.Kind == TransitionStencil {
			out = append(out, t)
		}
	}
	return out
}

// Reset discards recorded transitions and restores the default state.
func (r *Recorder) Reset() {
	r.Transitions = r.Transitions[:0]
	r.mode, r.level = ModeDisabled, 0
	r.colorMask = gputypes.ColorWriteMaskAll
}

// String returns one transition per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, t := range r.Transitions {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}
