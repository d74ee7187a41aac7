// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/maskpipe/instruction"
	"github.com/gogpu/maskpipe/stencil"
)

// Trace is a Drawer and a mask device in one. It writes every draw call
// and every stencil state change into Lines, in the order they happen.
type Trace struct {
	Lines []string

	rec *stencil.Recorder
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{rec: stencil.NewRecorder()}
}

// Recorder returns the recorder holding the stencil transitions alone.
func (t *Trace) Recorder() *stencil.Recorder { return t.rec }

// DrawBatch implements Drawer.
func (t *Trace) DrawBatch(_ *Target, renderables []string) error {
	t.Lines = append(t.Lines, "draw "+strings.Join(renderables, ","))
	return nil
}

// SetBlendMode implements Drawer.
func (t *Trace) SetBlendMode(_ *Target, label string, mode instruction.BlendMode) {
	t.Lines = append(t.Lines, "blend "+label+" "+mode.String())
}

// SetStencilMode implements maskpipe.Device.
func (t *Trace) SetStencilMode(mode stencil.Mode, level int) {
	t.rec.SetStencilMode(mode, level)
	t.last()
}

// SetColorMask implements maskpipe.Device.
func (t *Trace) SetColorMask(mask gputypes.ColorWriteMask) {
	t.rec.SetColorMask(mask)
	t.last()
}

// ClearStencil implements maskpipe.StencilClearer.
func (t *Trace) ClearStencil() {
	t.rec.ClearStencil()
	t.last()
}

// EnsureDepthStencil implements maskpipe.DepthStencilEnsurer.
func (t *Trace) EnsureDepthStencil() error {
	err := t.rec.EnsureDepthStencil()
	t.last()
	return err
}

func (t *Trace) last() {
	tr := t.rec.Transitions[len(t.rec.Transitions)-1]
	t.Lines = append(t.Lines, tr.String())
}

// Reset discards the trace.
func (t *Trace) Reset() {
	t.Lines = t.Lines[:0]
	t.rec.Reset()
}

// String returns one line per event.
func (t *Trace) String() string {
	if len(t.Lines) == 0 {
		return ""
	}
	return strings.Join(t.Lines, "\n") + "\n"
}
