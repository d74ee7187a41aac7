// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
)

// ErrNilTarget is returned when Run is called without a target or set.
var ErrNilTarget = errors.New("render: nil target or instruction set")

// Drawer draws the non-mask instructions of a set.
type Drawer interface {
	// DrawBatch draws the labelled renderables in one call.
	DrawBatch(target *Target, renderables []string) error

	// SetBlendMode changes the blend state for the renderable named by label.
	SetBlendMode(target *Target, label string, mode instruction.BlendMode)
}

type nopDrawer struct{}

func (nopDrawer) DrawBatch(*Target, []string) error { return nil }

func (nopDrawer) SetBlendMode(*Target, string, instruction.BlendMode) {}

// Runner plays instruction sets back against targets.
type Runner struct {
	pipe   *maskpipe.StencilMaskPipe
	drawer Drawer
}

// NewRunner creates a runner. A nil drawer discards draw instructions, so
// only the stencil state is exercised.
func NewRunner(pipe *maskpipe.StencilMaskPipe, drawer Drawer) *Runner {
	if drawer == nil {
		drawer = nopDrawer{}
	}
	return &Runner{pipe: pipe, drawer: drawer}
}

// Run executes set against target in order. The first failing instruction
// aborts the frame; the error names its index and kind.
func (r *Runner) Run(target *Target, set *instruction.Set) error {
	if target == nil || set == nil {
		return ErrNilTarget
	}
	for i, in := range set.Instructions() {
		if err := r.step(target, in); err != nil {
			return fmt.Errorf("render: target %q instruction %d (%s): %w", target.name, i, kindName(in), err)
		}
	}
	return nil
}

func (r *Runner) step(target *Target, in instruction.Instruction) error {
	switch c := in.(type) {
	case maskpipe.MaskInstruction:
		return r.pipe.Execute(target.id, c)
	case instruction.BatchDraw:
		return r.drawer.DrawBatch(target, c.Renderables)
	case instruction.SetBlendMode:
		r.drawer.SetBlendMode(target, c.Target, c.Mode)
		return nil
	default:
		return fmt.Errorf("%w: %T", maskpipe.ErrUnknownInstruction, in)
	}
}

func kindName(in instruction.Instruction) string {
	if in == nil {
		return "nil"
	}
	return in.Kind().String()
}

// DestroyTarget forgets the stencil depth of target.
func (r *Runner) DestroyTarget(target *Target) {
	if target == nil {
		return
	}
	r.pipe.ResetTarget(target.id)
}
