// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/maskpipe/instruction"
	"github.com/gogpu/maskpipe/stencil"
)

// Execute applies one recorded mask instruction to target.
//
// The stencil depth of target is read before and stored after the
// instruction, so instructions for different targets may interleave.
// A violation (enter without a mask, exit at depth zero, depth past
// stencil.MaxLevel) returns an error before the device is touched.
func (p *StencilMaskPipe) Execute(target TargetID, in instruction.Instruction) error {
	if p.destroyed || p.device == nil {
		return ErrNotInitialized
	}
	mi, ok := in.(MaskInstruction)
	if !ok || !mi.Action.IsMask() {
		return fmt.Errorf("%w: %T", ErrUnknownInstruction, in)
	}

	depth := p.targets.get(target)
	var err error
	switch mi.Action {
	case instruction.KindMaskEnterBegin:
		depth, err = p.enterBegin(target, mi, depth)
	case instruction.KindMaskEnterEnd:
		err = p.enterEnd(target, mi, depth)
	case instruction.KindMaskExitBegin:
		depth, err = p.exitBegin(target, depth)
	case instruction.KindMaskExitEnd:
		p.exitEnd(depth)
	}
	if err != nil {
		Logger().Warn("maskpipe: execute failed", "target", target, "action", mi.Action, "err", err)
		return err
	}

	p.targets.set(target, depth)
	Logger().Debug("maskpipe: execute", "target", target, "action", mi.Action, "depth", depth)
	return nil
}

func (p *StencilMaskPipe) enterBegin(target TargetID, mi MaskInstruction, depth int) (int, error) {
	if mi.Mask == nil {
		return depth, fmt.Errorf("%w: %v without mask on target %d", ErrProtocolViolation, mi.Action, target)
	}
	if depth >= stencil.MaxLevel {
		return depth, fmt.Errorf("%w: mask depth on target %d exceeds %d", ErrProtocolViolation, target, stencil.MaxLevel)
	}
	if e, ok := p.device.(DepthStencilEnsurer); ok {
		if err := e.EnsureDepthStencil(); err != nil {
			return depth, fmt.Errorf("maskpipe: stencil attachment for target %d: %w", target, err)
		}
	}

	depth++
	p.device.SetStencilMode(stencil.ModeAdd, depth)
	p.device.SetColorMask(gputypes.ColorWriteMaskNone)
	return depth, nil
}

func (p *StencilMaskPipe) enterEnd(target TargetID, mi MaskInstruction, depth int) error {
	if mi.Mask == nil {
		return fmt.Errorf("%w: %v without mask on target %d", ErrProtocolViolation, mi.Action, target)
	}
	if depth == 0 {
		return fmt.Errorf("%w: %v on target %d with no mask being written", ErrProtocolViolation, mi.Action, target)
	}

	p.device.SetStencilMode(stencil.ModeActive, depth)
	p.device.SetColorMask(gputypes.ColorWriteMaskAll)
	return nil
}

func (p *StencilMaskPipe) exitBegin(target TargetID, depth int) (int, error) {
	if depth == 0 {
		return depth, fmt.Errorf("%w: mask exit on target %d would make depth negative", ErrProtocolViolation, target)
	}

	depth--
	if depth != 0 {
		p.device.SetStencilMode(stencil.ModeRemove, depth)
	} else if c, ok := p.device.(StencilClearer); ok {
		c.ClearStencil()
	}
	p.device.SetColorMask(gputypes.ColorWriteMaskNone)
	return depth, nil
}

func (p *StencilMaskPipe) exitEnd(depth int) {
	if depth == 0 {
		p.device.SetStencilMode(stencil.ModeDisabled, 0)
	} else {
		p.device.SetStencilMode(stencil.ModeActive, depth)
	}
	p.device.SetColorMask(gputypes.ColorWriteMaskAll)
}

// Depth returns the stencil nesting depth currently active on target.
func (p *StencilMaskPipe) Depth(target TargetID) int {
	if p.destroyed {
		return 0
	}
	return p.targets.get(target)
}

// ResetTarget forgets the depth of target. Call it when the target is
// destroyed.
func (p *StencilMaskPipe) ResetTarget(target TargetID) {
	if p.destroyed {
		return
	}
	p.targets.remove(target)
}
