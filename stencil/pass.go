// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stencil

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// PassEncoder is the subset of a render pass encoder that PassDevice drives.
// hal.RenderPassEncoder satisfies it.
type PassEncoder interface {
	SetPipeline(pipeline hal.RenderPipeline)
	SetStencilReference(reference uint32)
}

// PassDevice applies stencil modes and color write masks to a render pass.
//
// WebGPU bakes stencil state and color write masks into the pipeline, so a
// mode change is a pipeline switch plus a stencil reference update. Calls
// that do not change the effective state issue no commands. Pipeline
// creation failures are kept and reported by Err; later calls become no-ops
// so a broken frame fails once instead of drawing with stale state.
type PassDevice struct {
	cache *PipelineCache
	pass  PassEncoder

	mode      Mode
	level     int
	colorMask gputypes.ColorWriteMask

	applied    bool
	appliedKey pipelineKey
	appliedRef uint32

	err error
}

// NewPassDevice creates a device with stencil disabled and all color
// channels writable.
func NewPassDevice(cache *PipelineCache) *PassDevice {
	return &PassDevice{
		cache:     cache,
		mode:      ModeDisabled,
		colorMask: gputypes.ColorWriteMaskAll,
	}
}

// Begin binds the device to a new render pass and applies the current
// state to it.
func (d *PassDevice) Begin(pass PassEncoder) {
	d.pass = pass
	d.applied = false
	d.apply()
}

// End detaches the device from its render pass.
func (d *PassDevice) End() {
	d.pass = nil
	d.applied = false
}

// SetStencilMode sets the stencil mode used at nesting level.
func (d *PassDevice) SetStencilMode(mode Mode, level int) {
	d.mode = mode
	d.level = level
	d.apply()
}

// SetColorMask sets which color channels subsequent draws write.
func (d *PassDevice) SetColorMask(mask gputypes.ColorWriteMask) {
	d.colorMask = mask
	d.apply()
}

// Mode returns the current stencil mode and level.
func (d *PassDevice) Mode() (Mode, int) {
	return d.mode, d.level
}

// ColorMask returns the current color write mask.
func (d *PassDevice) ColorMask() gputypes.ColorWriteMask {
	return d.colorMask
}

// Err returns the first pipeline error encountered, if any.
func (d *PassDevice) Err() error {
	return d.err
}

func (d *PassDevice) apply() {
	if d.pass == nil || d.err != nil {
		return
	}

	key := pipelineKey{mode: d.mode, colorMask: d.colorMask}
	if !d.applied || key != d.appliedKey {
		p, err := d.cache.Pipeline(d.mode, d.colorMask)
		if err != nil {
			d.err = err
			return
		}
		d.pass.SetPipeline(p)
		d.appliedKey = key
	}

	ref := Reference(d.mode, d.level)
	if !d.applied || ref != d.appliedRef {
		d.pass.SetStencilReference(ref)
		d.appliedRef = ref
	}
	d.applied = true
}
