// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import (
	"fmt"

	"github.com/gogpu/maskpipe/instruction"
)

// StencilMaskPipe emits stencil mask instructions while a scene is built
// and executes them while the frame is drawn.
//
// The pipe owns three pieces of state with independent lifecycles: the
// span cache (per mask), open mask layers (per container, build time) and
// stencil depth (per render target, execution time). Destroy releases all
// of them; every later call fails with ErrNotInitialized.
//
// StencilMaskPipe is not safe for concurrent use. Build and execution run
// on the goroutine that owns the renderer.
type StencilMaskPipe struct {
	device    Device
	collector RenderableCollector
	batch     BatchBreaker
	blend     BlendModeSetter

	spans      *SpanCache
	containers depthCounter[ContainerID]
	targets    depthCounter[TargetID]

	destroyed bool
}

// NewStencilMaskPipe creates a pipe that walks mask content with collector
// and applies stencil state to device. device may be nil for a pipe that
// only builds instruction sets.
func NewStencilMaskPipe(device Device, collector RenderableCollector, opts ...PipeOption) *StencilMaskPipe {
	o := defaultPipeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &StencilMaskPipe{
		device:     device,
		collector:  collector,
		batch:      o.batch,
		blend:      o.blend,
		spans:      NewSpanCache(),
		containers: newDepthCounter[ContainerID](),
		targets:    newDepthCounter[TargetID](),
	}
}

// Push opens a mask layer on container. It writes the mask boundary and
// the mask content into set and records where the content landed.
func (p *StencilMaskPipe) Push(mask *Mask, container ContainerID, set *instruction.Set) error {
	if p.destroyed {
		return ErrNotInitialized
	}
	if err := checkBuildArgs("push", mask, set); err != nil {
		return err
	}

	p.batch.Break(set)
	p.resetBlend(mask, set)
	set.Add(MaskInstruction{Action: instruction.KindMaskEnterBegin, Mask: mask})

	span := p.spans.Ensure(mask.id)
	span.InstructionsStart = set.Len()

	if p.collector != nil {
		mask.content.SetIncludeInBuild(true)
		err := p.collector.CollectRenderables(mask.content, set)
		mask.content.SetIncludeInBuild(false)
		if err != nil {
			return fmt.Errorf("maskpipe: collect content of mask %d: %w", mask.id, err)
		}
	}

	p.batch.Break(set)
	set.Add(MaskInstruction{Action: instruction.KindMaskEnterEnd, Mask: mask})
	span.InstructionsLength = set.Len() - span.InstructionsStart - 1

	open := p.containers.inc(container)

	Logger().Debug("maskpipe: push",
		"mask", mask.id,
		"container", container,
		"open", open,
		"start", span.InstructionsStart,
		"length", span.InstructionsLength)
	return nil
}

// Pop closes the most recent mask layer on container. The cached content
// span is copied after MaskExitBegin when another layer is still open on
// the same container.
//
// Pop validates before it writes anything: on error the set and all
// counters are unchanged.
func (p *StencilMaskPipe) Pop(mask *Mask, container ContainerID, set *instruction.Set) error {
	if p.destroyed {
		return ErrNotInitialized
	}
	if err := checkBuildArgs("pop", mask, set); err != nil {
		return err
	}

	span, err := p.spans.Get(mask.id)
	if err != nil {
		Logger().Warn("maskpipe: pop without push", "mask", mask.id, "container", container)
		return fmt.Errorf("%w: pop of mask %d on container %d: %w", ErrProtocolViolation, mask.id, container, err)
	}
	if p.containers.get(container) == 0 {
		Logger().Warn("maskpipe: pop on container with no open mask", "mask", mask.id, "container", container)
		return fmt.Errorf("%w: pop of mask %d on container %d with no open mask", ErrProtocolViolation, mask.id, container)
	}
	if end := span.InstructionsStart + span.InstructionsLength; end > set.Len() {
		return fmt.Errorf("%w: span of mask %d ends at %d, set has %d instructions",
			ErrProtocolViolation, mask.id, end, set.Len())
	}

	open, err := p.containers.dec(container)
	if err != nil {
		return err
	}

	p.batch.Break(set)
	p.resetBlend(mask, set)
	set.Add(MaskInstruction{Action: instruction.KindMaskExitBegin, Mask: mask})

	replayed := 0
	if open != 0 {
		// Bounds were checked above and the set only grew since.
		if err := set.Replay(span.InstructionsStart, span.InstructionsLength); err != nil {
			return fmt.Errorf("maskpipe: replay mask %d: %w", mask.id, err)
		}
		replayed = span.InstructionsLength
	}

	set.Add(MaskInstruction{Action: instruction.KindMaskExitEnd, Mask: mask})

	Logger().Debug("maskpipe: pop",
		"mask", mask.id,
		"container", container,
		"open", open,
		"replayed", replayed)
	return nil
}

// Span returns the cached span of mask.
func (p *StencilMaskPipe) Span(mask *Mask) (SpanRecord, error) {
	if p.destroyed {
		return SpanRecord{}, ErrNotInitialized
	}
	rec, err := p.spans.Get(mask.id)
	if err != nil {
		return SpanRecord{}, err
	}
	return *rec, nil
}

// OpenLayers returns the number of mask layers currently open on container.
func (p *StencilMaskPipe) OpenLayers(container ContainerID) int {
	if p.destroyed {
		return 0
	}
	return p.containers.get(container)
}

// ReleaseMask drops the cached span of a mask that will not be used again.
func (p *StencilMaskPipe) ReleaseMask(mask *Mask) {
	if p.destroyed || mask == nil {
		return
	}
	p.spans.Remove(mask.id)
}

// ReleaseContainer drops the open-layer counter of a destroyed container.
func (p *StencilMaskPipe) ReleaseContainer(container ContainerID) {
	if p.destroyed {
		return
	}
	p.containers.remove(container)
}

// ResetBuild forgets all spans and open layers, for a frame whose mask and
// container sets differ from the previous one. Execution depth is kept.
func (p *StencilMaskPipe) ResetBuild() {
	if p.destroyed {
		return
	}
	p.spans.Clear()
	p.containers.clear()
}

// Destroy releases every cache and counter owned by the pipe.
func (p *StencilMaskPipe) Destroy() {
	if p.destroyed {
		return
	}
	Logger().Debug("maskpipe: destroy",
		"spans", p.spans.Len(),
		"containers", p.containers.len(),
		"targets", p.targets.len())
	p.destroyed = true
	p.spans = nil
	p.containers = depthCounter[ContainerID]{}
	p.targets = depthCounter[TargetID]{}
	p.device = nil
	p.collector = nil
}

func (p *StencilMaskPipe) resetBlend(mask *Mask, set *instruction.Set) {
	if mask.drawable != nil {
		p.blend.SetBlendMode(mask.drawable, instruction.BlendNone, set)
	}
}

func checkBuildArgs(op string, mask *Mask, set *instruction.Set) error {
	switch {
	case mask == nil:
		return fmt.Errorf("%w: %s of nil mask", ErrProtocolViolation, op)
	case mask.content == nil:
		return fmt.Errorf("%w: %s of mask %d without content", ErrProtocolViolation, op, mask.id)
	case set == nil:
		return fmt.Errorf("%w: %s of mask %d into nil set", ErrProtocolViolation, op, mask.id)
	}
	return nil
}
