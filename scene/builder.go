// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
)

// Builder turns a scene tree into an instruction set. It owns the mask
// pipe and the build-time collaborators wired into it.
type Builder struct {
	pipe      *maskpipe.StencilMaskPipe
	collector *Collector
	batch     *Batcher
	blends    *BlendTracker
}

// NewBuilder creates a builder whose mask pipe executes against device.
// device may be nil when the set is only inspected.
func NewBuilder(device maskpipe.Device) *Builder {
	batch := &Batcher{}
	blends := NewBlendTracker(batch)
	collector := &Collector{batch: batch, blends: blends}
	pipe := maskpipe.NewStencilMaskPipe(device, collector,
		maskpipe.WithBatchBreaker(batch),
		maskpipe.WithBlendModeSetter(blends),
	)
	collector.pipe = pipe
	return &Builder{
		pipe:      pipe,
		collector: collector,
		batch:     batch,
		blends:    blends,
	}
}

// Pipe returns the mask pipe used by the builder.
func (b *Builder) Pipe() *maskpipe.StencilMaskPipe {
	return b.pipe
}

// Build appends the instructions for root's tree to set. The blend state
// starts from BlendNormal and the final batch is flushed.
func (b *Builder) Build(root *Node, set *instruction.Set) error {
	b.batch.Reset()
	b.blends.Reset()
	if err := b.collector.collect(root, set); err != nil {
		return err
	}
	b.batch.Break(set)
	return nil
}

// Release drops the pipe state held for root's subtree: open layers of
// every node and the spans of every mask. Call it when the subtree is
// destroyed.
func (b *Builder) Release(root *Node) {
	root.Walk(func(n *Node) {
		b.pipe.ReleaseContainer(n.id)
		for _, m := range n.masks {
			b.pipe.ReleaseMask(m)
		}
	})
}

// Destroy releases the mask pipe.
func (b *Builder) Destroy() {
	b.pipe.Destroy()
}
