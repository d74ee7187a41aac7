// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "github.com/gogpu/maskpipe/instruction"

// Batcher merges consecutive renderables into one BatchDraw instruction.
// It implements maskpipe.BatchBreaker.
type Batcher struct {
	pending []string
	flushes int
}

// Add queues a renderable for the current batch.
func (b *Batcher) Add(label string) {
	b.pending = append(b.pending, label)
}

// Pending returns the number of queued renderables.
func (b *Batcher) Pending() int {
	return len(b.pending)
}

// Flushes returns how many batches have been emitted.
func (b *Batcher) Flushes() int {
	return b.flushes
}

// Break emits the queued renderables as one BatchDraw. It does nothing
// when the queue is empty.
func (b *Batcher) Break(set *instruction.Set) {
	if len(b.pending) == 0 {
		return
	}
	batch := make([]string, len(b.pending))
	copy(batch, b.pending)
	set.Add(instruction.BatchDraw{Renderables: batch})
	b.pending = b.pending[:0]
	b.flushes++
}

// Reset drops queued renderables without emitting them.
func (b *Batcher) Reset() {
	b.pending = b.pending[:0]
	b.flushes = 0
}
