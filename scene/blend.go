// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
)

// BlendTracker records blend mode changes. It tracks the mode active at the
// end of the set and emits a SetBlendMode instruction only when a drawable
// needs a different one. A change is a batch boundary.
// It implements maskpipe.BlendModeSetter.
type BlendTracker struct {
	batch  *Batcher
	active instruction.BlendMode
}

// NewBlendTracker creates a tracker that breaks batch before every change.
func NewBlendTracker(batch *Batcher) *BlendTracker {
	return &BlendTracker{batch: batch, active: instruction.BlendNormal}
}

// Active returns the blend mode in effect at the end of the set.
func (t *BlendTracker) Active() instruction.BlendMode {
	return t.active
}

// SetBlendMode switches to mode for d if it is not already active.
func (t *BlendTracker) SetBlendMode(d maskpipe.Drawable, mode instruction.BlendMode, set *instruction.Set) {
	if mode == t.active {
		return
	}
	t.active = mode
	if t.batch != nil {
		t.batch.Break(set)
	}
	set.Add(instruction.SetBlendMode{Target: d.Label(), Mode: mode})
}

// Reset restores the default mode for a new frame.
func (t *BlendTracker) Reset() {
	t.active = instruction.BlendNormal
}
