// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sync/atomic"

	"github.com/gogpu/maskpipe"
)

var lastTargetID atomic.Uint64

// Target is a destination for a frame. Each target owns its own stencil
// nesting depth in the mask pipe.
type Target struct {
	id   maskpipe.TargetID
	name string
}

// NewTarget creates a target with a fresh identity.
func NewTarget(name string) *Target {
	return &Target{
		id:   maskpipe.TargetID(lastTargetID.Add(1)),
		name: name,
	}
}

// ID returns the identity used to key stencil depth.
func (t *Target) ID() maskpipe.TargetID { return t.id }

// Name returns the target name.
func (t *Target) Name() string { return t.name }
