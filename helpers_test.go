// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import (
	"errors"

	"github.com/gogpu/maskpipe/instruction"
)

// testNode is a mask content node with a single drawable.
type testNode struct {
	label      string
	include    bool
	includeLog []bool
}

func (n *testNode) SetIncludeInBuild(include bool) {
	n.include = include
	n.includeLog = append(n.includeLog, include)
}

func (n *testNode) Label() string { return n.label }

// testCollector draws every node it is asked to collect as one batch.
// It records whether the node was force-included at the time.
type testCollector struct {
	calls       int
	sawIncluded bool
	failWith    error
}

func (c *testCollector) CollectRenderables(node Node, set *instruction.Set) error {
	c.calls++
	n := node.(*testNode)
	c.sawIncluded = n.include
	if c.failWith != nil {
		return c.failWith
	}
	set.Add(instruction.BatchDraw{Renderables: []string{n.label}})
	return nil
}

// testBatcher counts breaks.
type testBatcher struct {
	breaks int
}

func (b *testBatcher) Break(*instruction.Set) { b.breaks++ }

// testBlends records every blend change as an instruction.
type testBlends struct{}

func (testBlends) SetBlendMode(d Drawable, mode instruction.BlendMode, set *instruction.Set) {
	set.Add(instruction.SetBlendMode{Target: d.Label(), Mode: mode})
}

var errCollect = errors.New("collect failed")

func newTestMask(label string) (*Mask, *testNode) {
	n := &testNode{label: label}
	return NewMask(n, n), n
}

func kindsOf(ins []instruction.Instruction) []instruction.Kind {
	out := make([]instruction.Kind, len(ins))
	for i, in := range ins {
		out[i] = in.Kind()
	}
	return out
}
