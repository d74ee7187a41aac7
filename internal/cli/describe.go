// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"strings"

	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
)

// InstructionView is the printable form of one instruction.
type InstructionView struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

func (v InstructionView) String() string {
	return fmt.Sprintf("%2d %-14s %s", v.Index, v.Kind, v.Detail)
}

func viewInstructions(set *instruction.Set) []InstructionView {
	views := make([]InstructionView, set.Len())
	for i, in := range set.Instructions() {
		views[i] = InstructionView{Index: i, Kind: in.Kind().String(), Detail: describe(in)}
	}
	return views
}

func describe(in instruction.Instruction) string {
	switch c := in.(type) {
	case instruction.BatchDraw:
		return strings.Join(c.Renderables, ",")
	case instruction.SetBlendMode:
		return c.Target + " " + c.Mode.String()
	case maskpipe.MaskInstruction:
		return maskLabel(c.Mask)
	default:
		return ""
	}
}

func maskLabel(m *maskpipe.Mask) string {
	switch {
	case m == nil:
		return "-"
	case m.Drawable() != nil:
		return m.Drawable().Label()
	default:
		return fmt.Sprintf("#%d", m.ID())
	}
}
