// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instruction

import "fmt"

// Kind identifies the type of an instruction.
type Kind uint8

const (
	// Generic instructions
	KindBatchDraw    Kind = iota // Flushed batch of renderables
	KindSetBlendMode             // Blend mode change for one renderable

	// Stencil mask instructions
	KindMaskEnterBegin // Start writing mask geometry into the stencil
	KindMaskEnterEnd   // Mask written, clip following content
	KindMaskExitBegin  // Start removing one nesting level
	KindMaskExitEnd    // Level removed, restore outer state
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindBatchDraw:      "BatchDraw",
	KindSetBlendMode:   "SetBlendMode",
	KindMaskEnterBegin: "MaskEnterBegin",
	KindMaskEnterEnd:   "MaskEnterEnd",
	KindMaskExitBegin:  "MaskExitBegin",
	KindMaskExitEnd:    "MaskExitEnd",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsMask reports whether k is one of the four stencil mask kinds.
func (k Kind) IsMask() bool {
	return k >= KindMaskEnterBegin && k <= KindMaskExitEnd
}

// Instruction is a single recorded operation.
type Instruction interface {
	// Kind returns the Kind for this instruction.
	Kind() Kind
}
