// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instruction

import "strings"

// BlendMode selects how a renderable composites with what is below it.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendAdd
	BlendMultiply
	BlendScreen

	// BlendNone writes without blending. Mask geometry is drawn with it so
	// that only the stencil is affected.
	BlendNone
)

var blendModeNames = [...]string{
	BlendNormal:   "normal",
	BlendAdd:      "add",
	BlendMultiply: "multiply",
	BlendScreen:   "screen",
	BlendNone:     "none",
}

// String returns the lower-case blend mode name.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return unknownStr
}

// ParseBlendMode returns the BlendMode with the given name.
func ParseBlendMode(name string) (BlendMode, bool) {
	for m, n := range blendModeNames {
		if strings.EqualFold(n, name) {
			return BlendMode(m), true
		}
	}
	return BlendNormal, false
}

const unknownStr = "unknown"

// BatchDraw draws a group of renderables that were merged into one batch.
type BatchDraw struct {
	Renderables []string
}

// Kind implements Instruction.
func (BatchDraw) Kind() Kind { return KindBatchDraw }

// SetBlendMode changes the blend mode used for Target.
type SetBlendMode struct {
	Target string
	Mode   BlendMode
}

// Kind implements Instruction.
func (SetBlendMode) Kind() Kind { return KindSetBlendMode }
