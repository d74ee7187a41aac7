// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stencil

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// MaskShaderSource is the WGSL source used by every mask pipeline.
//
//go:embed shaders/mask.wgsl
var MaskShaderSource string

// vertexStride is the byte stride per vertex: 2 x float32 (x, y) = 8 bytes.
const vertexStride = 8

// CompileMaskShader compiles MaskShaderSource to SPIR-V words.
func CompileMaskShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(MaskShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile mask shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile mask shader: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
