// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/maskpipe/stencil"
)

// ShaderResult is the output of the shader command.
type ShaderResult struct {
	Words int    `json:"words"`
	Bytes int    `json:"bytes"`
	Magic string `json:"magic"`
}

// NewShaderCommand creates the shader command.
func NewShaderCommand(rootOpts *RootOptions) *cobra.Command {
	var source bool

	cmd := &cobra.Command{
		Use:   "shader",
		Short: "Compile the mask shader to SPIR-V",
		Long: `Compile the WGSL shader used to draw mask geometry and report the
size of the SPIR-V module. With --source the WGSL is printed instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if source {
				return out.Success(stencil.MaskShaderSource, map[string]string{"wgsl": stencil.MaskShaderSource})
			}

			words, err := stencil.CompileMaskShader()
			if err != nil {
				return WrapExitError(ExitFailure, "shader compilation failed", err)
			}
			result := ShaderResult{Words: len(words), Bytes: 4 * len(words)}
			if len(words) > 0 {
				result.Magic = fmt.Sprintf("%#010x", words[0])
			}
			text := fmt.Sprintf("mask shader: %d SPIR-V words (%d bytes)\n", result.Words, result.Bytes)
			return out.Success(text, result)
		},
	}

	cmd.Flags().BoolVar(&source, "source", false, "print the WGSL source")

	return cmd
}
