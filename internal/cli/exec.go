// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/maskpipe/instruction"
	"github.com/gogpu/maskpipe/render"
	"github.com/gogpu/maskpipe/scene"
)

// ExecOptions holds flags for the exec command.
type ExecOptions struct {
	*RootOptions
	Frames int
	Target string
}

// ExecResult is the output of the exec command.
type ExecResult struct {
	Scene  string     `json:"scene"`
	Target string     `json:"target"`
	Frames [][]string `json:"frames"`
	Depth  int        `json:"depth"`
}

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExecOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exec <scene.yaml>",
		Short: "Run a scene and print the draw and stencil state trace",
		Long: `Build the scene and execute it against a recording device. Every draw
call, blend change and stencil or color mask transition is printed in the
order the renderer would issue it.

Examples:
  masktrace exec scene.yaml
  masktrace exec scene.yaml --frames 2 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(opts, cmd, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.Frames, "frames", "n", 1, "number of frames to build and run")
	cmd.Flags().StringVar(&opts.Target, "target", "screen", "render target name")

	return cmd
}

func runExec(opts *ExecOptions, cmd *cobra.Command, path string) error {
	if opts.Frames < 1 {
		return WrapExitError(ExitCommandError, "invalid flags", fmt.Errorf("--frames must be at least 1, got %d", opts.Frames))
	}
	f, root, err := loadTree(path)
	if err != nil {
		return err
	}

	trace := render.NewTrace()
	b := scene.NewBuilder(trace)
	defer b.Destroy()
	runner := render.NewRunner(b.Pipe(), trace)
	target := render.NewTarget(opts.Target)
	defer runner.DestroyTarget(target)

	result := ExecResult{Scene: sceneName(f, path), Target: target.Name()}
	set := instruction.NewSet(32)
	for range opts.Frames {
		set.Reset()
		trace.Reset()
		if err := b.Build(root, set); err != nil {
			return WrapExitError(ExitFailure, "build failed", err)
		}
		if err := runner.Run(target, set); err != nil {
			return WrapExitError(ExitFailure, "execution failed", err)
		}
		result.Frames = append(result.Frames, slices.Clone(trace.Lines))
	}
	result.Depth = b.Pipe().Depth(target.ID())

	var text strings.Builder
	fmt.Fprintf(&text, "scene %s on %s\n", result.Scene, result.Target)
	for i, lines := range result.Frames {
		fmt.Fprintf(&text, "frame %d\n", i+1)
		for _, line := range lines {
			text.WriteString("  ")
			text.WriteString(line)
			text.WriteByte('\n')
		}
	}
	fmt.Fprintf(&text, "depth %d\n", result.Depth)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(text.String(), result)
}
