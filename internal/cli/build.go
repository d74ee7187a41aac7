// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
	"github.com/gogpu/maskpipe/scene"
)

// SpanView is the cached content span of one mask.
type SpanView struct {
	Mask   string `json:"mask"`
	Start  int    `json:"start"`
	Length int    `json:"length"`
}

// BuildResult is the output of the build command.
type BuildResult struct {
	Scene        string            `json:"scene"`
	Instructions []InstructionView `json:"instructions"`
	Spans        []SpanView        `json:"spans"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <scene.yaml>",
		Short: "Print the instruction set recorded for a scene",
		Long: `Build the scene into an instruction set and print it, followed by
the content span cached for every mask.

Examples:
  masktrace build scene.yaml
  masktrace build scene.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, cmd, args[0])
		},
	}
}

func runBuild(opts *RootOptions, cmd *cobra.Command, path string) error {
	f, root, err := loadTree(path)
	if err != nil {
		return err
	}

	b := scene.NewBuilder(nil)
	defer b.Destroy()

	set := instruction.NewSet(32)
	if err := b.Build(root, set); err != nil {
		return WrapExitError(ExitFailure, "build failed", err)
	}

	result := BuildResult{
		Scene:        sceneName(f, path),
		Instructions: viewInstructions(set),
		Spans:        spanViews(b.Pipe(), root),
	}

	var text strings.Builder
	fmt.Fprintf(&text, "scene %s: %d instructions\n", result.Scene, len(result.Instructions))
	for _, v := range result.Instructions {
		text.WriteString(v.String())
		text.WriteByte('\n')
	}
	for _, s := range result.Spans {
		fmt.Fprintf(&text, "span %s: start=%d length=%d\n", s.Mask, s.Start, s.Length)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(text.String(), result)
}

func loadTree(path string) (*SceneFile, *scene.Node, error) {
	f, err := LoadScene(path)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load scene", err)
	}
	root, err := f.Tree()
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load scene", err)
	}
	return f, root, nil
}

func sceneName(f *SceneFile, path string) string {
	if f.Name != "" {
		return f.Name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// spanViews lists the spans of the masks reached from root in tree order.
// Masks on hidden subtrees were never pushed and have no span.
func spanViews(pipe *maskpipe.StencilMaskPipe, root *scene.Node) []SpanView {
	views := []SpanView{}
	root.Walk(func(n *scene.Node) {
		for _, m := range n.Masks() {
			span, err := pipe.Span(m)
			if errors.Is(err, maskpipe.ErrSpanNotFound) {
				continue
			}
			views = append(views, SpanView{
				Mask:   maskLabel(m),
				Start:  span.InstructionsStart,
				Length: span.InstructionsLength,
			})
		}
	})
	return views
}
