// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestBuildGolden(t *testing.T) {
	for _, name := range []string{"single", "nested", "twomasks", "hidden"} {
		t.Run(name, func(t *testing.T) {
			out, err := runCommand(t, "build", "testdata/scenes/"+name+".yaml")
			require.NoError(t, err)
			assertGolden(t, "build_"+name, out)
		})
	}
}

func TestExecGolden(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
	}{
		{"exec_nested", []string{"exec", "testdata/scenes/nested.yaml"}},
		{"exec_twomasks", []string{"exec", "testdata/scenes/twomasks.yaml"}},
		{"exec_single_2frames", []string{"exec", "--frames", "2", "testdata/scenes/single.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			require.NoError(t, err)
			assertGolden(t, tt.golden, out)
		})
	}
}

func TestBuildJSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "build", "testdata/scenes/single.yaml")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   BuildResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "single", resp.Data.Scene)
	require.Len(t, resp.Data.Instructions, 9)
	assert.Equal(t, "MaskEnterBegin", resp.Data.Instructions[1].Kind)
	assert.Equal(t, []SpanView{{Mask: "circle", Start: 2, Length: 1}}, resp.Data.Spans)
}

func TestExecJSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "exec", "-n", "3", "testdata/scenes/twomasks.yaml")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   ExecResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "screen", resp.Data.Target)
	assert.Equal(t, 0, resp.Data.Depth)
	require.Len(t, resp.Data.Frames, 3)
	assert.Equal(t, resp.Data.Frames[0], resp.Data.Frames[2])
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"missing file", []string{"build", "testdata/scenes/nope.yaml"}, ExitCommandError, "failed to load scene"},
		{"unknown mask", []string{"exec", "testdata/scenes/unknownmask.yaml"}, ExitCommandError, "unknown mask"},
		{"zero frames", []string{"exec", "--frames", "0", "testdata/scenes/single.yaml"}, ExitCommandError, "--frames"},
		{"no args", []string{"build"}, ExitFailure, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, GetExitCode(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestShaderSource(t *testing.T) {
	out, err := runCommand(t, "shader", "--source")
	require.NoError(t, err)
	assert.Contains(t, out, "fn vs_main")
	assert.Contains(t, out, "fn fs_main")
}
