// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/maskpipe/instruction"
)

func TestLoadScene(t *testing.T) {
	f, err := LoadScene("testdata/scenes/nested.yaml")
	require.NoError(t, err)
	assert.Equal(t, "nested", f.Name)
	require.Len(t, f.Masks, 2)

	root, err := f.Tree()
	require.NoError(t, err)
	assert.Equal(t, "root", root.Name())
	require.Len(t, root.Masks(), 1)
	assert.Equal(t, "outer", root.Masks()[0].Drawable().Label())

	require.Len(t, root.Children(), 2)
	panel := root.Children()[1]
	require.Len(t, panel.Masks(), 1)
	icon := panel.Children()[0]
	assert.Equal(t, instruction.BlendAdd, icon.BlendMode())
	assert.True(t, icon.Renderable())
}

func TestLoadSceneErrors(t *testing.T) {
	_, err := LoadScene("testdata/scenes/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scene file")

	_, err = LoadScene("testdata/scenes/typo.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestSceneTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing root name",
			yaml: "root:\n  renderable: true\n",
			want: "root.name is required",
		},
		{
			name: "unknown mask",
			yaml: "root:\n  name: root\n  mask: missing\n",
			want: `unknown mask "missing"`,
		},
		{
			name: "bad blend",
			yaml: "root:\n  name: root\n  blend: dodge\n",
			want: `unknown blend mode "dodge"`,
		},
		{
			name: "duplicate mask",
			yaml: "masks:\n  - name: m\n  - name: m\nroot:\n  name: root\n",
			want: `mask "m" defined twice`,
		},
		{
			name: "unnamed child",
			yaml: "root:\n  name: root\n  children:\n    - renderable: true\n",
			want: "name is required",
		},
		{
			name: "self masking",
			yaml: "masks:\n  - name: m\n    mask: m\nroot:\n  name: root\n  mask: m\n",
			want: `mask "m" masks itself`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseScene([]byte(tt.yaml))
			if err == nil {
				_, err = f.Tree()
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScene)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMaskAndMasksCombine(t *testing.T) {
	f, err := ParseScene([]byte(`
masks:
  - name: a
  - name: b
root:
  name: root
  mask: a
  masks: [b]
`))
	require.NoError(t, err)
	root, err := f.Tree()
	require.NoError(t, err)
	require.Len(t, root.Masks(), 2)
	assert.Equal(t, "a", root.Masks()[0].Drawable().Label())
	assert.Equal(t, "b", root.Masks()[1].Drawable().Label())
}
