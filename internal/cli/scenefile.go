// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/maskpipe/instruction"
	"github.com/gogpu/maskpipe/scene"
)

// ErrInvalidScene is wrapped by every scene validation error.
var ErrInvalidScene = errors.New("invalid scene")

// SceneFile is the YAML description of a scene tree.
//
//	name: clipped
//	masks:
//	  - name: circle
//	    renderable: true
//	root:
//	  name: root
//	  mask: circle
//	  children:
//	    - name: photo
//	      renderable: true
type SceneFile struct {
	// Name labels the scene in output.
	Name string `yaml:"name"`

	// Masks are the mask shapes nodes refer to by name. Each reference
	// creates its own copy of the shape.
	Masks []NodeSpec `yaml:"masks,omitempty"`

	// Root is the top of the tree.
	Root NodeSpec `yaml:"root"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	Name       string `yaml:"name"`
	Renderable bool   `yaml:"renderable,omitempty"`
	Hidden     bool   `yaml:"hidden,omitempty"`
	Blend      string `yaml:"blend,omitempty"`

	// Mask and Masks name entries of SceneFile.Masks, outermost first.
	// Mask is applied before Masks.
	Mask  string   `yaml:"mask,omitempty"`
	Masks []string `yaml:"masks,omitempty"`

	Children []NodeSpec `yaml:"children,omitempty"`
}

func (n *NodeSpec) maskNames() []string {
	if n.Mask == "" {
		return n.Masks
	}
	return append([]string{n.Mask}, n.Masks...)
}

// LoadScene reads and parses a scene file. Unknown fields are rejected.
func LoadScene(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseScene(data)
}

// ParseScene parses a YAML scene description.
func ParseScene(data []byte) (*SceneFile, error) {
	var f SceneFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if f.Root.Name == "" {
		return nil, fmt.Errorf("%w: root.name is required", ErrInvalidScene)
	}
	return &f, nil
}

// Tree builds the scene tree.
func (f *SceneFile) Tree() (*scene.Node, error) {
	tb := treeBuilder{
		masks:  make(map[string]*NodeSpec, len(f.Masks)),
		active: make(map[string]bool),
	}
	for i := range f.Masks {
		m := &f.Masks[i]
		if m.Name == "" {
			return nil, fmt.Errorf("%w: masks[%d].name is required", ErrInvalidScene, i)
		}
		if _, dup := tb.masks[m.Name]; dup {
			return nil, fmt.Errorf("%w: mask %q defined twice", ErrInvalidScene, m.Name)
		}
		tb.masks[m.Name] = m
	}
	return tb.node(&f.Root, "root")
}

type treeBuilder struct {
	masks  map[string]*NodeSpec
	active map[string]bool // masks whose content is being built
}

func (tb *treeBuilder) node(spec *NodeSpec, path string) (*scene.Node, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: %s: name is required", ErrInvalidScene, path)
	}

	var n *scene.Node
	if spec.Renderable {
		n = scene.NewSprite(spec.Name)
	} else {
		n = scene.NewContainer(spec.Name)
	}
	if spec.Blend != "" {
		mode, ok := instruction.ParseBlendMode(spec.Blend)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown blend mode %q", ErrInvalidScene, path, spec.Blend)
		}
		n.SetBlendMode(mode)
	}
	if spec.Hidden {
		n.SetVisible(false)
	}

	for _, name := range spec.maskNames() {
		ms, ok := tb.masks[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown mask %q", ErrInvalidScene, path, name)
		}
		if tb.active[name] {
			return nil, fmt.Errorf("%w: %s: mask %q masks itself", ErrInvalidScene, path, name)
		}
		tb.active[name] = true
		content, err := tb.node(ms, "masks."+name)
		tb.active[name] = false
		if err != nil {
			return nil, err
		}
		n.AddMask(content)
	}

	for i := range spec.Children {
		child, err := tb.node(&spec.Children[i], path+"."+spec.Children[i].Name)
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}
