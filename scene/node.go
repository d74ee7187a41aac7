// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"sync/atomic"

	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
)

var lastNodeID atomic.Uint64

// Node is an element of the scene tree.
//
// Nodes are not safe for concurrent use.
type Node struct {
	id         maskpipe.ContainerID
	name       string
	renderable bool
	visible    bool
	include    bool
	blend      instruction.BlendMode

	parent   *Node
	children []*Node
	masks    []*maskpipe.Mask
}

func newNode(name string, renderable bool) *Node {
	return &Node{
		id:         maskpipe.ContainerID(lastNodeID.Add(1)),
		name:       name,
		renderable: renderable,
		visible:    true,
		blend:      instruction.BlendNormal,
	}
}

// NewContainer creates a node that only groups children.
func NewContainer(name string) *Node {
	return newNode(name, false)
}

// NewSprite creates a node that draws itself.
func NewSprite(name string) *Node {
	return newNode(name, true)
}

// ID returns the node identity used as the mask container key.
func (n *Node) ID() maskpipe.ContainerID { return n.id }

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Label implements maskpipe.Drawable.
func (n *Node) Label() string { return n.name }

// Renderable reports whether the node draws itself.
func (n *Node) Renderable() bool { return n.renderable }

// Visible reports whether the node takes part in the normal pass.
func (n *Node) Visible() bool { return n.visible }

// SetVisible shows or hides the node and its subtree.
func (n *Node) SetVisible(v bool) { n.visible = v }

// BlendMode returns the node's blend mode.
func (n *Node) BlendMode() instruction.BlendMode { return n.blend }

// SetBlendMode sets the node's blend mode.
func (n *Node) SetBlendMode(m instruction.BlendMode) { n.blend = m }

// IncludeInBuild reports whether the node is forced into the current build.
func (n *Node) IncludeInBuild() bool { return n.include }

// SetIncludeInBuild implements maskpipe.Node.
func (n *Node) SetIncludeInBuild(include bool) { n.include = include }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in draw order.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends child, detaching it from its previous parent, and
// returns it.
func (n *Node) AddChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// RemoveChild detaches child. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// AddMask clips the node's subtree to the shape of content. content is
// hidden from the normal pass; it is only drawn into the stencil.
// Masks apply in the order they were added.
func (n *Node) AddMask(content *Node) *maskpipe.Mask {
	content.visible = false
	m := maskpipe.NewMask(content, content)
	n.masks = append(n.masks, m)
	return m
}

// RemoveMask detaches m from the node. It reports whether m was found.
func (n *Node) RemoveMask(m *maskpipe.Mask) bool {
	for i, cur := range n.masks {
		if cur == m {
			n.masks = append(n.masks[:i], n.masks[i+1:]...)
			return true
		}
	}
	return false
}

// Masks returns the masks applied to the node, outermost first.
func (n *Node) Masks() []*maskpipe.Mask { return n.masks }

// Walk calls fn for n and every descendant in depth-first order.
// Mask content subtrees are not visited.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
