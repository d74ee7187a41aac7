// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
)

// ErrForeignNode is returned when the collector is handed a mask content
// node that does not belong to this package.
var ErrForeignNode = errors.New("scene: node is not a *scene.Node")

// Collector walks the scene tree and emits its renderables.
// It implements maskpipe.RenderableCollector.
//
// Hidden nodes are skipped unless they are force-included, which is how
// the mask pipe draws mask content. Renderables inside mask content are
// drawn with BlendNone.
type Collector struct {
	pipe   *maskpipe.StencilMaskPipe
	batch  *Batcher
	blends *BlendTracker

	maskDepth int
}

// CollectRenderables emits node and its visible descendants into set.
func (c *Collector) CollectRenderables(node maskpipe.Node, set *instruction.Set) error {
	n, ok := node.(*Node)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, node)
	}
	if n.include {
		c.maskDepth++
		defer func() { c.maskDepth-- }()
	}
	return c.collect(n, set)
}

func (c *Collector) collect(n *Node, set *instruction.Set) error {
	if !n.visible && !n.include {
		return nil
	}

	for _, m := range n.masks {
		if err := c.pipe.Push(m, n.id, set); err != nil {
			return fmt.Errorf("scene: push mask on %q: %w", n.name, err)
		}
	}

	if n.renderable {
		mode := n.blend
		if c.maskDepth > 0 {
			mode = instruction.BlendNone
		}
		c.blends.SetBlendMode(n, mode, set)
		c.batch.Add(n.name)
	}

	for _, child := range n.children {
		if err := c.collect(child, set); err != nil {
			return err
		}
	}

	for i := len(n.masks) - 1; i >= 0; i-- {
		if err := c.pipe.Pop(n.masks[i], n.id, set); err != nil {
			return fmt.Errorf("scene: pop mask on %q: %w", n.name, err)
		}
	}
	return nil
}
