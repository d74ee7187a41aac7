// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/maskpipe"
	"github.com/gogpu/maskpipe/instruction"
	"github.com/gogpu/maskpipe/stencil"
)

const (
	kBlend = instruction.KindSetBlendMode
	kBatch = instruction.KindBatchDraw
	kEB    = instruction.KindMaskEnterBegin
	kEE    = instruction.KindMaskEnterEnd
	kXB    = instruction.KindMaskExitBegin
	kXE    = instruction.KindMaskExitEnd
)

func TestNodeTree(t *testing.T) {
	root := NewContainer("root")
	a := root.AddChild(NewSprite("a"))
	b := root.AddChild(NewSprite("b"))

	if a.Parent() != root || len(root.Children()) != 2 {
		t.Fatal("AddChild did not attach children")
	}
	if a.ID() == b.ID() || a.ID() == root.ID() {
		t.Error("node ids are not unique")
	}
	if !a.Renderable() || root.Renderable() {
		t.Error("Renderable() wrong for sprite or container")
	}

	other := NewContainer("other")
	other.AddChild(a)
	if a.Parent() != other || len(root.Children()) != 1 {
		t.Error("AddChild did not detach child from previous parent")
	}
	if root.RemoveChild(a) {
		t.Error("RemoveChild found a child that was moved away")
	}

	var names []string
	root.Walk(func(n *Node) { names = append(names, n.Name()) })
	if want := []string{"root", "b"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Walk visited %v, want %v", names, want)
	}
}

func TestAddMaskHidesContent(t *testing.T) {
	root := NewContainer("root")
	shape := NewSprite("shape")
	m := root.AddMask(shape)

	if shape.Visible() {
		t.Error("mask content should be hidden from the normal pass")
	}
	if m.Content() != maskpipe.Node(shape) {
		t.Error("mask content is not the shape node")
	}
	if m.Drawable().Label() != "shape" {
		t.Errorf("mask drawable label = %q, want shape", m.Drawable().Label())
	}
	if !root.RemoveMask(m) || len(root.Masks()) != 0 {
		t.Error("RemoveMask did not detach the mask")
	}
	if root.RemoveMask(m) {
		t.Error("RemoveMask succeeded twice")
	}
}

func TestBuildWithoutMasks(t *testing.T) {
	root := NewContainer("root")
	root.AddChild(NewSprite("a"))
	root.AddChild(NewSprite("b"))
	hidden := root.AddChild(NewSprite("hidden"))
	hidden.SetVisible(false)

	b := NewBuilder(nil)
	var set instruction.Set
	if err := b.Build(root, &set); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 batch; kinds %v", set.Len(), set.Kinds())
	}
	bd := set.At(0).(instruction.BatchDraw)
	if want := []string{"a", "b"}; !reflect.DeepEqual(bd.Renderables, want) {
		t.Errorf("batch = %v, want %v", bd.Renderables, want)
	}
}

func TestBuildSingleMask(t *testing.T) {
	root := NewContainer("root")
	shape := NewSprite("shape")
	m := root.AddMask(shape)
	root.AddChild(NewSprite("photo"))

	b := NewBuilder(nil)
	var set instruction.Set
	if err := b.Build(root, &set); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []instruction.Kind{kBlend, kEB, kBatch, kEE, kBlend, kBatch, kBlend, kXB, kXE}
	if got := set.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}
	if bd := set.At(2).(instruction.BatchDraw); !reflect.DeepEqual(bd.Renderables, []string{"shape"}) {
		t.Errorf("mask batch = %v, want [shape]", bd.Renderables)
	}
	if sb := set.At(0).(instruction.SetBlendMode); sb.Target != "shape" || sb.Mode != instruction.BlendNone {
		t.Errorf("first blend = %+v, want none on shape", sb)
	}
	if sb := set.At(4).(instruction.SetBlendMode); sb.Target != "photo" || sb.Mode != instruction.BlendNormal {
		t.Errorf("content blend = %+v, want normal on photo", sb)
	}

	span, err := b.Pipe().Span(m)
	if err != nil {
		t.Fatalf("Span() error = %v", err)
	}
	if span != (maskpipe.SpanRecord{InstructionsStart: 2, InstructionsLength: 1}) {
		t.Errorf("Span() = %+v, want {2 1}", span)
	}
	if shape.IncludeInBuild() {
		t.Error("mask content left force-included")
	}
	if b.Pipe().OpenLayers(root.ID()) != 0 {
		t.Errorf("OpenLayers(root) = %d after build, want 0", b.Pipe().OpenLayers(root.ID()))
	}
}

func TestBuildTwoMasksOnOneNodeReplays(t *testing.T) {
	root := NewContainer("root")
	root.AddMask(NewSprite("A"))
	second := root.AddMask(NewSprite("B"))
	root.AddChild(NewSprite("S"))

	b := NewBuilder(nil)
	var set instruction.Set
	if err := b.Build(root, &set); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []instruction.Kind{
		kBlend, kEB, kBatch, kEE, // mask A
		kEB, kBatch, kEE, // mask B
		kBlend, kBatch, // content
		kBlend, kXB, kBatch, kXE, // pop B replays its span
		kXB, kXE, // pop A
	}
	if got := set.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}

	span, _ := b.Pipe().Span(second)
	original := set.At(span.InstructionsStart)
	if !reflect.DeepEqual(set.At(11), original) {
		t.Errorf("replayed %#v, want %#v", set.At(11), original)
	}
}

func TestBuildNestedMasksExecute(t *testing.T) {
	root := NewContainer("root")
	root.AddMask(NewSprite("outer-shape"))
	inner := root.AddChild(NewContainer("inner"))
	inner.AddMask(NewSprite("inner-shape"))
	inner.AddChild(NewSprite("content"))

	rec := stencil.NewRecorder()
	b := NewBuilder(rec)
	var set instruction.Set
	if err := b.Build(root, &set); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var depths []int
	for _, in := range set.Instructions() {
		if !in.Kind().IsMask() {
			continue
		}
		if err := b.Pipe().Execute(1, in); err != nil {
			t.Fatalf("Execute(%v) error = %v", in.Kind(), err)
		}
		depths = append(depths, b.Pipe().Depth(1))
	}
	if want := []int{1, 1, 2, 2, 1, 1, 0, 0}; !reflect.DeepEqual(depths, want) {
		t.Errorf("depths = %v, want %v", depths, want)
	}
	if m, l := rec.Mode(); m != stencil.ModeDisabled || l != 0 {
		t.Errorf("final mode = %v(%d), want Disabled(0)", m, l)
	}
}

func TestMaskContentWithChildren(t *testing.T) {
	root := NewContainer("root")
	shape := NewContainer("shape")
	shape.AddChild(NewSprite("left"))
	shape.AddChild(NewSprite("right"))
	root.AddMask(shape)

	b := NewBuilder(nil)
	var set instruction.Set
	if err := b.Build(root, &set); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Blend is already none for the mask, so its children batch together.
	want := []instruction.Kind{kBlend, kEB, kBatch, kEE, kXB, kXE}
	if got := set.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}
	if bd := set.At(2).(instruction.BatchDraw); !reflect.DeepEqual(bd.Renderables, []string{"left", "right"}) {
		t.Errorf("mask batch = %v, want [left right]", bd.Renderables)
	}
}

// foreignNode is a maskpipe.Node from outside this package.
type foreignNode struct{}

func (foreignNode) SetIncludeInBuild(bool) {}

func TestCollectForeignNode(t *testing.T) {
	b := NewBuilder(nil)
	var set instruction.Set
	err := b.collector.CollectRenderables(foreignNode{}, &set)
	if !errors.Is(err, ErrForeignNode) {
		t.Errorf("CollectRenderables(foreign) error = %v, want ErrForeignNode", err)
	}
}

func TestBuilderRelease(t *testing.T) {
	root := NewContainer("root")
	m := root.AddMask(NewSprite("shape"))
	child := root.AddChild(NewContainer("child"))
	cm := child.AddMask(NewSprite("child-shape"))

	b := NewBuilder(nil)
	var set instruction.Set
	if err := b.Build(root, &set); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	b.Release(root)
	for _, mask := range []*maskpipe.Mask{m, cm} {
		if _, err := b.Pipe().Span(mask); !errors.Is(err, maskpipe.ErrSpanNotFound) {
			t.Errorf("Span(%d) after Release error = %v, want ErrSpanNotFound", mask.ID(), err)
		}
	}

	b.Destroy()
	if err := b.Build(root, &set); !errors.Is(err, maskpipe.ErrNotInitialized) {
		t.Errorf("Build after Destroy error = %v, want ErrNotInitialized", err)
	}
}
