// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package instruction

import (
	"errors"
	"fmt"
)

// ErrSpanOutOfRange is returned by Replay when the requested span is not
// part of the recorded stream.
var ErrSpanOutOfRange = errors.New("instruction: span out of range")

// Set is an ordered, append-only list of instructions for one frame.
// The zero value is an empty set ready for use.
//
// A Set is not safe for concurrent use.
type Set struct {
	instructions []Instruction
}

// NewSet creates an empty Set with room for capacity instructions.
func NewSet(capacity int) *Set {
	return &Set{instructions: make([]Instruction, 0, capacity)}
}

// Add appends in to the set.
func (s *Set) Add(in Instruction) {
	s.instructions = append(s.instructions, in)
}

// Len returns the number of recorded instructions. It is also the index
// the next Add will write to.
func (s *Set) Len() int {
	return len(s.instructions)
}

// At returns the instruction at index i.
func (s *Set) At(i int) Instruction {
	return s.instructions[i]
}

// Instructions returns the recorded instructions.
// The returned slice aliases the set and must not be modified.
func (s *Set) Instructions() []Instruction {
	return s.instructions
}

// Kinds returns the kind of every recorded instruction, in order.
func (s *Set) Kinds() []Kind {
	kinds := make([]Kind, len(s.instructions))
	for i, in := range s.instructions {
		kinds[i] = in.Kind()
	}
	return kinds
}

// Replay appends a verbatim copy of the length instructions that begin at
// start. The span must lie entirely within the instructions recorded before
// the call.
func (s *Set) Replay(start, length int) error {
	n := len(s.instructions)
	if start < 0 || length < 0 || start+length > n {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrSpanOutOfRange, start, start+length, n)
	}
	for cursor := start; cursor < start+length; cursor++ {
		s.instructions = append(s.instructions, s.instructions[cursor])
	}
	return nil
}

// Reset empties the set, keeping its storage for the next frame.
func (s *Set) Reset() {
	clear(s.instructions)
	s.instructions = s.instructions[:0]
}
