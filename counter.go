// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import "fmt"

// depthCounter is a non-negative integer per key. The pipe keeps two of
// them: open mask layers per container at build time, and stencil depth
// per render target at execution time.
type depthCounter[K comparable] struct {
	counts map[K]int
}

func newDepthCounter[K comparable]() depthCounter[K] {
	return depthCounter[K]{counts: make(map[K]int)}
}

func (c depthCounter[K]) get(key K) int {
	return c.counts[key]
}

func (c depthCounter[K]) set(key K, n int) {
	c.counts[key] = n
}

func (c depthCounter[K]) inc(key K) int {
	c.counts[key]++
	return c.counts[key]
}

// dec decrements key, failing instead of going below zero.
func (c depthCounter[K]) dec(key K) (int, error) {
	n := c.counts[key]
	if n == 0 {
		return 0, fmt.Errorf("%w: depth of %v would go negative", ErrProtocolViolation, key)
	}
	n--
	c.counts[key] = n
	return n, nil
}

func (c depthCounter[K]) remove(key K) {
	delete(c.counts, key)
}

func (c depthCounter[K]) clear() {
	clear(c.counts)
}

func (c depthCounter[K]) len() int {
	return len(c.counts)
}
