// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import "fmt"

// SpanRecord locates the instructions a mask's content produced during the
// last Push: InstructionsLength instructions beginning at
// InstructionsStart. The MaskEnterEnd marker is not part of the span.
type SpanRecord struct {
	InstructionsStart  int
	InstructionsLength int
}

// SpanCache holds one SpanRecord per mask. Records are created on first
// use and updated in place by every Push.
type SpanCache struct {
	records map[MaskID]*SpanRecord
}

// NewSpanCache creates an empty cache.
func NewSpanCache() *SpanCache {
	return &SpanCache{records: make(map[MaskID]*SpanRecord)}
}

// Ensure returns the record for id, creating a zero record if none exists.
func (c *SpanCache) Ensure(id MaskID) *SpanRecord {
	rec, ok := c.records[id]
	if !ok {
		rec = &SpanRecord{}
		c.records[id] = rec
	}
	return rec
}

// Get returns the record for id. It fails with ErrSpanNotFound if the mask
// was never pushed.
func (c *SpanCache) Get(id MaskID) (*SpanRecord, error) {
	rec, ok := c.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: mask %d", ErrSpanNotFound, id)
	}
	return rec, nil
}

// Remove drops the record for id.
func (c *SpanCache) Remove(id MaskID) {
	delete(c.records, id)
}

// Len returns the number of cached records.
func (c *SpanCache) Len() int {
	return len(c.records)
}

// Clear drops every record.
func (c *SpanCache) Clear() {
	clear(c.records)
}
