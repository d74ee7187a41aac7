// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

import "errors"

var (
	// ErrProtocolViolation reports caller misuse: a pop without a matching
	// push, or a nesting depth that would go negative. The current frame
	// should be abandoned.
	ErrProtocolViolation = errors.New("maskpipe: protocol violation")

	// ErrSpanNotFound is returned by SpanCache.Get for a mask that was never
	// pushed (or was released).
	ErrSpanNotFound = errors.New("maskpipe: span not found")

	// ErrNotInitialized is returned by every StencilMaskPipe method after
	// Destroy.
	ErrNotInitialized = errors.New("maskpipe: pipe not initialized")

	// ErrUnknownInstruction is returned by Execute for instructions that
	// are not stencil mask instructions.
	ErrUnknownInstruction = errors.New("maskpipe: unknown instruction")
)
