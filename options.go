// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package maskpipe

// PipeOption configures a StencilMaskPipe during creation.
//
// Example:
//
//	pipe := maskpipe.NewStencilMaskPipe(device, collector,
//	    maskpipe.WithBatchBreaker(batcher),
//	    maskpipe.WithBlendModeSetter(blends),
//	)
type PipeOption func(*pipeOptions)

// pipeOptions holds optional configuration for pipe creation.
type pipeOptions struct {
	batch BatchBreaker
	blend BlendModeSetter
}

// defaultPipeOptions returns options whose collaborators do nothing.
func defaultPipeOptions() pipeOptions {
	return pipeOptions{
		batch: nopBatchBreaker{},
		blend: nopBlendModeSetter{},
	}
}

// WithBatchBreaker sets the collaborator that flushes batched draws at
// every mask boundary. Passing nil keeps the default no-op.
func WithBatchBreaker(b BatchBreaker) PipeOption {
	return func(o *pipeOptions) {
		if b != nil {
			o.batch = b
		}
	}
}

// WithBlendModeSetter sets the collaborator that resets the mask drawable's
// blend mode at every mask boundary. Passing nil keeps the default no-op.
func WithBlendModeSetter(s BlendModeSetter) PipeOption {
	return func(o *pipeOptions) {
		if s != nil {
			o.blend = s
		}
	}
}
