// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/maskpipe/stencil"
)

// DeviceHandle provides GPU device access from the host application.
// The mask pipelines are created on the host's device; this package never
// opens one of its own.
type DeviceHandle = gpucontext.DeviceProvider

// ErrNoHalDevice is returned when a DeviceHandle does not expose a
// hal.Device.
var ErrNoHalDevice = errors.New("render: device handle does not expose a hal.Device")

// halProvider is implemented by hosts that share their HAL objects.
type halProvider interface {
	HalDevice() any
}

// HalDevice returns the hal.Device behind h.
func HalDevice(h DeviceHandle) (hal.Device, error) {
	hp, ok := h.(halProvider)
	if !ok {
		return nil, ErrNoHalDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHalDevice
	}
	return device, nil
}

// NewStencilPipelines creates the mask pipeline cache on the host's device
// for its surface format.
func NewStencilPipelines(h DeviceHandle) (*stencil.PipelineCache, error) {
	if h == nil {
		return nil, ErrNoHalDevice
	}
	device, err := HalDevice(h)
	if err != nil {
		return nil, err
	}
	return stencil.NewPipelineCache(device, h.SurfaceFormat()), nil
}
