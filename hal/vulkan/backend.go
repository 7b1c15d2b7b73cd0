// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import "github.com/flexengine/renderer/hal"

type vkBackend struct{}

func (vkBackend) Kind() hal.BackendKind { return hal.BackendVulkan }

func (vkBackend) NewDevice(cfg *hal.DeviceConfig) (hal.Device, error) {
	return newDevice(cfg)
}

func init() {
	hal.RegisterBackend(vkBackend{})
}
