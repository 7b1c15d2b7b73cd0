package opengl

import "github.com/flexengine/renderer/hal"

type glBackend struct{}

func (glBackend) Kind() hal.BackendKind { return hal.BackendOpenGL }

func (glBackend) NewDevice(cfg *hal.DeviceConfig) (hal.Device, error) {
	return newDevice(cfg)
}

func init() {
	hal.RegisterBackend(glBackend{})
}
