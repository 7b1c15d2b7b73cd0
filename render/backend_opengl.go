//go:build !vulkan

package render

import (
	"github.com/flexengine/renderer/hal"
	_ "github.com/flexengine/renderer/hal/opengl" // registers hal.BackendOpenGL
)

// defaultBackendKind is the backend New selects when Config.Backend is the
// zero value. The opengl tag-less build is the default so a plain `go
// build` always links a working backend without requiring -tags vulkan.
const defaultBackendKind = hal.BackendOpenGL
