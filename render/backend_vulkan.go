//go:build vulkan

package render

import (
	"github.com/flexengine/renderer/hal"
	_ "github.com/flexengine/renderer/hal/vulkan" // registers hal.BackendVulkan
)

// defaultBackendKind is the backend New selects when Config.Backend is the
// zero value, chosen at build time via this file's build tag rather than a
// runtime switch — there is no runtime backend switch.
const defaultBackendKind = hal.BackendVulkan
