package render

import "github.com/flexengine/renderer/hal"

// Config describes how to construct a Renderer: the window/surface handles
// hal.DeviceConfig needs, plus the renderer-level options layered above the
// backend (screenshot directory).
type Config struct {
	hal.DeviceConfig

	// ScreenshotDir is where Renderer.Screenshot writes PNG files.
	ScreenshotDir string
}
