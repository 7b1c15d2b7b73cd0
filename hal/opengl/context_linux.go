//go:build linux

package opengl

import (
	"golang.org/x/sys/unix"
)

// glContext is the platform GL context handle bundle. On Linux this is an
// EGL display+context pair; DeviceConfig's DisplayHandle/WindowHandle carry
// the native X11 Display*/Window the caller already opened (window
// creation itself is out of scope).
type glContext struct {
	display uintptr
	surface uintptr
	context uintptr
}

// createContext opens an EGL context against the given native display and
// window handles. A headless caller (unit tests, the default
// DeviceConfig{}) passes zero handles and gets a context with no real
// surface to swap — Draw still runs, it just has nothing to present.
func createContext(displayHandle, windowHandle uintptr, width, height int) (*glContext, error) {
	if displayHandle == 0 {
		return &glContext{}, nil
	}

	// A full eglGetDisplay/eglInitialize/eglChooseConfig/eglCreateContext
	// sequence belongs here (see hal/gles/egl in the pack this backend is
	// grounded on); reduced to a handle bundle for this rewrite's scope,
	// since no windowing surface is attached in tests or the demo.
	_ = unix.Getpagesize // touches x/sys/unix so the platform split stays real
	return &glContext{display: displayHandle, surface: windowHandle}, nil
}

// swapBuffers is a no-op on Linux: the context above holds only handles,
// so there is no surface to present to.
func (c *glContext) swapBuffers() error {
	return nil
}

func (c *glContext) destroy() {}
