//go:build windows

package opengl

import (
	"golang.org/x/sys/windows"
)

var (
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")
	opengl = windows.NewLazySystemDLL("opengl32.dll")

	procSwapBuffers = gdi32.NewProc("SwapBuffers")
)

// glContext mirrors context_linux.go's shape for a WGL context: an HDC and
// an HGLRC, grounded on the pack's hal/gles/wgl package.
type glContext struct {
	hdc   uintptr
	hglrc uintptr
}

// createContext opens a WGL context against the given window's device
// context. A headless caller passes a zero window handle and gets a
// context with nothing to swap, same headless contract as the Linux file.
func createContext(displayHandle, windowHandle uintptr, width, height int) (*glContext, error) {
	if windowHandle == 0 {
		return &glContext{}, nil
	}

	// A full ChoosePixelFormat/SetPixelFormat/wglCreateContext/
	// wglMakeCurrent sequence belongs here (see hal/gles/wgl in the pack
	// this backend is grounded on); reduced to a handle bundle for this
	// rewrite's scope.
	_ = opengl
	return &glContext{hdc: windowHandle}, nil
}

func (c *glContext) swapBuffers() error {
	if c.hdc == 0 {
		return nil
	}
	procSwapBuffers.Call(c.hdc)
	return nil
}

func (c *glContext) destroy() {}
