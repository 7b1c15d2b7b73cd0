package hal

import "errors"

// Sentinel errors for the renderer's unrecoverable states.
// Everything else (missing texture, shader compile failure, invalid ID,
// state-machine misuse) is logged and handled with a placeholder/no-op —
// it never reaches the caller as an error value.
var (
	// ErrBackendNotFound indicates the requested backend is not registered
	// (the build tag for this binary doesn't select it).
	ErrBackendNotFound = errors.New("hal: backend not found")

	// ErrDeviceOutOfMemory indicates the GPU has exhausted its memory on an
	// image or buffer allocation. Unrecoverable — the application should
	// reduce resource usage or gracefully terminate.
	ErrDeviceOutOfMemory = errors.New("hal: device out of memory")

	// ErrDeviceLost indicates the GPU device has been lost.
	// This can happen due to:
	//   - GPU driver crash or reset
	//   - GPU hardware disconnection
	//   - Driver timeout (TDR on Windows)
	// Transient device/surface loss triggers a swapchain rebuild rather
	// than surfacing to callers; this error is only returned when the
	// rebuild itself cannot proceed.
	ErrDeviceLost = errors.New("hal: device lost")

	// ErrSurfaceLost indicates the rendering surface has been destroyed.
	// This typically happens when the window is closed.
	ErrSurfaceLost = errors.New("hal: surface lost")

	// ErrTimeout indicates a fence Wait timed out.
	ErrTimeout = errors.New("hal: timeout")

	// ErrZeroArea indicates OnWindowSizeChanged was called with a
	// zero-area window. This commonly happens when:
	//   - Window is minimized
	//   - Window is not yet fully visible (timing issue on some platforms)
	// The renderer skips framebuffer recreation until a later non-zero resize.
	ErrZeroArea = errors.New("hal: window width and height must be non-zero")

	// ErrInvalidState indicates state-machine misuse (starting a render
	// pass twice without ending it, an unsupported image layout
	// transition). Logged and the offending operation is skipped — never
	// propagated past the frame graph.
	ErrInvalidState = errors.New("hal: invalid renderer state")
)
