// Package imageio handles the renderer's two disk-facing image paths:
// writing a screenshot asynchronously off the main thread, and loading the
// six faces of a cubemap texture in the canonical RT/LF/UP/DN/BK/FT order
// with channel-count normalization applied on the way in. Async writes run
// on an internal/thread.Thread so a
// screenshot request never stalls the frame that issued it.
package imageio
