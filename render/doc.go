// Package render is the renderer's top-level entry point: it owns no GPU
// state itself, only a hal.Device chosen by build tag and the per-frame
// bookkeeping (queued resizes, sprite and debug-line flushing, screenshot
// completion polling) that sits above the backend interface. Callers construct a Config,
// build a Renderer, and drive it with Update/Draw once per frame.
package render
