package debugdraw

import "github.com/flexengine/renderer/core"

// DebugMode is a bitmask mirroring bullet's btIDebugDraw::DebugDrawModes —
// only the subset this renderer understands (wireframe + AABB) since the
// rest (constraint limits, contact points) are physics-engine concepts the
// renderer never renders itself.
type DebugMode int

const (
	ModeNoDebug DebugMode = 0
	ModeWireframe DebugMode = 1 << (iota - 1)
	ModeAABB
)

// Line is one buffered debug line segment.
type Line struct {
	From, To core.Vec3
	Color    core.Vec4
}

// Draw buffers debug lines across a frame's physics tick(s) and hands them
// to the frame graph's forward pass once per Draw call. ClearLines resets
// the buffer's length without shrinking its backing array, since the
// per-frame line count is usually stable and reallocating every frame would
// just create GC pressure for no benefit.
type Draw struct {
	lines []Line
	mode  DebugMode
}

// New returns an empty debug-line buffer.
func New() *Draw {
	return &Draw{}
}

// DrawLine buffers one opaque line segment.
func (d *Draw) DrawLine(from, to core.Vec3, color core.Vec3) {
	d.lines = append(d.lines, Line{From: from, To: to, Color: core.Vec4{X: color.X, Y: color.Y, Z: color.Z, W: 1}})
}

// DrawLineWithAlpha buffers one line segment with an explicit alpha
// channel, for debug overlays that need to fade (selection highlight
// pulses, stale-contact decay).
func (d *Draw) DrawLineWithAlpha(from, to core.Vec3, color core.Vec4) {
	d.lines = append(d.lines, Line{From: from, To: to, Color: color})
}

// SetDebugMode stores the active mode bitmask.
func (d *Draw) SetDebugMode(mode DebugMode) { d.mode = mode }

// DebugMode returns the active mode bitmask.
func (d *Draw) DebugMode() DebugMode { return d.mode }

// Lines returns the buffered lines for this frame. The returned slice
// aliases the internal buffer and must not be retained past the next
// ClearLines call.
func (d *Draw) Lines() []Line { return d.lines }

// ClearLines resets the buffer length to zero without releasing its
// backing array, so next frame's appends reuse the existing capacity.
func (d *Draw) ClearLines() {
	d.lines = d.lines[:0]
}
