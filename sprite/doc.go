// Package sprite queues screen-space and world-space sprite draws for the
// current frame. Screen-space sprites are positioned by anchor (the corner
// or center of the viewport a sprite's own position is relative to);
// world-space sprites billboard toward the camera when flagged.
package sprite
