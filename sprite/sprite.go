package sprite

import (
	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/hal"
)

// Anchor identifies which corner or center of a screen-space sprite its
// queued position is relative to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorCenter
	AnchorBottomLeft
	AnchorBottomRight
)

// Draw is one queued sprite: screen-space (pos is a pixel offset from the
// anchor, billboard is meaningless) or world-space (pos is a world
// coordinate, billboard rotates the quad to face the camera).
type Draw struct {
	TextureID   core.TextureID
	Pos         core.Vec3
	Size        [2]float32
	Color       core.Vec4
	ScreenSpace bool
	Anchor      Anchor
	Billboard   bool
}

// Queue accumulates one frame's sprite draws before handing them to a
// hal.Device via Flush.
type Queue struct {
	viewportWidth, viewportHeight int
	draws                         []Draw
}

// NewQueue binds a Queue to the current viewport size, used to resolve
// screen-space anchors.
func NewQueue(viewportWidth, viewportHeight int) *Queue {
	return &Queue{viewportWidth: viewportWidth, viewportHeight: viewportHeight}
}

// Resize updates the viewport size anchors are resolved against, called
// from the same path as hal.Device.OnWindowSizeChanged.
func (q *Queue) Resize(width, height int) {
	q.viewportWidth, q.viewportHeight = width, height
}

// Enqueue buffers one sprite draw for the current frame.
func (q *Queue) Enqueue(d Draw) {
	q.draws = append(q.draws, d)
}

// ScreenPosition resolves a screen-space sprite's anchor + offset + size
// into the pixel coordinate of its center, matching the renderer's
// documented anchor scenario: TOP_LEFT at (0,0) with size 128 centers at
// (64,64); CENTER at (0,0) centers at the viewport's own center;
// BOTTOM_RIGHT at (0,0) centers at (width-64, height-64).
func (q *Queue) ScreenPosition(d Draw) (x, y float32) {
	halfW, halfH := d.Size[0]/2, d.Size[1]/2
	switch d.Anchor {
	case AnchorTopLeft:
		return d.Pos.X + halfW, d.Pos.Y + halfH
	case AnchorTopRight:
		return float32(q.viewportWidth) - d.Pos.X - halfW, d.Pos.Y + halfH
	case AnchorCenter:
		return float32(q.viewportWidth)/2 + d.Pos.X, float32(q.viewportHeight)/2 + d.Pos.Y
	case AnchorBottomLeft:
		return d.Pos.X + halfW, float32(q.viewportHeight) - d.Pos.Y - halfH
	case AnchorBottomRight:
		return float32(q.viewportWidth) - d.Pos.X - halfW, float32(q.viewportHeight) - d.Pos.Y - halfH
	default:
		return d.Pos.X, d.Pos.Y
	}
}

// Flush hands every queued draw to dev via EnqueueSprite and clears the
// queue, ready for the next frame.
func (q *Queue) Flush(dev hal.Device) {
	for _, d := range q.draws {
		dev.EnqueueSprite(hal.SpriteDraw{
			TextureID:   d.TextureID,
			Pos:         d.Pos,
			Size:        d.Size,
			Color:       d.Color,
			ScreenSpace: d.ScreenSpace,
			Anchor:      int(d.Anchor),
			Billboard:   d.Billboard,
		})
	}
	q.draws = q.draws[:0]
}
