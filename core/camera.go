package core

// Camera describes the single viewpoint the frame graph derives every
// view/projection-dependent quantity from: shadow-cascade fitting, the
// deferred-shading view-projection uniform, and the grid-fade distance.
// Only one camera is ever active, matching the renderer's single-viewport
// scope.
type Camera struct {
	Position Vec3
	Forward  Vec3
	Up       Vec3

	FovYRadians float32
	Aspect      float32
	Near, Far   float32
}
