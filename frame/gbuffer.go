package frame

import "github.com/flexengine/renderer/core"

// GBuffer holds the CPU-side deferred-geometry targets this rewrite fills by
// direct software rasterization in place of issuing GPU draw calls against
// core.NewGBuffer's attachment set: normal+roughness, albedo+metallic, a
// world-space position buffer (stood in for depth-buffer unprojection, which
// would otherwise need a view-projection matrix inverse), and depth itself.
type GBuffer struct {
	Width, Height int

	NormalRoughness []core.Vec4
	AlbedoMetallic  []core.Vec4
	WorldPos        []core.Vec3
	Depth           []float32
}

// NewGBuffer allocates a GBuffer with depth cleared to 1 (far plane).
func NewGBuffer(width, height int) *GBuffer {
	n := width * height
	gb := &GBuffer{
		Width:           width,
		Height:          height,
		NormalRoughness: make([]core.Vec4, n),
		AlbedoMetallic:  make([]core.Vec4, n),
		WorldPos:        make([]core.Vec3, n),
		Depth:           make([]float32, n),
	}
	for i := range gb.Depth {
		gb.Depth[i] = 1
	}
	return gb
}

func (gb *GBuffer) index(x, y int) int { return y*gb.Width + x }
