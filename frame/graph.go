package frame

import (
	"sort"

	"github.com/flexengine/renderer/core"
)

// Bucket groups render objects by the pass that must draw them, matching
// the step ordering: opaque geometry goes through the
// deferred GBuffer pass, translucent/forward-only materials draw after
// deferred shading, and editor-only objects (gizmos, selection outlines)
// draw in their own depth-aware/unaware sub-passes so they never influence
// SSAO or shadow cascades.
type Bucket int

const (
	BucketDeferred Bucket = iota
	BucketForward
	BucketEditorDepthAware
	BucketEditorDepthUnaware
)

// Batch is one (material, shader) group of render objects, sorted so
// consecutive batches share as much bound state as possible — materials
// first (descriptor set / texture bindings), then shader within a
// material change is impossible since a material always resolves to one
// shader, generalizing the common bind-state-minimization idea from
// "redundant GL call" to "redundant batch" here.
type Batch struct {
	MaterialID core.MaterialID
	Bucket     Bucket
	RenderIDs  []core.RenderID
}

// Plan is everything a hal.Device.Draw needs to issue one frame's GPU work,
// computed once from the current core tables.
type Plan struct {
	Batches []Batch

	// ShadowCascades holds the NumShadowCascades view*projection matrices
	// for the current directional light, or a zero value when no shadow-
	// casting sun light is enabled.
	ShadowCascades [core.NumShadowCascades]core.Mat4
	CastShadow     bool

	PointLights []core.PointLight

	// GridFadeAlpha is the supplemented grid/world-axis overlay's current
	// opacity: 1.0 with the camera at the world origin, fading linearly to 0
	// past GridFadeDistance so the infinite ground grid doesn't alias at
	// the horizon.
	GridFadeAlpha float32
}

// Graph owns the batching cache; Dirty render-object tables trigger a
// rebuild, otherwise the previous Plan's batch grouping is reused (batches
// are rebuilt only when the render object set
// changes shape").
type Graph struct {
	objects   *core.RenderObjectTable
	materials *core.MaterialTable
	shaders   *core.ShaderTable
	lights    *core.PointLightTable
	sun       *core.DirectionalLight

	cached    []Batch
	haveCache bool

	camera      core.Camera
	haveCamera  bool
	cascadeCount int
}

// NewGraph binds a Graph to the live core tables it batches from. The
// caller (hal backend or render facade) owns the tables' lifetime.
func NewGraph(objects *core.RenderObjectTable, materials *core.MaterialTable, shaders *core.ShaderTable, lights *core.PointLightTable, sun *core.DirectionalLight) *Graph {
	return &Graph{objects: objects, materials: materials, shaders: shaders, lights: lights, sun: sun, cascadeCount: core.NumShadowCascades}
}

// SetCamera records the active viewpoint, used to fit shadow-cascade boxes
// and compute the grid-fade camera distance. cascadeCount clamps how many
// of core.NumShadowCascades slices Plan actually computes (hal.DeviceConfig's
// ShadowCascades field); 0 or negative leaves the previous count unchanged.
func (g *Graph) SetCamera(cam core.Camera, cascadeCount int) {
	g.camera = cam
	g.haveCamera = true
	if cascadeCount > 0 {
		g.cascadeCount = cascadeCount
	}
}

// GridFadeDistance is the supplemented grid-fade feature's falloff
// distance in world units.
const GridFadeDistance = 200.0

// Plan computes (or reuses) the current frame's batch list and shadow data.
// camDistance is the camera's distance from the world origin, used only to
// drive the grid-fade overlay's alpha.
func (g *Graph) Plan(camDistance float32) Plan {
	if g.objects.Dirty || !g.haveCache {
		g.cached = g.rebuild()
		g.objects.Dirty = false
		g.haveCache = true
	}

	p := Plan{Batches: g.cached}
	if g.lights != nil {
		p.PointLights = g.lights.Enabled()
	}
	if g.sun != nil && g.sun.Enabled {
		p.CastShadow = g.sun.CastShadow
		if g.sun.CastShadow && g.haveCamera {
			g.sun.CascadeViewProj = ComputeShadowCascades(g.camera, g.sun.Direction, g.cascadeCount)
		}
		p.ShadowCascades = g.sun.CascadeViewProj
	}
	p.GridFadeAlpha = gridFadeAlpha(camDistance)
	return p
}

func gridFadeAlpha(dist float32) float32 {
	if dist >= GridFadeDistance {
		return 0
	}
	if dist <= 0 {
		return 1
	}
	return 1 - dist/GridFadeDistance
}

func (g *Graph) rebuild() []Batch {
	type key struct {
		mat    core.MaterialID
		bucket Bucket
	}
	grouped := make(map[key][]core.RenderID)

	for id, obj := range g.objects.All() {
		if !obj.Visible {
			continue
		}
		b := g.bucketFor(g.materials.Get(obj.MaterialID), obj)
		k := key{mat: obj.MaterialID, bucket: b}
		grouped[k] = append(grouped[k], id)
	}

	out := make([]Batch, 0, len(grouped))
	for k, ids := range grouped {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		out = append(out, Batch{MaterialID: k.mat, Bucket: k.bucket, RenderIDs: ids})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bucket != out[j].Bucket {
			return out[i].Bucket < out[j].Bucket
		}
		return out[i].MaterialID < out[j].MaterialID
	})
	return out
}

func (g *Graph) bucketFor(mat *core.Material, obj *core.RenderObject) Bucket {
	switch {
	case obj.EditorObject && obj.DepthTestFunc != core.DepthTestALWAYS:
		return BucketEditorDepthAware
	case obj.EditorObject:
		return BucketEditorDepthUnaware
	case g.matIsForward(mat):
		return BucketForward
	default:
		return BucketDeferred
	}
}

// matIsForward reports whether a material's shader is translucent or
// otherwise opted out of the deferred GBuffer pass. A missing material or
// shader (resolution failed) falls back to forward so the error material
// is always visible rather than silently dropped from a GBuffer pass it
// can't correctly contribute to.
func (g *Graph) matIsForward(mat *core.Material) bool {
	if mat == nil || mat.Name == core.ErrorMaterialName {
		return true
	}
	if g.shaders == nil {
		return false
	}
	shader := g.shaders.Get(mat.ShaderID)
	return shader == nil || shader.Translucent || !shader.Deferred
}
