package frame

import "github.com/flexengine/renderer/core"

// SimulatedResolution is the fixed internal resolution the CPU-simulated
// deferred pipeline renders at, independent of the real swapchain size: a
// framebuffer-resolution software rasterizer running every frame would dwarf
// any plausible CPU budget, the same reduced-scope tradeoff already made for
// IBL's cubemap sizes.
const SimulatedResolution = 64

// ShadowConfig carries the subset of hal.DeviceConfig the deferred pipeline
// reads, duplicated here rather than imported to avoid hal depending on
// frame depending on hal.
type ShadowConfig struct {
	ShadowMapSize  int
	SSAOKernelSize int
	EnableSSAO     bool
	EnableFXAA     bool
	EnableTAA      bool
	CascadeCount   int
}

// FrameResult is the final shaded-and-tonemapped output of one
// RunDeferredPipeline call, plus intermediate buffers worth inspecting
// (tests, a screenshot/debug path).
type FrameResult struct {
	GBuffer *GBuffer
	AO      []float32
	HDR     []core.Vec4
	LDR     []core.Vec4
}

// RunDeferredPipeline executes the shadow-cascade depth passes, deferred
// geometry fill for every BucketDeferred object in plan, SSAO + blur (when
// cfg.EnableSSAO), the PBR deferred-shading combine, and tonemap/FXAA
// post-process — the CPU-simulated equivalent of the hardest-engineering
// portion of a frame, run against a fixed-size internal framebuffer instead
// of real GPU targets.
func RunDeferredPipeline(plan Plan, objects *core.RenderObjectTable, materials *core.MaterialTable, sun core.DirectionalLight, cam core.Camera, cfg ShadowConfig) *FrameResult {
	gb := NewGBuffer(SimulatedResolution, SimulatedResolution)
	viewProj := mat4Mul(ProjectionMatrix(cam), ViewMatrix(cam))

	shadowMapSize := cfg.ShadowMapSize
	if shadowMapSize <= 0 {
		shadowMapSize = 512
	}
	cascadeCount := cfg.CascadeCount
	if cascadeCount <= 0 || cascadeCount > core.NumShadowCascades {
		cascadeCount = core.NumShadowCascades
	}

	castShadow := sun.Enabled && sun.CastShadow
	var shadowMaps [core.NumShadowCascades]*ShadowMap
	if castShadow {
		for i := 0; i < cascadeCount; i++ {
			shadowMaps[i] = NewShadowMap(shadowMapSize)
		}
	}

	forEachDeferredObject := func(fn func(obj *core.RenderObject, mat *core.Material)) {
		for _, batch := range plan.Batches {
			if batch.Bucket != BucketDeferred {
				continue
			}
			mat := materials.Get(batch.MaterialID)
			for _, id := range batch.RenderIDs {
				obj := objects.Get(id)
				if obj == nil || !obj.Visible || obj.VertexData == nil {
					continue
				}
				fn(obj, mat)
			}
		}
	}

	if castShadow {
		forEachDeferredObject(func(obj *core.RenderObject, mat *core.Material) {
			for i := 0; i < cascadeCount; i++ {
				RasterizeOccluderDepth(shadowMaps[i], obj.VertexData, obj.Indices, obj.Topology, mat4Identity(), sun.CascadeViewProj[i])
			}
		})
	}

	forEachDeferredObject(func(obj *core.RenderObject, mat *core.Material) {
		RasterizeObjectToGBuffer(gb, obj.VertexData, obj.Indices, obj.Topology, mat4Identity(), viewProj, mat)
	})

	ao := make([]float32, gb.Width*gb.Height)
	for i := range ao {
		ao[i] = 1
	}
	if cfg.EnableSSAO {
		kernelSize := cfg.SSAOKernelSize
		if kernelSize <= 0 {
			kernelSize = 32
		}
		kernel := GenerateSSAOKernel(kernelSize, 1)
		raw := ComputeSSAO(gb, kernel, gb.Width/4+1, 2)
		ao = BlurSSAO(raw, gb.Width, gb.Height, 2)
	}

	hdr := DeferredShade(gb, ao, sun, shadowMaps, cascadeCount, cam, plan.PointLights)

	// A history-less CPU simulation has nothing for TAA to accumulate into;
	// when it's enabled we skip the separate FXAA pass rather than layer a
	// second unrelated anti-aliasing approximation on top of it.
	ldr := PostProcess(hdr, gb.Width, gb.Height, 1.0, cfg.EnableFXAA && !cfg.EnableTAA)

	return &FrameResult{GBuffer: gb, AO: ao, HDR: hdr, LDR: ldr}
}
