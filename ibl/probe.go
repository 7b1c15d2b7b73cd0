package ibl

import "github.com/flexengine/renderer/core"

// SceneCapturer renders the scene into one face of a cubemap from the given
// view position, substituting the face's view matrix the way a capture rig
// describes; the hal backend supplies this by replaying its own frame graph
// with the probe's capture projection.
type SceneCapturer func(renderID core.RenderID, pos core.Vec3, face core.CubeFace) *HDRImage

// ProbeCapture runs reflection-probe and irradiance-sampler generation for
// render objects whose material requests them at PostInitializeRenderObject
// time or on later recapture.
type ProbeCapture struct {
	pre     *Precomputer
	capture SceneCapturer
}

// NewProbeCapture binds a Precomputer and the backend's six-face scene
// capture callback.
func NewProbeCapture(pre *Precomputer, capture SceneCapturer) *ProbeCapture {
	return &ProbeCapture{pre: pre, capture: capture}
}

// CaptureSceneToCubemap renders all six faces of the scene as seen from pos,
// one draw per face substituting that face's view matrix, matching the
// shared capture-views/capture-projection convention common to IBL capture
// rigs.
func (p *ProbeCapture) CaptureSceneToCubemap(renderID core.RenderID, pos core.Vec3, size int) *Cubemap {
	cm := NewCubemap(size)
	for _, face := range core.CubeFaceOrder {
		cm.Faces[face] = p.capture(renderID, pos, face)
	}
	return cm
}

// GenerateReflectionProbeMaps implements the generateReflectionProbeMaps
// path of PostInitializeRenderObject: captures the scene once, then derives
// the irradiance and prefilter maps from the capture.
func (p *ProbeCapture) GenerateReflectionProbeMaps(renderID core.RenderID, pos core.Vec3) *Result {
	cm := p.CaptureSceneToCubemap(renderID, pos, p.pre.CubemapSize)
	return p.pre.bakeFromCubemap(cm)
}

// GenerateIrradianceSamplerMaps implements the enableIrradianceSampler path
// of PostInitializeRenderObject: only the irradiance cubemap is needed, not
// the full prefiltered mip chain.
func (p *ProbeCapture) GenerateIrradianceSamplerMaps(renderID core.RenderID, pos core.Vec3) *Cubemap {
	cm := p.CaptureSceneToCubemap(renderID, pos, p.pre.CubemapSize)
	return ConvolveIrradiance(cm, p.pre.IrradianceSize)
}

// RecaptureReflectionProbe recaptures the scene
// cubemap for renderID, then regenerate its irradiance and prefilter maps.
// This method only does the capture-and-bake work; it is not called by
// render.Renderer or the hal backends, so the caller decides when to
// recapture.
func (p *ProbeCapture) RecaptureReflectionProbe(renderID core.RenderID, pos core.Vec3) *Result {
	return p.GenerateReflectionProbeMaps(renderID, pos)
}
