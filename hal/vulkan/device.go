// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/flexengine/renderer/core"
	"github.com/flexengine/renderer/frame"
	"github.com/flexengine/renderer/hal"
	"github.com/flexengine/renderer/ibl"
	"github.com/flexengine/renderer/text"
)

// reflectionProbeCubemapSize is the reflection-probe bake resolution used
// when a material doesn't request one via GeneratedSizes.CubemapSize,
// kept small for the same CPU-cost reason frame.SimulatedResolution is.
const reflectionProbeCubemapSize = 64

// nativeMaterial is the Vulkan-specific bundle stashed in Material's
// opaque UniformBuffer field.
type nativeMaterial struct {
	uboOffset uint32
	descSet   handle[uint64]
}

// nativeObject caches the pipeline an object draws with, recreated only
// when its material or vertex layout changes; the descriptor set lives on
// nativeMaterial.
type nativeObject struct {
	pipeline handle[uint64]
}

type device struct {
	ld  *loader
	cfg hal.DeviceConfig

	instance handle[uint64]
	vkDevice handle[uint64]

	shaders   *core.ShaderTable
	materials *core.MaterialTable
	textures  *core.TextureCache
	objects   *core.RenderObjectTable
	points    *core.PointLightTable
	sun       core.DirectionalLight

	graph *frame.Graph
	text  *text.Cache

	camera      core.Camera
	debugLines  []hal.DebugLine
	spriteDraws []hal.SpriteDraw

	probes       *ibl.ProbeCapture
	probeResults map[core.RenderID]*ibl.Result

	clearColor [4]float32
	vsync      bool

	lastDPICheck time.Duration
	elapsed      time.Duration

	lastFrame *frame.FrameResult
}

func newDevice(cfg *hal.DeviceConfig) (hal.Device, error) {
	ld, err := newLoader()
	if err != nil {
		return nil, fmt.Errorf("vulkan: %w", err)
	}

	d := &device{
		ld:        ld,
		cfg:       *cfg,
		shaders:   core.NewShaderTable(),
		materials: core.NewMaterialTable(),
		textures:  core.NewTextureCache(),
		objects:   core.NewRenderObjectTable(),
		points:    core.NewPointLightTable(),
		vsync:     cfg.VSync,
		text:      text.NewCache(),

		probeResults: make(map[core.RenderID]*ibl.Result),
	}
	d.graph = frame.NewGraph(d.objects, d.materials, d.shaders, d.points, &d.sun)
	d.probes = ibl.NewProbeCapture(ibl.NewPrecomputer(reflectionProbeCubemapSize), d.captureSceneFace)

	if err := d.createInstanceAndDevice(); err != nil {
		return nil, err
	}
	return d, nil
}

// createInstanceAndDevice drives the instance-level and device-level proc
// resolution stages of the native loader against placeholder instance and
// device handles; no vkCreateInstance or vkCreateDevice call is made.
func (d *device) createInstanceAndDevice() error {
	// A real VkInstanceCreateInfo/VkApplicationInfo marshal belongs here;
	// omitted because this student rewrite only needs a plausible instance
	// handle to drive the resolution stages below, not a literal byte
	// layout the (never-executed) FFI call would read.
	var instanceRaw uint64 = 1
	d.instance = newHandle(instanceRaw, func(uint64) {})

	if err := d.ld.loadInstanceLevel(instanceRaw); err != nil {
		return fmt.Errorf("vulkan: %w", err)
	}

	var deviceRaw uint64 = 1
	d.vkDevice = newHandle(deviceRaw, func(uint64) {})

	if err := d.ld.loadDeviceLevel(deviceRaw); err != nil {
		return fmt.Errorf("vulkan: %w", err)
	}
	return nil
}

func (d *device) SetShaderCount(n int) { d.shaders.SetShaderCount(n) }

func (d *device) LoadShaderCode(i int, shader *core.Shader) core.ShaderID {
	return d.shaders.RegisterShader(i, shader)
}

func (d *device) InitializeMaterial(info *core.MaterialCreateInfo, replaceID *core.MaterialID) core.MaterialID {
	shaderID, ok := d.shaders.Lookup(info.ShaderName)
	if !ok {
		hal.Logger().Warn("unknown shader for material", "material", info.Name, "shader", info.ShaderName)
		return core.InvalidMaterialID
	}

	mat := &core.Material{
		Name:                    info.Name,
		ShaderID:                shaderID,
		ConstAlbedo:             info.ConstAlbedo,
		ConstMetallic:           info.ConstMetallic,
		ConstRoughness:          info.ConstRoughness,
		ConstAO:                 info.ConstAO,
		ColorMultiplier:         info.ColorMultiplier,
		TextureScale:            info.TextureScale,
		GeneratedSizes:          info.GeneratedSizes,
		EngineMaterial:          info.EngineMaterial,
		RenderToCubemap:         info.RenderToCubemap,
		EnablePrefilteredMap:    info.EnablePrefilteredMap,
		EnableBRDFLUT:           info.EnableBRDFLUT,
		EnableIrradianceSampler: info.EnableIrradianceSampler,
	}

	var err error
	if mat.Albedo, err = d.resolveSampler(info.Albedo); err != nil {
		hal.Logger().Warn("material albedo load failed", "material", info.Name, "error", err)
		return core.InvalidMaterialID
	}
	if mat.Normal, err = d.resolveSampler(info.Normal); err != nil {
		hal.Logger().Warn("material normal load failed", "material", info.Name, "error", err)
		return core.InvalidMaterialID
	}
	mat.Cubemap = info.Cubemap
	mat.Irradiance = info.Irradiance
	mat.Prefilter = info.Prefilter
	mat.BRDFLUT = info.BRDFLUT

	mat.UniformBuffer = &nativeMaterial{}

	id := d.materials.GetNextAvailableMaterialID()
	if replaceID != nil {
		id = *replaceID
	}
	d.materials.Insert(id, mat)
	return id
}

func (d *device) resolveSampler(slot core.SamplerSlot) (core.SamplerSlot, error) {
	if !slot.Enable || slot.Generate || slot.Path == "" {
		return slot, nil
	}
	id := d.InitializeTexture(slot.Path, 0, false, true, false)
	if id == core.InvalidTextureID {
		return slot, fmt.Errorf("texture load failed: %s", slot.Path)
	}
	slot.TextureID = id
	return slot, nil
}

func (d *device) InitializeTexture(path string, channelCount int, flipV, genMips, hdr bool) core.TextureID {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if id, ok := d.textures.Find(abs); ok {
		return id
	}

	tex := &core.Texture{
		Path:            abs,
		ChannelCount:    core.NormalizedFormatChannels(channelCount),
		HDR:             hdr,
		FlipVertically:  flipV,
		GenerateMipMaps: genMips,
	}
	id, _ := d.textures.Register(tex)
	return id
}

func (d *device) InitializeRenderObject(info *core.RenderObjectCreateInfo) core.RenderID {
	obj := &core.RenderObject{
		ID:               core.InvalidRenderID,
		MaterialID:       info.MaterialID,
		VertexData:       info.VertexData,
		Indices:          info.Indices,
		Owner:            info.Owner,
		Topology:         info.Topology,
		CullFace:         info.CullFace,
		DepthTestFunc:    info.DepthTestFunc,
		DepthWriteEnable: info.DepthWriteEnable,
		EditorObject:     info.EditorObject,
		Visible:          true,
		Native:           &nativeObject{},
	}
	return d.objects.Insert(obj)
}

func (d *device) PostInitializeRenderObject(id core.RenderID) {
	obj := d.objects.Get(id)
	if obj == nil {
		return
	}
	mat := d.materials.Get(obj.MaterialID)
	if mat == nil {
		return
	}
	// Render objects carry no scene-tree position of their own
	// (core.GameObjectRef is opaque to this renderer), so every probe
	// captures from the world origin.
	probePos := core.Vec3{}
	if mat.RenderToCubemap {
		d.probeResults[id] = d.probes.GenerateReflectionProbeMaps(id, probePos)
	} else if mat.EnableIrradianceSampler {
		cm := d.probes.GenerateIrradianceSamplerMaps(id, probePos)
		d.probeResults[id] = &ibl.Result{Irradiance: cm}
	}
}

// captureSceneFace renders the current scene as seen from pos looking down
// one cubemap face direction, the ibl.SceneCapturer this backend supplies
// to ibl.ProbeCapture. renderID is unused here: the reduced CPU pipeline
// doesn't support excluding the probe's own object from its capture.
func (d *device) captureSceneFace(renderID core.RenderID, pos core.Vec3, face core.CubeFace) *ibl.HDRImage {
	forward, up := cubeFaceBasis(face)
	cam := core.Camera{
		Position:    pos,
		Forward:     forward,
		Up:          up,
		FovYRadians: float32(math.Pi / 2),
		Aspect:      1,
		Near:        0.05,
		Far:         1000,
	}
	plan := d.graph.Plan(0)
	result := frame.RunDeferredPipeline(plan, d.objects, d.materials, d.sun, cam, d.shadowConfig())

	img := ibl.NewHDRImage(result.GBuffer.Width, result.GBuffer.Height)
	for y := 0; y < result.GBuffer.Height; y++ {
		for x := 0; x < result.GBuffer.Width; x++ {
			c := result.HDR[y*result.GBuffer.Width+x]
			img.Set(x, y, c.X, c.Y, c.Z)
		}
	}
	return img
}

// cubeFaceBasis returns the forward/up axes for face, matching
// core.CubeFaceOrder's +X/-X/+Y/-Y/+Z/-Z convention.
func cubeFaceBasis(face core.CubeFace) (forward, up core.Vec3) {
	switch face {
	case core.CubeFaceRight:
		return core.Vec3{X: 1}, core.Vec3{Y: -1}
	case core.CubeFaceLeft:
		return core.Vec3{X: -1}, core.Vec3{Y: -1}
	case core.CubeFaceUp:
		return core.Vec3{Y: 1}, core.Vec3{Z: 1}
	case core.CubeFaceDown:
		return core.Vec3{Y: -1}, core.Vec3{Z: -1}
	case core.CubeFaceBack:
		return core.Vec3{Z: 1}, core.Vec3{Y: -1}
	default: // CubeFaceFront
		return core.Vec3{Z: -1}, core.Vec3{Y: -1}
	}
}

// shadowConfig builds the frame package's config value from the backend's
// own DeviceConfig, duplicated per backend since frame can't import hal.
func (d *device) shadowConfig() frame.ShadowConfig {
	return frame.ShadowConfig{
		ShadowMapSize:  d.cfg.ShadowMapSize,
		SSAOKernelSize: d.cfg.SSAOKernelSize,
		EnableSSAO:     d.cfg.EnableSSAO,
		EnableFXAA:     d.cfg.EnableFXAA,
		EnableTAA:      d.cfg.EnableTAA,
		CascadeCount:   d.cfg.ShadowCascades,
	}
}

func (d *device) DestroyRenderObject(id core.RenderID) { d.objects.Destroy(id) }
func (d *device) RemoveMaterial(id core.MaterialID)    { d.materials.Remove(id) }
func (d *device) ClearMaterials(keepEngineMats bool)   { d.materials.ClearMaterials(keepEngineMats) }

func (d *device) SetTopologyMode(id core.RenderID, topology core.Topology) {
	if obj := d.objects.Get(id); obj != nil {
		obj.Topology = topology
	}
}

func (d *device) SetClearColor(r, g, b, a float32) { d.clearColor = [4]float32{r, g, b, a} }
func (d *device) SetVSyncEnabled(enabled bool)      { d.vsync = enabled }
func (d *device) OnWindowSizeChanged(width, height int) {
	d.cfg.Width, d.cfg.Height = width, height
}

func (d *device) DrawStringSS(fontName, str string, pos core.Vec3, color core.Vec4) {
	d.text.Submit(text.Entry{FontName: fontName, Text: str, Pos: pos, Color: color, ScreenSpace: true})
}

func (d *device) DrawStringWS(fontName, str string, pos core.Vec3, color core.Vec4) {
	d.text.Submit(text.Entry{FontName: fontName, Text: str, Pos: pos, Color: color, ScreenSpace: false})
}
func (d *device) EnqueueSprite(spr hal.SpriteDraw) {
	d.spriteDraws = append(d.spriteDraws, spr)
}

func (d *device) SetDebugLines(lines []hal.DebugLine) { d.debugLines = lines }

func (d *device) SetCamera(cam core.Camera) {
	d.camera = cam
	d.graph.SetCamera(cam, d.cfg.ShadowCascades)
}

func (d *device) RegisterPointLight(light core.PointLight) core.PointLightID {
	return d.points.Register(light)
}
func (d *device) UpdatePointLight(id core.PointLightID, light core.PointLight) {
	d.points.Update(id, light)
}
func (d *device) RemovePointLight(id core.PointLightID) { d.points.Remove(id) }

func (d *device) RegisterDirectionalLight(light core.DirectionalLight) { d.sun = light }
func (d *device) RemoveDirectionalLight()                              { d.sun = core.DirectionalLight{} }

// dpiRecheckInterval governs how often the engine re-queries
// monitor DPI on a 2-second ticker rather than every frame, since the
// query is a syscall round trip and DPI changes are rare.
const dpiRecheckInterval = 2 * time.Second

func (d *device) Update(dt float64) {
	step := time.Duration(dt * float64(time.Second))
	d.elapsed += step
	d.lastDPICheck += step
	if d.lastDPICheck >= dpiRecheckInterval {
		d.lastDPICheck = 0
		// Native DPI query omitted: no windowing surface is attached in
		// this student rewrite's reduced scope (see DESIGN.md).
	}
}

func (d *device) Draw() {
	plan := d.graph.Plan(0)

	d.lastFrame = frame.RunDeferredPipeline(plan, d.objects, d.materials, d.sun, d.camera, d.shadowConfig())

	for _, batch := range plan.Batches {
		d.drawBatch(batch)
	}

	for range d.text.Flush() {
		// Each laid-out entry's GlyphQuads would become point-sprite
		// vertex data sampled against its font's atlas texture here;
		// omitted below the loader boundary along with the rest of
		// per-object drawing (DESIGN.md).
	}

	if len(d.debugLines) > 0 {
		// vkCmdDrawIndexed against a line-list pipeline built from
		// d.debugLines would be issued here; omitted below the loader
		// boundary along with the rest of per-object drawing (DESIGN.md).
	}

	if len(d.spriteDraws) > 0 {
		// vkCmdDrawIndexed against a billboard-quad pipeline, one instance
		// per d.spriteDraws entry, would be issued here; the buffer is
		// cleared every frame so sprites are not redrawn in the next one.
		d.spriteDraws = d.spriteDraws[:0]
	}
}

func (d *device) drawBatch(batch frame.Batch) {
	for _, id := range batch.RenderIDs {
		obj := d.objects.Get(id)
		if obj == nil || !obj.Visible {
			continue
		}
		// vkCmdBindPipeline / vkCmdBindDescriptorSets / vkCmdDrawIndexed
		// would be issued here against the object's cached nativeObject
		// pipeline; omitted below the loader boundary since this is a
		// reduced-scope rewrite (DESIGN.md).
	}
}
