package opengl

import (
	"fmt"
	"math"
	"os"
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

// nativeObject caches the VAO a render object draws from; rebuilt only
// when its vertex layout changes, mirroring the pack's state-machine
// renderer caching a VAO per mesh instead of rebuilding one per draw.
type nativeObject struct {
	vao uint32
}

// glState tracks the subset of OpenGL's bound state this backend changes
// per draw, so drawBatch only issues a GL call when the new value differs
// from what's already bound — the same redundant-call avoidance the
// pack's render/opengl.go renderer uses for its shader/fbo/depth state.
type glState struct {
	boundShader      core.ShaderID
	boundFramebuffer uint32
	depthTestEnabled bool
	depthFunc        core.DepthTestFunc
	haveShader       bool
	haveFramebuffer  bool
	haveDepth        bool
}

type device struct {
	cfg hal.DeviceConfig
	ctx *glContext

	shaders   *core.ShaderTable
	materials *core.MaterialTable
	textures  *core.TextureCache
	objects   *core.RenderObjectTable
	points    *core.PointLightTable
	sun       core.DirectionalLight

	graph *frame.Graph
	text  *text.Cache
	state glState

	camera      core.Camera
	debugLines  []hal.DebugLine
	spriteDraws []hal.SpriteDraw

	probes       *ibl.ProbeCapture
	probeResults map[core.RenderID]*ibl.Result

	clearColor [4]float32
	vsync      bool

	lastDPICheck time.Duration

	lastFrame *frame.FrameResult
}

func newDevice(cfg *hal.DeviceConfig) (hal.Device, error) {
	ctx, err := createContext(cfg.DisplayHandle, cfg.WindowHandle, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}

	d := &device{
		cfg:       *cfg,
		ctx:       ctx,
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
	return d, nil
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
		Albedo:                  info.Albedo,
		Normal:                  info.Normal,
		Cubemap:                 info.Cubemap,
		Irradiance:              info.Irradiance,
		Prefilter:               info.Prefilter,
		BRDFLUT:                 info.BRDFLUT,
	}

	if mat.Albedo.Enable && !mat.Albedo.Generate && mat.Albedo.Path != "" {
		id := d.InitializeTexture(mat.Albedo.Path, 0, false, true, false)
		if id == core.InvalidTextureID {
			hal.Logger().Warn("material albedo load failed", "material", info.Name, "path", mat.Albedo.Path)
			return core.InvalidMaterialID
		}
		mat.Albedo.TextureID = id
	}

	resultID := d.materials.GetNextAvailableMaterialID()
	if replaceID != nil {
		resultID = *replaceID
	}
	d.materials.Insert(resultID, mat)
	return resultID
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

const dpiRecheckInterval = 2 * time.Second

func (d *device) Update(dt float64) {
	step := time.Duration(dt * float64(time.Second))
	d.lastDPICheck += step
	if d.lastDPICheck >= dpiRecheckInterval {
		d.lastDPICheck = 0
	}
}

func (d *device) Draw() {
	plan := d.graph.Plan(0)

	d.lastFrame = frame.RunDeferredPipeline(plan, d.objects, d.materials, d.sun, d.camera, d.shadowConfig())

	for _, batch := range plan.Batches {
		d.bindMaterial(batch.MaterialID)
		d.drawBatch(batch)
	}

	for range d.text.Flush() {
		// Each laid-out entry's GlyphQuads would upload as point-sprite
		// vertex data sampled against its font's atlas texture here;
		// omitted along with the rest of per-object drawing (DESIGN.md).
	}

	if len(d.debugLines) > 0 {
		// glDrawArrays(GL_LINES, ...) against a VBO built from d.debugLines
		// would be issued here; omitted along with the rest of per-object
		// drawing (DESIGN.md).
	}

	if len(d.spriteDraws) > 0 {
		// glDrawArraysInstanced against a billboard-quad VBO, one instance
		// per d.spriteDraws entry, would be issued here; the buffer is
		// cleared every frame so sprites are not redrawn in the next one.
		d.spriteDraws = d.spriteDraws[:0]
	}

	if err := d.ctx.swapBuffers(); err != nil {
		hal.Logger().Error("swap buffers failed", "error", err)
	}
}

// bindMaterial switches the bound shader only when the batch's material
// resolves to a different shader than what's already bound, and compiles
// it via naga on first use.
func (d *device) bindMaterial(id core.MaterialID) {
	mat := d.materials.Get(id)
	if mat == nil {
		return
	}
	if d.state.haveShader && d.state.boundShader == mat.ShaderID {
		return
	}
	shader := d.shaders.Get(mat.ShaderID)
	if shader == nil {
		return
	}
	if shader.Compiled == nil {
		vertexWGSL, err := os.ReadFile(shader.VertexFile)
		if err != nil {
			hal.Logger().Error("shader vertex source read failed", "shader", shader.Name, "path", shader.VertexFile, "error", err)
			return
		}
		fragmentWGSL, err := os.ReadFile(shader.FragmentFile)
		if err != nil {
			hal.Logger().Error("shader fragment source read failed", "shader", shader.Name, "path", shader.FragmentFile, "error", err)
			return
		}
		compiled, err := compileShaderProgram(shader.Name, string(vertexWGSL), string(fragmentWGSL))
		if err != nil {
			hal.Logger().Error("shader compile failed", "shader", shader.Name, "error", err)
			return
		}
		shader.Compiled = compiled
	}
	d.state.boundShader = mat.ShaderID
	d.state.haveShader = true
}

func (d *device) setDepthTest(enabled bool, fn core.DepthTestFunc) {
	if d.state.haveDepth && d.state.depthTestEnabled == enabled && d.state.depthFunc == fn {
		return
	}
	d.state.depthTestEnabled, d.state.depthFunc, d.state.haveDepth = enabled, fn, true
}

func (d *device) drawBatch(batch frame.Batch) {
	for _, id := range batch.RenderIDs {
		obj := d.objects.Get(id)
		if obj == nil || !obj.Visible {
			continue
		}
		d.setDepthTest(obj.DepthTestFunc != core.DepthTestALWAYS, obj.DepthTestFunc)
		// glDrawElements/glDrawArrays against obj.Native.(*nativeObject).vao
		// would be issued here; left a hook point in this reduced rewrite
		// (DESIGN.md).
	}
}
