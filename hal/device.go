package hal

import "github.com/flexengine/renderer/core"

// Device is the abstract renderer interface: the contract every higher
// layer uses, implemented once per backend (hal/vulkan, hal/opengl). All
// calls are single-threaded from the main loop.
type Device interface {
	// SetShaderCount preallocates n shader slots and LoadShaderCode installs
	// the base shader definitions authored in engine code, mirroring the
	// engine's SetShaderCount + LoadShaderCode(i) startup registration
	// startup shader registration. Both run once at startup before any
	// InitializeMaterial call references a shader by name.
	SetShaderCount(n int)
	LoadShaderCode(i int, shader *core.Shader) core.ShaderID

	// InitializeMaterial interns the textures info.* references by path,
	// resolves info.ShaderName to a ShaderID, allocates uniform buffer
	// space sized by the shader's declared uniform set, and sets up
	// per-sampler bindings in declaration order.
	//
	// If replaceID is non-nil the material is installed at that exact ID
	// (editor material-reload path) instead of the lowest free slot.
	// Fails (logs, returns core.InvalidMaterialID) if the shader name is
	// unknown or a required image fails to load.
	InitializeMaterial(info *core.MaterialCreateInfo, replaceID *core.MaterialID) core.MaterialID

	// InitializeTexture loads path from disk (deduplicating by absolute
	// path) honoring channelCount/flipV/genMips/hdr, and returns its ID.
	InitializeTexture(path string, channelCount int, flipV, genMips, hdr bool) core.TextureID

	// InitializeRenderObject assigns the lowest free RenderID and flags
	// the batch cache dirty.
	InitializeRenderObject(info *core.RenderObjectCreateInfo) core.RenderID

	// PostInitializeRenderObject must run after all static geometry for
	// the frame/scene has been uploaded: if the bound material generates
	// reflection-probe maps it triggers GenerateReflectionProbeMaps; if it
	// generates an irradiance sampler it triggers
	// GenerateIrradianceSamplerMaps. Both render the scene into a cubemap
	// and therefore need a fully-populated geometry set to capture.
	PostInitializeRenderObject(id core.RenderID)

	DestroyRenderObject(id core.RenderID)
	RemoveMaterial(id core.MaterialID)
	ClearMaterials(keepEngineMats bool)

	SetTopologyMode(id core.RenderID, topology core.Topology)
	SetClearColor(r, g, b, a float32)
	SetVSyncEnabled(enabled bool)
	OnWindowSizeChanged(width, height int)

	// DrawStringSS/DrawStringWS enqueue one text-cache entry for the
	// current frame, screen-space and world-space respectively. A
	// zero-length string is a no-op: no glyphs emitted, no buffer resize.
	DrawStringSS(fontName, text string, pos core.Vec3, color core.Vec4)
	DrawStringWS(fontName, text string, pos core.Vec3, color core.Vec4)

	EnqueueSprite(spr SpriteDraw)

	// SetDebugLines replaces the current frame's physics debug-line buffer,
	// drawn as a single line list after the main batches. Passing nil or an
	// empty slice clears it.
	SetDebugLines(lines []DebugLine)

	// SetCamera records the active viewpoint Draw derives shadow-cascade
	// fitting and the deferred-shading view/projection uniforms from.
	SetCamera(cam core.Camera)

	RegisterPointLight(light core.PointLight) core.PointLightID
	UpdatePointLight(id core.PointLightID, light core.PointLight)
	RemovePointLight(id core.PointLightID)

	RegisterDirectionalLight(light core.DirectionalLight)
	RemoveDirectionalLight()

	// Update performs per-frame bookkeeping unrelated to drawing. Both
	// backends only advance a 2s monitor-DPI re-check timer here; no native
	// DPI query is made when it elapses. Screenshot completion is polled by
	// render.Renderer.Update, the grid-fade alpha is computed by
	// frame.Graph.Plan, and no reflection-probe recapture flag is kept.
	Update(dt float64)

	// Draw renders one frame and presents it.
	Draw()
}

// SpriteDraw is the payload EnqueueSprite accepts; anchor/space are defined
// in the sprite package to avoid hal depending on it, so this is kept
// intentionally minimal and widened there via a constructor.
type SpriteDraw struct {
	TextureID core.TextureID
	Pos       core.Vec3
	Size      [2]float32
	Color     core.Vec4
	ScreenSpace bool
	Anchor      int
	Billboard   bool
}

// DebugLine is one line segment from the debugdraw buffer; duplicated here
// rather than importing the debugdraw package, for the same reason
// SpriteDraw is kept local.
type DebugLine struct {
	From, To core.Vec3
	Color    core.Vec4
}
