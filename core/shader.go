package core

// UniformToken is one of the closed set of recognized uniform names a
// shader may declare. Both the material-uniform upload pass (frame package)
// and the per-sampler "needs" bits below key off this closed vocabulary.
type UniformToken string

// Recognized uniform tokens.
const (
	UniformModel              UniformToken = "model"
	UniformModelInvTranspose  UniformToken = "modelInvTranspose"
	UniformView               UniformToken = "view"
	UniformViewInv            UniformToken = "viewInv"
	UniformProjection         UniformToken = "projection"
	UniformProjInv            UniformToken = "projInv"
	UniformViewProjection     UniformToken = "viewProjection"
	UniformLightViewProj      UniformToken = "lightViewProj"
	UniformCamPos             UniformToken = "camPos"
	UniformExposure           UniformToken = "exposure"
	UniformTime               UniformToken = "time"
	UniformColorMultiplier    UniformToken = "colorMultiplier"
	UniformDirLight           UniformToken = "dirLight"
	UniformPointLights        UniformToken = "pointLights"
	UniformConstAlbedo        UniformToken = "constAlbedo"
	UniformConstMetallic      UniformToken = "constMetallic"
	UniformConstRoughness     UniformToken = "constRoughness"
	UniformConstAO            UniformToken = "constAO"
	UniformTexSize            UniformToken = "texSize"
	UniformTexelStep          UniformToken = "texelStep"
	UniformSSAOSamples        UniformToken = "ssaoSamples"
	UniformSSAORadius         UniformToken = "ssaoRadius"
	UniformSSAOKernelSize     UniformToken = "ssaoKernelSize"
	UniformSSAOBlurRadius     UniformToken = "ssaoBlurRadius"
	UniformSSAOTexelOffset    UniformToken = "ssaoTexelOffset"
	UniformSSAOPowExp         UniformToken = "ssaoPowExp"
	UniformEnableSSAO         UniformToken = "enableSSAO"
)

// SamplerNeed is a per-sampler "needs" bit a shader declares; the material
// and backend use these to decide which descriptor/binding slots must be
// populated (with a real texture, or a fallback 1x1 white / blank texture).
type SamplerNeed uint32

const (
	NeedAlbedoSampler SamplerNeed = 1 << iota
	NeedNormalSampler
	NeedCubemap
	NeedIrradiance
	NeedPrefilter
	NeedBRDFLUT
	NeedShadowMap
	NeedDepthSampler
	NeedNoiseSampler
)

// Shader is the static descriptor of a program: source paths, the vertex
// layout it consumes, the uniforms it declares, and render-state flags.
// Shaders are loaded once; their compiled module is shared across every
// material that references them.
type Shader struct {
	Name string

	VertexFile   string
	FragmentFile string
	GeometryFile string
	ComputeFile  string

	VertexAttributes VertexAttribute

	ConstantBufferUniforms map[UniformToken]bool
	DynamicBufferUniforms  map[UniformToken]bool

	SamplerNeeds SamplerNeed

	Deferred         bool
	Translucent      bool
	DepthWriteEnable bool
	Subpass          int
	NumAttachments   int

	// backend-specific compiled module handle, set by hal.Device.LoadShaderCode.
	Compiled any
}

// Needs reports whether the shader declares the given sampler requirement.
func (s *Shader) Needs(need SamplerNeed) bool {
	return s.SamplerNeeds&need != 0
}

// DeclaresUniform reports whether name is in either uniform set.
func (s *Shader) DeclaresUniform(name UniformToken) bool {
	return s.ConstantBufferUniforms[name] || s.DynamicBufferUniforms[name]
}

// ShaderTable indexes shaders by ShaderID, authored and registered once at
// startup via SetShaderCount + LoadShaderCode(i), mirroring the engine's
// base-shader registration pattern.
type ShaderTable struct {
	shaders []*Shader
	byName  map[string]ShaderID
}

// NewShaderTable returns an empty table.
func NewShaderTable() *ShaderTable {
	return &ShaderTable{byName: make(map[string]ShaderID)}
}

// SetShaderCount preallocates count shader slots so LoadShaderCode(i) can be
// called in any order during startup registration.
func (t *ShaderTable) SetShaderCount(count int) {
	t.shaders = make([]*Shader, count)
}

// RegisterShader installs shader at index i (the LoadShaderCode(i) call)
// and returns its ShaderID.
func (t *ShaderTable) RegisterShader(i int, shader *Shader) ShaderID {
	for len(t.shaders) <= i {
		t.shaders = append(t.shaders, nil)
	}
	t.shaders[i] = shader
	t.byName[shader.Name] = ShaderID(i)
	return ShaderID(i)
}

// Get returns the shader for id, or nil if id is out of range or unset.
func (t *ShaderTable) Get(id ShaderID) *Shader {
	if int(id) < 0 || int(id) >= len(t.shaders) {
		return nil
	}
	return t.shaders[id]
}

// Lookup resolves a shader by name (InitializeMaterial's "resolves shaderID
// by name"). ok is false if no shader was registered under that name.
func (t *ShaderTable) Lookup(name string) (ShaderID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Count returns the number of registered shader slots.
func (t *ShaderTable) Count() int { return len(t.shaders) }
