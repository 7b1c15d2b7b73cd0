package core

// SamplerSlot describes one material-side sampler binding: whether it is
// enabled, whether its content should be generated (vs. loaded from disk),
// and the filesystem path to load when not generated.
type SamplerSlot struct {
	Enable   bool
	Generate bool
	Path     string
	TextureID TextureID
}

// GeneratedMapSizes carries the per-material resolutions for the three IBL
// precompute outputs; zero means "use the engine default".
type GeneratedMapSizes struct {
	CubemapSize   int
	IrradianceSize int
	PrefilterSize int
}

// MaterialCreateInfo is the input to InitializeMaterial: everything needed
// to construct a Material value before textures are resolved and uniform
// buffer space is allocated.
type MaterialCreateInfo struct {
	Name       string
	ShaderName string

	ConstAlbedo    [3]float32
	ConstMetallic  float32
	ConstRoughness float32
	ConstAO        float32

	ColorMultiplier [4]float32
	TextureScale    float32

	Albedo    SamplerSlot
	Normal    SamplerSlot
	Cubemap   SamplerSlot
	Irradiance SamplerSlot
	Prefilter  SamplerSlot
	BRDFLUT    SamplerSlot

	GeneratedSizes GeneratedMapSizes

	EngineMaterial          bool
	RenderToCubemap         bool
	EnablePrefilteredMap    bool
	EnableBRDFLUT           bool
	EnableIrradianceSampler bool
}

// Material is a value type: PBR constants, per-sampler bindings and flags
// that reference a Shader. Engine materials (EngineMaterial=true) persist
// across scene loads; everything else is cleared with the scene.
type Material struct {
	Name     string
	ShaderID ShaderID

	ConstAlbedo    [3]float32
	ConstMetallic  float32
	ConstRoughness float32
	ConstAO        float32

	ColorMultiplier [4]float32
	TextureScale    float32

	Albedo     SamplerSlot
	Normal     SamplerSlot
	Cubemap    SamplerSlot
	Irradiance SamplerSlot
	Prefilter  SamplerSlot
	BRDFLUT    SamplerSlot

	GeneratedSizes GeneratedMapSizes

	EngineMaterial          bool
	RenderToCubemap         bool
	EnablePrefilteredMap    bool
	EnableBRDFLUT           bool
	EnableIrradianceSampler bool

	// UniformBuffer is the backend-owned per-material uniform buffer handle,
	// sized by the shader's declared uniform set at InitializeMaterial time.
	UniformBuffer any
}

// ErrorMaterialName is the bright-pink placeholder material a shader/pipeline
// compile failure falls back to.
const ErrorMaterialName = "error"

// MaterialTable is a sparse MaterialID -> *Material map. GetNextAvailableMaterialID
// always returns the smallest nonnegative integer not currently used,
// matching the table's id-reuse invariant.
type MaterialTable struct {
	byID  map[MaterialID]*Material
	slots slotAllocator
}

// NewMaterialTable returns an empty table.
func NewMaterialTable() *MaterialTable {
	return &MaterialTable{byID: make(map[MaterialID]*Material)}
}

// GetNextAvailableMaterialID returns the smallest nonnegative ID not
// currently occupied, without reserving it — callers pass the result (or
// their own replaceID) to Insert.
func (t *MaterialTable) GetNextAvailableMaterialID() MaterialID {
	for i := uint32(0); ; i++ {
		if !t.slots.InUse(i) {
			return MaterialID(i)
		}
	}
}

// Insert registers mat at id, overwriting any previous occupant of that slot.
func (t *MaterialTable) Insert(id MaterialID, mat *Material) {
	t.slots.Reserve(uint32(id))
	t.byID[id] = mat
}

// Get returns the material for id, or nil.
func (t *MaterialTable) Get(id MaterialID) *Material {
	return t.byID[id]
}

// Remove deletes the material at id and frees its slot.
func (t *MaterialTable) Remove(id MaterialID) {
	delete(t.byID, id)
	t.slots.Release(uint32(id))
}

// FindByName performs the linear by-name lookup InitializeMaterial/material
// resolution relies on before falling through to a scene's parsed-JSON
// material library. Returns InvalidMaterialID if no match.
func (t *MaterialTable) FindByName(name string) MaterialID {
	for id, mat := range t.byID {
		if mat.Name == name {
			return id
		}
	}
	return InvalidMaterialID
}

// ClearMaterials removes every material whose EngineMaterial flag is false
// when keepEngineMats is true; when keepEngineMats is false, every material
// is removed. After this call every remaining material has
// EngineMaterial == true whenever keepEngineMats was true.
func (t *MaterialTable) ClearMaterials(keepEngineMats bool) {
	for id, mat := range t.byID {
		if keepEngineMats && mat.EngineMaterial {
			continue
		}
		t.Remove(id)
	}
}

// All returns every live (id, material) pair. Order is unspecified.
func (t *MaterialTable) All() map[MaterialID]*Material {
	return t.byID
}
