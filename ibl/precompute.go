package ibl

// Result bundles every map a material's IBL sampler slots need.
type Result struct {
	Cubemap    *Cubemap
	Irradiance *Cubemap
	Prefilter  []*Cubemap // mip chain, coarsest roughness last
}

// Precomputer runs the four-step IBL bake for a material.
// Sizes default to commonly used values but are configurable per
// material via core.Material's generated-resource descriptors.
type Precomputer struct {
	CubemapSize     int
	IrradianceSize  int
	PrefilterMips   int
	brdfLUT         *BRDFLUT // material-independent, computed once and cached
}

// NewPrecomputer returns a Precomputer with sensible defaults:
// a configurable cubemap size, a 32² irradiance cubemap, and 5 prefilter
// mip levels.
func NewPrecomputer(cubemapSize int) *Precomputer {
	return &Precomputer{
		CubemapSize:    cubemapSize,
		IrradianceSize: 32,
		PrefilterMips:  5,
	}
}

// BakeFromEquirect runs all three environment-dependent steps (equirect to
// cubemap, irradiance convolution, prefiltered mip chain) for one HDR probe.
func (p *Precomputer) BakeFromEquirect(equirect *HDRImage) *Result {
	cm := EquirectToCubemap(equirect, p.CubemapSize)
	return p.bakeFromCubemap(cm)
}

// bakeFromCubemap runs the same two convolution steps starting from
// an already-rendered cubemap, the path RecaptureReflectionProbe uses after
// CaptureSceneToCubemap.
func (p *Precomputer) bakeFromCubemap(cm *Cubemap) *Result {
	return &Result{
		Cubemap:    cm,
		Irradiance: ConvolveIrradiance(cm, p.IrradianceSize),
		Prefilter:  PrefilterEnvironment(cm, p.CubemapSize, p.PrefilterMips),
	}
}

// BRDFLUT returns the material-independent split-sum LUT, computing it
// once (512² is the conventional split-sum LUT size) and caching it across calls.
func (p *Precomputer) BRDFLUT() *BRDFLUT {
	if p.brdfLUT == nil {
		p.brdfLUT = ComputeBRDFLUT(512)
	}
	return p.brdfLUT
}
