package ibl

import (
	"testing"

	"github.com/flexengine/renderer/core"
)

// solidEquirect returns an equirect image of a single flat color, standing
// in for a "colored skybox".
func solidEquirect(w, h int, r, g, b float32) *HDRImage {
	img := NewHDRImage(w, h)
	for i := 0; i < w*h; i++ {
		img.Pix[i*3], img.Pix[i*3+1], img.Pix[i*3+2] = r, g, b
	}
	return img
}

// TestConvolveIrradiance_UniformSkyboxWithinTenPercent matches the
// documented testable property: sampling a generated irradiance cubemap
// against a uniform-color skybox must land within 10% of that color,
// since a constant environment integrates to itself regardless of
// direction.
func TestConvolveIrradiance_UniformSkyboxWithinTenPercent(t *testing.T) {
	equirect := solidEquirect(64, 32, 0.2, 0.5, 0.8)
	cm := EquirectToCubemap(equirect, 16)
	irr := ConvolveIrradiance(cm, 8)

	// Sample the +Y face (up), matching the scenario's "sample ... at +Y".
	face := irr.Face(core.CubeFaceUp)
	r, g, b := face.At(face.Width/2, face.Height/2)

	checkWithin(t, "r", r, 0.2, 0.10)
	checkWithin(t, "g", g, 0.5, 0.10)
	checkWithin(t, "b", b, 0.8, 0.10)
}

func checkWithin(t *testing.T, label string, got, want, tolFrac float32) {
	t.Helper()
	tol := want * tolFrac
	if tol < 0 {
		tol = -tol
	}
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > tol {
		t.Errorf("%s = %v, want within %v of %v", label, got, tol, want)
	}
}

func TestComputeBRDFLUT_ValuesStayWithinUnitRange(t *testing.T) {
	lut := ComputeBRDFLUT(16)
	for i, s := range lut.Scale {
		if s < 0 || s > 1.01 {
			t.Errorf("scale[%d] = %v, want in [0,1]", i, s)
		}
	}
	for i, b := range lut.Bias {
		if b < 0 || b > 1.01 {
			t.Errorf("bias[%d] = %v, want in [0,1]", i, b)
		}
	}
}

func TestPrefilterEnvironment_MipSizesHalveEachLevel(t *testing.T) {
	equirect := solidEquirect(32, 16, 1, 1, 1)
	cm := EquirectToCubemap(equirect, 32)
	mips := PrefilterEnvironment(cm, 32, 5)

	if len(mips) != 5 {
		t.Fatalf("got %d mip levels, want 5", len(mips))
	}
	want := 32
	for i, m := range mips {
		if m.Size != want {
			t.Errorf("mip %d size = %d, want %d", i, m.Size, want)
		}
		want /= 2
		if want < 1 {
			want = 1
		}
	}
}

func TestEquirectToCubemap_ProducesSixFaces(t *testing.T) {
	equirect := solidEquirect(16, 8, 1, 0, 0)
	cm := EquirectToCubemap(equirect, 4)
	for i, f := range cm.Faces {
		if f == nil || f.Width != 4 || f.Height != 4 {
			t.Fatalf("face %d not sized correctly: %+v", i, f)
		}
	}
}
