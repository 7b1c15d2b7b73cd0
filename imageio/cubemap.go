package imageio

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/flexengine/renderer/core"
)

// CubeFace is one decoded cubemap face: its pixel data plus the source
// image's channel count after core.NormalizedFormatChannels.
type CubeFace struct {
	Img            image.Image
	SourceChannels int
}

// LoadCubemapFaces decodes the six faces named in tex.CubemapFacePaths, in
// core.CubeFaceOrder order, normalizing each face's channel count via
// core.NormalizedFormatChannels. All six paths must
// decode for the cubemap to load; a partial load is treated the same as a
// full failure since a cubemap with missing faces has no well-defined
// fallback the way a single flat texture does (sampling any face could be
// garbage).
func LoadCubemapFaces(tex *core.Texture) ([6]CubeFace, error) {
	var faces [6]CubeFace
	for _, face := range core.CubeFaceOrder {
		path := tex.CubemapFacePaths[face]
		if path == "" {
			return faces, fmt.Errorf("imageio: cubemap face %d missing path", face)
		}

		f, err := os.Open(path)
		if err != nil {
			return faces, fmt.Errorf("imageio: open cubemap face %s: %w", path, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return faces, fmt.Errorf("imageio: decode cubemap face %s: %w", path, err)
		}

		src := sourceChannelCount(img)
		faces[face] = CubeFace{Img: img, SourceChannels: core.NormalizedFormatChannels(src)}
	}
	return faces, nil
}

// sourceChannelCount reports how many color channels img's underlying
// model actually carries, before normalization.
func sourceChannelCount(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.CMYKModel:
		return 4
	default:
		return 4 // RGBA/NRGBA/YCbCr all decode with an (often-opaque) alpha channel
	}
}
