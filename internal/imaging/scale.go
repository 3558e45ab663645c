package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ScaleFactors is the fixed set of derived resolutions, in reporting
// order. Scale 1 is the unmodified original.
var ScaleFactors = []int{1, 2, 4, 8, 16}

// Upscale enlarges img by the integer factor scale using
// nearest-neighbor sampling, so each source pixel becomes a uniform
// scale×scale block. Hard pixel edges are preserved on purpose; the
// variants target pixel-art upscaling, not photographic quality.
// Scale 1 returns img unchanged.
func Upscale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	bounds := img.Bounds()
	return imaging.Resize(img, bounds.Dx()*scale, bounds.Dy()*scale, imaging.NearestNeighbor)
}

// EncodePNG serializes img into the canonical output container.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image as png: %w", err)
	}
	return buf.Bytes(), nil
}
