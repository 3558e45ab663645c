package imaging

import (
	"fmt"
	"image"
)

// Dimension limits for accepted submissions. They bound the cost of
// deriving the upscaled variants: the largest derived grid is
// MaxPixels * 16^2 pixels.
const (
	MaxPixels      = 65536
	MaxLongSideLen = 1024
	MaxAspectRatio = 16.0
)

// ValidateDimensions checks the decoded image against the pixel-count,
// long-side and aspect-ratio limits, in that order. The first failing
// check is reported.
func ValidateDimensions(img image.Image) error {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w*h > MaxPixels {
		return validationError(fmt.Sprintf("Image has too many pixels (%d > %d)", w*h, MaxPixels))
	}

	long, short := w, h
	if h > w {
		long, short = h, w
	}
	if long > MaxLongSideLen {
		return validationError(fmt.Sprintf("Long side of image is too long (%d > %d)", long, MaxLongSideLen))
	}
	if float64(long)/float64(short) > MaxAspectRatio {
		return validationError(fmt.Sprintf("Aspect ratio of image is out of range (%d : %d > %v : 1)", long, short, MaxAspectRatio))
	}
	return nil
}
