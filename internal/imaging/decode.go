package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Decode turns raw bytes into a pixel grid using the decoder for the
// declared format. Malformed data surfaces as a ValidationError; a
// format tag without a decoder is an internal fault.
func Decode(data []byte, format Format) (image.Image, error) {
	r := bytes.NewReader(data)

	var img image.Image
	var err error
	switch format {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	default:
		return nil, fmt.Errorf("no decoder registered for format %q", format)
	}
	if err != nil {
		return nil, &ValidationError{msg: "failed to decode image", cause: err}
	}
	return img, nil
}
