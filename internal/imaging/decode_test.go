package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNGBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	data := encodePNGBytes(t, image.NewRGBA(image.Rect(0, 0, 12, 9)))

	img, err := Decode(data, FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())
}

func TestDecodeGIF(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), nil)
	src.Palette = []color.Color{color.Black, color.White}
	require.NoError(t, gif.Encode(&buf, src, nil))

	img, err := Decode(buf.Bytes(), FormatGIF)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"), FormatPNG)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "failed to decode image", verr.Error())
}

// Data for a different container than declared must fail as a
// client-visible decode failure, not an internal fault.
func TestDecodeFormatMismatch(t *testing.T) {
	data := encodePNGBytes(t, image.NewRGBA(image.Rect(0, 0, 4, 4)))

	_, err := Decode(data, FormatGIF)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "failed to decode image", verr.Error())
}

func TestDecodeUnknownFormatIsInternal(t *testing.T) {
	_, err := Decode([]byte{0x00}, Format("tiff"))
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
