package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFormatSupported(t *testing.T) {
	tests := []struct {
		contentType string
		want        Format
	}{
		{"image/png", FormatPNG},
		{"image/webp", FormatWebP},
		{"image/bmp", FormatBMP},
		{"image/gif", FormatGIF},
		{"IMAGE/PNG", FormatPNG},
		{" image/png ", FormatPNG},
		{"image/png; charset=binary", FormatPNG},
	}

	for _, tt := range tests {
		format, err := ResolveFormat(tt.contentType)
		require.NoError(t, err, "content type %q", tt.contentType)
		assert.Equal(t, tt.want, format)
	}
}

func TestResolveFormatRejected(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantMsg     string
	}{
		{"not an image", "application/json", "Content-Type is not for an image"},
		{"text", "text/plain", "Content-Type is not for an image"},
		{"unsupported subtype", "image/jpeg", "unsupported image format: jpeg"},
		{"unknown subtype", "image/tiff", "unsupported image format: tiff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveFormat(tt.contentType)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Error())
		})
	}
}
