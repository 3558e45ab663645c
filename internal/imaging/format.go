package imaging

import (
	"fmt"
	"strings"
)

// Format identifies one of the supported input image containers.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatBMP  Format = "bmp"
	FormatGIF  Format = "gif"
)

// The canonical output container. Every derived variant is re-encoded
// to PNG regardless of the input format.
const (
	OutputExtension = "png"
	OutputMIMEType  = "image/png"
)

var supportedFormats = map[string]Format{
	"png":  FormatPNG,
	"webp": FormatWebP,
	"bmp":  FormatBMP,
	"gif":  FormatGIF,
}

// ResolveFormat maps a declared Content-Type to the internal format
// tag. Non-image types and image subtypes outside the allow-list are
// rejected with a client-visible message.
func ResolveFormat(contentType string) (Format, error) {
	mime := strings.ToLower(strings.TrimSpace(contentType))
	// Drop media type parameters such as "; charset=..."
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	subtype, ok := strings.CutPrefix(mime, "image/")
	if !ok {
		return "", validationError("Content-Type is not for an image")
	}

	format, ok := supportedFormats[subtype]
	if !ok {
		return "", validationError(fmt.Sprintf("unsupported image format: %s", subtype))
	}
	return format, nil
}
