package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Thumbnail scales raw image bytes down to fit inside maxWidth x
// maxHeight, keeping aspect ratio and never upscaling, and re-encodes
// in the source container format. The result is an independently
// decodable image. A degenerate bounding box is clamped to 1x1.
func Thumbnail(raw []byte, maxWidth, maxHeight int) ([]byte, error) {
	if maxWidth < 1 {
		maxWidth = 1
	}
	if maxHeight < 1 {
		maxHeight = 1
	}

	src, formatName, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return nil, fmt.Errorf("encode format %s: %w", formatName, err)
	}

	thumb := imaging.Fit(src, maxWidth, maxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
