package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Info describes a decoded image: pixel dimensions, the container
// format ("jpeg", "png", "gif") and the EXIF tags keyed by standard
// tag name. EXIF is empty when the image carries no metadata; that is
// never an error.
type Info struct {
	Width  int
	Height int
	Format string
	EXIF   map[string]string
}

type tagCollector map[string]string

func (c tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if v, err := tag.StringVal(); err == nil {
		c[string(name)] = v
	} else {
		c[string(name)] = tag.String()
	}
	return nil
}

// Decode inspects raw image bytes. It fails only for structurally
// invalid bytes or unsupported encodings.
func Decode(raw []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return Info{}, fmt.Errorf("decode image: %w", err)
	}

	info := Info{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		EXIF:   map[string]string{},
	}

	if x, err := exif.Decode(bytes.NewReader(raw)); err == nil {
		tags := tagCollector(info.EXIF)
		_ = x.Walk(tags)
	}

	return info, nil
}
