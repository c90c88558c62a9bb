package service

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	tagDateTime         = 0x0132
	tagDateTimeOriginal = 0x9003
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// testJPEGWithEXIF splices a minimal APP1/TIFF segment carrying the
// given ASCII tags into a freshly encoded JPEG, so the pipeline parses
// real EXIF bytes. Values must be longer than four bytes (stored
// out-of-line in the IFD).
func testJPEGWithEXIF(t *testing.T, width, height int, tags map[uint16]string) []byte {
	t.Helper()

	base := testJPEG(t, width, height)
	require.True(t, len(base) > 2 && base[0] == 0xff && base[1] == 0xd8)

	payload := buildTIFF(t, tags)

	var app1 bytes.Buffer
	app1.Write([]byte{0xff, 0xe1})
	require.NoError(t, binary.Write(&app1, binary.BigEndian, uint16(2+6+len(payload))))
	app1.WriteString("Exif\x00\x00")
	app1.Write(payload)

	out := make([]byte, 0, len(base)+app1.Len())
	out = append(out, base[:2]...)
	out = append(out, app1.Bytes()...)
	out = append(out, base[2:]...)
	return out
}

func buildTIFF(t *testing.T, tags map[uint16]string) []byte {
	t.Helper()

	ids := make([]uint16, 0, len(tags))
	for id := range tags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var buf bytes.Buffer
	buf.WriteString("II")
	writeLE(t, &buf, uint16(42))
	writeLE(t, &buf, uint32(8)) // IFD0 right after the header

	writeLE(t, &buf, uint16(len(ids)))
	valueBase := uint32(8 + 2 + 12*len(ids) + 4)
	var values bytes.Buffer
	for _, id := range ids {
		value := tags[id] + "\x00"
		require.Greater(t, len(value), 4, "inline IFD values not supported by this helper")
		writeLE(t, &buf, id)
		writeLE(t, &buf, uint16(2)) // ASCII
		writeLE(t, &buf, uint32(len(value)))
		writeLE(t, &buf, valueBase+uint32(values.Len()))
		values.WriteString(value)
	}
	writeLE(t, &buf, uint32(0)) // no next IFD
	buf.Write(values.Bytes())
	return buf.Bytes()
}

func writeLE(t *testing.T, buf *bytes.Buffer, v any) {
	t.Helper()
	require.NoError(t, binary.Write(buf, binary.LittleEndian, v))
}
