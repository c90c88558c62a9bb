package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReportsDimensionsAndFormat(t *testing.T) {
	info, err := Decode(encodeJPEG(t, 320, 240))
	require.NoError(t, err)

	assert.Equal(t, 320, info.Width)
	assert.Equal(t, 240, info.Height)
	assert.Equal(t, "jpeg", info.Format)
}

func TestDecodeWithoutEXIFIsNotAnError(t *testing.T) {
	// stdlib encoders emit no metadata container at all.
	info, err := Decode(encodePNG(t, 10, 10))
	require.NoError(t, err)
	assert.Empty(t, info.EXIF)

	_, ok := CapturedAt(info.EXIF)
	assert.False(t, ok)
}

func TestDecodeInvalidBytes(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x01, 0x02})
	assert.Error(t, err)

	_, err = Decode(nil)
	assert.Error(t, err)
}
