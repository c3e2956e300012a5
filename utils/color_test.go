package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_HexToRGBA(t *testing.T) {
	testCases := []struct {
		hex  string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"#00ff00", color.RGBA{G: 0xff, A: 0xff}},
		{"#123456", color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}},
		{"#FFFFFF", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	for _, tc := range testCases {
		got, err := HexToRGBA(tc.hex)
		require.NoError(t, err, tc.hex)
		assert.Equal(t, tc.want, got, tc.hex)
	}
}

func TestUtils_HexToRGBAShouldRejectInvalidColors(t *testing.T) {
	for _, hex := range []string{"", "red", "#gggggg", "ff0000"} {
		_, err := HexToRGBA(hex)
		assert.Error(t, err, hex)
	}
}
