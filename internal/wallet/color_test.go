package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGBString(t *testing.T) {
	cases := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", "rgb(255, 255, 255)"},
		{"#000000", "rgb(0, 0, 0)"},
		{"#FF0000", "rgb(255, 0, 0)"},
		{"#1a2b3c", "rgb(26, 43, 60)"},
		{"#F00", "rgb(255, 0, 0)"},
		{"#abc", "rgb(170, 187, 204)"},
	}
	for _, tc := range cases {
		got, err := HexToRGBString(tc.hex)
		require.NoError(t, err, tc.hex)
		assert.Equal(t, tc.want, got)
	}

	for _, invalid := range []string{"", "FFFFFF", "#GGGGGG", "#12345", "rgb(1, 2, 3)"} {
		_, err := HexToRGBString(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestRGBStringToHex(t *testing.T) {
	cases := []struct {
		rgb  string
		want string
	}{
		{"rgb(255, 255, 255)", "#FFFFFF"},
		{"rgb(0,0,0)", "#000000"},
		{"rgb(26, 43, 60)", "#1A2B3C"},
		{" rgb(1, 2, 3) ", "#010203"},
	}
	for _, tc := range cases {
		got, err := RGBStringToHex(tc.rgb)
		require.NoError(t, err, tc.rgb)
		assert.Equal(t, tc.want, got)
	}

	for _, invalid := range []string{"", "#FFFFFF", "rgb(1, 2)", "rgb(a, b, c)"} {
		_, err := RGBStringToHex(invalid)
		assert.Error(t, err, invalid)
	}
}

// Unlike the format-only validation rule, the codec rejects channels
// over 255; "rgb(256, 0, 0)" validates but cannot round-trip to hex.
func TestRGBStringToHex_RangeChecked(t *testing.T) {
	_, err := RGBStringToHex("rgb(256, 0, 0)")
	assert.Error(t, err)

	_, err = RGBStringToHex("rgb(999, 999, 999)")
	assert.Error(t, err)
}

func TestColorRoundTrip(t *testing.T) {
	rgb, err := HexToRGBString("#1A2B3C")
	require.NoError(t, err)
	hex, err := RGBStringToHex(rgb)
	require.NoError(t, err)
	assert.Equal(t, "#1A2B3C", hex)
}
