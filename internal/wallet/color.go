package wallet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColorPattern    = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
	rgbChannelsPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
)

// HexToRGBString converts "#RRGGBB" (or shorthand "#RGB") into the
// "rgb(r, g, b)" form Apple expects. The universal model stores hex and
// the Apple projection passes it through unchanged, so callers that need
// the rgb() form invoke this at the boundary.
func HexToRGBString(hex string) (string, error) {
	if !hexColorPattern.MatchString(hex) {
		return "", fmt.Errorf("invalid hex color %q", hex)
	}

	digits := hex[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)

	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
}

// RGBStringToHex converts "rgb(r, g, b)" into "#RRGGBB". Unlike the
// validator's format rule, channels are range-checked here; an rgb()
// string with a channel over 255 cannot round-trip to hex.
func RGBStringToHex(rgb string) (string, error) {
	matches := rgbChannelsPattern.FindStringSubmatch(strings.TrimSpace(rgb))
	if matches == nil {
		return "", fmt.Errorf("invalid rgb color %q", rgb)
	}

	channels := make([]uint64, 3)
	for i, raw := range matches[1:] {
		val, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || val > 255 {
			return "", fmt.Errorf("rgb channel %s out of range in %q", raw, rgb)
		}
		channels[i] = val
	}

	return fmt.Sprintf("#%02X%02X%02X", channels[0], channels[1], channels[2]), nil
}
