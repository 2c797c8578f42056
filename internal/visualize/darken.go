package visualize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FallbackColor is returned by Darken for input it cannot parse.
const FallbackColor = "#808080"

// OverlapDarkenFactor darkens the primary chunk's color where chunks overlap.
const OverlapDarkenFactor = 0.65

// Darken scales each channel of a hex color by factor. It accepts 3 or 6 hex
// digits with or without a leading '#'. Channels are truncated and clamped to
// [0, 255]. Anything unparsable yields FallbackColor.
func Darken(hex string, factor float64) string {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return FallbackColor
	}

	h := strings.TrimLeft(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return FallbackColor
	}

	var rgb [3]int
	for i := range rgb {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return FallbackColor
		}
		c := math.Trunc(float64(v) * factor)
		rgb[i] = int(math.Max(0, math.Min(255, c)))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}
