package visualize

import (
	"math"
	"testing"
)

func TestDarken(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		factor float64
		want   string
	}{
		{name: "six digits", hex: "#FFADAD", factor: 0.65, want: "#a57070"},
		{name: "no hash", hex: "ffffff", factor: 0.5, want: "#7f7f7f"},
		{name: "three digits", hex: "#fff", factor: 1, want: "#ffffff"},
		{name: "factor above one clamps", hex: "#808080", factor: 3, want: "#ffffff"},
		{name: "negative factor clamps", hex: "#808080", factor: -1, want: "#000000"},
		{name: "not a color", hex: "not-a-color", factor: 0.7, want: FallbackColor},
		{name: "bad digits", hex: "#gggggg", factor: 0.7, want: FallbackColor},
		{name: "wrong length", hex: "#12345", factor: 0.7, want: FallbackColor},
		{name: "empty", hex: "", factor: 0.7, want: FallbackColor},
		{name: "nan factor", hex: "#ffffff", factor: math.NaN(), want: FallbackColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Darken(tt.hex, tt.factor); got != tt.want {
				t.Errorf("Darken(%q, %v) = %q, want %q", tt.hex, tt.factor, got, tt.want)
			}
		})
	}
}
