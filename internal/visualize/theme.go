package visualize

import (
	"fmt"
	"slices"
	"sort"
)

const (
	FamilyLight  = "light"
	FamilyDark   = "dark"
	FamilyCustom = "custom"

	// DefaultTheme is used when a request names no theme.
	DefaultTheme = "pastel"

	TextColorLight = "#333333"
	TextColorDark  = "#FFFFFF"
)

var lightThemes = map[string][]string{
	"pastel": {
		"#FFADAD", "#FFD6A5", "#FDFFB6", "#CAFFBF",
		"#9BF6FF", "#A0C4FF", "#BDB2FF", "#FFC6FF",
	},
	"tiktokenizer": {
		"#bae6fc", "#fde68a", "#bbf7d0", "#fed7aa", "#a5f3fc",
		"#e5e7eb", "#eee2fd", "#e4f9c0", "#fecdd3",
	},
	"ocean_breeze": {
		"#E0FFFF", "#B0E0E6", "#ADD8E6", "#87CEEB", "#4682B4",
	},
}

var darkThemes = map[string][]string{
	"tiktokenizer_dark": {
		"#2A4E66", "#80662A", "#2A6648", "#66422A", "#2A4A66",
		"#3A3D40", "#55386E", "#3A6640", "#66353B",
	},
	"pastel_dark": {
		"#5C2E2E", "#5C492E", "#4F5C2E", "#2E5C4F",
		"#2E3F5C", "#3A3A3A", "#4F2E5C", "#2E5C3F",
	},
	"midnight": {
		"#00008B", "#483D8B", "#2F4F4F", "#191970",
	},
}

// Theme is an ordered palette plus the text color that reads well on it.
// An empty TextColor leaves the surrounding page's color in effect.
type Theme struct {
	Name      string   `json:"name"`
	Family    string   `json:"family"`
	Colors    []string `json:"colors"`
	TextColor string   `json:"text_color"`
}

// Resolve looks up a built-in theme. Dark palettes are checked first.
// The returned Theme owns its Colors slice.
func Resolve(name string) (Theme, error) {
	if colors, ok := darkThemes[name]; ok {
		return Theme{Name: name, Family: FamilyDark, Colors: slices.Clone(colors), TextColor: TextColorDark}, nil
	}
	if colors, ok := lightThemes[name]; ok {
		return Theme{Name: name, Family: FamilyLight, Colors: slices.Clone(colors), TextColor: TextColorLight}, nil
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// CustomTheme wraps caller-supplied colors. It has no text color.
func CustomTheme(colors []string) (Theme, error) {
	if len(colors) == 0 {
		return Theme{}, ErrEmptyPalette
	}
	return Theme{Name: FamilyCustom, Family: FamilyCustom, Colors: slices.Clone(colors)}, nil
}

// ColorFor cycles through the palette so every chunk id gets a color.
func (t Theme) ColorFor(index int) string {
	if len(t.Colors) == 0 {
		return FallbackColor
	}
	i := index % len(t.Colors)
	if i < 0 {
		i += len(t.Colors)
	}
	return t.Colors[i]
}

// Names lists every built-in theme name in sorted order.
func Names() []string {
	names := make([]string, 0, len(lightThemes)+len(darkThemes))
	for name := range lightThemes {
		names = append(names, name)
	}
	for name := range darkThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog returns every built-in theme, light family first, sorted by name
// within each family.
func Catalog() []Theme {
	names := Names()
	themes := make([]Theme, 0, len(names))
	for _, name := range names {
		t, _ := Resolve(name)
		themes = append(themes, t)
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return themes[i].Family == FamilyLight && themes[j].Family != FamilyLight
	})
	return themes
}
