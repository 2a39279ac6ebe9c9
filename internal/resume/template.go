package resume

// DefaultTitle is used when a resume has no title.
const DefaultTitle = "Untitled Resume"

// Theme identifiers, fixed set.
const (
	ThemeModern   = "modern"
	ThemeClassic  = "classic"
	ThemeCreative = "creative"
	ThemeMinimal  = "minimal"
)

// Themes returns the fixed theme set in display order.
func Themes() []string {
	return []string{ThemeModern, ThemeClassic, ThemeCreative, ThemeMinimal}
}

// ValidTheme reports whether theme is in the fixed set.
func ValidTheme(theme string) bool {
	for _, t := range Themes() {
		if t == theme {
			return true
		}
	}
	return false
}

// Palette is a named two-color selection: primary then secondary.
type Palette struct {
	Name   string
	Colors [2]string
}

// Slice returns the colors as the two-element slice a Template stores. The
// array field of an unassigned Palette value cannot be sliced directly, so
// callers go through this method.
func (p Palette) Slice() []string {
	return p.Colors[:]
}

// The fixed palette set.
var palettes = []Palette{
	{Name: "Ocean", Colors: [2]string{"#2563EB", "#DBEAFE"}},
	{Name: "Forest", Colors: [2]string{"#047857", "#D1FAE5"}},
	{Name: "Sunset", Colors: [2]string{"#EA580C", "#FFEDD5"}},
	{Name: "Purple", Colors: [2]string{"#7C3AED", "#EDE9FE"}},
	{Name: "Rose", Colors: [2]string{"#DC2626", "#FEE2E2"}},
	{Name: "Slate", Colors: [2]string{"#1F2937", "#F3F4F6"}},
}

// Palettes returns the fixed palette set in display order.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}

// DefaultPalette is the selection used for new resumes.
func DefaultPalette() Palette { return palettes[0] }

// PaletteByName looks a palette up by its display name.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// ResolvePalette maps a stored color pair back to a named palette, falling
// back to a literal "Custom" palette for colors outside the fixed set.
func ResolvePalette(colors []string) Palette {
	if len(colors) == 0 {
		return DefaultPalette()
	}
	for _, p := range palettes {
		if p.Colors[0] == colors[0] {
			return p
		}
	}
	custom := Palette{Name: "Custom", Colors: DefaultPalette().Colors}
	custom.Colors[0] = colors[0]
	if len(colors) > 1 {
		custom.Colors[1] = colors[1]
	}
	return custom
}
