package store

// Palette holds the user's color bindings: role-to-hex bindings, opacity
// roles, the list of palette families, and per-consumer shade selections
// (for example an elevation level picking family "gray" shade 900).
type Palette struct {
	Roles      map[string]string           `json:"roles"`
	Opacities  map[string]float64          `json:"opacities"`
	Families   []string                    `json:"families"`
	Selections map[string]PaletteSelection `json:"selections"`
}

// PaletteSelection binds a consumer to a family and shade level.
type PaletteSelection struct {
	Family string `json:"family"`
	Shade  string `json:"shade"`
}

// Clone deep-copies the palette.
func (p Palette) Clone() Palette {
	out := Palette{
		Roles:      make(map[string]string, len(p.Roles)),
		Opacities:  make(map[string]float64, len(p.Opacities)),
		Families:   append([]string(nil), p.Families...),
		Selections: make(map[string]PaletteSelection, len(p.Selections)),
	}
	for role, hexValue := range p.Roles {
		out.Roles[role] = hexValue
	}
	for role, alpha := range p.Opacities {
		out.Opacities[role] = alpha
	}
	for key, selection := range p.Selections {
		out.Selections[key] = selection
	}
	return out
}

// Role returns the hex value bound to a role.
func (p Palette) Role(role string) (string, bool) {
	hexValue, ok := p.Roles[role]
	return hexValue, ok
}

// Opacity returns the alpha bound to an opacity role.
func (p Palette) Opacity(role string) (float64, bool) {
	alpha, ok := p.Opacities[role]
	return alpha, ok
}

// Selection returns the shade selection recorded under a consumer key.
func (p Palette) Selection(key string) (PaletteSelection, bool) {
	selection, ok := p.Selections[key]
	return selection, ok
}
