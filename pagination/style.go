package pagination

import "github.com/gdamore/tcell/v2"

// Style is one layer of dot styling
// Zero fields are unset and leave earlier layers untouched
type Style struct {
	Glyph      rune           // Explicit glyph, 0 selects by scale
	Background tcell.Color    // Cell background behind the dot
	Attr       tcell.AttrMask // Combined with earlier layers
	Spacing    int            // Cells after the dot along the flow axis, 0 keeps renderer default
}

// IsZero returns true if no field of the style is set
func (s Style) IsZero() bool {
	return s.Glyph == 0 && s.Background == tcell.ColorDefault && s.Attr == tcell.AttrNone && s.Spacing == 0
}

// StyleList is an ordered concatenation of style layers
// Later layers take precedence on conflicting properties
type StyleList []Style

// Flatten merges all layers into a single style
func (l StyleList) Flatten() Style {
	var out Style
	for _, s := range l {
		if s.Glyph != 0 {
			out.Glyph = s.Glyph
		}
		if s.Background != tcell.ColorDefault {
			out.Background = s.Background
		}
		out.Attr |= s.Attr
		if s.Spacing > 0 {
			out.Spacing = s.Spacing
		}
	}
	return out
}
