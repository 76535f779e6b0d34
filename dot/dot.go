// Package dot draws a single pagination indicator and dispatches its taps.
package dot

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pagedots/pagination"
	"github.com/mattn/go-runewidth"
)

// Glyphs picked by scale when no style sets one
const (
	GlyphLarge  = '●'
	GlyphMedium = '•'
	GlyphSmall  = '·'
)

// Canvas is the cell surface a dot draws onto, tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Glyph returns the rune drawn for d
func Glyph(d pagination.Dot) rune {
	if g := d.Style.Flatten().Glyph; g != 0 {
		return g
	}
	switch {
	case d.Scale >= 0.75:
		return GlyphLarge
	case d.Scale >= 0.4:
		return GlyphMedium
	default:
		return GlyphSmall
	}
}

// Width returns the number of cells the dot occupies
func Width(d pagination.Dot) int {
	if w := runewidth.RuneWidth(Glyph(d)); w > 1 {
		return w
	}
	return 1
}

// Base returns the unblended color of d
// Inactive dots use InactiveColor when set
func Base(d pagination.Dot) tcell.Color {
	if !d.Active && d.InactiveColor != tcell.ColorDefault {
		return d.InactiveColor
	}
	return d.Color
}

// Fill returns the foreground color of d over background bg, opacity blends toward bg
func Fill(d pagination.Dot, bg tcell.Color) tcell.Color {
	fg := Base(d)
	if fg == tcell.ColorDefault || d.Opacity >= 1 {
		return fg
	}
	if bg == tcell.ColorDefault {
		bg = tcell.ColorBlack
	}
	return blend(bg, fg, d.Opacity)
}

// blend interpolates from a to b by t in RGB space
func blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	if ar < 0 || br < 0 {
		return b
	}
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*t+0.5)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

// Style returns the cell style for d over background bg
func Style(d pagination.Dot, bg tcell.Color) tcell.Style {
	flat := d.Style.Flatten()

	cellBg := bg
	if d.ContainerStyle.Background != tcell.ColorDefault {
		cellBg = d.ContainerStyle.Background
	}
	if flat.Background != tcell.ColorDefault {
		cellBg = flat.Background
	}

	attr := d.ContainerStyle.Attr | flat.Attr
	fg := Fill(d, cellBg)
	// Without a color there is nothing to blend, dim instead
	if fg == tcell.ColorDefault && d.Opacity < 1 {
		attr |= tcell.AttrDim
	}
	if d.Active {
		attr |= tcell.AttrBold
	}

	return tcell.StyleDefault.Foreground(fg).Background(cellBg).Attributes(attr)
}

// Draw renders d at (x, y) and returns the occupied width
func Draw(c Canvas, x, y int, d pagination.Dot, bg tcell.Color) int {
	c.SetContent(x, y, Glyph(d), nil, Style(d, bg))
	return Width(d)
}

// Tap dispatches a tap on d to its navigator
// Returns false when the dot is not tappable or has no navigator
func Tap(d pagination.Dot) bool {
	if !d.Tappable || d.Navigator == nil {
		return false
	}
	d.Navigator.SnapToItem(d.Index)
	return true
}
