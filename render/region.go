package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pagedots/dot"
)

// Canvas is a cell surface with known dimensions, tcell.Screen satisfies it
type Canvas interface {
	dot.Canvas
	Size() (width, height int)
}

// Region represents a rectangular area within a canvas
// All coordinates are relative to the region's origin
type Region struct {
	Canvas dot.Canvas
	X, Y   int // Absolute position on the canvas
	W, H   int
}

// NewRegion creates a region on c with bounds
func NewRegion(c dot.Canvas, x, y, w, h int) Region {
	return Region{Canvas: c, X: x, Y: y, W: w, H: h}
}

// FullRegion covers the whole canvas
func FullRegion(c Canvas) Region {
	w, h := c.Size()
	return NewRegion(c, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{Canvas: r.Canvas, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// SetContent sets a single cell with bounds checking, making Region a dot.Canvas
func (r Region) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Canvas.SetContent(r.X+x, r.Y+y, primary, combining, style)
}

// Fill fills entire region with background color
func (r Region) Fill(bg tcell.Color) {
	st := tcell.StyleDefault.Background(bg)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.SetContent(x, y, ' ', nil, st)
		}
	}
}

// Text renders text at position, truncates at region edge
func (r Region) Text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		if x+col >= r.W {
			break
		}
		r.SetContent(x+col, y, ch, nil, style)
		col++
	}
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-len([]rune(s)))/2, y, s, style)
}

// Contains reports whether absolute point (x, y) lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
