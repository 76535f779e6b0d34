package pagination

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Dot describes one renderable indicator slot
// Descriptors are rebuilt on every render and own no resources
type Dot struct {
	Key    string // Stable per-slot key, "pagination-dot-<index>" for built dots
	Index  int
	Active bool

	Color          tcell.Color // Fill, zero lets the renderer pick
	InactiveColor  tcell.Color // Fill while inactive, zero falls back to Color
	Style          StyleList
	ContainerStyle Style

	Opacity float64 // 0..1
	Scale   float64 // 0..1

	Tappable  bool
	Navigator Navigator
}

// Clone returns a copy that shares no mutable state with d
func (d Dot) Clone() Dot {
	c := d
	if d.Style != nil {
		c.Style = append(StyleList(nil), d.Style...)
	}
	return c
}

// DotKey returns the key assigned to the dot at index
func DotKey(index int) string {
	return "pagination-dot-" + strconv.Itoa(index)
}
