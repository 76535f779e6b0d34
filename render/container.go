package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pagedots/dot"
	"github.com/lixenwraith/pagedots/pagination"
)

// Options configures container drawing
type Options struct {
	Spacing    int         // Cells between dots when a dot style sets none
	Background tcell.Color // Background dots blend toward
}

// DefaultOptions returns single-cell spacing over the terminal background
func DefaultOptions() Options {
	return Options{Spacing: 1}
}

// DotBounds stores the absolute cells covered by one drawn dot
type DotBounds struct {
	X, Y, W int
	Dot     pagination.Dot
}

// Layout is the result of drawing a container, used for hit testing
type Layout struct {
	Flow pagination.Flow
	Dots []DotBounds
}

// DrawContainer draws c centered in r following its flow
// A container background fills all of r and replaces opts.Background, container spacing replaces opts.Spacing
// Returns bounds of each dot for hit testing; invisible containers draw nothing
func DrawContainer(r Region, c pagination.Container, opts Options) Layout {
	layout := Layout{Flow: c.Flow}
	if !c.Visible || len(c.Dots) == 0 || r.W <= 0 || r.H <= 0 {
		return layout
	}

	if bg := c.Style.Background; bg != tcell.ColorDefault {
		r.Fill(bg)
		opts.Background = bg
	}
	if c.Style.Spacing > 0 {
		opts.Spacing = c.Style.Spacing
	}

	order := flowOrder(c)
	extent := 0
	for i, d := range order {
		if c.Flow == pagination.FlowColumn {
			extent++
		} else {
			extent += dot.Width(d)
		}
		if i < len(order)-1 {
			extent += spacing(d, opts)
		}
	}

	layout.Dots = make([]DotBounds, 0, len(order))

	if c.Flow == pagination.FlowColumn {
		x := r.W / 2
		y := max((r.H-extent)/2, 0)
		for _, d := range order {
			if y >= r.H {
				break
			}
			w := dot.Draw(r, x, y, d, opts.Background)
			layout.Dots = append(layout.Dots, DotBounds{X: r.X + x, Y: r.Y + y, W: w, Dot: d})
			y += 1 + spacing(d, opts)
		}
		return layout
	}

	x := max((r.W-extent)/2, 0)
	y := (r.H - 1) / 2
	for _, d := range order {
		if x >= r.W {
			break
		}
		w := dot.Draw(r, x, y, d, opts.Background)
		layout.Dots = append(layout.Dots, DotBounds{X: r.X + x, Y: r.Y + y, W: w, Dot: d})
		x += w + spacing(d, opts)
	}
	return layout
}

// flowOrder returns dots in on-screen order, reverse rows put slot 0 last
// On a canvas that does not mirror, the reversed row and the flipped display index
// cancel out: item 0 stays leftmost and the active dot sits where it would in LTR
func flowOrder(c pagination.Container) []pagination.Dot {
	if c.Flow != pagination.FlowReverseRow {
		return c.Dots
	}
	out := make([]pagination.Dot, len(c.Dots))
	for i, d := range c.Dots {
		out[len(c.Dots)-1-i] = d
	}
	return out
}

func spacing(d pagination.Dot, opts Options) int {
	if s := d.Style.Flatten().Spacing; s > 0 {
		return s
	}
	if opts.Spacing < 0 {
		return 0
	}
	return opts.Spacing
}

// HitTest returns the dot covering absolute cell (x, y)
// Gaps between dots never hit
func (l Layout) HitTest(x, y int) (pagination.Dot, bool) {
	for _, b := range l.Dots {
		if y == b.Y && x >= b.X && x < b.X+b.W {
			return b.Dot, true
		}
	}
	return pagination.Dot{}, false
}

// MouseAction classifies a mouse event against the buttons held before it
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// MouseTracker remembers held buttons between events
// tcell reports button state, not transitions; the tracker recovers press edges
type MouseTracker struct {
	held tcell.ButtonMask
}

// Update records ev and returns its action plus the buttons that went down with it
func (m *MouseTracker) Update(ev *tcell.EventMouse) (MouseAction, tcell.ButtonMask) {
	buttons := ev.Buttons() &^ wheelMask
	pressed := buttons &^ m.held
	released := m.held &^ buttons
	m.held = buttons

	switch {
	case pressed != 0:
		return MouseActionPress, pressed
	case released != 0:
		return MouseActionRelease, 0
	case buttons != 0:
		return MouseActionDrag, 0
	default:
		return MouseActionMove, 0
	}
}

// HandleMouse dispatches a primary-button press on a dot to its navigator
// Every mouse event must pass through so m sees releases; drags with the button held never tap again
// Returns false when the event should fall through to the carousel
func (l Layout) HandleMouse(ev *tcell.EventMouse, m *MouseTracker) bool {
	if ev == nil || m == nil {
		return false
	}
	action, pressed := m.Update(ev)
	if action != MouseActionPress || pressed&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()
	d, ok := l.HitTest(x, y)
	if !ok {
		return false
	}
	return dot.Tap(d)
}
