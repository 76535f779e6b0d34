package pagination

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	DefaultInactiveOpacity = 0.5
	DefaultInactiveScale   = 0.5
)

// Navigator is the carousel-side handle that tappable dots dispatch to
type Navigator interface {
	SnapToItem(index int)
}

// Renderer replaces dot synthesis entirely
// It receives the resolved display index, the dot count, and the calling component
type Renderer func(displayIndex, count int, p *Pagination) []Dot

// Config is the full input of one render pass
// Maps are read only; callers pass fresh values instead of mutating them
type Config struct {
	Count       int
	ActiveIndex int

	Vertical          bool
	RTL               bool
	MirrorsByPlatform bool // Host layout engine mirrors RTL rows by itself

	Tappable  bool
	Navigator Navigator

	Renderer Renderer

	DotColor          tcell.Color
	InactiveDotColor  tcell.Color
	DotStyle          Style
	InactiveDotStyle  Style
	DotContainerStyle Style // Wrapper around each dot
	ContainerStyle    Style // The row or column holding all dots

	ColorByIndex map[int]tcell.Color
	StyleByIndex map[int]Style

	DotElement         *Dot // Template for the active slot
	InactiveDotElement *Dot // Template for every other slot

	// Zero selects DefaultInactiveOpacity / DefaultInactiveScale
	InactiveOpacity float64
	InactiveScale   float64
}

// DefaultConfig returns a configuration with default inactive opacity and scale
func DefaultConfig(count, activeIndex int) Config {
	return Config{
		Count:           count,
		ActiveIndex:     activeIndex,
		InactiveOpacity: DefaultInactiveOpacity,
		InactiveScale:   DefaultInactiveScale,
	}
}

// NeedsRTLAdaptation reports whether this configuration flips the row
func (c Config) NeedsRTLAdaptation() bool {
	return NeedsRTLAdaptation(c.Vertical, c.RTL, c.MirrorsByPlatform)
}

// DisplayIndex resolves the configured active index
func (c Config) DisplayIndex() int {
	return Resolve(c.ActiveIndex, c.Count, c.Vertical, c.RTL, c.MirrorsByPlatform)
}

// validate checks the fields every build path depends on
func (c Config) validate() error {
	if c.Count < 0 {
		return invalidf("negative dot count %d", c.Count)
	}
	return nil
}

// validateDefaults checks the fields used to synthesize dots
func (c Config) validateDefaults() error {
	if !unit(c.InactiveOpacity) {
		return invalidf("inactive opacity %v outside [0, 1]", c.InactiveOpacity)
	}
	if !unit(c.InactiveScale) {
		return invalidf("inactive scale %v outside [0, 1]", c.InactiveScale)
	}
	return nil
}

// inactiveLook returns the inactive opacity and scale with zero values defaulted
func (c Config) inactiveLook() (opacity, scale float64) {
	opacity, scale = c.InactiveOpacity, c.InactiveScale
	if opacity == 0 {
		opacity = DefaultInactiveOpacity
	}
	if scale == 0 {
		scale = DefaultInactiveScale
	}
	return opacity, scale
}

func unit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
