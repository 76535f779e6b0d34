package pagination

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNav struct {
	Taps []int
}

func (n *recordingNav) SnapToItem(index int) {
	n.Taps = append(n.Taps, index)
}

func TestBuildExactlyOneActive(t *testing.T) {
	for _, rtl := range []bool{false, true} {
		for count := 2; count <= 8; count++ {
			for active := 0; active < count; active++ {
				cfg := DefaultConfig(count, active)
				cfg.RTL = rtl

				dots, err := Build(cfg, nil)
				require.NoError(t, err)
				require.Len(t, dots, count)

				display := cfg.DisplayIndex()
				activeCount := 0
				for i, d := range dots {
					assert.Equal(t, i, d.Index, "dots must be in ascending index order")
					assert.Equal(t, DotKey(i), d.Key)
					if d.Active {
						activeCount++
						assert.Equal(t, display, i)
					}
				}
				assert.Equal(t, 1, activeCount, "count=%d active=%d rtl=%v", count, active, rtl)
			}
		}
	}
}

func TestBuildSuppressesShortSequences(t *testing.T) {
	for _, count := range []int{0, 1} {
		dots, err := Build(DefaultConfig(count, 0), nil)
		require.NoError(t, err)
		assert.Nil(t, dots, "count=%d", count)
	}
}

func TestBuildInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"Negative count", DefaultConfig(-1, 0)},
		{"Active past end", DefaultConfig(3, 3)},
		{"Negative active", DefaultConfig(3, -1)},
		{"Opacity above one", Config{Count: 3, InactiveOpacity: 1.5, InactiveScale: 0.5}},
		{"Negative scale", Config{Count: 3, InactiveOpacity: 0.5, InactiveScale: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dots, err := Build(tt.cfg, nil)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, dots)
		})
	}
}

func TestBuildColorPrecedence(t *testing.T) {
	cfg := DefaultConfig(4, 0)
	cfg.DotColor = tcell.ColorBlue
	cfg.InactiveDotColor = tcell.ColorGray
	cfg.ColorByIndex = map[int]tcell.Color{1: tcell.ColorRed}

	dots, err := Build(cfg, nil)
	require.NoError(t, err)

	for i, d := range dots {
		if i == 1 {
			assert.Equal(t, tcell.ColorRed, d.Color)
		} else {
			assert.Equal(t, tcell.ColorBlue, d.Color, "index %d", i)
		}
		assert.Equal(t, tcell.ColorGray, d.InactiveColor)
	}
}

func TestBuildStyleConcatenation(t *testing.T) {
	base := Style{Glyph: '●', Attr: tcell.AttrBold}
	inactive := Style{Spacing: 2}
	override := Style{Glyph: '◆', Background: tcell.ColorNavy}

	cfg := DefaultConfig(3, 0)
	cfg.DotStyle = base
	cfg.InactiveDotStyle = inactive
	cfg.StyleByIndex = map[int]Style{0: override, 2: override}

	dots, err := Build(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, StyleList{base, override}, dots[0].Style)
	assert.Equal(t, StyleList{base, inactive}, dots[1].Style)
	assert.Equal(t, StyleList{base, inactive, override}, dots[2].Style)

	flat := dots[2].Style.Flatten()
	assert.Equal(t, '◆', flat.Glyph, "later layer wins on glyph")
	assert.Equal(t, tcell.ColorNavy, flat.Background)
	assert.Equal(t, tcell.AttrBold, flat.Attr, "attributes from base survive")
	assert.Equal(t, 2, flat.Spacing)
}

func TestBuildOpacityAndScale(t *testing.T) {
	cfg := DefaultConfig(3, 1)
	cfg.InactiveOpacity = 0.3
	cfg.InactiveScale = 0.6

	dots, err := Build(cfg, nil)
	require.NoError(t, err)

	for _, d := range dots {
		if d.Active {
			assert.Equal(t, 1.0, d.Opacity)
			assert.Equal(t, 1.0, d.Scale)
		} else {
			assert.Equal(t, 0.3, d.Opacity)
			assert.Equal(t, 0.6, d.Scale)
		}
	}
}

func TestBuildTappableNeedsNavigator(t *testing.T) {
	cfg := DefaultConfig(3, 0)
	cfg.Tappable = true

	dots, err := Build(cfg, nil)
	require.NoError(t, err)
	for _, d := range dots {
		assert.False(t, d.Tappable, "tap must stay disabled without a navigator")
	}

	nav := &recordingNav{}
	cfg.Navigator = nav
	dots, err = Build(cfg, nil)
	require.NoError(t, err)
	for _, d := range dots {
		assert.True(t, d.Tappable)
		assert.Same(t, nav, d.Navigator)
	}
}

func TestBuildTemplatesKeepIdentity(t *testing.T) {
	// Templates carry stale identity on purpose
	activeTpl := &Dot{Key: "stale", Index: 99, Active: false, Color: tcell.ColorGreen, Opacity: 1, Scale: 1}
	inactiveTpl := &Dot{Key: "stale", Index: 42, Active: true, Color: tcell.ColorGray, Style: StyleList{{Glyph: '○'}}}

	cfg := DefaultConfig(4, 2)
	cfg.DotElement = activeTpl
	cfg.InactiveDotElement = inactiveTpl
	cfg.ColorByIndex = map[int]tcell.Color{0: tcell.ColorRed}

	dots, err := Build(cfg, nil)
	require.NoError(t, err)
	require.Len(t, dots, 4)

	for i, d := range dots {
		assert.Equal(t, i, d.Index)
		assert.Equal(t, DotKey(i), d.Key)
		assert.Equal(t, i == 2, d.Active)
		if i == 2 {
			assert.Equal(t, tcell.ColorGreen, d.Color)
		} else {
			assert.Equal(t, tcell.ColorGray, d.Color, "templates bypass per-index overrides")
		}
	}

	// Clones must not alias the template
	dots[0].Style[0].Glyph = 'x'
	assert.Equal(t, '○', inactiveTpl.Style[0].Glyph)
	assert.Equal(t, 42, inactiveTpl.Index)
}

func TestBuildSingleTemplateFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig(3, 0)
	cfg.DotElement = &Dot{Color: tcell.ColorGreen, Opacity: 1, Scale: 1}
	cfg.DotColor = tcell.ColorBlue

	dots, err := Build(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, SourceTemplate, SourceFor(cfg, true))
	assert.Equal(t, SourceDefault, SourceFor(cfg, false))
	assert.Equal(t, tcell.ColorGreen, dots[0].Color)
	assert.Equal(t, tcell.ColorBlue, dots[1].Color)
	assert.Equal(t, DefaultInactiveOpacity, dots[1].Opacity)
}

func TestBuildCustomRendererVerbatim(t *testing.T) {
	var gotDisplay, gotCount int
	returned := []Dot{{Key: "a", Index: 7}, {Key: "b"}, {}}

	cfg := DefaultConfig(5, 0)
	cfg.RTL = true
	cfg.DotColor = tcell.ColorRed
	cfg.ColorByIndex = map[int]tcell.Color{0: tcell.ColorBlue}
	cfg.Renderer = func(displayIndex, count int, p *Pagination) []Dot {
		gotDisplay, gotCount = displayIndex, count
		return returned
	}

	dots, err := Build(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, gotDisplay, "renderer receives the resolved display index")
	assert.Equal(t, 5, gotCount)
	require.Len(t, dots, 3, "length differs from count and is kept")
	assert.Same(t, &returned[0], &dots[0], "sequence is returned untouched")
	if diff := cmp.Diff(returned, dots); diff != "" {
		t.Errorf("custom output mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCustomRendererSkipsActiveValidation(t *testing.T) {
	cfg := DefaultConfig(3, 10)
	cfg.Renderer = func(displayIndex, count int, p *Pagination) []Dot {
		return nil
	}
	dots, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, dots)
}

func TestBuildCustomRendererDuplicateKeys(t *testing.T) {
	cfg := DefaultConfig(3, 0)
	cfg.Renderer = func(displayIndex, count int, p *Pagination) []Dot {
		return []Dot{{Key: "k"}, {Key: "k"}}
	}
	_, err := Build(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestBuildIdempotent(t *testing.T) {
	nav := &recordingNav{}
	cfg := DefaultConfig(6, 3)
	cfg.RTL = true
	cfg.Tappable = true
	cfg.Navigator = nav
	cfg.DotColor = tcell.ColorWhite
	cfg.InactiveDotColor = tcell.ColorGray
	cfg.DotStyle = Style{Glyph: '●'}
	cfg.StyleByIndex = map[int]Style{4: {Attr: tcell.AttrBold}}
	cfg.ColorByIndex = map[int]tcell.Color{5: tcell.ColorRed}

	first, err := Build(cfg, nil)
	require.NoError(t, err)
	second, err := Build(cfg, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated build differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, map[int]tcell.Color{5: tcell.ColorRed}, cfg.ColorByIndex, "override maps are not mutated")
}

func TestBuildCustomRendererSkipsDefaultValidation(t *testing.T) {
	called := false
	cfg := Config{Count: 3, InactiveOpacity: 2, InactiveScale: -1}
	cfg.Renderer = func(displayIndex, count int, p *Pagination) []Dot {
		called = true
		return []Dot{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	}

	dots, err := Build(cfg, nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Len(t, dots, 3)

	cfg.Count = -1
	_, err = Build(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConfiguration, "negative count is rejected on every path")
}

func TestBuildZeroConfigUsesDefaultLook(t *testing.T) {
	dots, err := Build(Config{Count: 3}, nil)
	require.NoError(t, err)
	require.Len(t, dots, 3)

	assert.Equal(t, 1.0, dots[0].Opacity)
	assert.Equal(t, 1.0, dots[0].Scale)
	for _, d := range dots[1:] {
		assert.Equal(t, DefaultInactiveOpacity, d.Opacity)
		assert.Equal(t, DefaultInactiveScale, d.Scale)
	}

	// One field set, the other defaulted
	dots, err = Build(Config{Count: 2, InactiveOpacity: 0.2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.2, dots[1].Opacity)
	assert.Equal(t, DefaultInactiveScale, dots[1].Scale)
}
