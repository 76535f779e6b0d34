package pagination

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type PaginationTestEnviron struct {
	suite.Suite
	warnings []Warning
}

func TestPaginationComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedots")
	defer teardown()
	suite.Run(t, new(PaginationTestEnviron))
}

func (env *PaginationTestEnviron) SetupTest() {
	env.warnings = nil
}

func (env *PaginationTestEnviron) newPagination(cfg Config) *Pagination {
	return New(cfg, WithDiagnostics(DiagnosticsFunc(func(w Warning) {
		env.warnings = append(env.warnings, w)
	})))
}

func (env *PaginationTestEnviron) kinds() []WarningKind {
	var out []WarningKind
	for _, w := range env.warnings {
		out = append(out, w.Kind)
	}
	return out
}

// --- Tests -----------------------------------------------------------------

func (env *PaginationTestEnviron) TestAsymmetricColorWarnsOnce() {
	cfg := DefaultConfig(4, 0)
	cfg.DotColor = tcell.ColorWhite

	p := env.newPagination(cfg)
	env.Equal([]WarningKind{WarnColorPair}, env.kinds())

	for i := 0; i < 3; i++ {
		dots, err := p.Dots()
		env.Require().NoError(err)
		env.Len(dots, 4, "rendering proceeds despite the warning")
	}
	p.SetConfig(cfg)
	env.Len(env.warnings, 1, "re-rendering must not re-warn")
}

func (env *PaginationTestEnviron) TestAllWarningKinds() {
	cfg := DefaultConfig(3, 0)
	cfg.InactiveDotColor = tcell.ColorGray
	cfg.InactiveDotElement = &Dot{}
	cfg.Tappable = true

	env.newPagination(cfg)
	env.Equal([]WarningKind{WarnColorPair, WarnElementPair, WarnTapWithoutNavigator}, env.kinds())
	for _, w := range env.warnings {
		env.Contains(w.String(), "pagedots | Pagination:")
	}
}

func (env *PaginationTestEnviron) TestSymmetricConfigIsQuiet() {
	cfg := DefaultConfig(3, 0)
	cfg.DotColor = tcell.ColorWhite
	cfg.InactiveDotColor = tcell.ColorGray
	cfg.DotElement = &Dot{}
	cfg.InactiveDotElement = &Dot{}
	cfg.Tappable = true
	cfg.Navigator = &recordingNav{}

	env.newPagination(cfg)
	env.Empty(env.warnings)
}

func (env *PaginationTestEnviron) TestSetConfigWarnsOnlyNewKinds() {
	cfg := DefaultConfig(3, 0)
	cfg.DotColor = tcell.ColorWhite
	p := env.newPagination(cfg)

	next := cfg
	next.Tappable = true
	p.SetConfig(next)
	env.Equal([]WarningKind{WarnColorPair, WarnTapWithoutNavigator}, env.kinds())
}

func (env *PaginationTestEnviron) TestSetActiveIndex() {
	p := env.newPagination(DefaultConfig(5, 0))
	env.Equal(0, p.ActiveIndex())

	p.SetActiveIndex(3)
	env.Equal(3, p.ActiveIndex())
	env.Equal(3, p.DisplayIndex())

	dots, err := p.Dots()
	env.Require().NoError(err)
	env.True(dots[3].Active)
	env.False(dots[0].Active)
}

func (env *PaginationTestEnviron) TestSetConfigMirrorsDriverIndex() {
	cfg := DefaultConfig(5, 1)
	p := env.newPagination(cfg)
	p.SetActiveIndex(4)

	// Unchanged driver index keeps the locally set value
	same := cfg
	same.DotStyle = Style{Glyph: '*'}
	p.SetConfig(same)
	env.Equal(4, p.ActiveIndex())

	moved := same
	moved.ActiveIndex = 2
	p.SetConfig(moved)
	env.Equal(2, p.ActiveIndex())
}

func (env *PaginationTestEnviron) TestDisplayIndexRTL() {
	cfg := DefaultConfig(5, 0)
	cfg.RTL = true
	p := env.newPagination(cfg)
	env.Equal(4, p.DisplayIndex())

	p.SetActiveIndex(2)
	env.Equal(2, p.DisplayIndex())
}

func (env *PaginationTestEnviron) TestContainer() {
	cfg := DefaultConfig(4, 1)
	cfg.RTL = true
	p := env.newPagination(cfg)

	c, err := p.Container()
	env.Require().NoError(err)
	env.Equal(FlowReverseRow, c.Flow)
	env.True(c.Visible)
	env.True(c.PassThrough)
	env.Len(c.Dots, 4)
	env.True(c.Dots[2].Active)

	vertical := cfg
	vertical.Vertical = true
	p.SetConfig(vertical)
	c, err = p.Container()
	env.Require().NoError(err)
	env.Equal(FlowColumn, c.Flow)
	env.True(c.Dots[1].Active, "vertical flow never flips")
}

func (env *PaginationTestEnviron) TestContainerHiddenForShortSequences() {
	for _, count := range []int{0, 1} {
		p := env.newPagination(DefaultConfig(count, 0))
		c, err := p.Container()
		env.Require().NoError(err)
		env.False(c.Visible)
		env.Empty(c.Dots)
	}
}

func (env *PaginationTestEnviron) TestContainerInvalid() {
	p := env.newPagination(DefaultConfig(-2, 0))
	_, err := p.Container()
	env.ErrorIs(err, ErrInvalidConfiguration)
}

func (env *PaginationTestEnviron) TestRendererReceivesSelf() {
	var self *Pagination
	cfg := DefaultConfig(3, 1)
	cfg.Renderer = func(displayIndex, count int, p *Pagination) []Dot {
		self = p
		return []Dot{{Key: "only"}}
	}
	p := env.newPagination(cfg)
	dots, err := p.Dots()
	env.Require().NoError(err)
	env.Same(p, self)
	env.Len(dots, 1)
}

func (env *PaginationTestEnviron) TestDefaultSinkTraces() {
	// Routed through the tracer; must not panic or fail rendering
	tracing.Select("pagedots").SetTraceLevel(tracing.LevelInfo)
	cfg := DefaultConfig(3, 0)
	cfg.Tappable = true
	p := New(cfg)
	dots, err := p.Dots()
	env.Require().NoError(err)
	env.Len(dots, 3)
}

func (env *PaginationTestEnviron) TestContainerCarriesStyle() {
	cfg := DefaultConfig(3, 0)
	cfg.ContainerStyle = Style{Background: tcell.ColorNavy, Spacing: 2}
	cfg.DotContainerStyle = Style{Background: tcell.ColorMaroon}
	p := env.newPagination(cfg)

	c, err := p.Container()
	env.Require().NoError(err)
	env.Equal(cfg.ContainerStyle, c.Style)
	env.Equal(tcell.ColorMaroon, c.Dots[0].ContainerStyle.Background, "per-dot wrapper stays on the dot")
}
