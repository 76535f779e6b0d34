package pagination

import "github.com/gdamore/tcell/v2"

// Source identifies the strategy that produces a dot
type Source uint8

const (
	SourceDefault  Source = iota // Synthesized from config defaults and overrides
	SourceTemplate               // Cloned from DotElement / InactiveDotElement
	SourceCustom                 // Whole sequence returned by Config.Renderer
)

// String returns human-readable source name
func (s Source) String() string {
	switch s {
	case SourceTemplate:
		return "template"
	case SourceCustom:
		return "custom"
	default:
		return "default"
	}
}

// SourceFor selects the strategy for a slot with the given active state
func SourceFor(cfg Config, active bool) Source {
	switch {
	case cfg.Renderer != nil:
		return SourceCustom
	case active && cfg.DotElement != nil:
		return SourceTemplate
	case !active && cfg.InactiveDotElement != nil:
		return SourceTemplate
	default:
		return SourceDefault
	}
}

// Build produces the dot sequence for one render pass
// Sequences with fewer than two dots carry no position and build to nil
func Build(cfg Config, self *Pagination) ([]Dot, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Count < 2 {
		return nil, nil
	}

	display := cfg.DisplayIndex()

	if cfg.Renderer != nil {
		dots := cfg.Renderer(display, cfg.Count, self)
		if err := checkKeys(dots); err != nil {
			return nil, err
		}
		return dots, nil
	}

	if err := cfg.validateDefaults(); err != nil {
		return nil, err
	}
	if cfg.ActiveIndex < 0 || cfg.ActiveIndex >= cfg.Count {
		return nil, invalidf("active index %d outside [0, %d)", cfg.ActiveIndex, cfg.Count)
	}

	dots := make([]Dot, cfg.Count)
	for i := range cfg.Count {
		active := i == display

		var d Dot
		switch SourceFor(cfg, active) {
		case SourceTemplate:
			if active {
				d = cfg.DotElement.Clone()
			} else {
				d = cfg.InactiveDotElement.Clone()
			}
		default:
			d = defaultDot(cfg, i, active)
		}

		// Identity is never taken from a template
		d.Key = DotKey(i)
		d.Index = i
		d.Active = active
		dots[i] = d
	}
	return dots, nil
}

func defaultDot(cfg Config, index int, active bool) Dot {
	color := cfg.DotColor
	if c, ok := cfg.ColorByIndex[index]; ok && c != tcell.ColorDefault {
		color = c
	}

	style := StyleList{cfg.DotStyle}
	if !active && !cfg.InactiveDotStyle.IsZero() {
		style = append(style, cfg.InactiveDotStyle)
	}
	if s, ok := cfg.StyleByIndex[index]; ok {
		style = append(style, s)
	}

	opacity, scale := 1.0, 1.0
	if !active {
		opacity, scale = cfg.inactiveLook()
	}

	return Dot{
		Color:          color,
		InactiveColor:  cfg.InactiveDotColor,
		Style:          style,
		ContainerStyle: cfg.DotContainerStyle,
		Opacity:        opacity,
		Scale:          scale,
		Tappable:       cfg.Tappable && cfg.Navigator != nil,
		Navigator:      cfg.Navigator,
	}
}

// checkKeys rejects custom sequences whose keys collide, renderers hit-test by key
func checkKeys(dots []Dot) error {
	seen := make(map[string]int, len(dots))
	for i, d := range dots {
		if d.Key == "" {
			continue
		}
		if prev, ok := seen[d.Key]; ok {
			return invalidf("custom renderer returned duplicate key %q at positions %d and %d", d.Key, prev, i)
		}
		seen[d.Key] = i
	}
	return nil
}
