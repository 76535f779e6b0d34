package pagination

// Flow is the container's main-axis direction
type Flow uint8

const (
	FlowRow Flow = iota
	FlowReverseRow
	FlowColumn
)

// String returns the flex-style name of the flow
func (f Flow) String() string {
	switch f {
	case FlowReverseRow:
		return "row-reverse"
	case FlowColumn:
		return "column"
	default:
		return "row"
	}
}

// FlowFor selects the container flow for the given layout flags
func FlowFor(vertical, rtl, mirrorsByPlatform bool) Flow {
	switch {
	case vertical:
		return FlowColumn
	case NeedsRTLAdaptation(vertical, rtl, mirrorsByPlatform):
		return FlowReverseRow
	default:
		return FlowRow
	}
}

// Container wraps a dot sequence for layout
type Container struct {
	Flow    Flow
	Dots    []Dot
	Style   Style // Container style, Background fills the strip and Spacing sets the gap
	Visible bool // False when fewer than two dots are configured
	// PassThrough means only dot cells take pointer input; gaps fall through to the carousel
	PassThrough bool
}

// Container assembles the current dot sequence with its flow
func (p *Pagination) Container() (Container, error) {
	cfg := p.current()
	dots, err := Build(cfg, p)
	if err != nil {
		return Container{}, err
	}
	return Container{
		Flow:        FlowFor(cfg.Vertical, cfg.RTL, cfg.MirrorsByPlatform),
		Dots:        dots,
		Style:       cfg.ContainerStyle,
		Visible:     cfg.Count >= 2,
		PassThrough: true,
	}, nil
}
