package pagination

import "sync/atomic"

// Option configures a Pagination at construction
type Option func(*Pagination)

// WithDiagnostics routes configuration warnings to d instead of the tracer
func WithDiagnostics(d Diagnostics) Option {
	return func(p *Pagination) {
		if d != nil {
			p.diag = d
		}
	}
}

// Pagination is the dot row component
// The mirrored active index is its only state; configuration is replaced wholesale on each render
type Pagination struct {
	cfg    Config
	active atomic.Int64 // Written only by SetActiveIndex / SetConfig

	diag   Diagnostics
	warned map[WarningKind]bool
}

// New creates a component and emits configuration warnings for cfg
func New(cfg Config, opts ...Option) *Pagination {
	p := &Pagination{
		cfg:    cfg,
		diag:   traceDiagnostics{},
		warned: make(map[WarningKind]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.active.Store(int64(cfg.ActiveIndex))
	p.warn(cfg)
	return p
}

// SetConfig installs the configuration for the next render
// The mirrored index follows cfg only when the driver changed ActiveIndex
func (p *Pagination) SetConfig(cfg Config) {
	if cfg.ActiveIndex != p.cfg.ActiveIndex {
		p.active.Store(int64(cfg.ActiveIndex))
	}
	p.cfg = cfg
	p.warn(cfg)
}

// Config returns the installed configuration
func (p *Pagination) Config() Config {
	return p.cfg
}

// SetActiveIndex updates the mirrored active index
func (p *Pagination) SetActiveIndex(index int) {
	p.active.Store(int64(index))
}

// ActiveIndex returns the mirrored active index before direction adaptation
func (p *Pagination) ActiveIndex() int {
	return int(p.active.Load())
}

// DisplayIndex returns the slot drawn as active
func (p *Pagination) DisplayIndex() int {
	return p.current().DisplayIndex()
}

// Dots builds the descriptor sequence for the current state
func (p *Pagination) Dots() ([]Dot, error) {
	return Build(p.current(), p)
}

// current returns the installed configuration with the mirrored index applied
func (p *Pagination) current() Config {
	cfg := p.cfg
	cfg.ActiveIndex = p.ActiveIndex()
	return cfg
}

// warn emits each warning kind at most once per component
func (p *Pagination) warn(cfg Config) {
	for _, w := range Check(cfg) {
		if p.warned[w.Kind] {
			continue
		}
		p.warned[w.Kind] = true
		p.diag.Warn(w)
	}
}
