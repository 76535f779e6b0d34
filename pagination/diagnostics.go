package pagination

import "github.com/gdamore/tcell/v2"

// WarningKind classifies non-fatal configuration problems
type WarningKind uint8

const (
	WarnColorPair           WarningKind = iota + 1 // Only one of DotColor / InactiveDotColor set
	WarnElementPair                                // Only one of DotElement / InactiveDotElement set
	WarnTapWithoutNavigator                        // Tappable without a Navigator
)

// String returns human-readable warning kind
func (k WarningKind) String() string {
	switch k {
	case WarnColorPair:
		return "color-pair"
	case WarnElementPair:
		return "element-pair"
	case WarnTapWithoutNavigator:
		return "tap-without-navigator"
	default:
		return "unknown"
	}
}

// Warning is a configuration diagnostic, rendering proceeds regardless
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return "pagedots | Pagination: " + w.Message
}

// Diagnostics receives configuration warnings
type Diagnostics interface {
	Warn(w Warning)
}

// DiagnosticsFunc adapts a function to Diagnostics
type DiagnosticsFunc func(w Warning)

func (f DiagnosticsFunc) Warn(w Warning) { f(w) }

// traceDiagnostics forwards warnings to the process-wide tracer
type traceDiagnostics struct{}

func (traceDiagnostics) Warn(w Warning) {
	tracer().Infof("warning [%s] %s", w.Kind, w.String())
}

// Check returns the warnings a configuration triggers, in a fixed order
func Check(cfg Config) []Warning {
	var out []Warning
	if (cfg.DotColor != tcell.ColorDefault) != (cfg.InactiveDotColor != tcell.ColorDefault) {
		out = append(out, Warning{
			Kind:    WarnColorPair,
			Message: "You need to specify both DotColor and InactiveDotColor",
		})
	}
	if (cfg.DotElement != nil) != (cfg.InactiveDotElement != nil) {
		out = append(out, Warning{
			Kind:    WarnElementPair,
			Message: "You need to specify both DotElement and InactiveDotElement",
		})
	}
	if cfg.Tappable && cfg.Navigator == nil {
		out = append(out, Warning{
			Kind:    WarnTapWithoutNavigator,
			Message: "You must specify Navigator when setting Tappable to true",
		})
	}
	return out
}
