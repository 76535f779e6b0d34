package locale

import (
	"fmt"
	"strings"
)

// Platform identifies a host layout engine
type Platform uint8

const (
	PlatformTerminal Platform = iota
	PlatformAndroid
	PlatformIOS
)

// String returns the platform name as accepted by ParsePlatform
func (p Platform) String() string {
	switch p {
	case PlatformAndroid:
		return "android"
	case PlatformIOS:
		return "ios"
	default:
		return "terminal"
	}
}

// MirrorsLayout reports whether the platform flips rows for RTL locales on its own
func (p Platform) MirrorsLayout() bool {
	return p == PlatformIOS
}

// ParsePlatform resolves a platform name, empty selects the terminal
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "terminal", "tty":
		return PlatformTerminal, nil
	case "android":
		return PlatformAndroid, nil
	case "ios":
		return PlatformIOS, nil
	default:
		return PlatformTerminal, fmt.Errorf("unknown platform %q", name)
	}
}
