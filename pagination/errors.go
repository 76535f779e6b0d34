package pagination

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidConfiguration = errors.New("invalid pagination configuration")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
