// Package locale decides writing direction and platform mirroring for a dot row.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// rtlScripts lists ISO 15924 scripts written right to left
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
}

// IsRTL reports whether tag's likely script is written right to left
func IsRTL(tag language.Tag) bool {
	script, conf := tag.Script()
	if conf == language.No {
		return false
	}
	return rtlScripts[script.String()]
}

// ParseRTL parses a BCP 47 locale such as "ar-EG" or "he" and reports its direction
// POSIX forms like "fa_IR.UTF-8" are accepted
func ParseRTL(locale string) (bool, error) {
	tag, err := language.Parse(normalize(locale))
	if err != nil {
		return false, fmt.Errorf("locale %q: %w", locale, err)
	}
	return IsRTL(tag), nil
}

func normalize(locale string) string {
	s := strings.TrimSpace(locale)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

// Direction of a text run
type Direction uint8

const (
	Neutral Direction = iota
	LeftToRight
	RightToLeft
)

// String returns human-readable direction name
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return "neutral"
	}
}

// TextDirection returns the direction of the first strong character in s
func TextDirection(s string) Direction {
	for len(s) > 0 {
		props, size := bidi.LookupString(s)
		if size == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
		s = s[size:]
	}
	return Neutral
}
