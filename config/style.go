package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/lixenwraith/pagedots/pagination"
	"github.com/zclconf/go-cty/cty"
)

type styleBlock struct {
	Glyph      *string  `hcl:"glyph,optional"`
	Background *string  `hcl:"background,optional"`
	Attrs      []string `hcl:"attrs,optional"`
	Spacing    *int     `hcl:"spacing,optional"`
}

// indexedStyleBlock is a style_by_index block, the label selects the dot
type indexedStyleBlock struct {
	Index string   `hcl:"index,label"`
	Body  hcl.Body `hcl:",remain"`
}

type templateBlock struct {
	Color         *string     `hcl:"color,optional"`
	InactiveColor *string     `hcl:"inactive_color,optional"`
	Opacity       *float64    `hcl:"opacity,optional"`
	Scale         *float64    `hcl:"scale,optional"`
	Style         *styleBlock `hcl:"style,block"`
}

var attrNames = map[string]tcell.AttrMask{
	"bold":          tcell.AttrBold,
	"dim":           tcell.AttrDim,
	"italic":        tcell.AttrItalic,
	"underline":     tcell.AttrUnderline,
	"blink":         tcell.AttrBlink,
	"reverse":       tcell.AttrReverse,
	"strikethrough": tcell.AttrStrikeThrough,
}

func (b *styleBlock) style() (pagination.Style, error) {
	var s pagination.Style
	if b == nil {
		return s, nil
	}

	if b.Glyph != nil {
		g := *b.Glyph
		if utf8.RuneCountInString(g) != 1 {
			return s, fmt.Errorf("glyph %q must be a single character", g)
		}
		s.Glyph, _ = utf8.DecodeRuneInString(g)
	}

	bg, err := parseOptionalColor(b.Background)
	if err != nil {
		return s, fmt.Errorf("background: %w", err)
	}
	s.Background = bg

	for _, name := range b.Attrs {
		a, ok := attrNames[strings.ToLower(name)]
		if !ok {
			return s, fmt.Errorf("unknown attribute %q", name)
		}
		s.Attr |= a
	}

	if b.Spacing != nil {
		if *b.Spacing < 0 {
			return s, fmt.Errorf("spacing must be >= 0, got %d", *b.Spacing)
		}
		s.Spacing = *b.Spacing
	}
	return s, nil
}

func (b *indexedStyleBlock) decode() (int, pagination.Style, error) {
	idx, err := parseIndex(b.Index)
	if err != nil {
		return 0, pagination.Style{}, err
	}
	var sb styleBlock
	if diags := gohcl.DecodeBody(b.Body, nil, &sb); diags.HasErrors() {
		return 0, pagination.Style{}, diags
	}
	st, err := sb.style()
	return idx, st, err
}

func (b *templateBlock) dot() (*pagination.Dot, error) {
	if b == nil {
		return nil, nil
	}
	d := &pagination.Dot{
		Opacity: deref(b.Opacity, 1),
		Scale:   deref(b.Scale, 1),
	}
	var err error
	if d.Color, err = parseOptionalColor(b.Color); err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	if d.InactiveColor, err = parseOptionalColor(b.InactiveColor); err != nil {
		return nil, fmt.Errorf("inactive_color: %w", err)
	}
	if b.Style != nil {
		st, err := b.Style.style()
		if err != nil {
			return nil, fmt.Errorf("style: %w", err)
		}
		d.Style = pagination.StyleList{st}
	}
	return d, nil
}

// ParseColor accepts tcell color names and #rrggbb
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

func parseOptionalColor(s *string) (tcell.Color, error) {
	if s == nil {
		return tcell.ColorDefault, nil
	}
	return ParseColor(*s)
}

// decodeColorMap evaluates an object expression of index keys to color strings
func decodeColorMap(expr hcl.Expression) (map[int]tcell.Color, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("expected an object, got %s", ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be known")
	}

	out := make(map[int]tcell.Color)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		idx, err := parseIndex(k.AsString())
		if err != nil {
			return nil, err
		}
		if v.IsNull() {
			continue
		}
		if !v.Type().Equals(cty.String) {
			return nil, fmt.Errorf("index %d: expected a color string, got %s", idx, v.Type().FriendlyName())
		}
		c, err := ParseColor(v.AsString())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", idx, err)
		}
		out[idx] = c
	}
	return out, nil
}
