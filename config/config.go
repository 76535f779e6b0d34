// Package config loads pagination settings from HCL files.
//
// Example:
//
//	pagination {
//	  count              = 5
//	  active_index       = 0
//	  locale             = "ar"
//	  platform           = "terminal"
//	  tappable           = true
//	  dot_color          = "#e0e0e0"
//	  inactive_dot_color = "gray"
//	  color_by_index     = { 2 = "red" }
//
//	  dot_style {
//	    attrs   = ["bold"]
//	    spacing = 2
//	  }
//	  container_style {
//	    background = "black"
//	  }
//	  style_by_index "4" {
//	    glyph = "◆"
//	  }
//	}
//
//	demo {
//	  items = ["one", "two", "three", "four", "five"]
//	  sound = true
//	}
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lixenwraith/pagedots/locale"
	"github.com/lixenwraith/pagedots/pagination"
)

// Sentinel errors
var (
	ErrConfig = errors.New("pagination config")
)

// File is a decoded configuration file
type File struct {
	Pagination pagination.Config
	Platform   locale.Platform
	Locale     string
	Items      []string // Carousel items for the demo host
	Sound      bool
}

// fileRoot decodes all top-level blocks of a file
type fileRoot struct {
	Pagination *paginationBlock `hcl:"pagination,block"`
	Demo       *demoBlock       `hcl:"demo,block"`
	Remain     hcl.Body         `hcl:",remain"`
}

type paginationBlock struct {
	Count       int      `hcl:"count"`
	ActiveIndex *int     `hcl:"active_index,optional"`
	Vertical    *bool    `hcl:"vertical,optional"`
	Locale      *string  `hcl:"locale,optional"`
	RTL         *bool    `hcl:"rtl,optional"`
	Platform    *string  `hcl:"platform,optional"`
	Tappable    *bool    `hcl:"tappable,optional"`
	DotColor    *string  `hcl:"dot_color,optional"`
	Inactive    *string  `hcl:"inactive_dot_color,optional"`
	Opacity     *float64 `hcl:"inactive_opacity,optional"`
	Scale       *float64 `hcl:"inactive_scale,optional"`

	ColorByIndex hcl.Expression `hcl:"color_by_index,optional"`

	DotStyle          *styleBlock          `hcl:"dot_style,block"`
	InactiveDotStyle  *styleBlock          `hcl:"inactive_dot_style,block"`
	DotContainerStyle *styleBlock          `hcl:"dot_container_style,block"`
	ContainerStyle    *styleBlock          `hcl:"container_style,block"`
	StyleByIndex      []*indexedStyleBlock `hcl:"style_by_index,block"`
	ActiveDot         *templateBlock       `hcl:"active_dot,block"`
	InactiveDot       *templateBlock       `hcl:"inactive_dot,block"`
}

type demoBlock struct {
	Items []string `hcl:"items,optional"`
	Sound *bool    `hcl:"sound,optional"`
}

// Load parses the HCL file at path
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrConfig, path, diags)
	}
	return decode(f, path)
}

// Parse parses HCL source, filename is used in diagnostics only
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrConfig, filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (*File, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrConfig, filename, diags)
	}
	if root.Pagination == nil {
		return nil, fmt.Errorf("%w: %s: missing pagination block", ErrConfig, filename)
	}

	out, err := root.Pagination.translate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, filename, err)
	}
	if root.Demo != nil {
		out.Items = root.Demo.Items
		out.Sound = deref(root.Demo.Sound, false)
	}
	return out, nil
}

// translate converts the decoded block into a pagination configuration
func (b *paginationBlock) translate() (*File, error) {
	if b.Count < 0 {
		return nil, fmt.Errorf("count must be >= 0, got %d", b.Count)
	}

	out := &File{Locale: deref(b.Locale, "")}
	cfg := pagination.DefaultConfig(b.Count, deref(b.ActiveIndex, 0))
	cfg.Vertical = deref(b.Vertical, false)
	cfg.Tappable = deref(b.Tappable, false)
	cfg.InactiveOpacity = deref(b.Opacity, pagination.DefaultInactiveOpacity)
	cfg.InactiveScale = deref(b.Scale, pagination.DefaultInactiveScale)

	platform, err := locale.ParsePlatform(deref(b.Platform, ""))
	if err != nil {
		return nil, err
	}
	out.Platform = platform
	cfg.MirrorsByPlatform = platform.MirrorsLayout()

	switch {
	case b.RTL != nil:
		cfg.RTL = *b.RTL
	case out.Locale != "":
		if cfg.RTL, err = locale.ParseRTL(out.Locale); err != nil {
			return nil, err
		}
	}

	if cfg.DotColor, err = parseOptionalColor(b.DotColor); err != nil {
		return nil, fmt.Errorf("dot_color: %w", err)
	}
	if cfg.InactiveDotColor, err = parseOptionalColor(b.Inactive); err != nil {
		return nil, fmt.Errorf("inactive_dot_color: %w", err)
	}
	if cfg.ColorByIndex, err = decodeColorMap(b.ColorByIndex); err != nil {
		return nil, fmt.Errorf("color_by_index: %w", err)
	}

	if cfg.DotStyle, err = b.DotStyle.style(); err != nil {
		return nil, fmt.Errorf("dot_style: %w", err)
	}
	if cfg.InactiveDotStyle, err = b.InactiveDotStyle.style(); err != nil {
		return nil, fmt.Errorf("inactive_dot_style: %w", err)
	}
	if cfg.DotContainerStyle, err = b.DotContainerStyle.style(); err != nil {
		return nil, fmt.Errorf("dot_container_style: %w", err)
	}
	if cfg.ContainerStyle, err = b.ContainerStyle.style(); err != nil {
		return nil, fmt.Errorf("container_style: %w", err)
	}
	if len(b.StyleByIndex) > 0 {
		cfg.StyleByIndex = make(map[int]pagination.Style, len(b.StyleByIndex))
		for _, s := range b.StyleByIndex {
			idx, st, err := s.decode()
			if err != nil {
				return nil, fmt.Errorf("style_by_index %q: %w", s.Index, err)
			}
			cfg.StyleByIndex[idx] = st
		}
	}

	if cfg.DotElement, err = b.ActiveDot.dot(); err != nil {
		return nil, fmt.Errorf("active_dot: %w", err)
	}
	if cfg.InactiveDotElement, err = b.InactiveDot.dot(); err != nil {
		return nil, fmt.Errorf("inactive_dot: %w", err)
	}

	out.Pagination = cfg
	return out, nil
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %q is not an integer", s)
	}
	if idx < 0 {
		return 0, fmt.Errorf("index %d is negative", idx)
	}
	return idx, nil
}
