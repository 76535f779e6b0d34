package render

import (
	"strings"

	"github.com/lixenwraith/pagedots/dot"
	"github.com/lixenwraith/pagedots/pagination"
)

// Text renders c as plain glyphs in on-screen order
// Rows are space separated, columns one dot per line; invisible containers give ""
func Text(c pagination.Container) string {
	if !c.Visible || len(c.Dots) == 0 {
		return ""
	}
	sep := " "
	if c.Flow == pagination.FlowColumn {
		sep = "\n"
	}
	var sb strings.Builder
	for i, d := range flowOrder(c) {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteRune(dot.Glyph(d))
	}
	return sb.String()
}
