// Package pagination derives the dot row of a carousel pager.
//
// The package never owns carousel state. A host drives the active index, the
// package resolves it against layout direction and emits one Dot descriptor per
// slot for a renderer to draw.
//
// Pipeline:
//
//	Config{Count, ActiveIndex, ...}
//	  -> Resolve        display index after RTL adaptation
//	  -> Build          []Dot (custom renderer, template, or synthesized default)
//	  -> Container      flow direction + visibility for the renderer
//
// Usage:
//
//	p := pagination.New(pagination.DefaultConfig(5, 0))
//	p.SetActiveIndex(2)
//	c, err := p.Container()
//	if err != nil { ... }
//	layout := render.DrawContainer(region, c, render.DefaultOptions())
package pagination

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pagedots'
func tracer() tracing.Trace {
	return tracing.Select("pagedots")
}
