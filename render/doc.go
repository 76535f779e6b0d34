// Package render lays out a pagination container on a cell canvas or a raster image.
//
// Core abstraction is Region, a clipped rectangle over a canvas. All drawing is
// relative to region bounds; tcell.Screen is the usual backing canvas.
//
// Usage pattern:
//
//	screen, _ := tcell.NewScreen()
//	_ = screen.Init()
//	w, h := screen.Size()
//	root := render.NewRegion(screen, 0, 0, w, h)
//
//	c, err := pager.Container()
//	if err != nil { ... }
//	layout := render.DrawContainer(root.Sub(0, h-1, w, 1), c, render.DefaultOptions())
//	screen.Show()
//
//	// Mouse: only dot cells consume clicks, gaps fall through
//	var mouse render.MouseTracker
//	if ev, ok := event.(*tcell.EventMouse); ok && !layout.HandleMouse(ev, &mouse) {
//	    carousel.HandleMouse(ev)
//	}
package render
