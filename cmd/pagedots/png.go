package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/pagedots/render"
)

// writePNG rasterizes the current container to path
func writePNG(a *app, path string) error {
	c, err := a.pager.Container()
	if err != nil {
		return err
	}
	if !c.Visible {
		tracer().Infof("fewer than two items, writing an empty image")
	}
	img := render.Rasterize(c, render.DefaultRasterOptions())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
