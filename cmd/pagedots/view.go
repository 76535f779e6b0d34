package main

import (
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pagedots/feedback"
	"github.com/lixenwraith/pagedots/pagination"
	"github.com/lixenwraith/pagedots/render"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

const helpLine = "←/h →/l move  click dot  r rtl  v vertical  q quit"

// viewer is the interactive tcell front end
type viewer struct {
	app    *app
	screen tcell.Screen
	layout render.Layout
	mouse  render.MouseTracker
}

// setupLogging keeps log output off the screen while it is in raw mode
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func runView(a *app, logPath string) {
	if f := setupLogging(logPath); f != nil {
		defer f.Close()
	} else {
		tracer().SetTraceLevel(tracing.LevelError)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if err := screen.Init(); err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			crashReport(r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	v := &viewer{app: a, screen: screen}
	v.run()
}

func (v *viewer) run() {
	for {
		v.draw()
		if !v.handleInput(v.screen.PollEvent()) {
			return
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	root := render.FullRegion(v.screen)

	root.TextCenter(1, v.app.deck.Current(), titleStyle)
	root.TextCenter(root.H-2, v.app.status(), statusStyle)
	root.TextCenter(root.H-1, helpLine, statusStyle)

	c, err := v.app.pager.Container()
	if err != nil {
		root.TextCenter(root.H/2, err.Error(), errorStyle)
		v.layout = render.Layout{}
		v.screen.Show()
		return
	}

	area := root.Sub(0, 3, root.W, root.H-6)
	if !c.Visible {
		v.layout = render.Layout{}
	} else if c.Flow == pagination.FlowColumn {
		v.layout = render.DrawContainer(area, c, render.DefaultOptions())
	} else {
		v.layout = render.DrawContainer(area.Sub(0, area.H/2, area.W, 1), c, render.DefaultOptions())
	}
	v.screen.Show()
}

// handleInput returns false when the viewer should exit
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			v.app.move(-1)
		case tcell.KeyRight:
			v.app.move(1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				v.app.move(-1)
			case 'l':
				v.app.move(1)
			case 'r':
				v.app.setRTL(!v.app.cfg.RTL)
			case 'v':
				v.app.setVertical(!v.app.cfg.Vertical)
			}
		}

	case *tcell.EventMouse:
		// Clicks outside dots fall through; the demo host has nothing else to hit
		if v.layout.HandleMouse(ev, &v.mouse) {
			v.app.player.Play(feedback.CueTap)
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}
