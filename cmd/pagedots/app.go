package main

import (
	"fmt"

	"github.com/lixenwraith/pagedots/carousel"
	"github.com/lixenwraith/pagedots/config"
	"github.com/lixenwraith/pagedots/feedback"
	"github.com/lixenwraith/pagedots/pagination"
)

// app wires a carousel deck to a pagination row
type app struct {
	cfg    pagination.Config
	deck   *carousel.Deck
	pager  *pagination.Pagination
	player feedback.Player
}

func newApp(file *config.File, player feedback.Player, opts ...pagination.Option) *app {
	if player == nil {
		player = feedback.NopPlayer{}
	}

	cfg := file.Pagination
	items := file.Items
	if len(items) == 0 {
		items = make([]string, cfg.Count)
		for i := range items {
			items[i] = fmt.Sprintf("Item %d", i+1)
		}
	}
	cfg.Count = len(items)

	deck := carousel.NewDeck(items)
	deck.GoTo(cfg.ActiveIndex)
	cfg.ActiveIndex = deck.Index()
	cfg.Navigator = deck

	a := &app{
		cfg:    cfg,
		deck:   deck,
		pager:  pagination.New(cfg, opts...),
		player: player,
	}
	deck.SetRTLAdapted(cfg.NeedsRTLAdaptation())
	deck.OnChange(func(index int) {
		a.pager.SetActiveIndex(index)
		a.player.Play(feedback.CueTick)
	})
	return a
}

// move steps the deck by delta items
func (a *app) move(delta int) {
	before := a.deck.Index()
	a.deck.GoTo(before + delta)
	if a.deck.Index() == before {
		a.player.Play(feedback.CueEdge)
	}
}

func (a *app) setRTL(on bool) {
	a.cfg.RTL = on
	a.apply()
}

func (a *app) setVertical(on bool) {
	a.cfg.Vertical = on
	a.apply()
}

// apply installs a changed layout without touching the mirrored index
func (a *app) apply() {
	a.pager.SetConfig(a.cfg)
	a.deck.SetRTLAdapted(a.cfg.NeedsRTLAdaptation())
}

func (a *app) status() string {
	return fmt.Sprintf("%d/%d %s  rtl=%v vertical=%v",
		a.deck.Index()+1, a.deck.Len(), a.deck.Current(), a.cfg.RTL, a.cfg.Vertical)
}
