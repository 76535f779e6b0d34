// Package carousel is a minimal host that drives a pagination row.
package carousel

import "github.com/lixenwraith/pagedots/pagination"

// Listener is notified after the current item changes
type Listener func(index int)

// Deck is an ordered list of items with one current item
// Not safe for concurrent use, the owning event loop is the single writer
type Deck struct {
	items    []string
	index    int
	rtl      bool // Dot slots are mirrored relative to items
	listener Listener
}

var _ pagination.Navigator = (*Deck)(nil)

// NewDeck creates a deck positioned at the first item
func NewDeck(items []string) *Deck {
	return &Deck{items: items}
}

// OnChange registers the single change listener
func (d *Deck) OnChange(l Listener) {
	d.listener = l
}

// SetRTLAdapted tells the deck that dot slots are mirrored against item order
func (d *Deck) SetRTLAdapted(rtl bool) {
	d.rtl = rtl
}

// Len returns the number of items
func (d *Deck) Len() int {
	return len(d.items)
}

// Index returns the current item index
func (d *Deck) Index() int {
	return d.index
}

// Current returns the current item, empty for an empty deck
func (d *Deck) Current() string {
	if len(d.items) == 0 {
		return ""
	}
	return d.items[d.index]
}

// Next advances one item, stopping at the last
func (d *Deck) Next() {
	d.goTo(d.index + 1)
}

// Prev steps back one item, stopping at the first
func (d *Deck) Prev() {
	d.goTo(d.index - 1)
}

// GoTo moves to item index, clamped to the deck
func (d *Deck) GoTo(index int) {
	d.goTo(index)
}

// SnapToItem moves to the item shown in dot slot
func (d *Deck) SnapToItem(slot int) {
	d.goTo(d.positionIndex(slot))
}

// positionIndex maps a dot slot to an item index
func (d *Deck) positionIndex(slot int) int {
	if d.rtl {
		return len(d.items) - slot - 1
	}
	return slot
}

func (d *Deck) goTo(index int) {
	if len(d.items) == 0 {
		return
	}
	index = max(0, min(index, len(d.items)-1))
	if index == d.index {
		return
	}
	d.index = index
	if d.listener != nil {
		d.listener(index)
	}
}
