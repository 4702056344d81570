// Package cart maintains the order-in-progress: a pure reducer over cart
// state plus session-keyed persistence.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/restaurantelilica/cardapio-backend/internal/menu"
)

// MaxQuantity caps any single line.
const MaxQuantity = 99

// Line pairs a full item snapshot with its selected quantity. Snapshotting
// the item (not just its id) keeps the cart renderable even after a menu
// refresh rebuilds the catalog.
type Line struct {
	Item     menu.Item `json:"item"`
	Quantity int       `json:"quantity"`
}

// State is the cart content plus the UI-visibility flag. At most one line
// exists per item id; lines keep insertion order.
type State struct {
	Lines  []Line `json:"items"`
	IsOpen bool   `json:"isOpen"`
}

// Add merges quantity into an existing line for the item or appends a new
// one, clamped to [1, MaxQuantity], and opens the cart. Unavailable items
// are rejected as a no-op: the menu builder already filters them out, so
// this guard only enforces the invariant against callers bypassing the
// catalog.
func (s State) Add(item menu.Item, quantity int) State {
	if !item.Available {
		return s
	}
	if quantity <= 0 {
		quantity = 1
	}

	next := s.cloneLines()
	for i, line := range next {
		if line.Item.ID == item.ID {
			next[i].Quantity = clampQuantity(line.Quantity + quantity)
			return State{Lines: next, IsOpen: true}
		}
	}

	next = append(next, Line{Item: item, Quantity: clampQuantity(quantity)})
	return State{Lines: next, IsOpen: true}
}

// Remove deletes the line matching id; missing ids are a no-op.
func (s State) Remove(id string) State {
	next := make([]Line, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.Item.ID != id {
			next = append(next, line)
		}
	}
	return State{Lines: next, IsOpen: s.IsOpen}
}

// SetQuantity updates the line matching id: non-positive quantities remove
// it, larger values are clamped. Missing ids are a no-op.
func (s State) SetQuantity(id string, quantity int) State {
	next := make([]Line, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.Item.ID != id {
			next = append(next, line)
			continue
		}
		if quantity <= 0 {
			continue
		}
		line.Quantity = clampQuantity(quantity)
		next = append(next, line)
	}
	return State{Lines: next, IsOpen: s.IsOpen}
}

// Clear empties the line list without touching visibility.
func (s State) Clear() State {
	return State{Lines: nil, IsOpen: s.IsOpen}
}

// Toggle sets visibility to the given value, or flips it when nil.
func (s State) Toggle(open *bool) State {
	isOpen := !s.IsOpen
	if open != nil {
		isOpen = *open
	}
	return State{Lines: s.Lines, IsOpen: isOpen}
}

// Hydrate replaces the line list wholesale, keeping visibility. Used once
// per session when restoring persisted lines.
func (s State) Hydrate(lines []Line) State {
	return State{Lines: lines, IsOpen: s.IsOpen}
}

// ItemCount sums quantities across lines.
func (s State) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

// Total sums price x quantity across lines.
func (s State) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (s State) cloneLines() []Line {
	next := make([]Line, len(s.Lines))
	copy(next, s.Lines)
	return next
}

func clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
