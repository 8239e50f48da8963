package battle

import "github.com/louisbranch/pokeduel/internal/duel/dex"

// HeldItem owns at most one item reference for a combatant and tracks the
// history recovery mechanics need: whether the combatant ever held an item
// this duel and which item was last used or removed.
type HeldItem struct {
	id    dex.ItemID
	flags dex.Item

	// EverHeld is set once an item is given and never cleared.
	EverHeld bool
	// LastConsumed is the most recent item consumed or removed.
	LastConsumed dex.ItemID
}

// Present reports whether an item is currently held.
func (h *HeldItem) Present() bool {
	return h.id != dex.ItemNone
}

// Is reports whether the held item matches the given identity.
func (h *HeldItem) Is(id dex.ItemID) bool {
	return h.id == id
}

// ID returns the held item identity, or ItemNone.
func (h *HeldItem) ID() dex.ItemID {
	return h.id
}

// Flags returns the catalog classification of the held item. The zero Item
// is returned when nothing is held.
func (h *HeldItem) Flags() dex.Item {
	return h.flags
}

// Give replaces the held item.
func (h *HeldItem) Give(item dex.Item) {
	h.id = item.ID
	h.flags = item
	if item.ID != dex.ItemNone {
		h.EverHeld = true
	}
}

// Consume removes the held item as a deliberate use, recording it for
// recovery effects, and returns the consumed identity.
func (h *HeldItem) Consume() dex.ItemID {
	id := h.id
	if id == dex.ItemNone {
		return dex.ItemNone
	}
	h.LastConsumed = id
	h.id = dex.ItemNone
	h.flags = dex.Item{}
	return id
}

// Take removes the held item without marking it used, as when it is stolen
// or knocked off, and returns the removed item.
func (h *HeldItem) Take() (dex.Item, bool) {
	if h.id == dex.ItemNone {
		return dex.Item{}, false
	}
	item := h.flags
	h.LastConsumed = h.id
	h.id = dex.ItemNone
	h.flags = dex.Item{}
	return item, true
}
