// Package dex defines the read-only reference data the duel engine
// consumes: species and form records, move templates, item flags, natures,
// and the type chart. How this data is loaded or stored is the hosting
// application's concern; the engine only requires the shapes here.
package dex

import (
	"github.com/samber/lo"

	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

// Catalog resolves reference data for a duel. Implementations must be safe
// for repeated lookups and must return stable records: the engine deep
// copies what it mutates and treats everything else as immutable.
type Catalog interface {
	SpeciesByKey(key string) (Species, error)
	MoveByKey(key string) (Move, error)
	ItemByID(id ItemID) (Item, error)
}

// mapCatalog is an in-memory Catalog.
type mapCatalog struct {
	species map[string]Species
	moves   map[string]Move
	items   map[ItemID]Item
}

// NewCatalog builds an in-memory catalog from pre-resolved records.
func NewCatalog(species []Species, moves []Move, items []Item) Catalog {
	return &mapCatalog{
		species: lo.KeyBy(species, func(s Species) string { return s.Key }),
		moves:   lo.KeyBy(moves, func(m Move) string { return m.Key }),
		items:   lo.KeyBy(items, func(i Item) ItemID { return i.ID }),
	}
}

func (c *mapCatalog) SpeciesByKey(key string) (Species, error) {
	s, ok := c.species[key]
	if !ok {
		return Species{}, errors.WithMetadata(errors.CodeSpeciesNotFound,
			"species not found in catalog", map[string]string{"key": key})
	}
	return s, nil
}

func (c *mapCatalog) MoveByKey(key string) (Move, error) {
	m, ok := c.moves[key]
	if !ok {
		return Move{}, errors.WithMetadata(errors.CodeMoveNotFound,
			"move not found in catalog", map[string]string{"key": key})
	}
	return m, nil
}

func (c *mapCatalog) ItemByID(id ItemID) (Item, error) {
	i, ok := c.items[id]
	if !ok {
		return Item{}, errors.WithMetadata(errors.CodeItemNotFound,
			"item not found in catalog", map[string]string{"id": string(id)})
	}
	return i, nil
}
