// Package battle implements the turn-based duel resolution engine: the
// mutable battle record for each combatant, the shared field state, and the
// fixed-order pipelines that resolve damage, stat changes, status
// conditions, and the turn lifecycle.
//
// The engine is single-threaded and synchronous. Every public operation
// mutates the battle and returns a plain narration string; the emission
// order of narration lines is part of the contract. All randomness routes
// through the battle's rng.Roller so a duel replayed from the same seed
// produces the same transcript.
package battle

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/rng"
	"github.com/louisbranch/pokeduel/internal/duel/timer"
	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

// logger is the engine's debug logger. It is a no-op unless the host
// installs one with SetLogger.
var logger = zerolog.Nop()

// SetLogger installs a logger for engine debug output.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Weather is the shared battle-wide weather slot. At most one is active.
type Weather uint8

const (
	WeatherNone Weather = iota
	WeatherRain
	WeatherSun
	WeatherSandstorm
	WeatherSnow
)

func (w Weather) String() string {
	switch w {
	case WeatherNone:
		return "none"
	case WeatherRain:
		return "rain"
	case WeatherSun:
		return "harsh sunlight"
	case WeatherSandstorm:
		return "sandstorm"
	case WeatherSnow:
		return "snow"
	}
	panic("battle: unknown weather")
}

// Terrain is the shared battle-wide terrain slot. At most one is active.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	TerrainElectric
	TerrainGrassy
	TerrainMisty
	TerrainPsychic
)

func (t Terrain) String() string {
	switch t {
	case TerrainNone:
		return "none"
	case TerrainElectric:
		return "electric terrain"
	case TerrainGrassy:
		return "grassy terrain"
	case TerrainMisty:
		return "misty terrain"
	case TerrainPsychic:
		return "psychic terrain"
	}
	panic("battle: unknown terrain")
}

// Hazards are the per-side entry hazards applied when a combatant is sent
// out.
type Hazards struct {
	SpikesLayers      int
	ToxicSpikesLayers int
	StealthRock       bool
	StickyWeb         bool
}

// Screens are the per-side damage-reducing and protective field effects.
type Screens struct {
	Reflect     timer.Counter
	LightScreen timer.Counter
	AuroraVeil  timer.Counter
	Mist        timer.Counter
}

// Clear drops every screen without expiry narration.
func (s *Screens) Clear() {
	s.Reflect.Clear()
	s.LightScreen.Clear()
	s.AuroraVeil.Clear()
	s.Mist.Clear()
}

// inheritance is the stat-stage and volatile package a baton-pass style
// switch hands to the incoming combatant.
type inheritance struct {
	stages     [8]int
	hasStages  bool
	substitute int
	leechSeed  bool
}

// Side is one of the two sides of a duel: the active combatant, the bench,
// and per-side field state.
type Side struct {
	Active  *Combatant
	Bench   []*Combatant
	Hazards Hazards
	Screens Screens

	// LastFainted records the species key of the most recent casualty.
	LastFainted string

	pending *inheritance
	index   int
}

func (s *Side) name() string {
	return "side-" + strconv.Itoa(s.index)
}

// illusionMask picks the species an illusion can copy: the last living
// bench member whose species differs from the entering combatant's.
func (s *Side) illusionMask(c *Combatant) string {
	for i := len(s.Bench) - 1; i >= 0; i-- {
		m := s.Bench[i]
		if !m.Fainted && m.SpeciesKey != c.SpeciesKey {
			return m.SpeciesKey
		}
	}
	return ""
}

// LivingBench returns the indexes of bench members able to fight.
func (s *Side) LivingBench() []int {
	return lo.FilterMap(s.Bench, func(c *Combatant, i int) (int, bool) {
		return i, !c.Fainted
	})
}

// Battle is the two-sided duel container. It owns both combatants by value
// (arena-style); operations that need the other side resolve it through the
// battle rather than through back-pointers.
type Battle struct {
	ID    string
	Sides [2]*Side

	Weather      Weather
	WeatherTurns timer.Counter
	Terrain      Terrain
	TerrainTurns timer.Counter
	Gravity      timer.Counter
	TrickRoom    timer.Counter

	// Inverse flips below-neutral chart multipliers to 2 and above-neutral
	// to 0.5 after lookup.
	Inverse bool

	Chart   *dex.TypeChart
	Catalog dex.Catalog
	Rng     rng.Roller

	Turn int
}

// Config carries duel construction parameters.
type Config struct {
	Catalog dex.Catalog
	Chart   *dex.TypeChart // nil selects the default chart
	Seed    int64
	Inverse bool
}

// New creates an empty battle. Combatants join through AddToBench and enter
// play through SendOut.
func New(cfg Config) *Battle {
	chart := cfg.Chart
	if chart == nil {
		chart = dex.DefaultChart()
	}
	b := &Battle{
		ID:      uuid.NewString(),
		Chart:   chart,
		Catalog: cfg.Catalog,
		Inverse: cfg.Inverse,
		Rng:     rng.New(cfg.Seed),
	}
	b.Sides[0] = &Side{index: 0}
	b.Sides[1] = &Side{index: 1}
	return b
}

// AddToBench places a combatant on a side's bench.
func (b *Battle) AddToBench(side int, c *Combatant) {
	c.side = side
	b.Sides[side].Bench = append(b.Sides[side].Bench, c)
}

// Opposing returns the side opposite the given combatant.
func (b *Battle) Opposing(c *Combatant) *Side {
	return b.Sides[1-c.side]
}

// Ally returns the side the combatant fights for.
func (b *Battle) Ally(c *Combatant) *Side {
	return b.Sides[c.side]
}

// Actives returns every combatant currently in play.
func (b *Battle) Actives() []*Combatant {
	var out []*Combatant
	for _, s := range b.Sides {
		if s.Active != nil {
			out = append(out, s.Active)
		}
	}
	return out
}

// anyActiveHas reports whether a combatant in play has the ability,
// excluding the given one.
func (b *Battle) anyActiveHas(ability dex.Ability, except *Combatant) bool {
	for _, c := range b.Actives() {
		if c != except && c.HasAbility(ability) {
			return true
		}
	}
	return false
}

// Over reports whether a side is out of usable combatants.
func (b *Battle) Over() bool {
	for _, s := range b.Sides {
		if s.Active != nil && !s.Active.Fainted {
			continue
		}
		if len(s.LivingBench()) == 0 {
			return true
		}
	}
	return false
}

// Winner returns the index of the winning side, or -1 while the duel is
// undecided.
func (b *Battle) Winner() int {
	for i, s := range b.Sides {
		beaten := (s.Active == nil || s.Active.Fainted) && len(s.LivingBench()) == 0
		if beaten {
			return 1 - i
		}
	}
	return -1
}

// species resolves a species key the engine itself produced, such as a form
// target. A miss is a catalog/engine mismatch and surfaces as an error from
// the public operation that needed it; the engine never guesses.
func (b *Battle) species(key string) (dex.Species, error) {
	s, err := b.Catalog.SpeciesByKey(key)
	if err != nil {
		return dex.Species{}, errors.Wrap(errors.CodeSpeciesNotFound,
			"battle requires species record", err)
	}
	return s, nil
}
