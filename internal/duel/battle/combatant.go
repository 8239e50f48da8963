package battle

import (
	"github.com/samber/lo"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/stats"
	"github.com/louisbranch/pokeduel/internal/duel/timer"
	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

// Gender gates infatuation-class effects.
type Gender uint8

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

// BattleMove is a combatant's copy of a move template with its own PP.
type BattleMove struct {
	dex.Move
	PP         int
	StartingPP int
}

// RosterEntry is the caller-supplied description of one roster member
// entering a duel. The engine deep copies everything it needs; permanent
// roster changes are the caller's responsibility.
type RosterEntry struct {
	SpeciesKey string
	Nickname   string
	Level      int
	NatureKey  string
	Gender     Gender
	IVs        [6]int
	EVs        [6]int
	AbilityKey dex.Ability // empty selects the species' first ability slot
	ItemID     dex.ItemID  // empty means no held item
	MoveKeys   []string
}

// Combatant is the mutable battle record for one roster member. It is
// constructed once when the member enters a duel, mutated continuously, and
// discarded when the duel ends.
type Combatant struct {
	// Identity. SpeciesKey is the current form key used for base-stat
	// lookup; StartingSpeciesKey is the baseline restored on switch-out.
	SpeciesKey         string
	StartingSpeciesKey string
	Nickname           string
	Level              int
	Nature             dex.Nature
	Gender             Gender
	IVs                [6]int
	EVs                [6]int

	HP         int
	StartingHP int
	Fainted    bool

	// Species is the current form record; Types is the battle type set,
	// which color-change and forecast-class effects mutate.
	Species dex.Species
	Types   []dex.Type

	Ability         dex.Ability
	StartingAbility dex.Ability

	Item HeldItem

	Moves []BattleMove

	// Stages is indexed by dex.Stat; the HP slot is unused.
	Stages [8]int

	// Non-volatile status: persists through switches.
	Status       dex.StatusCondition
	SleepTurns   int
	ToxicCounter int

	// Volatile state: cleared on switch-out.
	Substitute     int // remaining substitute HP, 0 means none
	Confusion      timer.Counter
	Infatuation    timer.Counter
	Taunt          timer.Counter
	Encore         timer.Value[string]
	Disable        timer.Value[string]
	MagnetRise     timer.Counter
	HealBlock      timer.Counter
	Yawn           timer.Counter
	PerishCount    timer.Counter
	Bind           timer.Value[string]
	BindSharp      bool // binder held a binding band when the trap began
	LeechSeeded    bool
	Cursed         bool
	Ingrained      bool
	AquaRinged     bool
	DestinyBonded  bool
	EnduringHit    bool
	Flinched       bool
	Identified     bool // ghost immunities are ignored
	SmackedDown    bool
	Trapping       bool
	ChoiceLock     string
	LastMoveKey    string
	IllusionOf     string // displayed species key while an illusion holds
	ParadoxBoosted bool
	paradoxStat    dex.Stat

	SwitchedInThisTurn  bool
	StatRaisedThisTurn  bool
	StatDroppedThisTurn bool

	side int
}

// NewCombatant constructs the duel-scoped record for a roster entry,
// resolving reference data once and snapshotting the starting baselines.
func NewCombatant(catalog dex.Catalog, entry RosterEntry) (*Combatant, error) {
	if entry.Level < 1 || entry.Level > 100 {
		return nil, errors.New(errors.CodeRosterInvalidLevel, "level must be in [1, 100]")
	}
	for _, iv := range entry.IVs {
		if iv < 0 || iv > 31 {
			return nil, errors.New(errors.CodeRosterInvalidIV, "IVs must be in [0, 31]")
		}
	}
	for _, ev := range entry.EVs {
		if ev < 0 || ev > 252 {
			return nil, errors.New(errors.CodeRosterInvalidEV, "EVs must be in [0, 252]")
		}
	}
	if len(entry.MoveKeys) == 0 {
		return nil, errors.New(errors.CodeRosterNoMoves, "a combatant needs at least one move")
	}

	species, err := catalog.SpeciesByKey(entry.SpeciesKey)
	if err != nil {
		return nil, err
	}

	nature := dex.NeutralNature
	if entry.NatureKey != "" {
		n, ok := dex.NatureByKey(entry.NatureKey)
		if !ok {
			return nil, errors.WithMetadata(errors.CodeNatureNotFound,
				"nature not found", map[string]string{"key": entry.NatureKey})
		}
		nature = n
	}

	ability := entry.AbilityKey
	if ability == dex.AbilityNone && len(species.Abilities) > 0 {
		ability = species.Abilities[0]
	}

	c := &Combatant{
		SpeciesKey:         entry.SpeciesKey,
		StartingSpeciesKey: entry.SpeciesKey,
		Nickname:           entry.Nickname,
		Level:              entry.Level,
		Nature:             nature,
		Gender:             entry.Gender,
		IVs:                entry.IVs,
		EVs:                entry.EVs,
		Species:            species,
		Types:              append([]dex.Type(nil), species.Types...),
		Ability:            ability,
		StartingAbility:    ability,
	}

	c.StartingHP = stats.HP(species.BaseStat(dex.StatHP), entry.IVs[dex.StatHP], entry.EVs[dex.StatHP], entry.Level)
	c.HP = c.StartingHP

	if entry.ItemID != dex.ItemNone {
		item, err := catalog.ItemByID(entry.ItemID)
		if err != nil {
			return nil, err
		}
		c.Item.Give(item)
	}

	for _, key := range entry.MoveKeys {
		template, err := catalog.MoveByKey(key)
		if err != nil {
			return nil, err
		}
		c.Moves = append(c.Moves, BattleMove{Move: template, PP: template.PP, StartingPP: template.PP})
	}

	return c, nil
}

// Name returns the narration name: the nickname if set, otherwise the
// display name of the species the combatant appears to be. While an
// illusion holds, that is the copied species.
func (c *Combatant) Name() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	if c.IllusionOf != "" {
		return dex.DisplayName(c.IllusionOf)
	}
	return dex.DisplayName(c.SpeciesKey)
}

// Alive reports whether the combatant can still act.
func (c *Combatant) Alive() bool {
	return !c.Fainted && c.HP > 0
}

// HasType reports whether the battle type set includes t.
func (c *Combatant) HasType(t dex.Type) bool {
	return lo.Contains(c.Types, t)
}

// HasAbility reports whether the combatant's current ability matches.
func (c *Combatant) HasAbility(a dex.Ability) bool {
	return c.Ability == a
}

// AtFullHP reports whether no damage has been taken.
func (c *Combatant) AtFullHP() bool {
	return c.HP == c.StartingHP
}

// MoveIndex finds an active move by key, or -1.
func (c *Combatant) MoveIndex(key string) int {
	for i := range c.Moves {
		if c.Moves[i].Key == key {
			return i
		}
	}
	return -1
}

// Grounded reports whether ground-bound field effects apply. Airborne
// sources (flying type, levitation, an air balloon, magnet rise) are all
// overridden by gravity, an iron ball, ingrain, or a grounding hit.
func (c *Combatant) Grounded(b *Battle) bool {
	if b.Gravity.Active() || c.Item.Is(dex.ItemIronBall) || c.Ingrained || c.SmackedDown {
		return true
	}
	if c.HasType(dex.TypeFlying) || c.HasAbility(dex.AbilityLevitate) ||
		c.Item.Is(dex.ItemAirBalloon) || c.MagnetRise.Active() {
		return false
	}
	return true
}

// clearVolatiles resets every battle-scoped field to its starting baseline.
// HP, fainted bookkeeping, non-volatile status, PP, and held-item history
// survive; everything else returns to the send-out state.
func (c *Combatant) clearVolatiles() {
	c.Stages = [8]int{}
	c.Substitute = 0
	c.Confusion.Clear()
	c.Infatuation.Clear()
	c.Taunt.Clear()
	c.Encore.Clear()
	c.Disable.Clear()
	c.MagnetRise.Clear()
	c.HealBlock.Clear()
	c.Yawn.Clear()
	c.PerishCount.Clear()
	c.Bind.Clear()
	c.BindSharp = false
	c.LeechSeeded = false
	c.Cursed = false
	c.Ingrained = false
	c.AquaRinged = false
	c.DestinyBonded = false
	c.EnduringHit = false
	c.Flinched = false
	c.Identified = false
	c.SmackedDown = false
	c.Trapping = false
	c.ChoiceLock = ""
	c.LastMoveKey = ""
	c.IllusionOf = ""
	c.ParadoxBoosted = false
	c.SwitchedInThisTurn = false
	c.StatRaisedThisTurn = false
	c.StatDroppedThisTurn = false
}
