package battle

import (
	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/stats"
	"github.com/louisbranch/pokeduel/internal/platform/errors"
)

// ActionKind selects what a side does with its turn.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionSwitch
)

// Action is one side's declared intent for a turn.
type Action struct {
	Kind  ActionKind
	Index int // move index or bench index
}

// RunTurn resolves one full turn: both declared actions in initiative
// order, replacements for mid-turn faints, then the end-of-turn upkeep.
// Switches always resolve before moves; among moves, higher priority goes
// first, then the higher effective speed, reversed under trick room, with
// a coin flip breaking exact ties.
func (b *Battle) RunTurn(actions [2]Action) (string, error) {
	if b.Over() {
		return "", errors.New(errors.CodeBattleAlreadyOver, "the duel is already decided")
	}
	var n narration

	// Actions belong to the combatant that declared them. A side whose
	// active fainted mid-turn forfeits its action; the replacement only
	// enters, it does not inherit the declared move.
	declared := [2]*Combatant{b.Sides[0].Active, b.Sides[1].Active}

	first, second := b.initiative(actions)
	for _, side := range []int{first, second} {
		if b.Over() {
			break
		}
		if b.Sides[side].Active != declared[side] {
			continue
		}
		out, err := b.runAction(side, actions[side])
		if err != nil {
			return "", err
		}
		n.merge(out)
		n.merge(b.replaceFainted())
	}

	if !b.Over() {
		n.merge(b.NextTurn())
		n.merge(b.replaceFainted())
	}

	return n.String(), nil
}

func (b *Battle) runAction(side int, a Action) (string, error) {
	switch a.Kind {
	case ActionSwitch:
		return b.SendOut(side, a.Index)
	default:
		if b.Sides[side].Active == nil {
			return "", nil
		}
		return b.UseMove(side, a.Index)
	}
}

// initiative orders the two sides for this turn.
func (b *Battle) initiative(actions [2]Action) (int, int) {
	p0 := b.actionPriority(0, actions[0])
	p1 := b.actionPriority(1, actions[1])
	if p0 != p1 {
		if p0 > p1 {
			return 0, 1
		}
		return 1, 0
	}

	s0 := b.actionSpeed(0)
	s1 := b.actionSpeed(1)
	if b.TrickRoom.Active() {
		s0, s1 = -s0, -s1
	}
	switch {
	case s0 > s1:
		return 0, 1
	case s1 > s0:
		return 1, 0
	case b.Rng.Chance(50):
		return 0, 1
	default:
		return 1, 0
	}
}

// actionPriority ranks an action: switches outrun every move, then the
// move's own priority bracket.
func (b *Battle) actionPriority(side int, a Action) int {
	if a.Kind == ActionSwitch {
		return 1 << 10
	}
	c := b.Sides[side].Active
	if c == nil || a.Index < 0 || a.Index >= len(c.Moves) {
		return 0
	}
	return c.Moves[a.Index].Priority
}

func (b *Battle) actionSpeed(side int) int {
	c := b.Sides[side].Active
	if c == nil {
		return 0
	}
	return b.EffectiveStat(c, dex.StatSpeed, stats.CropNone)
}

// replaceFainted fills any empty active slot from the bench. The first
// living member comes in; a side with nothing left stays empty and the
// duel is decided.
func (b *Battle) replaceFainted() string {
	var n narration
	for _, s := range b.Sides {
		if s.Active != nil {
			continue
		}
		living := s.LivingBench()
		if len(living) == 0 {
			continue
		}
		out, err := b.SendOut(s.index, living[0])
		if err != nil {
			logger.Error().Err(err).Str("battle", b.ID).Msg("replacement send-out failed")
			continue
		}
		n.merge(out)
	}
	return n.String()
}
