// Package main provides a CLI that runs a scripted duel between two fixture
// teams and prints the turn-by-turn transcript. It is the quickest way to
// watch the engine resolve a full battle from a reproducible seed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/louisbranch/pokeduel/internal/duel/battle"
	"github.com/louisbranch/pokeduel/internal/duel/dex"
	"github.com/louisbranch/pokeduel/internal/duel/rng"
	"github.com/louisbranch/pokeduel/internal/platform/config"
)

type envConfig struct {
	Seed     int64  `env:"DUELSIM_SEED" envDefault:"0"`
	MaxTurns int    `env:"DUELSIM_MAX_TURNS" envDefault:"50"`
	LogLevel string `env:"DUELSIM_LOG_LEVEL" envDefault:"disabled"`
}

type team struct {
	name    string
	entries []battle.RosterEntry
}

func main() {
	var cfg envConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = pick one)")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turn cap before the duel is called")
	inverse := flag.Bool("inverse", false, "flip the type chart")
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		config.Exitf("parse log level %q: %v", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	battle.SetLogger(logger)

	seed := cfg.Seed
	if seed == 0 {
		s, err := rng.NewSeed()
		if err != nil {
			config.Exitf("generate seed: %v", err)
		}
		seed = s
	}
	fmt.Printf("=== pokeduel (seed %d) ===\n\n", seed)

	b := battle.New(battle.Config{
		Catalog: dex.Fixture(),
		Seed:    seed,
		Inverse: *inverse,
	})

	teams := [2]team{demoTeamRed(), demoTeamBlue()}
	for side, tm := range teams {
		for _, entry := range tm.entries {
			c, err := battle.NewCombatant(b.Catalog, entry)
			if err != nil {
				config.Exitf("build %s roster: %v", tm.name, err)
			}
			b.AddToBench(side, c)
		}
	}

	for _, side := range []int{0, 1} {
		out, err := b.SendOut(side, 0)
		if err != nil {
			config.Exitf("send out: %v", err)
		}
		fmt.Println(out)
	}

	picker := rng.New(seed + 1)
	for turn := 1; turn <= cfg.MaxTurns && !b.Over(); turn++ {
		fmt.Printf("\n--- turn %d ---\n", turn)
		actions := [2]battle.Action{
			{Kind: battle.ActionMove, Index: pickMove(picker, b, 0)},
			{Kind: battle.ActionMove, Index: pickMove(picker, b, 1)},
		}
		out, err := b.RunTurn(actions)
		if err != nil {
			config.Exitf("turn %d: %v", turn, err)
		}
		fmt.Println(out)
	}

	fmt.Println()
	switch winner := b.Winner(); winner {
	case -1:
		fmt.Println("The duel was called with both sides still standing.")
	default:
		fmt.Printf("%s wins!\n", teams[winner].name)
	}
}

// pickMove chooses a random move with PP left, falling back to the first
// slot when everything is spent.
func pickMove(picker rng.Roller, b *battle.Battle, side int) int {
	active := b.Sides[side].Active
	if active == nil {
		return 0
	}
	var usable []int
	for i := range active.Moves {
		if active.Moves[i].PP > 0 {
			usable = append(usable, i)
		}
	}
	if len(usable) == 0 {
		return 0
	}
	return usable[picker.Intn(len(usable))]
}

func demoTeamRed() team {
	return team{
		name: "Team Red",
		entries: []battle.RosterEntry{
			{
				SpeciesKey: "garchomp",
				Level:      50,
				NatureKey:  "jolly",
				IVs:        [6]int{31, 31, 31, 31, 31, 31},
				EVs:        [6]int{0, 252, 0, 0, 4, 252},
				ItemID:     dex.ItemRockyHelmet,
				MoveKeys:   []string{"earthquake", "swords-dance", "night-slash", "substitute"},
			},
			{
				SpeciesKey: "milotic",
				Level:      50,
				NatureKey:  "calm",
				IVs:        [6]int{31, 0, 31, 31, 31, 31},
				EVs:        [6]int{252, 0, 0, 0, 252, 4},
				ItemID:     dex.ItemLeftovers,
				MoveKeys:   []string{"water-gun", "ice-beam", "recover", "toxic"},
			},
			{
				SpeciesKey: "lucario",
				Level:      50,
				NatureKey:  "adamant",
				IVs:        [6]int{31, 31, 31, 31, 31, 31},
				EVs:        [6]int{0, 252, 4, 0, 0, 252},
				ItemID:     dex.ItemFocusSash,
				MoveKeys:   []string{"flare-blitz", "shadow-sneak", "swords-dance", "taunt"},
			},
		},
	}
}

func demoTeamBlue() team {
	return team{
		name: "Team Blue",
		entries: []battle.RosterEntry{
			{
				SpeciesKey: "charizard",
				Level:      50,
				NatureKey:  "timid",
				IVs:        [6]int{31, 0, 31, 31, 31, 31},
				EVs:        [6]int{0, 0, 0, 252, 4, 252},
				ItemID:     dex.ItemHeavyDutyBoots,
				MoveKeys:   []string{"ember", "hyper-voice", "will-o-wisp", "bleakwind-storm"},
			},
			{
				SpeciesKey: "corviknight",
				Level:      50,
				NatureKey:  "impish",
				IVs:        [6]int{31, 31, 31, 0, 31, 31},
				EVs:        [6]int{252, 0, 252, 0, 4, 0},
				ItemID:     dex.ItemLeftovers,
				MoveKeys:   []string{"tackle", "screech", "taunt", "recover"},
			},
			{
				SpeciesKey: "gengar",
				Level:      50,
				NatureKey:  "timid",
				IVs:        [6]int{31, 0, 31, 31, 31, 31},
				EVs:        [6]int{0, 0, 0, 252, 4, 252},
				ItemID:     dex.ItemBlackSludge,
				MoveKeys:   []string{"thunderbolt", "hypnosis", "destiny-bond", "confuse-ray"},
			},
		},
	}
}
