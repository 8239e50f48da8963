// Package errors provides structured error handling for the duel engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Catalog errors
	CodeSpeciesNotFound Code = "SPECIES_NOT_FOUND"
	CodeMoveNotFound    Code = "MOVE_NOT_FOUND"
	CodeItemNotFound    Code = "ITEM_NOT_FOUND"
	CodeNatureNotFound  Code = "NATURE_NOT_FOUND"

	// Roster errors
	CodeRosterEmptyParty   Code = "ROSTER_EMPTY_PARTY"
	CodeRosterInvalidLevel Code = "ROSTER_INVALID_LEVEL"
	CodeRosterInvalidIV    Code = "ROSTER_INVALID_IV"
	CodeRosterInvalidEV    Code = "ROSTER_INVALID_EV"
	CodeRosterNoMoves      Code = "ROSTER_NO_MOVES"

	// Battle errors
	CodeBattleNoActiveCombatant Code = "BATTLE_NO_ACTIVE_COMBATANT"
	CodeBattleInvalidMoveIndex  Code = "BATTLE_INVALID_MOVE_INDEX"
	CodeBattleInvalidBenchIndex Code = "BATTLE_INVALID_BENCH_INDEX"
	CodeBattleAlreadyOver       Code = "BATTLE_ALREADY_OVER"
)
