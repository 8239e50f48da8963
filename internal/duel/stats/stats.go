// Package stats implements the raw and staged stat formulas.
//
// All functions here are pure: ability- and item-conditioned modifier
// chains live with the battle state that owns them.
package stats

import (
	"fmt"
	"math"
)

// MinStage and MaxStage bound the seven per-combatant stat stages.
const (
	MinStage = -6
	MaxStage = 6
)

// mainStageMultipliers maps stage+6 to the multiplier applied to attack,
// defense, special attack, special defense, and speed.
var mainStageMultipliers = [13]float64{
	2.0 / 8.0, 2.0 / 7.0, 2.0 / 6.0, 2.0 / 5.0, 2.0 / 4.0, 2.0 / 3.0,
	1.0,
	3.0 / 2.0, 4.0 / 2.0, 5.0 / 2.0, 6.0 / 2.0, 7.0 / 2.0, 8.0 / 2.0,
}

// accuracyStageMultipliers maps stage+6 to the multiplier applied to
// accuracy and evasion checks.
var accuracyStageMultipliers = [13]float64{
	3.0 / 9.0, 3.0 / 8.0, 3.0 / 7.0, 3.0 / 6.0, 3.0 / 5.0, 3.0 / 4.0,
	1.0,
	4.0 / 3.0, 5.0 / 3.0, 6.0 / 3.0, 7.0 / 3.0, 8.0 / 3.0, 9.0 / 3.0,
}

// Crop clamps the effective stage before the multiplier lookup.
type Crop int

const (
	// CropNone applies the stage as-is.
	CropNone Crop = iota
	// CropBottom clamps the stage to >= 0, ignoring drops. Used when a
	// critical hit ignores the attacker's offensive drops.
	CropBottom
	// CropTop clamps the stage to <= 0, ignoring boosts. Used when a
	// critical hit ignores the defender's defensive boosts.
	CropTop
)

// Raw computes a non-HP stat before stages and battle modifiers.
//
// The formula is floor(floor(2*base + iv + floor(ev/4)) * level / 100 + 5)
// multiplied by the nature multiplier, floored again.
func Raw(base, iv, ev int, nature float64, level int) int {
	core := 2*base + iv + ev/4
	stat := float64(core*level)/100 + 5
	return int(math.Floor(math.Floor(stat) * nature))
}

// HP computes the hit-point stat. Natures never modify HP.
func HP(base, iv, ev, level int) int {
	core := 2*base + iv + ev/4
	return core*level/100 + level + 10
}

// Staged applies the main stage multiplier table to a raw stat.
// It panics on a stage outside [-6, 6]: stages are clamped at the point of
// mutation, so an out-of-range value here is a programming error.
func Staged(raw int, stage int, crop Crop) float64 {
	return float64(raw) * StageMultiplier(stage, crop)
}

// StageMultiplier returns the main-table multiplier for a stage.
func StageMultiplier(stage int, crop Crop) float64 {
	return mainStageMultipliers[stageIndex(stage, crop)]
}

// AccuracyStageMultiplier returns the accuracy/evasion-table multiplier for
// a stage.
func AccuracyStageMultiplier(stage int, crop Crop) float64 {
	return accuracyStageMultipliers[stageIndex(stage, crop)]
}

func stageIndex(stage int, crop Crop) int {
	if stage < MinStage || stage > MaxStage {
		panic(fmt.Sprintf("stats: stage %d out of range", stage))
	}
	switch crop {
	case CropBottom:
		if stage < 0 {
			stage = 0
		}
	case CropTop:
		if stage > 0 {
			stage = 0
		}
	}
	return stage + 6
}

// ClampDelta crops a requested stage delta so that stage+delta stays within
// [-6, 6]. A zero result means the stat cannot move further in the
// requested direction.
func ClampDelta(stage, delta int) int {
	next := stage + delta
	if next > MaxStage {
		delta = MaxStage - stage
	}
	if next < MinStage {
		delta = MinStage - stage
	}
	return delta
}
