package dex

import "fmt"

// Type is one of the elemental types a species or move can have.
type Type uint8

const (
	TypeNormal Type = iota
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy

	typeCount
)

var typeNames = [typeCount]string{
	"normal", "fire", "water", "electric", "grass", "ice", "fighting",
	"poison", "ground", "flying", "psychic", "bug", "rock", "ghost",
	"dragon", "dark", "steel", "fairy",
}

func (t Type) String() string {
	if t >= typeCount {
		panic(fmt.Sprintf("dex: unknown type %d", uint8(t)))
	}
	return typeNames[t]
}

// TypeChart maps (attacking type, defending type) to an integer percentage
// multiplier: 0, 50, 100, or 200. It is read-only for a duel's duration.
type TypeChart struct {
	// rows is indexed by attacking then defending type.
	rows [typeCount][typeCount]int16
}

// Multiplier returns the chart percentage for an attacking type against a
// single defending type.
func (c *TypeChart) Multiplier(attacking, defending Type) int {
	if attacking >= typeCount || defending >= typeCount {
		panic(fmt.Sprintf("dex: type pair (%d, %d) out of range", attacking, defending))
	}
	return int(c.rows[attacking][defending])
}

// chartOverrides lists the non-neutral matchups; every omitted pair is 100.
var chartOverrides = map[Type]map[Type]int16{
	TypeNormal:   {TypeRock: 50, TypeGhost: 0, TypeSteel: 50},
	TypeFire:     {TypeFire: 50, TypeWater: 50, TypeGrass: 200, TypeIce: 200, TypeBug: 200, TypeRock: 50, TypeDragon: 50, TypeSteel: 200},
	TypeWater:    {TypeFire: 200, TypeWater: 50, TypeGrass: 50, TypeGround: 200, TypeRock: 200, TypeDragon: 50},
	TypeElectric: {TypeWater: 200, TypeElectric: 50, TypeGrass: 50, TypeGround: 0, TypeFlying: 200, TypeDragon: 50},
	TypeGrass:    {TypeFire: 50, TypeWater: 200, TypeGrass: 50, TypePoison: 50, TypeGround: 200, TypeFlying: 50, TypeBug: 50, TypeRock: 200, TypeDragon: 50, TypeSteel: 50},
	TypeIce:      {TypeFire: 50, TypeWater: 50, TypeGrass: 200, TypeIce: 50, TypeGround: 200, TypeFlying: 200, TypeDragon: 200, TypeSteel: 50},
	TypeFighting: {TypeNormal: 200, TypeIce: 200, TypePoison: 50, TypeFlying: 50, TypePsychic: 50, TypeBug: 50, TypeRock: 200, TypeGhost: 0, TypeDark: 200, TypeSteel: 200, TypeFairy: 50},
	TypePoison:   {TypeGrass: 200, TypePoison: 50, TypeGround: 50, TypeRock: 50, TypeGhost: 50, TypeSteel: 0, TypeFairy: 200},
	TypeGround:   {TypeFire: 200, TypeElectric: 200, TypeGrass: 50, TypePoison: 200, TypeFlying: 0, TypeBug: 50, TypeRock: 200, TypeSteel: 200},
	TypeFlying:   {TypeElectric: 50, TypeGrass: 200, TypeFighting: 200, TypeBug: 200, TypeRock: 50, TypeSteel: 50},
	TypePsychic:  {TypeFighting: 200, TypePoison: 200, TypePsychic: 50, TypeDark: 0, TypeSteel: 50},
	TypeBug:      {TypeFire: 50, TypeGrass: 200, TypeFighting: 50, TypePoison: 50, TypeFlying: 50, TypePsychic: 200, TypeGhost: 50, TypeDark: 200, TypeSteel: 50, TypeFairy: 50},
	TypeRock:     {TypeFire: 200, TypeIce: 200, TypeFighting: 50, TypeGround: 50, TypeFlying: 200, TypeBug: 200, TypeSteel: 50},
	TypeGhost:    {TypeNormal: 0, TypePsychic: 200, TypeGhost: 200, TypeDark: 50},
	TypeDragon:   {TypeDragon: 200, TypeSteel: 50, TypeFairy: 0},
	TypeDark:     {TypeFighting: 50, TypePsychic: 200, TypeGhost: 200, TypeDark: 50, TypeFairy: 50},
	TypeSteel:    {TypeFire: 50, TypeWater: 50, TypeElectric: 50, TypeIce: 200, TypeRock: 200, TypeSteel: 50, TypeFairy: 200},
	TypeFairy:    {TypeFire: 50, TypeFighting: 200, TypePoison: 50, TypeDragon: 200, TypeDark: 200, TypeSteel: 50},
}

// DefaultChart returns the standard type chart.
func DefaultChart() *TypeChart {
	var chart TypeChart
	for atk := Type(0); atk < typeCount; atk++ {
		for def := Type(0); def < typeCount; def++ {
			chart.rows[atk][def] = 100
		}
		for def, mult := range chartOverrides[atk] {
			chart.rows[atk][def] = mult
		}
	}
	return &chart
}
