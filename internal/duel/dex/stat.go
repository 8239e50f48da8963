package dex

import "fmt"

// Stat names one of the seven stageable stats plus HP.
type Stat uint8

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed
	StatAccuracy
	StatEvasion

	statCount
)

var statNames = [statCount]string{
	"HP", "Attack", "Defense", "Special Attack", "Special Defense",
	"Speed", "Accuracy", "Evasion",
}

func (s Stat) String() string {
	if s >= statCount {
		panic(fmt.Sprintf("dex: unknown stat %d", uint8(s)))
	}
	return statNames[s]
}

// Nature modifies one stat up and one down by 10%. A nature with Up == Down
// is neutral.
type Nature struct {
	Key  string
	Up   Stat
	Down Stat
}

// Multiplier returns the nature's multiplier for a stat. HP is never
// modified by natures.
func (n Nature) Multiplier(stat Stat) float64 {
	if n.Up == n.Down || stat == StatHP {
		return 1.0
	}
	switch stat {
	case n.Up:
		return 1.1
	case n.Down:
		return 0.9
	}
	return 1.0
}

var natures = map[string]Nature{
	"hardy":   {Key: "hardy", Up: StatAttack, Down: StatAttack},
	"lonely":  {Key: "lonely", Up: StatAttack, Down: StatDefense},
	"brave":   {Key: "brave", Up: StatAttack, Down: StatSpeed},
	"adamant": {Key: "adamant", Up: StatAttack, Down: StatSpAttack},
	"naughty": {Key: "naughty", Up: StatAttack, Down: StatSpDefense},
	"bold":    {Key: "bold", Up: StatDefense, Down: StatAttack},
	"docile":  {Key: "docile", Up: StatDefense, Down: StatDefense},
	"relaxed": {Key: "relaxed", Up: StatDefense, Down: StatSpeed},
	"impish":  {Key: "impish", Up: StatDefense, Down: StatSpAttack},
	"lax":     {Key: "lax", Up: StatDefense, Down: StatSpDefense},
	"timid":   {Key: "timid", Up: StatSpeed, Down: StatAttack},
	"hasty":   {Key: "hasty", Up: StatSpeed, Down: StatDefense},
	"serious": {Key: "serious", Up: StatSpeed, Down: StatSpeed},
	"jolly":   {Key: "jolly", Up: StatSpeed, Down: StatSpAttack},
	"naive":   {Key: "naive", Up: StatSpeed, Down: StatSpDefense},
	"modest":  {Key: "modest", Up: StatSpAttack, Down: StatAttack},
	"mild":    {Key: "mild", Up: StatSpAttack, Down: StatDefense},
	"quiet":   {Key: "quiet", Up: StatSpAttack, Down: StatSpeed},
	"bashful": {Key: "bashful", Up: StatSpAttack, Down: StatSpAttack},
	"rash":    {Key: "rash", Up: StatSpAttack, Down: StatSpDefense},
	"calm":    {Key: "calm", Up: StatSpDefense, Down: StatAttack},
	"gentle":  {Key: "gentle", Up: StatSpDefense, Down: StatDefense},
	"sassy":   {Key: "sassy", Up: StatSpDefense, Down: StatSpeed},
	"careful": {Key: "careful", Up: StatSpDefense, Down: StatSpAttack},
	"quirky":  {Key: "quirky", Up: StatSpDefense, Down: StatSpDefense},
}

// NatureByKey resolves a nature key. Unknown keys return false.
func NatureByKey(key string) (Nature, bool) {
	n, ok := natures[key]
	return n, ok
}

// NeutralNature is used when a roster entry does not specify a nature.
var NeutralNature = natures["serious"]
