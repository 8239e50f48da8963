package dex

// StatusCondition is a non-volatile status: it persists through switches
// and only one may be held at a time.
type StatusCondition uint8

const (
	StatusNone StatusCondition = iota
	StatusSleep
	StatusParalysis
	StatusPoison
	StatusBadPoison
	StatusBurn
	StatusFreeze
)

func (s StatusCondition) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusSleep:
		return "sleep"
	case StatusParalysis:
		return "paralysis"
	case StatusPoison:
		return "poison"
	case StatusBadPoison:
		return "bad poison"
	case StatusBurn:
		return "burn"
	case StatusFreeze:
		return "freeze"
	}
	panic("dex: unknown status condition")
}
