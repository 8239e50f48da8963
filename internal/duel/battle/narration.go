package battle

import (
	"fmt"
	"strings"

	"github.com/louisbranch/pokeduel/internal/duel/dex"
)

// narration accumulates the audit-trail lines a public operation returns.
// It is append-only; emission order is part of the engine contract.
type narration struct {
	lines []string
}

func (n *narration) add(format string, args ...any) {
	n.lines = append(n.lines, fmt.Sprintf(format, args...))
}

// merge appends the lines of a nested operation's narration.
func (n *narration) merge(s string) {
	if s == "" {
		return
	}
	n.lines = append(n.lines, strings.Split(s, "\n")...)
}

func (n *narration) String() string {
	return strings.Join(n.lines, "\n")
}

// capitalizedAbility renders an ability key for narration.
func capitalizedAbility(a dex.Ability) string {
	return dex.DisplayName(string(a))
}
