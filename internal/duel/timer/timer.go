// Package timer provides the countdown primitives backing volatile battle
// conditions. A condition is active while its counter is positive; the
// counter is decremented exactly once per turn by its owning combatant and
// the expiry edge is reported exactly once so the engine can narrate it.
package timer

// Indefinite arms a counter that only ends when its condition is cleared
// by an outside event, never by ticking down.
const Indefinite = 1 << 30

// Counter is a turn-counted effect. The zero value is inactive.
type Counter struct {
	turns int
}

// Set arms the counter for the given number of turns. Non-positive values
// clear it.
func (c *Counter) Set(turns int) {
	if turns < 0 {
		turns = 0
	}
	c.turns = turns
}

// Active reports whether the effect is currently in force.
func (c *Counter) Active() bool {
	return c.turns > 0
}

// Turns returns the remaining turn count.
func (c *Counter) Turns() int {
	return c.turns
}

// Tick decrements the counter by one turn. It returns true only on the call
// that moves the counter from 1 to 0, which is the moment the effect ends.
func (c *Counter) Tick() bool {
	if c.turns == 0 {
		return false
	}
	c.turns--
	return c.turns == 0
}

// Clear deactivates the counter without reporting expiry.
func (c *Counter) Clear() {
	c.turns = 0
}

// Value is a turn-counted effect carrying a payload, such as the identity of
// a disabled move. The payload is only meaningful while the counter is
// active; expiry zeroes it.
type Value[T any] struct {
	Counter
	payload T
}

// Set arms the effect with a payload for the given number of turns.
func (v *Value[T]) Set(turns int, payload T) {
	v.Counter.Set(turns)
	if turns > 0 {
		v.payload = payload
	}
}

// Payload returns the carried value. Callers must check Active first; an
// inactive effect carries the zero value.
func (v *Value[T]) Payload() T {
	return v.payload
}

// Tick decrements the effect and zeroes the payload on expiry. It returns
// true only on the expiring call.
func (v *Value[T]) Tick() bool {
	expired := v.Counter.Tick()
	if expired {
		var zero T
		v.payload = zero
	}
	return expired
}

// Clear deactivates the effect and zeroes the payload.
func (v *Value[T]) Clear() {
	v.Counter.Clear()
	var zero T
	v.payload = zero
}
