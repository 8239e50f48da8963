package rng

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)

	for i := 0; i < 100; i++ {
		av, bv := a.Intn(1000), b.Intn(1000)
		if av != bv {
			t.Fatalf("call %d diverged: %d vs %d", i, av, bv)
		}
	}
}

func TestChanceBounds(t *testing.T) {
	r := New(1)

	for i := 0; i < 50; i++ {
		if !r.Chance(100) {
			t.Fatal("Chance(100) must always pass")
		}
		if r.Chance(0) {
			t.Fatal("Chance(0) must never pass")
		}
	}
}

func TestChanceDistribution(t *testing.T) {
	r := New(99)

	hits := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if r.Chance(30) {
			hits++
		}
	}

	// Loose bounds; the point is that the probability value is honored.
	if hits < 2700 || hits > 3300 {
		t.Fatalf("Chance(30) hit %d of %d trials", hits, trials)
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct seeds")
	}
}
