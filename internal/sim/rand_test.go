package sim

import "testing"

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.NextU64(), b.NextU64(); x != y {
			t.Fatalf("draw %d: expected equal streams, got %d and %d", i, x, y)
		}
	}
	if NewRand(0).NextU64() != NewRand(1).NextU64() {
		t.Errorf("Expected zero seed to behave like seed 1")
	}
}

func TestIntnRange(t *testing.T) {
	r := NewRand(7)
	for _, n := range []int{-3, 0} {
		if got := r.Intn(n); got != 0 {
			t.Errorf("Intn(%d): expected 0, got %d", n, got)
		}
	}
	for i := 0; i < 50; i++ {
		if got := r.Intn(1); got != 0 {
			t.Fatalf("Intn(1): expected 0, got %d", got)
		}
	}
	for _, n := range []int{2, 3, 1199, 1200} {
		for i := 0; i < 1000; i++ {
			if got := r.Intn(n); got < 0 || got >= n {
				t.Fatalf("Intn(%d): %d out of range", n, got)
			}
		}
	}
}

func TestIntnCoversEveryValue(t *testing.T) {
	const n, draws = 6, 60000
	r := NewRand(99)
	var counts [n]int
	for i := 0; i < draws; i++ {
		counts[r.Intn(n)]++
	}
	// Expect draws/n each; allow a wide margin for a fixed seed.
	for v, c := range counts {
		if c < draws/n*9/10 || c > draws/n*11/10 {
			t.Errorf("value %d drawn %d times, expected about %d", v, c, draws/n)
		}
	}
}

func TestIntnLargeBound(t *testing.T) {
	// Near 2^63 half of all draws are rejected; the result must still land in range.
	n := int(^uint(0) >> 1)
	r := NewRand(3)
	for i := 0; i < 100; i++ {
		if got := r.Intn(n); got < 0 || got >= n {
			t.Fatalf("Intn(max): %d out of range", got)
		}
	}
}
