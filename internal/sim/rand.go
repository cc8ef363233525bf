package sim

// Source yields uniform integers in [0,n).
type Source interface {
	Intn(n int) int
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

// NewRand seeds a generator. A zero seed is replaced with 1.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

// NextU64 returns the next 64 bits of the stream.
func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Intn returns a uniform value in [0,n), or 0 when n <= 0. Draws below
// 2^64 mod n are rejected so every residue is equally likely.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	un := uint64(n)
	thresh := -un % un
	for {
		if v := r.NextU64(); v >= thresh {
			return int(v % un)
		}
	}
}
