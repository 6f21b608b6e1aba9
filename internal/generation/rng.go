package generation

import "time"

// RNG is the only source of nondeterminism in a generation session
type RNG interface {
	// Intn returns a uniform int in [0, n). n <= 0 returns 0.
	Intn(n int) int
	// Range returns a uniform int in [lo, hi). An empty range returns lo.
	Range(lo, hi int) int
	// Chance reports true with probability percent/100
	Chance(percent int) bool
}

// LCG is a simple seeded random number generator
type LCG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// ClockSeed returns a seed derived from the wall clock
func ClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Uint64 returns a pseudo-random uint64
func (r *LCG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a pseudo-random int in [0, n)
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// low bits of an LCG cycle with short periods
	return int((r.Uint64() >> 33) % uint64(n))
}

// Range returns a pseudo-random int in [lo, hi)
func (r *LCG) Range(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Chance rolls a percentage
func (r *LCG) Chance(percent int) bool {
	return r.Intn(100) < percent
}

// Choice returns a random direction from a non-empty slice
func Choice(r RNG, dirs []Direction) Direction {
	if len(dirs) == 0 {
		return NoDirection
	}
	return dirs[r.Intn(len(dirs))]
}
