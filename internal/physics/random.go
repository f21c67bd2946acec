package physics

import (
	"math"
	"math/rand"
)

// RandomInt returns a uniformly distributed integer in the closed interval
// [min, max]. Swapped bounds are normalised. A nil rng draws from the
// process-wide source.
func RandomInt(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	intn, uint64n := rand.Intn, rand.Uint64
	if rng != nil {
		intn, uint64n = rng.Intn, rng.Uint64
	}

	// Width of the interval minus one; unsigned so the full int range fits.
	span := uint64(max) - uint64(min)
	if span < math.MaxInt {
		return min + intn(int(span+1))
	}
	for {
		if v := uint64n(); v <= span {
			return int(uint64(min) + v)
		}
	}
}
