package trex

import "math"

// Random is the uniform source the simulation draws from.
// *math/rand.Rand satisfies it; tests script it.
type Random interface {
	Float64() float64 // in [0, 1)
}

// randomNum returns an integer in [min, max], both inclusive.
func randomNum(r Random, min, max int) int {
	return int(math.Floor(r.Float64()*float64(max-min+1))) + min
}
