package helpers

import (
	"lukechampine.com/frand"
)

// Rand is the subset of randomness the strategies need. Tests swap in a
// scripted implementation to make tie-breaks deterministic.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i int, j int))
}

type _frandRand struct {
}

func (r *_frandRand) Intn(n int) int {
	return frand.Intn(n)
}

func (r *_frandRand) Shuffle(n int, swap func(i int, j int)) {
	frand.Shuffle(n, swap)
}

var DefaultRand Rand = &_frandRand{}

// Choose picks a uniformly random element. The slice must be non-empty.
func Choose[T any](r Rand, ts []T) T {
	return ts[r.Intn(len(ts))]
}
