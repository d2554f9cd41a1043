package randsrc

import "math/rand/v2"

// Source abstracts uniform randomness so sample generation can be pinned to
// scripted draws in tests.
type Source interface {
	// Float64 returns a draw from [0,1).
	Float64() float64
	// IntN returns a draw from [0,n).
	IntN(n int) int
}

type System struct{}

func (System) Float64() float64 {
	return rand.Float64()
}

func (System) IntN(n int) int {
	return rand.IntN(n)
}
