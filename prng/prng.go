package prng

import "math/rand/v2"

// PRNG is a deterministic random stream. It is not safe for concurrent use;
// callers that need independent per-goroutine streams should call New with
// distinct seeds rather than share one PRNG.
type PRNG struct {
	r *rand.Rand
}

// New returns a PRNG seeded deterministically from seed: the same seed
// always produces the same sequence.
func New(seed uint64) *PRNG {
	return &PRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// FromRand wraps an already-constructed *rand.Rand, for callers that need
// to share a single v2 source across several facades.
func FromRand(r *rand.Rand) *PRNG {
	return &PRNG{r: r}
}

// Bounded returns a uniform pseudo-random int in [0, n). It panics if
// n <= 0.
func (p *PRNG) Bounded(n int) int {
	return p.r.IntN(n)
}

// Float64 returns a uniform pseudo-random float64 in [0.0, 1.0).
func (p *PRNG) Float64() float64 {
	return p.r.Float64()
}
