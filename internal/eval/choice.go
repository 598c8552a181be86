package eval

import "math/rand"

// Source is the single pseudorandom stream of one run. Every
// nondeterministic construct (oneOf, nondet bindings, any-branch selection)
// consumes exactly one draw from it, so for a fixed seed the draw sequence
// depends only on the number and order of prior draws. Replaying a seed
// replays the run byte for byte.
type Source struct {
	rng   *rand.Rand
	draws int
}

func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Pick draws a uniform index in [0, n). n must be positive; callers turn an
// empty candidate set into an Undefined error before drawing.
func (s *Source) Pick(n int) int {
	s.draws++
	return s.rng.Intn(n)
}

// Draws reports how many decisions have been consumed so far.
func (s *Source) Draws() int { return s.draws }

// DeriveSeed maps (top-level seed, run index) to the run's private seed.
// It is a pure function, so a parallel execution and a sequential execution
// with the same top-level seed explore the same set of runs.
func DeriveSeed(root int64, run int) int64 {
	// splitmix64 finalizer over the combined state
	z := uint64(root) + uint64(run+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z = z ^ (z >> 31)
	return int64(z & 0x7fffffffffffffff)
}
