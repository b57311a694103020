package gridgraph

import "math/rand"

// RandomSource yields uniformly distributed integers in [min, max).
// Implementations need not be goroutine-safe; a GridGraph never shares one.
type RandomSource interface {
	Uniform(min, max int) int
}

// RandomFunc adapts an ordinary function to RandomSource.
type RandomFunc func(min, max int) int

// Uniform calls f(min, max).
func (f RandomFunc) Uniform(min, max int) int { return f(min, max) }

// defaultSeed is used when callers pass seed==0 so the zero value stays reproducible.
const defaultSeed int64 = 1

type mathRandSource struct {
	r *rand.Rand
}

// NewRandomSource returns a deterministic math/rand backed source.
// seed==0 selects a fixed default seed; any other value is used verbatim.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = defaultSeed
	}

	return &mathRandSource{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns min when the range is empty.
func (s *mathRandSource) Uniform(min, max int) int {
	if max <= min {
		return min
	}

	return min + s.r.Intn(max-min)
}

// DeriveSeed mixes a parent seed and a stream identifier into an
// independent seed, SplitMix64 style, so per-request sources derived
// from one base seed do not correlate.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
