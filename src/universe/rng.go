package universe

import "math/rand/v2"

//RandomSource is the seeded pseudo-random stream owned by the Session
//the same seed always yields the same sequence
type RandomSource struct {
	seed int64
	r    *rand.Rand
}

func NewRandomSource(seed int64) *RandomSource {
	rs := &RandomSource{}
	rs.Reseed(seed)
	return rs
}

//Reseed restarts the stream from the beginning of the given seed
func (rs *RandomSource) Reseed(seed int64) {
	rs.seed = seed
	rs.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

func (rs *RandomSource) Seed() int64 {
	return rs.seed
}

//Bool is an unbiased coin flip
func (rs *RandomSource) Bool() bool {
	return rs.r.IntN(2) == 1
}

//IntN returns a value in [0, n), 0 for n <= 0
func (rs *RandomSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rs.r.IntN(n)
}
