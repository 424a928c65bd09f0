package engine

import "math/rand"

// RNG is the single randomness source for a game. Seeding it makes every
// dice roll, shuffle and computer decision reproducible under test.
type RNG struct {
	src *rand.Rand
}

func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Roll returns one die result in [1, 6].
func (r *RNG) Roll() int {
	return r.src.Intn(6) + 1
}

// RollPair returns two independent dice results.
func (r *RNG) RollPair() (int, int) {
	return r.Roll(), r.Roll()
}

// Between returns a uniform integer in [min, max] inclusive.
func (r *RNG) Between(min, max int) int {
	return min + r.src.Intn(max-min+1)
}

// Chance returns a uniform float in [0, 1).
func (r *RNG) Chance() float64 {
	return r.src.Float64()
}

func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}
