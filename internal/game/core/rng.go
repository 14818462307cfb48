package core

// SeedIncrement is added to a state's hazard seed after every spawn
// evaluation, regardless of how many hazards actually spawned. The constant is
// odd so the seed walks the full 64-bit cycle; a given seed reproduces a given
// hazard history exactly when spawn evaluations happen in the same order.
const SeedIncrement uint64 = 0x9E3779B97F4A7C15

// mix64 is a splitmix64-style finalizer. Each output is a pure function of the
// input, so the hazard stream never carries hidden generator state: cloning a
// GameState copies the seed by value and the clone's draws are independent of
// the live game's.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// Draw returns the n-th uniform draw in [0,1) for the given seed. The seed is
// finalized before the ordinal is folded in, so the draw streams of successive
// seeds (which differ by SeedIncrement) share no values: ordinal spacing and
// seed advancement are unrelated.
func Draw(seed, n uint64) float64 {
	return float64(mix64(mix64(seed)^n)>>11) / float64(1<<53)
}

// DrawIntn returns the n-th uniform draw in [0,limit) for the given seed.
// limit must be positive.
func DrawIntn(seed, n uint64, limit int) int {
	return int(Draw(seed, n) * float64(limit))
}

// DrawBool returns true with probability p on the n-th draw for the given seed.
func DrawBool(seed, n uint64, p float64) bool {
	return Draw(seed, n) < p
}
