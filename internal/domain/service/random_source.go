package service

// RandomSource is the source of every procedural decision in the game.
// Seeding makes the sequence reproducible; clearing the seed falls back to platform randomness.
type RandomSource interface {
	// Next returns a number in [0, 1).
	Next() float64

	// SetSeed switches to the deterministic sequence that starts at seed.
	SetSeed(seed int64)

	// ClearSeed switches back to platform randomness.
	ClearSeed()

	// Seeded reports whether the deterministic sequence is in use.
	Seeded() bool
}
