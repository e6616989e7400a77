package quizgen

import (
	"fmt"
	"math/rand"
	"time"

	"barkle/internal/domain"
)

// daySeedMultiplier spreads the compact date hash across the integer range.
// It is Knuth's multiplicative constant, not a cryptographic hash; seed
// collisions across distinct days are an accepted limitation.
const daySeedMultiplier = 2654435761

// DaySeed derives the quiz seed from a calendar date. The same date always
// yields the same seed, so the daily quiz is stable for a whole day.
func DaySeed(t time.Time) int64 {
	year, month, day := t.Date()
	return (int64(year)*31 + int64(month)*12 + int64(day)) * daySeedMultiplier
}

// NewGenerator returns a fresh pseudo-random generator for one invocation.
// Seeded sampling must never touch the process-wide default generator, which
// would corrupt concurrent unrelated invocations.
func NewGenerator(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Sample draws count breeds without replacement using the supplied generator.
// count is clamped to the population size; asking for more than available
// silently returns the whole population in generator order. A negative count
// is a contract violation.
func Sample(rng *rand.Rand, breeds []string, count int) ([]string, error) {
	if count < 0 {
		return nil, domain.NewInvalidArgumentError(fmt.Sprintf("sample count must not be negative, got %d", count))
	}
	if count > len(breeds) {
		count = len(breeds)
	}
	pool := append([]string(nil), breeds...)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:count], nil
}

// SampleSeeded is the single-shot form of Sample: it creates a generator
// immediately before sampling and uses it for exactly one call, so the result
// is a pure function of (breeds ordering, count, seed).
func SampleSeeded(breeds []string, count int, seed int64) ([]string, error) {
	return Sample(NewGenerator(seed), breeds, count)
}
