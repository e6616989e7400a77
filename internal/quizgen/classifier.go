// Package quizgen holds the quiz generation engine: the tier classifier, the
// deterministic sampler and the question builder.
package quizgen

import "barkle/internal/domain"

// Tiers is a stable partition of a catalog into difficulty tiers. Within each
// tier, breeds keep their order of first appearance in the catalog so that
// downstream sampling is reproducible for a fixed catalog ordering.
type Tiers struct {
	Easy   []string
	Medium []string
	Hard   []string
}

// ForDifficulty returns the breed list of one tier.
func (t Tiers) ForDifficulty(d domain.Difficulty) []string {
	switch d {
	case domain.DifficultyEasy:
		return t.Easy
	case domain.DifficultyHard:
		return t.Hard
	default:
		return t.Medium
	}
}

// Classify partitions a catalog into difficulty tiers. It is a pure function
// of its input; an empty catalog yields empty tiers, not an error.
func Classify(catalog domain.Catalog) Tiers {
	t := Tiers{Easy: []string{}, Medium: []string{}, Hard: []string{}}
	for _, b := range catalog {
		switch b.Tier() {
		case domain.DifficultyEasy:
			t.Easy = append(t.Easy, b.Name)
		case domain.DifficultyMedium:
			t.Medium = append(t.Medium, b.Name)
		case domain.DifficultyHard:
			t.Hard = append(t.Hard, b.Name)
		}
	}
	return t
}
