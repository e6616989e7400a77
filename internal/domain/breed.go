package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Difficulty classifies a breed by how many sub-breeds it has.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // no sub-breeds
	DifficultyMedium Difficulty = "medium" // exactly one sub-breed
	DifficultyHard   Difficulty = "hard"   // two or more sub-breeds
)

// DefaultDifficulty is used when a request does not specify one.
const DefaultDifficulty = DifficultyMedium

// ParseDifficulty converts a difficulty string to a Difficulty.
// An empty string falls back to the default; anything else unknown is
// rejected before any network call is made.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "":
		return DefaultDifficulty, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", NewInvalidArgumentError("unknown difficulty: " + s)
	}
}

// DifficultyForSubBreeds derives the difficulty tier from a sub-breed count.
// Every breed belongs to exactly one tier.
func DifficultyForSubBreeds(n int) Difficulty {
	switch {
	case n == 0:
		return DifficultyEasy
	case n == 1:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// Breed is one entry of the upstream breed catalog. The name doubles as the
// identifier and the URL path segment at the provider boundary; display
// formatting is applied only at presentation time.
type Breed struct {
	Name      string
	SubBreeds []string
}

// Tier returns the difficulty tier this breed belongs to.
func (b Breed) Tier() Difficulty {
	return DifficultyForSubBreeds(len(b.SubBreeds))
}

// Catalog is an ordered snapshot of the upstream breed list. The order equals
// the order of first appearance in the provider payload, which downstream
// sampling depends on. A catalog is fetched fresh per invocation and never
// mutated or cached.
type Catalog []Breed

// Names returns all breed names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, b := range c {
		names[i] = b.Name
	}
	return names
}

// Stats summarizes a catalog snapshot.
type Stats struct {
	TotalBreeds         int
	BreedsWithSubBreeds int
	TotalSubBreeds      int
}

// ComputeStats counts main breeds, breeds with at least one sub-breed, and
// the total number of sub-breeds across the catalog.
func (c Catalog) ComputeStats() Stats {
	var s Stats
	s.TotalBreeds = len(c)
	for _, b := range c {
		if len(b.SubBreeds) > 0 {
			s.BreedsWithSubBreeds++
			s.TotalSubBreeds += len(b.SubBreeds)
		}
	}
	return s
}

// Search performs a case-insensitive substring match against breed names.
// An empty query matches every breed.
func (c Catalog) Search(query string) []string {
	q := strings.ToLower(query)
	matches := []string{}
	for _, b := range c {
		if strings.Contains(strings.ToLower(b.Name), q) {
			matches = append(matches, b.Name)
		}
	}
	return matches
}

var displayCaser = cases.Title(language.English)

// DisplayName formats a breed name for presentation: hyphens become spaces
// and each word is title-cased. The result is never persisted back into the
// data model.
func DisplayName(breed string) string {
	return displayCaser.String(strings.ReplaceAll(breed, "-", " "))
}
