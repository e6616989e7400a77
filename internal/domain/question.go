package domain

// Question is a single multiple-choice quiz question. Options are sorted
// lexicographically and distinct; CorrectIndex points at Breed within that
// ordering. A question is never mutated after construction and carries no
// persisted identity.
type Question struct {
	Breed        string
	ImageURL     string
	Options      []string
	CorrectIndex int
	Difficulty   Difficulty
}

// Validate checks the structural invariants of a built question.
func (q *Question) Validate() error {
	if q.Breed == "" {
		return NewInternalError("question has no breed", nil)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewInternalError("correct index out of range", nil)
	}
	if q.Options[q.CorrectIndex] != q.Breed {
		return NewInternalError("correct index does not point at the breed", nil)
	}
	seen := make(map[string]struct{}, len(q.Options))
	for i, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			return NewInternalError("duplicate option: "+opt, nil)
		}
		seen[opt] = struct{}{}
		if i > 0 && q.Options[i-1] > opt {
			return NewInternalError("options are not sorted", nil)
		}
	}
	return nil
}

// MatchPair is one half of the breed-matching mode: a breed, one image, and
// a presentation-formatted display name. Pairs are returned shuffled with no
// seed determinism.
type MatchPair struct {
	Breed       string
	ImageURL    string
	DisplayName string
}
