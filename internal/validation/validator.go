package validation

import (
	"barkle/internal/domain"
	"strings"
)

// MaxQuestionCount caps a single quiz request.
const MaxQuestionCount = 50

// MaxSearchQueryLength caps the free-text search query.
const MaxSearchQueryLength = 100

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuizRequest validates the quiz generation query parameters.
// Rejection happens here, before any upstream call is made.
func (v *Validator) ValidateQuizRequest(difficulty string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if _, err := domain.ParseDifficulty(difficulty); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
	}

	if count < 0 || count > MaxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 0, MaxQuestionCount))
	}

	return errors
}

// ValidateSearchQuery validates the search query parameter. An empty query is
// valid; it matches every breed.
func (v *Validator) ValidateSearchQuery(query string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(query) > MaxSearchQueryLength {
		errors = append(errors, domain.NewOutOfRangeError("q", len(query), 0, MaxSearchQueryLength))
	}
	if strings.ContainsAny(query, "/\\") {
		errors = append(errors, domain.NewInvalidFormatError("q", query))
	}

	return errors
}
