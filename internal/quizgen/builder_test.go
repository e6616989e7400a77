package quizgen

import (
	"context"
	"sort"
	"testing"

	"barkle/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubImageProvider serves canned image lists per breed.
type stubImageProvider struct {
	images map[string][]string
	err    error
}

func (s *stubImageProvider) FetchAllImages(_ context.Context, breed string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.images[breed], nil
}

func (s *stubImageProvider) FetchRandomImage(_ context.Context, breed string) (string, error) {
	urls, err := s.FetchAllImages(context.Background(), breed)
	if err != nil || len(urls) == 0 {
		return "", err
	}
	return urls[0], nil
}

func imagesFor(breeds ...string) map[string][]string {
	out := make(map[string][]string, len(breeds))
	for _, b := range breeds {
		out[b] = []string{
			"https://images.dog.ceo/breeds/" + b + "/1.jpg",
			"https://images.dog.ceo/breeds/" + b + "/2.jpg",
		}
	}
	return out
}

func TestBuildQuestions_OptionIntegrity(t *testing.T) {
	tier := []string{"akita", "beagle", "corgi", "dingo", "eskimo", "foxhound"}
	provider := &stubImageProvider{images: imagesFor(tier...)}

	rng := NewGenerator(42)
	selected, err := Sample(rng, tier, 3)
	require.NoError(t, err)

	questions, err := BuildQuestions(context.Background(), rng, tier, selected, provider, domain.DifficultyEasy, 4)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	for i, q := range questions {
		assert.Equal(t, selected[i], q.Breed, "questions follow selection order")
		assert.Len(t, q.Options, 4)
		assert.True(t, sort.StringsAreSorted(q.Options))
		assert.Equal(t, q.Breed, q.Options[q.CorrectIndex])
		assert.Equal(t, domain.DifficultyEasy, q.Difficulty)
		assert.Contains(t, provider.images[q.Breed], q.ImageURL)
		require.NoError(t, q.Validate())

		for _, opt := range q.Options {
			assert.Contains(t, tier, opt, "every option comes from the tier")
		}
	}
}

func TestBuildQuestions_ReproducibleFromSeed(t *testing.T) {
	tier := []string{"akita", "beagle", "corgi", "dingo", "eskimo", "foxhound", "groenendael"}
	provider := &stubImageProvider{images: imagesFor(tier...)}

	build := func() []domain.Question {
		rng := NewGenerator(99)
		selected, err := Sample(rng, tier, 4)
		require.NoError(t, err)
		qs, err := BuildQuestions(context.Background(), rng, tier, selected, provider, domain.DifficultyMedium, 4)
		require.NoError(t, err)
		return qs
	}

	assert.Equal(t, build(), build())
}

func TestBuildQuestions_TierTooSmall(t *testing.T) {
	tier := []string{"akita", "beagle", "corgi"}
	provider := &stubImageProvider{images: imagesFor(tier...)}

	_, err := BuildQuestions(context.Background(), NewGenerator(1), tier, tier, provider, domain.DifficultyHard, 4)

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInsufficientPopulation, domainErr.Code)
	assert.Equal(t, "hard", domainErr.Context["tier"])
	assert.Equal(t, 4, domainErr.Context["required"])
	assert.Equal(t, 3, domainErr.Context["available"])
}

func TestBuildQuestions_MissingImageSkipsOnlyThatQuestion(t *testing.T) {
	tier := []string{"akita", "beagle", "corgi", "dingo", "eskimo"}
	images := imagesFor(tier...)
	delete(images, "corgi")
	provider := &stubImageProvider{images: images}

	questions, err := BuildQuestions(context.Background(), NewGenerator(5), tier, tier, provider, domain.DifficultyEasy, 4)
	require.NoError(t, err)

	assert.Len(t, questions, len(tier)-1)
	for _, q := range questions {
		assert.NotEqual(t, "corgi", q.Breed)
	}
}

func TestBuildQuestions_EmptySelection(t *testing.T) {
	tier := []string{"akita", "beagle", "corgi", "dingo"}
	provider := &stubImageProvider{images: imagesFor(tier...)}

	questions, err := BuildQuestions(context.Background(), NewGenerator(1), tier, nil, provider, domain.DifficultyEasy, 4)

	require.NoError(t, err)
	assert.Empty(t, questions)
}
