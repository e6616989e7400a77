package quizgen

import (
	"context"
	"math/rand"
	"sort"

	"barkle/internal/domain"
	"barkle/internal/logger"

	"go.uber.org/zap"
)

// DefaultOptionsPerQuestion is the answer set width of a standard question.
const DefaultOptionsPerQuestion = 4

// BuildQuestions assembles one question per selected breed, in order.
// Distractor draws consume the same generator stream as the breed selection,
// without reseeding per question, so the whole quiz is reproducible from one
// seed. Distractors may repeat across questions; within one question all
// options are distinct.
//
// A tier smaller than optionsPerQuestion cannot fill a single answer set and
// fails with INSUFFICIENT_POPULATION. A breed whose image lookup yields
// nothing is logged and excluded; its generator draws are already consumed,
// so the rest of the batch is unaffected and the result may legitimately be
// shorter than selected.
func BuildQuestions(
	ctx context.Context,
	rng *rand.Rand,
	tierBreeds []string,
	selected []string,
	images domain.ImageProvider,
	difficulty domain.Difficulty,
	optionsPerQuestion int,
) ([]domain.Question, error) {
	if optionsPerQuestion < 2 {
		return nil, domain.NewInvalidArgumentError("a question needs at least 2 options")
	}
	if len(tierBreeds) < optionsPerQuestion {
		return nil, domain.NewInsufficientPopulationError(difficulty, optionsPerQuestion, len(tierBreeds))
	}

	questions := make([]domain.Question, 0, len(selected))
	for _, breed := range selected {
		pool := make([]string, 0, len(tierBreeds)-1)
		for _, b := range tierBreeds {
			if b != breed {
				pool = append(pool, b)
			}
		}

		distractors, err := Sample(rng, pool, optionsPerQuestion-1)
		if err != nil {
			return nil, err
		}

		options := append(distractors, breed)
		sort.Strings(options)
		correctIndex := sort.SearchStrings(options, breed)

		imageURL, err := resolveImage(ctx, rng, images, breed)
		if err != nil {
			logger.Get().Warn("Excluding question without image",
				zap.String("breed", breed),
				zap.Error(err))
			continue
		}

		questions = append(questions, domain.Question{
			Breed:        breed,
			ImageURL:     imageURL,
			Options:      options,
			CorrectIndex: correctIndex,
			Difficulty:   difficulty,
		})
	}

	return questions, nil
}

// resolveImage picks one image for a breed. The index draw consumes the
// shared generator stream so the chosen image is part of the reproducible
// quiz.
func resolveImage(ctx context.Context, rng *rand.Rand, images domain.ImageProvider, breed string) (string, error) {
	urls, err := images.FetchAllImages(ctx, breed)
	if err != nil {
		return "", domain.NewImageUnavailableError(breed, err)
	}
	if len(urls) == 0 {
		return "", domain.NewImageUnavailableError(breed, nil)
	}
	return urls[rng.Intn(len(urls))], nil
}
