package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"barkle/internal/config"
	"barkle/internal/domain"
	"barkle/internal/dto"
	"barkle/internal/logger"
	"barkle/internal/quizgen"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// tierSampleSize is how many breeds each tier contributes to the random
// difficulty sample.
const tierSampleSize = 5

// QuizService defines the quiz engine's query surfaces
type QuizService interface {
	GenerateQuiz(ctx context.Context, difficulty string, count int) (*dto.QuizResponse, error)
	RandomByDifficulty(ctx context.Context) (*dto.DifficultySampleResponse, error)
	SearchBreeds(ctx context.Context, query string) (*dto.SearchResponse, error)
	GetBreedStats(ctx context.Context) (*dto.BreedStatsResponse, error)
	GetBreedMatch(ctx context.Context) (*dto.MatchResponse, error)
}

// quizService implements QuizService. It holds no mutable state across
// invocations; each call fetches a fresh catalog and, where sampling is
// involved, constructs its own generator, so concurrent requests are
// independent.
type quizService struct {
	catalog domain.CatalogProvider
	images  domain.ImageProvider
	cfg     *config.Config

	now     func() time.Time
	newRand func() *rand.Rand
}

// NewQuizService creates a new instance of quizService
func NewQuizService(catalog domain.CatalogProvider, images domain.ImageProvider, cfg *config.Config) QuizService {
	return &quizService{
		catalog: catalog,
		images:  images,
		cfg:     cfg,
		now:     time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// GenerateQuiz implements QuizService. The quiz is a pure function of the
// calendar date and the catalog: the day seed drives both breed selection and
// distractor draws, so a client can reproduce the quiz from the returned
// seed. A breed without images costs one question, never the whole batch.
func (s *quizService) GenerateQuiz(ctx context.Context, difficultyStr string, count int) (*dto.QuizResponse, error) {
	// Arguments are rejected before any network call.
	difficulty, err := domain.ParseDifficulty(difficultyStr)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, domain.NewInvalidArgumentError(fmt.Sprintf("count must not be negative, got %d", count))
	}

	catalog, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}

	tier := quizgen.Classify(catalog).ForDifficulty(difficulty)
	optionsPer := s.cfg.Quiz.OptionsPerQuestion
	if len(tier) < optionsPer {
		return nil, domain.NewInsufficientPopulationError(difficulty, optionsPer, len(tier))
	}
	// A batch never repeats a correct breed, so the tier must cover the
	// requested count outright.
	if count > len(tier) {
		return nil, domain.NewInsufficientPopulationError(difficulty, count, len(tier))
	}

	now := s.now()
	seed := quizgen.DaySeed(now)
	rng := quizgen.NewGenerator(seed)

	selected, err := quizgen.Sample(rng, tier, count)
	if err != nil {
		return nil, err
	}

	questions, err := quizgen.BuildQuestions(ctx, rng, tier, selected, s.images, difficulty, optionsPer)
	if err != nil {
		return nil, err
	}
	if len(questions) < len(selected) {
		logger.Get().Warn("Quiz batch is short of the requested count",
			zap.Int("requested", len(selected)),
			zap.Int("produced", len(questions)),
			zap.String("difficulty", string(difficulty)))
	}

	resp := &dto.QuizResponse{
		Questions:      make([]dto.QuizQuestion, 0, len(questions)),
		Difficulty:     string(difficulty),
		TotalQuestions: len(questions),
		Seed:           seed,
		Timestamp:      now,
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestion{
			Breed:        q.Breed,
			ImageURL:     q.ImageURL,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Difficulty:   string(q.Difficulty),
		})
	}
	return resp, nil
}

// RandomByDifficulty implements QuizService. Unlike the daily quiz this
// sample is intentionally different on every call.
func (s *quizService) RandomByDifficulty(ctx context.Context) (*dto.DifficultySampleResponse, error) {
	catalog, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}

	tiers := quizgen.Classify(catalog)
	rng := s.newRand()

	easy, err := quizgen.Sample(rng, tiers.Easy, tierSampleSize)
	if err != nil {
		return nil, err
	}
	medium, err := quizgen.Sample(rng, tiers.Medium, tierSampleSize)
	if err != nil {
		return nil, err
	}
	hard, err := quizgen.Sample(rng, tiers.Hard, tierSampleSize)
	if err != nil {
		return nil, err
	}

	return &dto.DifficultySampleResponse{Easy: easy, Medium: medium, Hard: hard}, nil
}

// SearchBreeds implements QuizService
func (s *quizService) SearchBreeds(ctx context.Context, query string) (*dto.SearchResponse, error) {
	catalog, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}

	matches := catalog.Search(query)
	return &dto.SearchResponse{
		Query:   strings.ToLower(query),
		Matches: matches,
		Count:   len(matches),
	}, nil
}

// GetBreedStats implements QuizService
func (s *quizService) GetBreedStats(ctx context.Context) (*dto.BreedStatsResponse, error) {
	catalog, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}

	stats := catalog.ComputeStats()
	return &dto.BreedStatsResponse{
		TotalBreeds:         stats.TotalBreeds,
		BreedsWithSubBreeds: stats.BreedsWithSubBreeds,
		TotalSubBreeds:      stats.TotalSubBreeds,
		Timestamp:           s.now(),
	}, nil
}

// GetBreedMatch implements QuizService. Both images are fetched in one
// bounded fan-out; neither fetch touches a generator, so the concurrency
// cannot perturb any seeded sampling.
func (s *quizService) GetBreedMatch(ctx context.Context) (*dto.MatchResponse, error) {
	catalog, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, domain.NewCatalogUnavailableError(err)
	}
	if len(catalog) < 2 {
		return nil, domain.NewInsufficientPopulationError(domain.Difficulty("any"), 2, len(catalog))
	}

	rng := s.newRand()
	selected, err := quizgen.Sample(rng, catalog.Names(), 2)
	if err != nil {
		return nil, err
	}

	pairs := make([]dto.MatchPair, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, breed := range selected {
		g.Go(func() error {
			url, err := s.images.FetchRandomImage(gctx, breed)
			if err != nil {
				return domain.NewImageUnavailableError(breed, err)
			}
			if url == "" {
				return domain.NewImageUnavailableError(breed, nil)
			}
			pairs[i] = dto.MatchPair{
				Breed:       breed,
				ImageURL:    url,
				DisplayName: domain.DisplayName(breed),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	return &dto.MatchResponse{Pairs: pairs, Timestamp: s.now()}, nil
}
