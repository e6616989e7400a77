package service

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"sort"
	"testing"
	"time"

	"barkle/internal/config"
	"barkle/internal/domain"
	"barkle/internal/logger"
	"barkle/internal/quizgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func testConfig() *config.Config {
	return &config.Config{
		Quiz: config.QuizConfig{
			DefaultCount:       5,
			OptionsPerQuestion: 4,
		},
	}
}

// newTestService wires a quizService with a frozen clock and a fixed-seed
// generator source so test runs are repeatable.
func newTestService(catalog *MockCatalogProvider, images *MockImageProvider) *quizService {
	return &quizService{
		catalog: catalog,
		images:  images,
		cfg:     testConfig(),
		now: func() time.Time {
			return time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
		},
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(1))
		},
	}
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{Name: "akita"},
		{Name: "corgi", SubBreeds: []string{"cardigan"}},
		{Name: "mastiff", SubBreeds: []string{"bull"}},
		{Name: "terrier", SubBreeds: []string{"yorkshire"}},
		{Name: "spaniel", SubBreeds: []string{"cocker"}},
		{Name: "sheepdog", SubBreeds: []string{"english"}},
		{Name: "bulldog", SubBreeds: []string{"boston", "english"}},
	}
}

func TestGenerateQuiz(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	mockImages := new(MockImageProvider)
	svc := newTestService(mockCatalog, mockImages)

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)
	mockImages.On("FetchAllImages", mock.Anything, mock.Anything).
		Return([]string{"https://images.dog.ceo/a.jpg", "https://images.dog.ceo/b.jpg"}, nil)

	resp, err := svc.GenerateQuiz(context.Background(), "medium", 3)
	require.NoError(t, err)

	assert.Equal(t, "medium", resp.Difficulty)
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.Len(t, resp.Questions, 3)
	assert.Equal(t, quizgen.DaySeed(svc.now()), resp.Seed)
	assert.Equal(t, svc.now(), resp.Timestamp)

	// the medium tier of the test catalog
	mediumTier := []string{"corgi", "mastiff", "terrier", "spaniel", "sheepdog"}
	for _, q := range resp.Questions {
		assert.Contains(t, mediumTier, q.Breed, "question breed comes from the requested tier")
		assert.Equal(t, "medium", q.Difficulty)
		assert.Len(t, q.Options, 4)
		assert.True(t, sort.StringsAreSorted(q.Options))
		assert.Equal(t, q.Breed, q.Options[q.CorrectIndex])
	}
}

func TestGenerateQuiz_ReproducibleWithinDay(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	mockImages := new(MockImageProvider)
	svc := newTestService(mockCatalog, mockImages)

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)
	mockImages.On("FetchAllImages", mock.Anything, mock.Anything).
		Return([]string{"https://images.dog.ceo/a.jpg"}, nil)

	first, err := svc.GenerateQuiz(context.Background(), "medium", 4)
	require.NoError(t, err)
	second, err := svc.GenerateQuiz(context.Background(), "medium", 4)
	require.NoError(t, err)

	assert.Equal(t, first.Seed, second.Seed)
	assert.Equal(t, first.Questions, second.Questions)
}

func TestGenerateQuiz_UnknownDifficulty(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	_, err := svc.GenerateQuiz(context.Background(), "nightmare", 5)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidArgument, domainErr.Code)
	// rejected before any network call
	mockCatalog.AssertNotCalled(t, "FetchCatalog", mock.Anything)
}

func TestGenerateQuiz_NegativeCount(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	_, err := svc.GenerateQuiz(context.Background(), "easy", -1)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidArgument, domainErr.Code)
	mockCatalog.AssertNotCalled(t, "FetchCatalog", mock.Anything)
}

func TestGenerateQuiz_ZeroCount(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	mockImages := new(MockImageProvider)
	svc := newTestService(mockCatalog, mockImages)

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)

	resp, err := svc.GenerateQuiz(context.Background(), "medium", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalQuestions)
	assert.Empty(t, resp.Questions)
	mockImages.AssertNotCalled(t, "FetchAllImages", mock.Anything, mock.Anything)
}

func TestGenerateQuiz_CatalogUnavailable(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	mockCatalog.On("FetchCatalog", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.GenerateQuiz(context.Background(), "medium", 5)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCatalogUnavailable, domainErr.Code)
}

func TestGenerateQuiz_CountExceedsTier(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)

	// the medium tier holds 5 breeds
	_, err := svc.GenerateQuiz(context.Background(), "medium", 10)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInsufficientPopulation, domainErr.Code)
	assert.Equal(t, 10, domainErr.Context["required"])
	assert.Equal(t, 5, domainErr.Context["available"])
}

func TestGenerateQuiz_TierCannotFillOptions(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	// only one hard breed: no way to build a 4-option question
	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)

	_, err := svc.GenerateQuiz(context.Background(), "hard", 1)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInsufficientPopulation, domainErr.Code)
	assert.Equal(t, "hard", domainErr.Context["tier"])
	assert.Equal(t, 4, domainErr.Context["required"])
}

func TestGenerateQuiz_ImageFailureShrinksBatch(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	mockImages := new(MockImageProvider)
	svc := newTestService(mockCatalog, mockImages)

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)
	mockImages.On("FetchAllImages", mock.Anything, "terrier").Return([]string{}, nil)
	mockImages.On("FetchAllImages", mock.Anything, mock.Anything).
		Return([]string{"https://images.dog.ceo/a.jpg"}, nil)

	resp, err := svc.GenerateQuiz(context.Background(), "medium", 5)
	require.NoError(t, err)

	// the breed without an image costs one question, not the batch
	assert.Equal(t, 4, resp.TotalQuestions)
	for _, q := range resp.Questions {
		assert.NotEqual(t, "terrier", q.Breed)
	}
}

func TestRandomByDifficulty(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)

	resp, err := svc.RandomByDifficulty(context.Background())
	require.NoError(t, err)

	// tiers smaller than the sample size return whole populations
	assert.ElementsMatch(t, []string{"akita"}, resp.Easy)
	assert.ElementsMatch(t, []string{"corgi", "mastiff", "terrier", "spaniel", "sheepdog"}, resp.Medium)
	assert.ElementsMatch(t, []string{"bulldog"}, resp.Hard)
}

func TestSearchBreeds(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)

	resp, err := svc.SearchBreeds(context.Background(), "DOG")
	require.NoError(t, err)

	assert.Equal(t, "dog", resp.Query)
	assert.Equal(t, []string{"sheepdog", "bulldog"}, resp.Matches)
	assert.Equal(t, 2, resp.Count)
}

func TestSearchBreeds_EmptyQueryMatchesAll(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)

	resp, err := svc.SearchBreeds(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, len(testCatalog()), resp.Count)
}

func TestGetBreedStats(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	svc := newTestService(mockCatalog, new(MockImageProvider))

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)

	resp, err := svc.GetBreedStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, resp.TotalBreeds)
	assert.Equal(t, 6, resp.BreedsWithSubBreeds)
	assert.Equal(t, 7, resp.TotalSubBreeds)
	assert.Equal(t, svc.now(), resp.Timestamp)
}

func TestGetBreedMatch(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	mockImages := new(MockImageProvider)
	svc := newTestService(mockCatalog, mockImages)

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)
	mockImages.On("FetchRandomImage", mock.Anything, mock.Anything).
		Return("https://images.dog.ceo/breeds/x/1.jpg", nil)

	resp, err := svc.GetBreedMatch(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Pairs, 2)
	assert.NotEqual(t, resp.Pairs[0].Breed, resp.Pairs[1].Breed)
	for _, pair := range resp.Pairs {
		assert.Contains(t, testCatalog().Names(), pair.Breed)
		assert.NotEmpty(t, pair.ImageURL)
		assert.Equal(t, domain.DisplayName(pair.Breed), pair.DisplayName)
	}
}

func TestGetBreedMatch_ImageUnavailable(t *testing.T) {
	mockCatalog := new(MockCatalogProvider)
	mockImages := new(MockImageProvider)
	svc := newTestService(mockCatalog, mockImages)

	mockCatalog.On("FetchCatalog", mock.Anything).Return(testCatalog(), nil)
	mockImages.On("FetchRandomImage", mock.Anything, mock.Anything).Return("", nil)

	_, err := svc.GetBreedMatch(context.Background())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrImageUnavailable, domainErr.Code)
}
