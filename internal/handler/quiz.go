package handler

import (
	"barkle/internal/service"
	"barkle/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles breed quiz HTTP requests
type QuizHandler struct {
	service      service.QuizService
	validator    *validation.Validator
	defaultCount int
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(svc service.QuizService, defaultCount int) *QuizHandler {
	return &QuizHandler{
		service:      svc,
		validator:    validation.NewValidator(),
		defaultCount: defaultCount,
	}
}

// GenerateQuiz godoc
// @Summary Generate the daily quiz
// @Description Returns a day-stable quiz for the given difficulty. The seed is included so clients can reproduce the question set.
// @Tags breeds
// @Produce json
// @Param difficulty query string false "easy|medium|hard" default(medium)
// @Param count query int false "number of questions" default(5)
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /breeds/quiz/generate [get]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	difficulty := c.Query("difficulty", "medium")
	count := c.QueryInt("count", h.defaultCount)

	if errs := h.validator.ValidateQuizRequest(difficulty, count); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GenerateQuiz(c.Context(), difficulty, count)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RandomByDifficulty godoc
// @Summary Random breeds per difficulty tier
// @Description Returns up to 5 random breeds from each difficulty tier.
// @Tags breeds
// @Produce json
// @Success 200 {object} dto.DifficultySampleResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /breeds/random/difficulty [get]
func (h *QuizHandler) RandomByDifficulty(c *fiber.Ctx) error {
	resp, err := h.service.RandomByDifficulty(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchBreeds godoc
// @Summary Search breeds by name
// @Description Case-insensitive substring match; an empty query matches every breed.
// @Tags breeds
// @Produce json
// @Param q query string false "search query"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /breeds/search [get]
func (h *QuizHandler) SearchBreeds(c *fiber.Ctx) error {
	query := c.Query("q")

	if errs := h.validator.ValidateSearchQuery(query); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SearchBreeds(c.Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetBreedStats godoc
// @Summary Breed catalog statistics
// @Description Returns total breeds, breeds with sub-breeds, and the summed sub-breed count.
// @Tags breeds
// @Produce json
// @Success 200 {object} dto.BreedStatsResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /breeds/stats [get]
func (h *QuizHandler) GetBreedStats(c *fiber.Ctx) error {
	resp, err := h.service.GetBreedStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetBreedMatch godoc
// @Summary Breed matching pairs
// @Description Returns two distinct breeds with one image each, in randomized order.
// @Tags breeds
// @Produce json
// @Success 200 {object} dto.MatchResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /breeds/match [get]
func (h *QuizHandler) GetBreedMatch(c *fiber.Ctx) error {
	resp, err := h.service.GetBreedMatch(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RegisterRoutes mounts the breed quiz routes under the given router.
func (h *QuizHandler) RegisterRoutes(router fiber.Router) {
	breeds := router.Group("/breeds")
	breeds.Get("/stats", h.GetBreedStats)
	breeds.Get("/search", h.SearchBreeds)
	breeds.Get("/match", h.GetBreedMatch)
	breeds.Get("/random/difficulty", h.RandomByDifficulty)
	breeds.Get("/quiz/generate", h.GenerateQuiz)
}
