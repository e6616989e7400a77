package dto

import "time"

// QuizQuestion represents one multiple-choice question in the API response
type QuizQuestion struct {
	Breed        string   `json:"breed"`
	ImageURL     string   `json:"image_url"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Difficulty   string   `json:"difficulty"`
}

// QuizResponse represents a generated quiz in the API response
// @Description Daily quiz with reproducible question set
type QuizResponse struct {
	Questions      []QuizQuestion `json:"questions"`
	Difficulty     string         `json:"difficulty"`
	TotalQuestions int            `json:"total_questions"`
	Seed           int64          `json:"seed"` // exposed so clients can verify the day's quiz
	Timestamp      time.Time      `json:"timestamp"`
}

// BreedStatsResponse represents catalog statistics in the API response
type BreedStatsResponse struct {
	TotalBreeds         int       `json:"total_breeds"`
	BreedsWithSubBreeds int       `json:"breeds_with_sub_breeds"`
	TotalSubBreeds      int       `json:"total_sub_breeds"`
	Timestamp           time.Time `json:"timestamp"`
}

// SearchResponse represents a breed name search result
type SearchResponse struct {
	Query   string   `json:"query"`
	Matches []string `json:"matches"`
	Count   int      `json:"count"`
}

// DifficultySampleResponse represents a random sample of breeds per tier
type DifficultySampleResponse struct {
	Easy   []string `json:"easy"`
	Medium []string `json:"medium"`
	Hard   []string `json:"hard"`
}

// MatchPair represents one breed of the matching game
type MatchPair struct {
	Breed       string `json:"breed"`
	ImageURL    string `json:"image_url"`
	DisplayName string `json:"display_name"`
}

// MatchResponse represents a breed-matching round in the API response
type MatchResponse struct {
	Pairs     []MatchPair `json:"pairs"`
	Timestamp time.Time   `json:"timestamp"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
