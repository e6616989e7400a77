package service

import (
	"context"
	"time"

	"barkle/internal/dto"
)

// RoundState is the phase of an interactive quiz round.
type RoundState int

const (
	// StateAwaitingAnswer accepts exactly one answer selection.
	StateAwaitingAnswer RoundState = iota
	// StateResolved ignores all answer input until the cooldown elapses.
	StateResolved
)

// DefaultRoundCooldown is how long a resolved round is displayed before the
// next question.
const DefaultRoundCooldown = 2 * time.Second

// QuestionSupplier produces the next question for an interactive session.
type QuestionSupplier func(ctx context.Context) (*dto.QuizQuestion, error)

// RoundResult reports the outcome of one scored answer.
type RoundResult struct {
	Correct      bool
	CorrectBreed string
	Score        int
}

// RoundMachine drives the interactive mode:
// AwaitingAnswer -> Resolved -> AwaitingAnswer. Exactly one answer is scored
// per round; input during Resolved is dropped, and after the cooldown the
// machine resets with a freshly supplied question. The machine is owned by a
// single presentation loop and is not safe for concurrent use.
type RoundMachine struct {
	next     QuestionSupplier
	cooldown time.Duration
	now      func() time.Time

	state      RoundState
	question   *dto.QuizQuestion
	score      int
	resolvedAt time.Time
}

// NewRoundMachine creates a round machine. A non-positive cooldown falls back
// to the default.
func NewRoundMachine(next QuestionSupplier, cooldown time.Duration) *RoundMachine {
	if cooldown <= 0 {
		cooldown = DefaultRoundCooldown
	}
	return &RoundMachine{
		next:     next,
		cooldown: cooldown,
		now:      time.Now,
		state:    StateResolved,
	}
}

// Start fetches the first question and enters AwaitingAnswer.
func (m *RoundMachine) Start(ctx context.Context) error {
	q, err := m.next(ctx)
	if err != nil {
		return err
	}
	m.question = q
	m.state = StateAwaitingAnswer
	return nil
}

// State returns the current round phase.
func (m *RoundMachine) State() RoundState { return m.state }

// Question returns the question currently on display.
func (m *RoundMachine) Question() *dto.QuizQuestion { return m.question }

// Score returns the number of correctly answered rounds so far.
func (m *RoundMachine) Score() int { return m.score }

// Answer scores one option selection. It reports ok=false when the input is
// dropped: the round is already resolved, no question is loaded, or the
// index is out of range.
func (m *RoundMachine) Answer(optionIndex int) (RoundResult, bool) {
	if m.state != StateAwaitingAnswer || m.question == nil {
		return RoundResult{}, false
	}
	if optionIndex < 0 || optionIndex >= len(m.question.Options) {
		return RoundResult{}, false
	}

	correct := optionIndex == m.question.CorrectIndex
	if correct {
		m.score++
	}
	m.state = StateResolved
	m.resolvedAt = m.now()

	return RoundResult{
		Correct:      correct,
		CorrectBreed: m.question.Breed,
		Score:        m.score,
	}, true
}

// Advance moves a resolved round to the next question once the cooldown has
// elapsed. It reports whether the transition happened.
func (m *RoundMachine) Advance(ctx context.Context) (bool, error) {
	if m.state != StateResolved || m.question == nil {
		return false, nil
	}
	if m.now().Sub(m.resolvedAt) < m.cooldown {
		return false, nil
	}
	q, err := m.next(ctx)
	if err != nil {
		return false, err
	}
	m.question = q
	m.state = StateAwaitingAnswer
	return true, nil
}
