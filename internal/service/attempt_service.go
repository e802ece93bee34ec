package service

import (
	"errors"
	"fmt"
	"time"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/util"
	"maths_point_backend/pkg/logger"
	"maths_point_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestCatalog and QuestionCatalog are the read-only catalog lookups the
// scoring engine needs; repository.TestRepository and
// repository.QuestionRepository satisfy them.
type TestCatalog interface {
	FindByID(id string) (*model.Test, error)
}

type QuestionCatalog interface {
	FindByID(id string) (*model.Question, error)
}

type AttemptStore interface {
	CreateWithAnswers(attempt *model.Attempt) error
	ListByUser(userID uint) ([]model.Attempt, error)
	FindByID(id string) (*model.Attempt, error)
	ListByTest(testID string) ([]model.Attempt, error)
}

type AttemptService struct {
	Tests     TestCatalog
	Questions QuestionCatalog
	Attempts  AttemptStore
}

func NewAttemptService(tests TestCatalog, questions QuestionCatalog, attempts AttemptStore) *AttemptService {
	return &AttemptService{
		Tests:     tests,
		Questions: questions,
		Attempts:  attempts,
	}
}

type SubmittedAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

type SubmitAttemptReq struct {
	TestID          string            `json:"test_id"`
	Answers         []SubmittedAnswer `json:"answers"`
	DurationSeconds *int              `json:"duration_seconds"`
}

// SubmitAttempt evaluates a raw answer submission against the question
// catalog and persists an immutable attempt record.
//
// Answers whose question id does not resolve, or resolves to a question of a
// different test, are dropped: they contribute neither to the score nor to
// the stored answer rows. Correctness is exact case-sensitive string equality
// with the question's correct option; no trimming or case folding.
func (s *AttemptService) SubmitAttempt(userID uint, req SubmitAttemptReq) (*model.Attempt, error) {
	if req.TestID == "" || len(req.Answers) == 0 {
		return nil, fmt.Errorf("%w: test_id and answers are required", util.ErrValidation)
	}

	if _, err := s.Tests.FindByID(req.TestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test not found", util.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: test lookup: %v", util.ErrDependency, err)
	}

	score := 0
	evaluated := make([]model.AttemptAnswer, 0, len(req.Answers))

	for _, ans := range req.Answers {
		question, err := s.Questions.FindByID(ans.QuestionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.AnswersSkipped.Inc()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: question lookup: %v", util.ErrDependency, err)
		}
		if question.TestID != req.TestID {
			monitoring.AnswersSkipped.Inc()
			continue
		}

		isCorrect := ans.SelectedOption == question.CorrectOption
		if isCorrect {
			score++
		}

		evaluated = append(evaluated, model.AttemptAnswer{
			QuestionID:     question.ID,
			SelectedOption: ans.SelectedOption,
			IsCorrect:      isCorrect,
		})
	}

	attempt := &model.Attempt{
		UserID:          userID,
		TestID:          req.TestID,
		Answers:         evaluated,
		Score:           score,
		DurationSeconds: req.DurationSeconds,
		CompletedAt:     time.Now(),
		Status:          model.AttemptCompleted,
	}

	if err := s.Attempts.CreateWithAnswers(attempt); err != nil {
		return nil, fmt.Errorf("%w: save attempt: %v", util.ErrDependency, err)
	}

	monitoring.AttemptsScored.Inc()
	logger.Log.Info("attempt scored",
		zap.String("attemptId", attempt.ID),
		zap.String("testId", attempt.TestID),
		zap.Uint("userId", userID),
		zap.Int("score", score),
		zap.Int("answersStored", len(evaluated)),
		zap.Int("answersSubmitted", len(req.Answers)),
	)

	return attempt, nil
}

// GetAttemptsForUser returns the user's attempts newest first, with test and
// question references resolved against the current catalog state.
func (s *AttemptService) GetAttemptsForUser(userID uint) ([]model.Attempt, error) {
	attempts, err := s.Attempts.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list attempts: %v", util.ErrDependency, err)
	}
	return attempts, nil
}

func (s *AttemptService) GetAttemptByID(id string) (*model.Attempt, error) {
	attempt, err := s.Attempts.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: attempt not found", util.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find attempt: %v", util.ErrDependency, err)
	}
	return attempt, nil
}
