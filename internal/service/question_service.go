package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/repository"
	"maths_point_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	Repo  *repository.QuestionRepository
	Tests *repository.TestRepository
}

func NewQuestionService(repo *repository.QuestionRepository, tests *repository.TestRepository) *QuestionService {
	return &QuestionService{Repo: repo, Tests: tests}
}

type QuestionReq struct {
	Text          string          `json:"text"`
	Type          string          `json:"type"`
	Options       json.RawMessage `json:"options"`
	CorrectOption string          `json:"correct_option"`
}

func (s *QuestionService) validate(req QuestionReq) error {
	if req.Text == "" || req.CorrectOption == "" || len(req.Options) == 0 {
		return fmt.Errorf("%w: text, options and correct_option are required", util.ErrValidation)
	}
	var options []string
	if err := json.Unmarshal(req.Options, &options); err != nil || len(options) == 0 {
		return fmt.Errorf("%w: options must be a non-empty array of strings", util.ErrValidation)
	}
	return nil
}

func (s *QuestionService) AddQuestion(testID string, req QuestionReq) (*model.Question, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	if _, err := s.Tests.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test not found", util.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: find test: %v", util.ErrDependency, err)
	}

	qType := model.QuestionType(req.Type)
	if qType != model.Subjective && qType != model.Both {
		qType = model.Objective
	}

	question := &model.Question{
		TestID:        testID,
		Text:          req.Text,
		Type:          qType,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
	}

	if err := s.Repo.Create(question); err != nil {
		return nil, fmt.Errorf("%w: create question: %v", util.ErrDependency, err)
	}

	return question, nil
}

// GetQuestions lists all questions, optionally filtered to one test.
func (s *QuestionService) GetQuestions(testID string) ([]model.Question, error) {
	var (
		qs  []model.Question
		err error
	)
	if testID != "" {
		qs, err = s.Repo.ListByTest(testID)
	} else {
		qs, err = s.Repo.ListAll()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list questions: %v", util.ErrDependency, err)
	}
	return qs, nil
}

func (s *QuestionService) UpdateQuestion(testID, questionID string, req QuestionReq) (*model.Question, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	question, err := s.Repo.FindByIDInTest(questionID, testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: question not found", util.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find question: %v", util.ErrDependency, err)
	}

	question.Text = req.Text
	question.Options = req.Options
	question.CorrectOption = req.CorrectOption
	if req.Type != "" {
		qType := model.QuestionType(req.Type)
		if qType == model.Objective || qType == model.Subjective || qType == model.Both {
			question.Type = qType
		}
	}

	if err := s.Repo.Update(question); err != nil {
		return nil, fmt.Errorf("%w: update question: %v", util.ErrDependency, err)
	}

	return question, nil
}

func (s *QuestionService) DeleteQuestion(testID, questionID string) error {
	_, err := s.Repo.FindByIDInTest(questionID, testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: question not found", util.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: find question: %v", util.ErrDependency, err)
	}

	if err := s.Repo.Delete(questionID); err != nil {
		return fmt.Errorf("%w: delete question: %v", util.ErrDependency, err)
	}
	return nil
}
