package service

import (
	"errors"
	"fmt"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/repository"
	"maths_point_backend/internal/util"

	"gorm.io/gorm"
)

type TestService struct {
	Repo *repository.TestRepository
}

func NewTestService(repo *repository.TestRepository) *TestService {
	return &TestService{Repo: repo}
}

type TestReq struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration"`
}

func (s *TestService) CreateTest(creatorID uint, req TestReq) (*model.Test, error) {
	if req.Name == nil || *req.Name == "" || req.Description == nil || *req.Description == "" || req.DurationMinutes == nil {
		return nil, fmt.Errorf("%w: name, description and duration are required", util.ErrValidation)
	}

	test := &model.Test{
		Name:            *req.Name,
		Description:     *req.Description,
		DurationMinutes: *req.DurationMinutes,
		CreatorID:       creatorID,
	}

	if err := s.Repo.Create(test); err != nil {
		return nil, fmt.Errorf("%w: create test: %v", util.ErrDependency, err)
	}

	return test, nil
}

func (s *TestService) GetTests() ([]model.Test, error) {
	tests, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: list tests: %v", util.ErrDependency, err)
	}
	return tests, nil
}

func (s *TestService) GetTestByID(id string) (*model.Test, error) {
	test, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: test not found", util.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find test: %v", util.ErrDependency, err)
	}
	return test, nil
}

func (s *TestService) UpdateTest(id string, req TestReq) (*model.Test, error) {
	test, err := s.GetTestByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		test.Name = *req.Name
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		test.DurationMinutes = *req.DurationMinutes
	}

	if err := s.Repo.Update(test); err != nil {
		return nil, fmt.Errorf("%w: update test: %v", util.ErrDependency, err)
	}

	return test, nil
}

func (s *TestService) DeleteTest(id string) error {
	if _, err := s.GetTestByID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("%w: delete test: %v", util.ErrDependency, err)
	}
	return nil
}
