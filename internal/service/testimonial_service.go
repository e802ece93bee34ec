package service

import (
	"fmt"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/repository"
	"maths_point_backend/internal/util"
)

type TestimonialService struct {
	Repo *repository.TestimonialRepository
}

func NewTestimonialService(repo *repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{Repo: repo}
}

type TestimonialReq struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func (s *TestimonialService) SubmitTestimonial(userID uint, req TestimonialReq) (*model.Testimonial, error) {
	if req.Content == "" || req.Rating == 0 {
		return nil, fmt.Errorf("%w: content and rating are required", util.ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", util.ErrValidation)
	}

	testimonial := &model.Testimonial{
		UserID:  userID,
		Content: req.Content,
		Rating:  req.Rating,
	}

	if err := s.Repo.Create(testimonial); err != nil {
		return nil, fmt.Errorf("%w: create testimonial: %v", util.ErrDependency, err)
	}

	return testimonial, nil
}

func (s *TestimonialService) GetTestimonials() ([]model.Testimonial, error) {
	ts, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: list testimonials: %v", util.ErrDependency, err)
	}
	return ts, nil
}
