package repository

import (
	"maths_point_backend/internal/model"

	"gorm.io/gorm"
)

type TestimonialRepository struct {
	DB *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: db}
}

func (r *TestimonialRepository) Create(t *model.Testimonial) error {
	return r.DB.Create(t).Error
}

func (r *TestimonialRepository) List() ([]model.Testimonial, error) {
	var ts []model.Testimonial
	err := r.DB.Preload("User").Order("created_at desc").Find(&ts).Error
	return ts, err
}
