package repository

import (
	"maths_point_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// CreateWithAnswers persists the attempt and its evaluated answers in one
// transaction: an attempt is either fully stored or not stored at all.
func (r *AttemptRepository) CreateWithAnswers(attempt *model.Attempt) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		answers := attempt.Answers
		attempt.Answers = nil
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].AttemptID = attempt.ID
			answers[i].Position = i
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		attempt.Answers = answers
		return nil
	})
}

// ListByUser returns a user's attempts newest first, with the test and each
// answer's question resolved against the current catalog state.
func (r *AttemptRepository) ListByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("user_id = ?", userID).
		Preload("Test").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("attempt_answers.position asc")
		}).
		Preload("Answers.Question").
		Order("created_at desc").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindByID(id string) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.DB.
		Preload("Test").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("attempt_answers.position asc")
		}).
		Preload("Answers.Question").
		First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// ListByTest returns every attempt for a test with the submitting user joined,
// as the leaderboard needs display names.
func (r *AttemptRepository) ListByTest(testID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("test_id = ?", testID).
		Preload("User").
		Order("created_at asc, id asc").
		Find(&attempts).Error
	return attempts, err
}
