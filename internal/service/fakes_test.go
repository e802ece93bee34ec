package service_test

import (
	"sort"
	"time"

	"maths_point_backend/internal/model"

	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories, so the scoring and ranking
// logic can be exercised without a database.

type fakeTestCatalog struct {
	tests map[string]*model.Test
}

func (f *fakeTestCatalog) FindByID(id string) (*model.Test, error) {
	if t, ok := f.tests[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeQuestionCatalog struct {
	questions map[string]*model.Question
	err       error
}

func (f *fakeQuestionCatalog) FindByID(id string) (*model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	if q, ok := f.questions[id]; ok {
		return q, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memAttemptStore struct {
	attempts  []model.Attempt
	createErr error
	listErr   error
}

func (m *memAttemptStore) CreateWithAnswers(attempt *model.Attempt) error {
	if m.createErr != nil {
		return m.createErr
	}
	if attempt.ID == "" {
		attempt.ID = model.GenerateUUID()
	}
	for i := range attempt.Answers {
		attempt.Answers[i].AttemptID = attempt.ID
		attempt.Answers[i].Position = i
	}
	attempt.CreatedAt = time.Now()
	m.attempts = append(m.attempts, *attempt)
	return nil
}

func (m *memAttemptStore) ListByUser(userID uint) ([]model.Attempt, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Attempt
	for _, a := range m.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memAttemptStore) FindByID(id string) (*model.Attempt, error) {
	for i := range m.attempts {
		if m.attempts[i].ID == id {
			return &m.attempts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memAttemptStore) ListByTest(testID string) ([]model.Attempt, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Attempt
	for _, a := range m.attempts {
		if a.TestID == testID {
			out = append(out, a)
		}
	}
	return out, nil
}

func intPtr(v int) *int { return &v }
