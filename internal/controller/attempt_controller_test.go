package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"maths_point_backend/internal/controller"
	"maths_point_backend/internal/model"
	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const examID = "11111111-1111-1111-1111-111111111111"

type stubTestCatalog struct {
	tests map[string]*model.Test
}

func (s *stubTestCatalog) FindByID(id string) (*model.Test, error) {
	if t, ok := s.tests[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubQuestionCatalog struct {
	questions map[string]*model.Question
}

func (s *stubQuestionCatalog) FindByID(id string) (*model.Question, error) {
	if q, ok := s.questions[id]; ok {
		return q, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubAttemptStore struct {
	attempts []model.Attempt
}

func (s *stubAttemptStore) CreateWithAnswers(attempt *model.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = model.GenerateUUID()
	}
	for i := range attempt.Answers {
		attempt.Answers[i].AttemptID = attempt.ID
		attempt.Answers[i].Position = i
	}
	attempt.CreatedAt = time.Now()
	s.attempts = append(s.attempts, *attempt)
	return nil
}

func (s *stubAttemptStore) ListByUser(userID uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range s.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *stubAttemptStore) FindByID(id string) (*model.Attempt, error) {
	for i := range s.attempts {
		if s.attempts[i].ID == id {
			return &s.attempts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAttemptStore) ListByTest(testID string) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range s.attempts {
		if a.TestID == testID {
			out = append(out, a)
		}
	}
	return out, nil
}

func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: id, FullName: "Asha", Role: model.Student})
		c.Next()
	}
}

func newAttemptRouter(store *stubAttemptStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewAttemptService(
		&stubTestCatalog{tests: map[string]*model.Test{
			examID: {UUIDBase: model.UUIDBase{ID: examID}, Name: "Algebra I"},
		}},
		&stubQuestionCatalog{questions: map[string]*model.Question{
			"q1": {UUIDBase: model.UUIDBase{ID: "q1"}, TestID: examID, CorrectOption: "A"},
			"q2": {UUIDBase: model.UUIDBase{ID: "q2"}, TestID: examID, CorrectOption: "B"},
		}},
		store,
	)
	ctrl := controller.NewAttemptController(svc)

	r := gin.New()
	group := r.Group("/attempt", asUser(7))
	group.POST("/save", ctrl.SaveAttempt)
	group.GET("/get-all-attempts", ctrl.GetMyAttempts)
	group.GET("/:id", ctrl.GetAttemptByID)
	return r
}

func TestSaveAttemptEndpoint(t *testing.T) {
	store := &stubAttemptStore{}
	r := newAttemptRouter(store)

	body := `{"test_id":"` + examID + `","answers":[{"question_id":"q1","selected_option":"A"},{"question_id":"q2","selected_option":"X"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attempt/save", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Attempt struct {
			ID      string `json:"id"`
			UserID  uint   `json:"userId"`
			Score   int    `json:"score"`
			Answers []struct {
				QuestionID string `json:"questionId"`
				IsCorrect  bool   `json:"isCorrect"`
			} `json:"answers"`
		} `json:"attempt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "Attempt saved successfully." {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.Attempt.UserID != 7 || resp.Attempt.Score != 1 {
		t.Fatalf("unexpected attempt payload: %+v", resp.Attempt)
	}
	if len(resp.Attempt.Answers) != 2 || !resp.Attempt.Answers[0].IsCorrect || resp.Attempt.Answers[1].IsCorrect {
		t.Fatalf("unexpected answers payload: %+v", resp.Attempt.Answers)
	}
	if len(store.attempts) != 1 {
		t.Fatalf("expected one persisted attempt, got %d", len(store.attempts))
	}
}

func TestSaveAttemptEndpointErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: `{"test_id":`, want: http.StatusBadRequest},
		{name: "missing answers", body: `{"test_id":"` + examID + `"}`, want: http.StatusBadRequest},
		{name: "unknown test", body: `{"test_id":"22222222-2222-2222-2222-222222222222","answers":[{"question_id":"q1","selected_option":"A"}]}`, want: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newAttemptRouter(&stubAttemptStore{})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/attempt/save", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetMyAttemptsEndpoint(t *testing.T) {
	store := &stubAttemptStore{attempts: []model.Attempt{
		{UUIDBase: model.UUIDBase{ID: "a1"}, UserID: 7, TestID: examID, Score: 2},
		{UUIDBase: model.UUIDBase{ID: "a2"}, UserID: 8, TestID: examID, Score: 1},
	}}
	r := newAttemptRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attempt/get-all-attempts", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Attempts []struct {
			ID     string `json:"id"`
			UserID uint   `json:"userId"`
		} `json:"attempts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Attempts) != 1 || resp.Attempts[0].ID != "a1" {
		t.Fatalf("expected only user 7's attempts, got %+v", resp.Attempts)
	}
}

func TestGetAttemptByIDEndpoint(t *testing.T) {
	store := &stubAttemptStore{attempts: []model.Attempt{
		{UUIDBase: model.UUIDBase{ID: "a1"}, UserID: 7, TestID: examID, Score: 2},
	}}
	r := newAttemptRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attempt/a1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Attempt struct {
			ID string `json:"id"`
		} `json:"attempt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Attempt.ID != "a1" {
		t.Fatalf("unexpected attempt id %q", resp.Attempt.ID)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attempt/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown attempt, got %d", w.Code)
	}
}
