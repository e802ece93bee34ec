// Seeds a development database with a demo teacher, two students and one
// sample test so the frontend has data to render.
//
// Usage: go run scripts/seed.go

package main

import (
	"encoding/json"
	"log"

	"maths_point_backend/internal/config"
	"maths_point_backend/internal/model"
	"maths_point_backend/internal/repository"
	"maths_point_backend/internal/service"
	"maths_point_backend/pkg/database"
	"maths_point_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hashed)
}

func mustOptions(options ...string) json.RawMessage {
	raw, err := json.Marshal(options)
	if err != nil {
		log.Fatalf("Failed to encode options: %v", err)
	}
	return raw
}

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := repository.NewUserRepository(db)
	tests := repository.NewTestRepository(db)
	questions := repository.NewQuestionRepository(db)
	attempts := repository.NewAttemptRepository(db)

	teacher := &model.User{
		FullName: "Demo Teacher",
		Email:    "teacher@example.com",
		Password: mustHash("teacher123"),
		Role:     model.Teacher,
	}
	alice := &model.User{
		FullName: "Alice Student",
		Email:    "alice@example.com",
		Password: mustHash("student123"),
		Role:     model.Student,
	}
	bob := &model.User{
		FullName: "Bob Student",
		Email:    "bob@example.com",
		Password: mustHash("student123"),
		Role:     model.Student,
	}
	for _, u := range []*model.User{teacher, alice, bob} {
		if err := users.Create(u); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Email, err)
		}
	}

	test := &model.Test{
		Name:            "Algebra Basics",
		Description:     "Linear equations and simple factorisation",
		DurationMinutes: 30,
		CreatorID:       teacher.ID,
	}
	if err := tests.Create(test); err != nil {
		log.Fatalf("Failed to create test: %v", err)
	}

	qs := []*model.Question{
		{
			TestID:        test.ID,
			Text:          "What is the value of x in 2x + 4 = 10?",
			Type:          model.Objective,
			Options:       mustOptions("2", "3", "4", "5"),
			CorrectOption: "3",
		},
		{
			TestID:        test.ID,
			Text:          "Factorise x^2 - 9.",
			Type:          model.Objective,
			Options:       mustOptions("(x-3)(x+3)", "(x-9)(x+1)", "(x-3)^2", "(x+3)^2"),
			CorrectOption: "(x-3)(x+3)",
		},
		{
			TestID:        test.ID,
			Text:          "What is the slope of the line y = 5x - 2?",
			Type:          model.Objective,
			Options:       mustOptions("-2", "2", "5", "-5"),
			CorrectOption: "5",
		},
	}
	for _, q := range qs {
		if err := questions.Create(q); err != nil {
			log.Fatalf("Failed to create question: %v", err)
		}
	}

	scoring := service.NewAttemptService(tests, questions, attempts)

	aliceDuration := 420
	if _, err := scoring.SubmitAttempt(alice.ID, service.SubmitAttemptReq{
		TestID: test.ID,
		Answers: []service.SubmittedAnswer{
			{QuestionID: qs[0].ID, SelectedOption: "3"},
			{QuestionID: qs[1].ID, SelectedOption: "(x-3)(x+3)"},
			{QuestionID: qs[2].ID, SelectedOption: "5"},
		},
		DurationSeconds: &aliceDuration,
	}); err != nil {
		log.Fatalf("Failed to seed attempt for alice: %v", err)
	}

	bobDuration := 600
	if _, err := scoring.SubmitAttempt(bob.ID, service.SubmitAttemptReq{
		TestID: test.ID,
		Answers: []service.SubmittedAnswer{
			{QuestionID: qs[0].ID, SelectedOption: "3"},
			{QuestionID: qs[1].ID, SelectedOption: "(x-9)(x+1)"},
			{QuestionID: qs[2].ID, SelectedOption: "5"},
		},
		DurationSeconds: &bobDuration,
	}); err != nil {
		log.Fatalf("Failed to seed attempt for bob: %v", err)
	}

	log.Printf("Seed complete: test %s with %d questions, 3 users, 2 attempts", test.ID, len(qs))
}
