package util_test

import (
	"testing"
	"time"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/util"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 42},
		FullName:  "Asha Verma",
		Email:     "asha@example.com",
		Role:      model.Teacher,
	}

	token, err := util.GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != 42 || claims.FullName != "Asha Verma" || claims.Role != model.Teacher || claims.Email != "asha@example.com" {
		t.Fatalf("claims do not round-trip: %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}}

	token, err := util.GenerateJWT(user, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := util.ParseJWT(token, "secret-b"); err == nil {
		t.Fatal("expected verification failure with the wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 1}}

	token, err := util.GenerateJWT(user, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := util.ParseJWT(token, "test-secret"); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
