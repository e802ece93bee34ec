package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"
)

func rankedAttempt(userID uint, name string, score int, duration *int) model.Attempt {
	return model.Attempt{
		UUIDBase:        model.UUIDBase{ID: model.GenerateUUID()},
		UserID:          userID,
		User:            &model.User{BaseModel: model.BaseModel{ID: userID}, FullName: name},
		TestID:          testID,
		Score:           score,
		DurationSeconds: duration,
		Status:          model.AttemptCompleted,
	}
}

func TestGetLeaderboardRanking(t *testing.T) {
	store := &memAttemptStore{attempts: []model.Attempt{
		rankedAttempt(1, "Asha", 3, intPtr(100)),
		rankedAttempt(2, "Bilal", 3, intPtr(80)),
		rankedAttempt(3, "Chitra", 2, nil),
	}}
	svc := service.NewLeaderboardService(store)

	entries, err := svc.GetLeaderboard(testID)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Same score: the faster attempt wins. Lower score ranks last.
	want := []struct {
		userID    uint
		name      string
		score     int
		timeTaken string
		rank      int
	}{
		{2, "Bilal", 3, "1.33", 1},
		{1, "Asha", 3, "1.67", 2},
		{3, "Chitra", 2, "N/A", 3},
	}
	for i, w := range want {
		e := entries[i]
		if e.UserID != w.userID || e.Name != w.name || e.Score != w.score || e.TimeTaken != w.timeTaken || e.Rank != w.rank {
			t.Fatalf("entry %d: got %+v, want %+v", i, e, w)
		}
	}
}

func TestGetLeaderboardEmptyTest(t *testing.T) {
	svc := service.NewLeaderboardService(&memAttemptStore{})

	entries, err := svc.GetLeaderboard(testID)
	if err != nil {
		t.Fatalf("expected no error for a test without attempts, got %v", err)
	}
	if entries == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestGetLeaderboardInvalidExamID(t *testing.T) {
	svc := service.NewLeaderboardService(&memAttemptStore{})

	for _, id := range []string{"", "not-a-uuid", "12345"} {
		if _, err := svc.GetLeaderboard(id); !errors.Is(err, util.ErrValidation) {
			t.Fatalf("id %q: expected validation error, got %v", id, err)
		}
	}
}

func TestGetLeaderboardRanksAreConsecutive(t *testing.T) {
	// Exact ties still get distinct consecutive ranks.
	store := &memAttemptStore{attempts: []model.Attempt{
		rankedAttempt(1, "Asha", 5, intPtr(60)),
		rankedAttempt(2, "Bilal", 5, intPtr(60)),
		rankedAttempt(3, "Chitra", 5, intPtr(60)),
		rankedAttempt(4, "Dev", 1, nil),
	}}
	svc := service.NewLeaderboardService(store)

	entries, err := svc.GetLeaderboard(testID)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Fatalf("entry %d: expected rank %d, got %d", i, i+1, e.Rank)
		}
	}
}

func TestGetLeaderboardDeterministicAcrossStoreOrder(t *testing.T) {
	// Attempts tied on both score and duration must come back in the same
	// order no matter how the store happens to return the rows.
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tied := []model.Attempt{}
	for i, name := range []string{"Asha", "Bilal", "Chitra", "Dev"} {
		a := rankedAttempt(uint(i+1), name, 4, intPtr(120))
		a.ID = fmt.Sprintf("a%d", i+1)
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		tied = append(tied, a)
	}

	forward := make([]model.Attempt, len(tied))
	copy(forward, tied)
	reversed := make([]model.Attempt, len(tied))
	for i := range tied {
		reversed[i] = tied[len(tied)-1-i]
	}

	first, err := service.NewLeaderboardService(&memAttemptStore{attempts: forward}).GetLeaderboard(testID)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	second, err := service.NewLeaderboardService(&memAttemptStore{attempts: reversed}).GetLeaderboard(testID)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs across store orders: %+v vs %+v", i, first[i], second[i])
		}
	}
	for i, want := range []string{"Asha", "Bilal", "Chitra", "Dev"} {
		if first[i].Name != want {
			t.Fatalf("entry %d: expected earliest submission first, got %q", i, first[i].Name)
		}
	}
}

func TestGetLeaderboardUntimedRanksAfterTimed(t *testing.T) {
	store := &memAttemptStore{attempts: []model.Attempt{
		rankedAttempt(1, "Asha", 4, nil),
		rankedAttempt(2, "Bilal", 4, intPtr(3600)),
	}}
	svc := service.NewLeaderboardService(store)

	entries, err := svc.GetLeaderboard(testID)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if entries[0].UserID != 2 {
		t.Fatalf("expected the timed attempt first, got user %d", entries[0].UserID)
	}
	if entries[0].TimeTaken != "60.00" {
		t.Fatalf("expected 3600s to format as 60.00 minutes, got %q", entries[0].TimeTaken)
	}
	if entries[1].TimeTaken != "N/A" {
		t.Fatalf("expected N/A for untimed attempt, got %q", entries[1].TimeTaken)
	}
}

func TestGetLeaderboardMissingUserFails(t *testing.T) {
	broken := rankedAttempt(9, "", 2, intPtr(30))
	broken.User = nil
	store := &memAttemptStore{attempts: []model.Attempt{
		rankedAttempt(1, "Asha", 3, intPtr(60)),
		broken,
	}}
	svc := service.NewLeaderboardService(store)

	if _, err := svc.GetLeaderboard(testID); !errors.Is(err, util.ErrDependency) {
		t.Fatalf("expected dependency error for dangling user reference, got %v", err)
	}
}

func TestGetLeaderboardStoreFailure(t *testing.T) {
	svc := service.NewLeaderboardService(&memAttemptStore{listErr: errors.New("connection reset")})

	if _, err := svc.GetLeaderboard(testID); !errors.Is(err, util.ErrDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
