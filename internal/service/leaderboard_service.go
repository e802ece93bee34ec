package service

import (
	"fmt"
	"math"
	"sort"

	"maths_point_backend/internal/model"
	"maths_point_backend/internal/util"
	"maths_point_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LeaderboardEntry struct {
	UserID    uint   `json:"userId"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	TimeTaken string `json:"timeTaken"`
	Rank      int    `json:"rank"`
}

type LeaderboardService struct {
	Attempts AttemptStore
}

func NewLeaderboardService(attempts AttemptStore) *LeaderboardService {
	return &LeaderboardService{Attempts: attempts}
}

// durationOrMax treats a missing duration as the worst possible value, so
// untimed attempts rank after every timed attempt with the same score.
func durationOrMax(a *model.Attempt) int {
	if a.DurationSeconds == nil {
		return math.MaxInt
	}
	return *a.DurationSeconds
}

// GetLeaderboard builds the full ranked list for a test from the current set
// of attempts. Nothing is cached; every call reflects the latest data.
//
// Ordering is score descending, then duration ascending. Ranks are
// consecutive 1..n even for exact ties, which keeps pagination stable.
func (s *LeaderboardService) GetLeaderboard(testID string) ([]LeaderboardEntry, error) {
	if _, err := uuid.Parse(testID); err != nil {
		return nil, fmt.Errorf("%w: invalid exam ID", util.ErrValidation)
	}

	attempts, err := s.Attempts.ListByTest(testID)
	if err != nil {
		return nil, fmt.Errorf("%w: list attempts: %v", util.ErrDependency, err)
	}

	if len(attempts) == 0 {
		return []LeaderboardEntry{}, nil
	}

	sort.SliceStable(attempts, func(i, j int) bool {
		if attempts[i].Score != attempts[j].Score {
			return attempts[i].Score > attempts[j].Score
		}
		di, dj := durationOrMax(&attempts[i]), durationOrMax(&attempts[j])
		if di != dj {
			return di < dj
		}
		// Full ties order by submission time then id, so repeated requests
		// agree regardless of how the store returns the rows.
		if !attempts[i].CreatedAt.Equal(attempts[j].CreatedAt) {
			return attempts[i].CreatedAt.Before(attempts[j].CreatedAt)
		}
		return attempts[i].ID < attempts[j].ID
	})

	entries := make([]LeaderboardEntry, len(attempts))
	for i := range attempts {
		attempt := &attempts[i]
		if attempt.User == nil {
			// The display-name join is required; a dangling user reference
			// fails the whole build rather than dropping the row.
			logger.Log.Warn("attempt references missing user",
				zap.String("attemptId", attempt.ID),
				zap.Uint("userId", attempt.UserID),
			)
			return nil, fmt.Errorf("%w: user %d referenced by attempt %s does not exist", util.ErrDependency, attempt.UserID, attempt.ID)
		}

		timeTaken := "N/A"
		if attempt.DurationSeconds != nil {
			timeTaken = fmt.Sprintf("%.2f", float64(*attempt.DurationSeconds)/60)
		}

		entries[i] = LeaderboardEntry{
			UserID:    attempt.UserID,
			Name:      attempt.User.FullName,
			Score:     attempt.Score,
			TimeTaken: timeTaken,
			Rank:      i + 1,
		}
	}

	return entries, nil
}
