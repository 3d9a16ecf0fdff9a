package service

import (
	"context"

	"github.com/atinyakov/MacguffinTracker/internal/models"
)

// LeaderboardRepository defines the aggregation query needed by the LeaderboardService.
type LeaderboardRepository interface {
	// Leaderboard returns per-user find counts, highest first.
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// LeaderboardService derives the ranked view over the ledger. The view is
// recomputed on every call; nothing is cached.
type LeaderboardService struct {
	repo LeaderboardRepository
}

// NewLeaderboardService constructs a LeaderboardService with the provided repository.
func NewLeaderboardService(repo LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{repo: repo}
}

// Compute returns all users ranked by find count, descending. Ordering among
// equal counts is unspecified.
func (s *LeaderboardService) Compute(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.repo.Leaderboard(ctx)
}
