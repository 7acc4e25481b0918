package services

import (
	"context"
	"fmt"
	"time"

	"janconnect-be/repository"
	"janconnect-be/scoring"
)

// leaderboardSize is how many profiles, by stored points, are scored.
const leaderboardSize = 100

type LeaderboardService struct {
	store *repository.Store
	now   func() time.Time
}

func NewLeaderboardService(store *repository.Store) *LeaderboardService {
	return &LeaderboardService{store: store, now: time.Now}
}

// Leaderboard scores the top profiles on their activity within period and
// re-ranks them by total score.
func (s *LeaderboardService) Leaderboard(ctx context.Context, period string) ([]scoring.Entry, error) {
	p, err := scoring.ParsePeriod(period)
	if err != nil {
		return nil, invalid("period", "oneof=week month quarter year all")
	}
	since := p.Since(s.now())

	profiles, err := s.store.Profiles.TopByPoints(ctx, leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	issues, _, err := s.store.Issues.List(ctx, repository.IssueFilter{CreatedSince: since})
	if err != nil {
		return nil, fmt.Errorf("load issues: %w", err)
	}
	posts, err := s.store.Posts.List(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	return scoring.BuildLeaderboard(profiles, scoring.CollectActivity(issues, posts)), nil
}
