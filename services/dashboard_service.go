package services

import (
	"context"
	"fmt"

	"janconnect-be/models"
	"janconnect-be/repository"
	"janconnect-be/scoring"

	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	store *repository.Store
}

func NewDashboardService(store *repository.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Stats loads every collection the dashboard summarises in parallel. Any
// failed read fails the whole call.
func (s *DashboardService) Stats(ctx context.Context, actor models.Actor) (*scoring.DashboardStats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var in scoring.DashboardInput
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		issues, _, err := s.store.Issues.List(gctx, repository.IssueFilter{})
		if err != nil {
			return fmt.Errorf("load issues: %w", err)
		}
		in.Issues = issues
		return nil
	})
	g.Go(func() error {
		posts, err := s.store.Posts.List(gctx, nil)
		if err != nil {
			return fmt.Errorf("load posts: %w", err)
		}
		in.Posts = posts
		return nil
	})
	g.Go(func() error {
		profiles, err := s.store.Profiles.List(gctx, repository.ProfileFilter{})
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		in.Profiles = profiles
		return nil
	})
	g.Go(func() error {
		tenders, err := s.store.Tenders.List(gctx, "")
		if err != nil {
			return fmt.Errorf("load tenders: %w", err)
		}
		in.Tenders = tenders
		return nil
	})
	g.Go(func() error {
		feedback, err := s.store.Feedback.List(gctx)
		if err != nil {
			return fmt.Errorf("load feedback: %w", err)
		}
		in.Feedback = feedback
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := scoring.Aggregate(in)
	return &stats, nil
}
