package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"
)

// Notifier delivers in-app notifications. Failures never fail the caller.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message, kind, relatedID string) error
}

type IssueService struct {
	store    *repository.Store
	notifier Notifier
	now      func() time.Time
}

func NewIssueService(store *repository.Store, notifier Notifier) *IssueService {
	return &IssueService{store: store, notifier: notifier, now: time.Now}
}

type CreateIssueInput struct {
	Title        string               `json:"title" validate:"required,max=200"`
	Description  string               `json:"description" validate:"required,max=2000"`
	Category     models.IssueCategory `json:"category" validate:"required,oneof=roads utilities environment safety parks other"`
	Priority     models.IssuePriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	LocationName string               `json:"location_name" validate:"max=200"`
	Address      string               `json:"address" validate:"max=300"`
	Area         string               `json:"area"`
	Ward         string               `json:"ward"`
	Latitude     *float64             `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64             `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Images       []string             `json:"images" validate:"omitempty,dive,url"`
}

// CreateIssue stores a new report in the pending phase. Awarding points is a
// separate call made by the caller once this succeeds.
func (s *IssueService) CreateIssue(ctx context.Context, actor models.Actor, in CreateIssueInput) (*models.Issue, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.Priority == "" {
		in.Priority = models.Medium
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}

	now := s.now()
	issue := &models.Issue{
		ID:           repository.NewID(),
		UserID:       actor.UserID,
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Priority:     in.Priority,
		Status:       models.Pending,
		LocationName: in.LocationName,
		Address:      in.Address,
		Area:         in.Area,
		Ward:         in.Ward,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Images:       images,
		Tags:         []string{string(in.Category), string(in.Priority)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Issues.Create(ctx, issue); err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return issue, nil
}

func (s *IssueService) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	issue, err := s.store.Issues.FindByID(ctx, id)
	if err != nil {
		return nil, lookup("issue", id, err)
	}
	return issue, nil
}

type ListIssuesInput struct {
	UserID     string
	Category   string
	Status     string
	Priority   string
	Location   string
	Department string
	Search     string
	Sort       string
	Page       int
	Limit      int
}

type IssuePage struct {
	Issues      []models.Issue `json:"issues"`
	TotalIssues int64          `json:"totalIssues"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

func allToEmpty(v string) string {
	if v == "all" {
		return ""
	}
	return v
}

func (s *IssueService) ListIssues(ctx context.Context, in ListIssuesInput) (*IssuePage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 10
	}

	issues, total, err := s.store.Issues.List(ctx, repository.IssueFilter{
		UserID:     in.UserID,
		Category:   allToEmpty(in.Category),
		Status:     allToEmpty(in.Status),
		Priority:   allToEmpty(in.Priority),
		Location:   allToEmpty(in.Location),
		Department: allToEmpty(in.Department),
		Search:     in.Search,
		Sort:       in.Sort,
		Skip:       (in.Page - 1) * in.Limit,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	if issues == nil {
		issues = []models.Issue{}
	}
	return &IssuePage{
		Issues:      issues,
		TotalIssues: total,
		TotalPages:  int((total + int64(in.Limit) - 1) / int64(in.Limit)),
		CurrentPage: in.Page,
	}, nil
}

// TrendingIssues returns issues reported in the last 24 hours, most viewed
// then most upvoted first.
func (s *IssueService) TrendingIssues(ctx context.Context, limit int) ([]models.Issue, error) {
	if limit < 1 {
		limit = 10
	}
	since := s.now().Add(-24 * time.Hour)
	issues, _, err := s.store.Issues.List(ctx, repository.IssueFilter{
		CreatedSince: &since,
		Sort:         repository.SortTrending,
		Limit:        limit,
	})
	if err != nil {
		return nil, fmt.Errorf("trending issues: %w", err)
	}
	if issues == nil {
		issues = []models.Issue{}
	}
	return issues, nil
}

func (s *IssueService) RecordView(ctx context.Context, id string) error {
	if err := s.store.Issues.IncrementViews(ctx, id); err != nil {
		return lookup("issue", id, err)
	}
	return nil
}

// IssuePatch holds the fields an update may change. Nil fields are left alone.
type IssuePatch struct {
	Title                   *string               `json:"title" validate:"omitempty,min=1,max=200"`
	Description             *string               `json:"description" validate:"omitempty,min=1,max=2000"`
	Category                *models.IssueCategory `json:"category" validate:"omitempty,oneof=roads utilities environment safety parks other"`
	Priority                *models.IssuePriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status                  *models.IssueStatus   `json:"status" validate:"omitempty,oneof=pending in_progress resolved"`
	LocationName            *string               `json:"location_name"`
	Address                 *string               `json:"address"`
	Area                    *string               `json:"area"`
	Ward                    *string               `json:"ward"`
	Latitude                *float64              `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude               *float64              `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AssignedDepartment      *string               `json:"assigned_department"`
	AssignedTo              *string               `json:"assigned_to"`
	EstimatedResolutionDate *time.Time            `json:"estimated_resolution_date"`
}

func (p *IssuePatch) touchesWorkflow() bool {
	return p.Status != nil || p.AssignedDepartment != nil || p.AssignedTo != nil || p.EstimatedResolutionDate != nil
}

// UpdateIssue merges patch into the issue. Reporters may edit the details of
// their own issues; only admins may change status or assignment. Status
// changes must follow the pending -> in_progress -> resolved order, and
// reaching resolved stamps the resolution timestamps.
func (s *IssueService) UpdateIssue(ctx context.Context, actor models.Actor, id string, patch IssuePatch) (*models.Issue, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	issue, err := s.store.Issues.FindByID(ctx, id)
	if err != nil {
		return nil, lookup("issue", id, err)
	}
	if !actor.IsAdmin() && (issue.UserID != actor.UserID || patch.touchesWorkflow()) {
		return nil, ErrForbidden
	}

	now := s.now()
	fields := repository.Fields{"updated_at": now}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setString("title", patch.Title)
	setString("description", patch.Description)
	setString("location_name", patch.LocationName)
	setString("address", patch.Address)
	setString("area", patch.Area)
	setString("ward", patch.Ward)
	setString("assigned_department", patch.AssignedDepartment)
	setString("assigned_to", patch.AssignedTo)
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Priority != nil {
		fields["priority"] = *patch.Priority
	}
	if patch.Latitude != nil {
		fields["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		fields["longitude"] = *patch.Longitude
	}
	if patch.EstimatedResolutionDate != nil {
		fields["estimated_resolution_date"] = *patch.EstimatedResolutionDate
	}

	statusChanged := false
	if patch.Status != nil {
		next := *patch.Status
		if !issue.Status.CanTransition(next) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, issue.Status, next)
		}
		fields["status"] = next
		if next == models.Resolved && issue.Status != models.Resolved {
			fields["resolved_at"] = now
			fields["actual_resolution_date"] = now
		}
		statusChanged = next != issue.Status
	}

	if err := s.store.Issues.Update(ctx, id, fields); err != nil {
		return nil, lookup("issue", id, err)
	}

	updated, err := s.store.Issues.FindByID(ctx, id)
	if err != nil {
		return nil, lookup("issue", id, err)
	}
	if statusChanged {
		s.notifyReporter(ctx, updated)
	}
	return updated, nil
}

type Assignment struct {
	Department              string                `json:"department" validate:"required"`
	AssignedTo              string                `json:"assigned_to"`
	Priority                *models.IssuePriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedResolutionDate *time.Time            `json:"estimated_resolution_date"`
}

// AssignIssue hands an issue to a department and moves it to in_progress.
func (s *IssueService) AssignIssue(ctx context.Context, actor models.Actor, id string, a Assignment) (*models.Issue, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(a); err != nil {
		return nil, err
	}
	status := models.InProgress
	return s.UpdateIssue(ctx, actor, id, IssuePatch{
		Status:                  &status,
		AssignedDepartment:      &a.Department,
		AssignedTo:              &a.AssignedTo,
		Priority:                a.Priority,
		EstimatedResolutionDate: a.EstimatedResolutionDate,
	})
}

func (s *IssueService) ResolveIssue(ctx context.Context, actor models.Actor, id string) (*models.Issue, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	status := models.Resolved
	return s.UpdateIssue(ctx, actor, id, IssuePatch{Status: &status})
}

// DeleteIssue removes an issue with its votes and comments. Only the reporter
// or an admin may delete.
func (s *IssueService) DeleteIssue(ctx context.Context, actor models.Actor, id string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	issue, err := s.store.Issues.FindByID(ctx, id)
	if err != nil {
		return lookup("issue", id, err)
	}
	if !actor.IsAdmin() && issue.UserID != actor.UserID {
		return ErrForbidden
	}
	if err := s.store.Issues.Delete(ctx, id); err != nil {
		return lookup("issue", id, err)
	}
	if err := s.store.Votes.DeleteByIssue(ctx, id); err != nil {
		log.Printf("delete votes of issue %s: %v", id, err)
	}
	if err := s.store.Comments.DeleteByIssue(ctx, id); err != nil {
		log.Printf("delete comments of issue %s: %v", id, err)
	}
	return nil
}

type VoteResult struct {
	IssueID   string          `json:"issue_id"`
	Upvotes   int64           `json:"upvotes"`
	Downvotes int64           `json:"downvotes"`
	UserVote  models.VoteType `json:"user_vote,omitempty"`
}

// VoteOnIssue toggles the actor's vote: the same type twice cancels it, the
// other type replaces it. The issue's counters are then recounted from every
// stored vote and overwritten, so concurrent voters never lose increments.
func (s *IssueService) VoteOnIssue(ctx context.Context, actor models.Actor, issueID string, voteType models.VoteType) (*VoteResult, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !voteType.Valid() {
		return nil, invalid("vote_type", "oneof=upvote downvote")
	}
	if _, err := s.store.Issues.FindByID(ctx, issueID); err != nil {
		return nil, lookup("issue", issueID, err)
	}

	existing, err := s.store.Votes.Find(ctx, issueID, actor.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load vote: %w", err)
	}

	result := &VoteResult{IssueID: issueID}
	switch {
	case existing == nil:
		vote := &models.Vote{
			ID:        repository.NewID(),
			IssueID:   issueID,
			UserID:    actor.UserID,
			VoteType:  voteType,
			CreatedAt: s.now(),
		}
		if err := s.store.Votes.Create(ctx, vote); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, fmt.Errorf("vote already being cast: %w", ErrConflict)
			}
			return nil, fmt.Errorf("cast vote: %w", err)
		}
		result.UserVote = voteType
	case existing.VoteType == voteType:
		if err := s.store.Votes.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("remove vote: %w", err)
		}
	default:
		if err := s.store.Votes.UpdateType(ctx, existing.ID, voteType); err != nil {
			return nil, fmt.Errorf("change vote: %w", err)
		}
		result.UserVote = voteType
	}

	up, down, err := s.recountVotes(ctx, issueID)
	if err != nil {
		return nil, err
	}
	result.Upvotes, result.Downvotes = up, down
	return result, nil
}

func (s *IssueService) recountVotes(ctx context.Context, issueID string) (int64, int64, error) {
	votes, err := s.store.Votes.ListByIssue(ctx, issueID)
	if err != nil {
		return 0, 0, fmt.Errorf("recount votes: %w", err)
	}
	up, down := tallyVotes(votes)
	if err := s.store.Issues.Update(ctx, issueID, repository.Fields{"upvotes": up, "downvotes": down}); err != nil {
		return 0, 0, fmt.Errorf("store vote counts: %w", err)
	}
	return up, down, nil
}

func tallyVotes(votes []models.Vote) (up, down int64) {
	for _, v := range votes {
		switch v.VoteType {
		case models.Upvote:
			up++
		case models.Downvote:
			down++
		}
	}
	return up, down
}

// UserVote returns the actor's current vote on an issue, or "" if none.
func (s *IssueService) UserVote(ctx context.Context, actor models.Actor, issueID string) (models.VoteType, error) {
	if !actor.Authenticated() {
		return "", nil
	}
	vote, err := s.store.Votes.Find(ctx, issueID, actor.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load vote: %w", err)
	}
	return vote.VoteType, nil
}

type CommentInput struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// AddComment stores a comment and recounts comments_count. A failed recount
// is logged and left for the next comment to repair.
func (s *IssueService) AddComment(ctx context.Context, actor models.Actor, issueID string, in CommentInput) (*models.Comment, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if _, err := s.store.Issues.FindByID(ctx, issueID); err != nil {
		return nil, lookup("issue", issueID, err)
	}

	comment := &models.Comment{
		ID:        repository.NewID(),
		IssueID:   issueID,
		UserID:    actor.UserID,
		Content:   in.Content,
		CreatedAt: s.now(),
	}
	if err := s.store.Comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	count, err := s.store.Comments.CountByIssue(ctx, issueID)
	if err == nil {
		err = s.store.Issues.Update(ctx, issueID, repository.Fields{"comments_count": count})
	}
	if err != nil {
		log.Printf("recount comments of issue %s: %v", issueID, err)
	}
	return comment, nil
}

func (s *IssueService) ListComments(ctx context.Context, issueID string) ([]models.Comment, error) {
	comments, err := s.store.Comments.ListByIssue(ctx, issueID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (s *IssueService) notifyReporter(ctx context.Context, issue *models.Issue) {
	if s.notifier == nil || issue.UserID == "" {
		return
	}
	msg := fmt.Sprintf("Your report %q is now %s.", issue.Title, issue.Status.Label())
	if err := s.notifier.Notify(ctx, issue.UserID, "Issue "+issue.Status.Label(), msg, models.NotificationTypeIssue, issue.ID); err != nil {
		log.Printf("notify reporter of issue %s: %v", issue.ID, err)
	}
}
