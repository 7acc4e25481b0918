// Package repository defines the storage operations the services depend on.
// Two backends implement them: mongorepo (MongoDB) and sqlrepo (gorm).
package repository

import (
	"context"
	"errors"
	"time"

	"janconnect-be/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

// NewID returns a fresh primary key.
func NewID() string {
	return uuid.NewString()
}

// Fields is a partial update keyed by column name.
type Fields map[string]any

// Issue sort orders
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortVotes    = "votes"
	SortTrending = "trending"
)

type IssueFilter struct {
	UserID       string
	Category     string
	Status       string
	Priority     string
	Location     string // matches area or ward
	Department   string
	Search       string // case-insensitive match on title or description
	CreatedSince *time.Time
	Sort         string
	Skip         int
	Limit        int // 0 means no limit
}

type ProfileFilter struct {
	UserType string
	Search   string
}

type IssueRepository interface {
	Create(ctx context.Context, issue *models.Issue) error
	FindByID(ctx context.Context, id string) (*models.Issue, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter IssueFilter) ([]models.Issue, int64, error)
	IncrementViews(ctx context.Context, id string) error
}

type VoteRepository interface {
	Find(ctx context.Context, issueID, userID string) (*models.Vote, error)
	Create(ctx context.Context, vote *models.Vote) error
	UpdateType(ctx context.Context, id string, voteType models.VoteType) error
	Delete(ctx context.Context, id string) error
	ListByIssue(ctx context.Context, issueID string) ([]models.Vote, error)
	DeleteByIssue(ctx context.Context, issueID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByIssue(ctx context.Context, issueID string) ([]models.Comment, error)
	CountByIssue(ctx context.Context, issueID string) (int64, error)
	DeleteByIssue(ctx context.Context, issueID string) error
}

type TenderRepository interface {
	Create(ctx context.Context, tender *models.Tender) error
	FindByID(ctx context.Context, id string) (*models.Tender, error)
	Delete(ctx context.Context, id string) error
	// List returns tenders newest first; an empty status matches all.
	List(ctx context.Context, status string) ([]models.Tender, error)
	UpdateStatus(ctx context.Context, id string, status models.TenderStatus) error
}

type BidRepository interface {
	Create(ctx context.Context, bid *models.Bid) error
	ListByTenders(ctx context.Context, tenderIDs []string) ([]models.Bid, error)
	ListByUser(ctx context.Context, userID string) ([]models.Bid, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
	// List returns profiles newest first.
	List(ctx context.Context, filter ProfileFilter) ([]models.Profile, error)
	TopByPoints(ctx context.Context, limit int) ([]models.Profile, error)
	IncrementPoints(ctx context.Context, id string, delta int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// List returns posts newest first, optionally only those created since.
	List(ctx context.Context, since *time.Time) ([]models.Post, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListByUser(ctx context.Context, userID string) ([]models.Feedback, error)
	List(ctx context.Context) ([]models.Feedback, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id string) (*models.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
}

type OfficialRepository interface {
	Create(ctx context.Context, official *models.MunicipalOfficial) error
	// ListActive returns active officials ordered by department then name.
	ListActive(ctx context.Context) ([]models.MunicipalOfficial, error)
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
}

// Store bundles every repository of one backend.
type Store struct {
	Issues        IssueRepository
	Votes         VoteRepository
	Comments      CommentRepository
	Tenders       TenderRepository
	Bids          BidRepository
	Users         UserRepository
	Profiles      ProfileRepository
	Posts         PostRepository
	Feedback      FeedbackRepository
	Notifications NotificationRepository
	Officials     OfficialRepository
}
