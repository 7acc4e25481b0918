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

const submissionWindow = 14 * 24 * time.Hour

type TenderService struct {
	store *repository.Store
	now   func() time.Time
}

func NewTenderService(store *repository.Store) *TenderService {
	return &TenderService{store: store, now: time.Now}
}

// TenderTerms are the commercial fields shared by every way of posting a tender.
type TenderTerms struct {
	EstimatedBudgetMin float64    `json:"estimated_budget_min" validate:"gt=0"`
	EstimatedBudgetMax float64    `json:"estimated_budget_max" validate:"omitempty,gtefield=EstimatedBudgetMin"`
	DeadlineDate       time.Time  `json:"deadline_date" validate:"required"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`
	Requirements       []string   `json:"requirements"`
}

type TenderInput struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Description string               `json:"description" validate:"required"`
	Category    models.IssueCategory `json:"category" validate:"required,oneof=roads utilities environment safety parks other"`
	Location    string               `json:"location"`
	Area        string               `json:"area"`
	Ward        string               `json:"ward"`
	Priority    models.IssuePriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	TenderTerms
}

// TenderFromIssueInput overrides the fields otherwise copied from the issue.
type TenderFromIssueInput struct {
	Title       string                `json:"title" validate:"max=200"`
	Description string                `json:"description"`
	Category    *models.IssueCategory `json:"category" validate:"omitempty,oneof=roads utilities environment safety parks other"`
	Location    string                `json:"location"`
	Area        string                `json:"area"`
	Ward        string                `json:"ward"`
	Priority    *models.IssuePriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	TenderTerms
}

func (s *TenderService) newTender(actor models.Actor, terms TenderTerms) *models.Tender {
	now := s.now()
	t := &models.Tender{
		ID:                 repository.NewID(),
		PostedBy:           actor.UserID,
		EstimatedBudgetMin: terms.EstimatedBudgetMin,
		EstimatedBudgetMax: terms.EstimatedBudgetMax,
		DeadlineDate:       terms.DeadlineDate,
		SubmissionDeadline: now.Add(submissionWindow),
		Requirements:       terms.Requirements,
		Status:             models.TenderAvailable,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if t.EstimatedBudgetMax == 0 {
		t.EstimatedBudgetMax = t.EstimatedBudgetMin
	}
	if terms.SubmissionDeadline != nil {
		t.SubmissionDeadline = *terms.SubmissionDeadline
	}
	if t.Requirements == nil {
		t.Requirements = []string{}
	}
	return t
}

func (s *TenderService) CreateTender(ctx context.Context, actor models.Actor, in TenderInput) (*models.Tender, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	tender := s.newTender(actor, in.TenderTerms)
	tender.Title = in.Title
	tender.Description = in.Description
	tender.Category = in.Category
	tender.Location = in.Location
	tender.Area = in.Area
	tender.Ward = in.Ward
	tender.Priority = in.Priority
	if tender.Priority == "" {
		tender.Priority = models.Medium
	}

	if err := s.store.Tenders.Create(ctx, tender); err != nil {
		return nil, fmt.Errorf("create tender: %w", err)
	}
	return tender, nil
}

// CreateTenderFromIssue posts a tender for an issue and hands the issue to
// tender management. The tender is inserted first; if moving the issue fails
// the tender is deleted again so no orphan listing remains.
func (s *TenderService) CreateTenderFromIssue(ctx context.Context, actor models.Actor, issueID string, in TenderFromIssueInput) (*models.Tender, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	issue, err := s.store.Issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, lookup("issue", issueID, err)
	}
	if !issue.Status.CanTransition(models.InProgress) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, issue.Status, models.InProgress)
	}

	tender := s.newTender(actor, in.TenderTerms)
	tender.Title = firstNonEmpty(in.Title, "Tender for: "+issue.Title)
	tender.Description = firstNonEmpty(in.Description, issue.Description+"\n\nOriginal Issue ID: "+issue.ID)
	tender.Category = issue.Category
	if in.Category != nil {
		tender.Category = *in.Category
	}
	tender.Priority = issue.Priority
	if in.Priority != nil {
		tender.Priority = *in.Priority
	}
	tender.Location = firstNonEmpty(in.Location, issue.LocationName, issue.Address)
	tender.Area = firstNonEmpty(in.Area, issue.Area)
	tender.Ward = firstNonEmpty(in.Ward, issue.Ward)
	tender.Metadata = models.TenderMetadata{SourceIssueID: issue.ID, SourceType: "issue"}

	if err := s.store.Tenders.Create(ctx, tender); err != nil {
		return nil, fmt.Errorf("create tender: %w", err)
	}

	updateErr := s.store.Issues.Update(ctx, issue.ID, repository.Fields{
		"status":              models.InProgress,
		"assigned_department": models.TenderManagementDepartment,
		"updated_at":          s.now(),
	})
	if updateErr == nil {
		return tender, nil
	}

	updateErr = fmt.Errorf("move issue %s to tender management: %w", issue.ID, updateErr)
	if err := s.store.Tenders.Delete(context.WithoutCancel(ctx), tender.ID); err != nil {
		log.Printf("compensate tender %s: %v", tender.ID, err)
		return nil, errors.Join(updateErr, fmt.Errorf("delete tender %s: %w", tender.ID, err))
	}
	return nil, updateErr
}

// ListTenders returns tenders newest first with their bids attached.
// "all" or "" lists every status.
func (s *TenderService) ListTenders(ctx context.Context, status string) ([]models.Tender, error) {
	status = allToEmpty(status)
	if status != "" && !models.TenderStatus(status).Valid() {
		return nil, invalid("status", "oneof=available awarded closed cancelled all")
	}
	tenders, err := s.store.Tenders.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list tenders: %w", err)
	}
	if len(tenders) == 0 {
		return []models.Tender{}, nil
	}

	ids := make([]string, len(tenders))
	for i, t := range tenders {
		ids[i] = t.ID
	}
	bids, err := s.store.Bids.ListByTenders(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	byTender := make(map[string][]models.Bid, len(tenders))
	for _, b := range bids {
		byTender[b.TenderID] = append(byTender[b.TenderID], b)
	}
	for i := range tenders {
		tenders[i].Bids = byTender[tenders[i].ID]
		if tenders[i].Bids == nil {
			tenders[i].Bids = []models.Bid{}
		}
	}
	return tenders, nil
}

type BidInput struct {
	Amount  float64 `json:"amount" validate:"gt=0"`
	Details string  `json:"details" validate:"max=2000"`
}

// CreateBid records a contractor's offer on an open tender.
func (s *TenderService) CreateBid(ctx context.Context, actor models.Actor, tenderID string, in BidInput) (*models.Bid, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if actor.UserType != models.Contractor && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	tender, err := s.store.Tenders.FindByID(ctx, tenderID)
	if err != nil {
		return nil, lookup("tender", tenderID, err)
	}
	if tender.Status != models.TenderAvailable {
		return nil, fmt.Errorf("tender %s is %s: %w", tenderID, tender.Status, ErrConflict)
	}

	bid := &models.Bid{
		ID:        repository.NewID(),
		TenderID:  tenderID,
		UserID:    actor.UserID,
		Amount:    in.Amount,
		Details:   in.Details,
		Status:    models.BidPending,
		CreatedAt: s.now(),
	}
	if err := s.store.Bids.Create(ctx, bid); err != nil {
		return nil, fmt.Errorf("create bid: %w", err)
	}
	return bid, nil
}

func (s *TenderService) ListMyBids(ctx context.Context, actor models.Actor) ([]models.Bid, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	bids, err := s.store.Bids.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return bids, nil
}

func (s *TenderService) UpdateTenderStatus(ctx context.Context, actor models.Actor, id string, status models.TenderStatus) (*models.Tender, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, invalid("status", "oneof=available awarded closed cancelled")
	}
	if err := s.store.Tenders.UpdateStatus(ctx, id, status); err != nil {
		return nil, lookup("tender", id, err)
	}
	tender, err := s.store.Tenders.FindByID(ctx, id)
	if err != nil {
		return nil, lookup("tender", id, err)
	}
	return tender, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
