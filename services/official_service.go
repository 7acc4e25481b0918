package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"
)

// OfficialService keeps the directory of municipal officials that issues are
// routed to.
type OfficialService struct {
	store *repository.Store
	now   func() time.Time
}

func NewOfficialService(store *repository.Store) *OfficialService {
	return &OfficialService{store: store, now: time.Now}
}

type OfficialInput struct {
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name" validate:"required,max=120"`
	Designation string `json:"designation" validate:"max=120"`
	Department  string `json:"department" validate:"required,max=120"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=20"`
	Ward        string `json:"ward"`
}

func (s *OfficialService) CreateOfficial(ctx context.Context, actor models.Actor, in OfficialInput) (*models.MunicipalOfficial, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	in.Department = strings.TrimSpace(in.Department)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	official := &models.MunicipalOfficial{
		ID:          repository.NewID(),
		UserID:      in.UserID,
		FullName:    in.FullName,
		Designation: in.Designation,
		Department:  in.Department,
		Email:       normalizeEmail(in.Email),
		Phone:       in.Phone,
		Ward:        in.Ward,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Officials.Create(ctx, official); err != nil {
		return nil, fmt.Errorf("create official: %w", err)
	}
	return official, nil
}

// ListOfficials returns the active officials grouped by department.
func (s *OfficialService) ListOfficials(ctx context.Context) ([]models.MunicipalOfficial, error) {
	officials, err := s.store.Officials.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list officials: %w", err)
	}
	if officials == nil {
		officials = []models.MunicipalOfficial{}
	}
	return officials, nil
}

// SetOfficialActive hides an official from the directory or brings them back.
func (s *OfficialService) SetOfficialActive(ctx context.Context, actor models.Actor, id string, active bool) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.store.Officials.SetActive(ctx, id, active, s.now()); err != nil {
		return lookup("official", id, err)
	}
	return nil
}
