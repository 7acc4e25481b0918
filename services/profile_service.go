package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"
	"janconnect-be/scoring"
)

type ProfileService struct {
	store *repository.Store
	now   func() time.Time
}

func NewProfileService(store *repository.Store) *ProfileService {
	return &ProfileService{store: store, now: time.Now}
}

// AwardPoints adds points to a user's stored total. The increment happens in
// the database so concurrent awards are not lost.
func (s *ProfileService) AwardPoints(ctx context.Context, userID, reason string, points int64) error {
	if userID == "" || points == 0 {
		return nil
	}
	if err := s.store.Profiles.IncrementPoints(ctx, userID, points); err != nil {
		return lookup("profile", userID, err)
	}
	log.Printf("Awarded %d points to %s for %s", points, userID, reason)
	return nil
}

// AwardIssuePoints grants the one-time reward for reporting an issue.
func (s *ProfileService) AwardIssuePoints(ctx context.Context, issue *models.Issue) error {
	return s.AwardPoints(ctx, issue.UserID, "issue "+issue.ID, scoring.PointsForPriority(issue.Priority))
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.store.Profiles.FindByID(ctx, id)
	if err != nil {
		return nil, lookup("profile", id, err)
	}
	return profile, nil
}

type ProfilePatch struct {
	FullName   *string `json:"full_name" validate:"omitempty,max=120"`
	FirstName  *string `json:"first_name" validate:"omitempty,max=60"`
	LastName   *string `json:"last_name" validate:"omitempty,max=60"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
}

func (s *ProfileService) UpdateMyProfile(ctx context.Context, actor models.Actor, patch ProfilePatch) (*models.Profile, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	fields := repository.Fields{"updated_at": s.now()}
	for key, v := range map[string]*string{
		"full_name":   patch.FullName,
		"first_name":  patch.FirstName,
		"last_name":   patch.LastName,
		"phone":       patch.Phone,
		"address":     patch.Address,
		"city":        patch.City,
		"state":       patch.State,
		"postal_code": patch.PostalCode,
		"avatar_url":  patch.AvatarURL,
	} {
		if v != nil {
			fields[key] = *v
		}
	}
	if err := s.store.Profiles.Update(ctx, actor.UserID, fields); err != nil {
		return nil, lookup("profile", actor.UserID, err)
	}
	return s.GetProfile(ctx, actor.UserID)
}

func (s *ProfileService) ListProfiles(ctx context.Context, actor models.Actor, userType, search string) ([]models.Profile, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	profiles, err := s.store.Profiles.List(ctx, repository.ProfileFilter{
		UserType: allToEmpty(userType),
		Search:   search,
	})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	return profiles, nil
}

// AdminProfileUpdate holds the fields only an administrator may change.
type AdminProfileUpdate struct {
	UserType   *models.UserType `json:"user_type" validate:"omitempty,oneof=user admin tender"`
	IsVerified *bool            `json:"is_verified"`
	Points     *int64           `json:"points" validate:"omitempty,gte=0"`
}

func (s *ProfileService) AdminUpdateProfile(ctx context.Context, actor models.Actor, id string, in AdminProfileUpdate) (*models.Profile, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	fields := repository.Fields{"updated_at": s.now()}
	if in.UserType != nil {
		fields["user_type"] = *in.UserType
	}
	if in.IsVerified != nil {
		fields["is_verified"] = *in.IsVerified
	}
	if in.Points != nil {
		fields["points"] = *in.Points
	}
	if err := s.store.Profiles.Update(ctx, id, fields); err != nil {
		return nil, lookup("profile", id, err)
	}
	return s.GetProfile(ctx, id)
}

// DeleteUser removes the profile and the credentials. Content the user posted
// stays.
func (s *ProfileService) DeleteUser(ctx context.Context, actor models.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if actor.UserID == id {
		return fmt.Errorf("cannot delete your own account: %w", ErrConflict)
	}
	if err := s.store.Profiles.Delete(ctx, id); err != nil {
		return lookup("profile", id, err)
	}
	if err := s.store.Users.Delete(ctx, id); err != nil {
		log.Printf("delete credentials of %s: %v", id, err)
	}
	return nil
}
