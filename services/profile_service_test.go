package services

import (
	"context"
	"errors"
	"testing"

	"janconnect-be/models"
)

func TestAwardIssuePoints(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seedProfile(t, store, citizen.UserID, models.Citizen, 0)
	issues := NewIssueService(store, nil)
	profiles := NewProfileService(store)

	for _, p := range []models.IssuePriority{models.Urgent, models.Low} {
		if err := profiles.AwardIssuePoints(ctx, newIssue(t, issues, citizen, p)); err != nil {
			t.Fatalf("AwardIssuePoints: %v", err)
		}
	}
	got, err := profiles.GetProfile(ctx, citizen.UserID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Points != 25 {
		t.Fatalf("expected 25 points, got %d", got.Points)
	}

	if err := profiles.AwardPoints(ctx, "ghost", "test", 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileUpdates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seedProfile(t, store, citizen.UserID, models.Citizen, 0)
	profiles := NewProfileService(store)

	city := "Pune"
	got, err := profiles.UpdateMyProfile(ctx, citizen, ProfilePatch{City: &city})
	if err != nil {
		t.Fatalf("UpdateMyProfile: %v", err)
	}
	if got.City != city || got.FullName != citizen.UserID {
		t.Fatalf("unexpected profile: %+v", got)
	}

	verified := true
	if _, err := profiles.AdminUpdateProfile(ctx, citizen, citizen.UserID, AdminProfileUpdate{IsVerified: &verified}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	role := models.Contractor
	got, err = profiles.AdminUpdateProfile(ctx, admin, citizen.UserID, AdminProfileUpdate{IsVerified: &verified, UserType: &role})
	if err != nil {
		t.Fatalf("AdminUpdateProfile: %v", err)
	}
	if !got.IsVerified || got.UserType != models.Contractor {
		t.Fatalf("unexpected profile: %+v", got)
	}

	list, err := profiles.ListProfiles(ctx, admin, "tender", "")
	if err != nil || len(list) != 1 {
		t.Fatalf("ListProfiles = %d, %v", len(list), err)
	}

	if err := profiles.DeleteUser(ctx, admin, admin.UserID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict deleting self, got %v", err)
	}
	if err := profiles.DeleteUser(ctx, admin, citizen.UserID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := profiles.GetProfile(ctx, citizen.UserID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
