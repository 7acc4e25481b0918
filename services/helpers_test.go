package services

import (
	"context"
	"testing"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"
	"janconnect-be/repository/sqlrepo"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	admin      = models.Actor{UserID: "admin-1", UserType: models.Admin}
	citizen    = models.Actor{UserID: "citizen-1", UserType: models.Citizen}
	neighbour  = models.Actor{UserID: "citizen-2", UserType: models.Citizen}
	contractor = models.Actor{UserID: "contractor-1", UserType: models.Contractor}
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := sqlrepo.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return sqlrepo.NewStore(db)
}

func seedProfile(t *testing.T, store *repository.Store, id string, userType models.UserType, points int64) {
	t.Helper()
	now := time.Now().UTC()
	err := store.Profiles.Create(context.Background(), &models.Profile{
		ID:        id,
		Email:     id + "@example.com",
		FullName:  id,
		UserType:  userType,
		Points:    points,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed profile %s: %v", id, err)
	}
}

func newIssue(t *testing.T, svc *IssueService, actor models.Actor, priority models.IssuePriority) *models.Issue {
	t.Helper()
	issue, err := svc.CreateIssue(context.Background(), actor, CreateIssueInput{
		Title:        "Pothole on Main Street",
		Description:  "Large pothole near the bus stop",
		Category:     models.Roads,
		Priority:     priority,
		LocationName: "Main Street",
		Area:         "Central",
		Ward:         "Ward 4",
	})
	if err != nil {
		t.Fatalf("CreateIssue: %v", err)
	}
	return issue
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
