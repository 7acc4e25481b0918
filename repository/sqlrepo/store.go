// Package sqlrepo implements the repositories on gorm (sqlite or postgres).
package sqlrepo

import (
	"errors"

	"janconnect-be/models"
	"janconnect-be/repository"

	"gorm.io/gorm"
)

// NewStore wires every repository to db. db should be opened with
// gorm.Config{TranslateError: true} so unique violations map to ErrDuplicate.
func NewStore(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Issues:        &issueRepository{db: db},
		Votes:         &voteRepository{db: db},
		Comments:      &commentRepository{db: db},
		Tenders:       &tenderRepository{db: db},
		Bids:          &bidRepository{db: db},
		Users:         &userRepository{db: db},
		Profiles:      &profileRepository{db: db},
		Posts:         &postRepository{db: db},
		Feedback:      &feedbackRepository{db: db},
		Notifications: &notificationRepository{db: db},
		Officials:     &officialRepository{db: db},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.Profile{},
		&models.Issue{}, &models.Vote{}, &models.Comment{},
		&models.Tender{}, &models.Bid{},
		&models.Post{}, &models.Feedback{}, &models.Notification{},
		&models.MunicipalOfficial{},
	)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	}
	return err
}

// affected turns an update/delete result into ErrNotFound when no row matched.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
