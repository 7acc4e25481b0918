package sqlrepo

import (
	"context"
	"strings"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]any{"password": hash, "updated_at": time.Now()})
	return affected(res)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id))
}

type profileRepository struct {
	db *gorm.DB
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return translate(r.db.WithContext(ctx).Create(profile).Error)
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, fields repository.Fields) error {
	return affected(r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(map[string]any(fields)))
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id))
}

func (r *profileRepository) List(ctx context.Context, f repository.ProfileFilter) ([]models.Profile, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if f.UserType != "" {
		q = q.Where("user_type = ?", f.UserType)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)",
			like, like, like, like)
	}
	var profiles []models.Profile
	err := q.Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) TopByPoints(ctx context.Context, limit int) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).Order("points desc").Limit(limit).Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) IncrementPoints(ctx context.Context, id string, delta int64) error {
	res := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", delta))
	return affected(res)
}
