package sqlrepo

import (
	"context"
	"time"

	"janconnect-be/models"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

func (r *postRepository) List(ctx context.Context, since *time.Time) ([]models.Post, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	var posts []models.Post
	err := q.Find(&posts).Error
	return posts, err
}

type feedbackRepository struct {
	db *gorm.DB
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return translate(r.db.WithContext(ctx).Create(feedback).Error)
}

func (r *feedbackRepository) ListByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	var out []models.Feedback
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&out).Error
	return out, err
}

func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	var out []models.Feedback
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

type notificationRepository struct {
	db *gorm.DB
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return translate(r.db.WithContext(ctx).Create(n).Error)
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&out).Error
	return out, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).
		Updates(map[string]any{"is_read": true, "read_at": at})
	return affected(res)
}

type officialRepository struct {
	db *gorm.DB
}

func (r *officialRepository) Create(ctx context.Context, official *models.MunicipalOfficial) error {
	return translate(r.db.WithContext(ctx).Create(official).Error)
}

func (r *officialRepository) ListActive(ctx context.Context) ([]models.MunicipalOfficial, error) {
	var out []models.MunicipalOfficial
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("department asc").Order("full_name asc").Find(&out).Error
	return out, err
}

func (r *officialRepository) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.MunicipalOfficial{}).Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": at})
	return affected(res)
}
