package sqlrepo

import (
	"context"
	"strings"

	"janconnect-be/models"
	"janconnect-be/repository"

	"gorm.io/gorm"
)

type issueRepository struct {
	db *gorm.DB
}

func (r *issueRepository) Create(ctx context.Context, issue *models.Issue) error {
	return translate(r.db.WithContext(ctx).Create(issue).Error)
}

func (r *issueRepository) FindByID(ctx context.Context, id string) (*models.Issue, error) {
	var issue models.Issue
	if err := r.db.WithContext(ctx).First(&issue, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &issue, nil
}

func (r *issueRepository) Update(ctx context.Context, id string, fields repository.Fields) error {
	res := r.db.WithContext(ctx).Model(&models.Issue{}).Where("id = ?", id).Updates(map[string]any(fields))
	return affected(res)
}

func (r *issueRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Issue{}, "id = ?", id))
}

func (r *issueRepository) List(ctx context.Context, f repository.IssueFilter) ([]models.Issue, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.filtered(ctx, f)
	switch f.Sort {
	case repository.SortOldest:
		q = q.Order("created_at asc")
	case repository.SortVotes:
		q = q.Order("upvotes desc").Order("created_at desc")
	case repository.SortTrending:
		q = q.Order("views_count desc").Order("upvotes desc")
	default:
		q = q.Order("created_at desc")
	}
	if f.Skip > 0 {
		q = q.Offset(f.Skip)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var issues []models.Issue
	if err := q.Find(&issues).Error; err != nil {
		return nil, 0, err
	}
	return issues, total, nil
}

func (r *issueRepository) filtered(ctx context.Context, f repository.IssueFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Issue{})
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Location != "" {
		q = q.Where("(area = ? OR ward = ?)", f.Location, f.Location)
	}
	if f.Department != "" {
		q = q.Where("assigned_department = ?", f.Department)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	if f.CreatedSince != nil {
		q = q.Where("created_at >= ?", *f.CreatedSince)
	}
	return q
}

func (r *issueRepository) IncrementViews(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&models.Issue{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	return affected(res)
}
