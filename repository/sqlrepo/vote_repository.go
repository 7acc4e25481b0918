package sqlrepo

import (
	"context"

	"janconnect-be/models"

	"gorm.io/gorm"
)

type voteRepository struct {
	db *gorm.DB
}

func (r *voteRepository) Find(ctx context.Context, issueID, userID string) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).First(&vote, "issue_id = ? AND user_id = ?", issueID, userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &vote, nil
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	return translate(r.db.WithContext(ctx).Create(vote).Error)
}

func (r *voteRepository) UpdateType(ctx context.Context, id string, voteType models.VoteType) error {
	return affected(r.db.WithContext(ctx).Model(&models.Vote{}).Where("id = ?", id).Update("vote_type", voteType))
}

func (r *voteRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Vote{}, "id = ?", id))
}

func (r *voteRepository) ListByIssue(ctx context.Context, issueID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.WithContext(ctx).Where("issue_id = ?", issueID).Find(&votes).Error
	return votes, err
}

func (r *voteRepository) DeleteByIssue(ctx context.Context, issueID string) error {
	return r.db.WithContext(ctx).Where("issue_id = ?", issueID).Delete(&models.Vote{}).Error
}

type commentRepository struct {
	db *gorm.DB
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return translate(r.db.WithContext(ctx).Create(comment).Error)
}

func (r *commentRepository) ListByIssue(ctx context.Context, issueID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Where("issue_id = ?", issueID).Order("created_at asc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByIssue(ctx context.Context, issueID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("issue_id = ?", issueID).Count(&n).Error
	return n, err
}

func (r *commentRepository) DeleteByIssue(ctx context.Context, issueID string) error {
	return r.db.WithContext(ctx).Where("issue_id = ?", issueID).Delete(&models.Comment{}).Error
}
