package sqlrepo

import (
	"context"
	"time"

	"janconnect-be/models"

	"gorm.io/gorm"
)

type tenderRepository struct {
	db *gorm.DB
}

func (r *tenderRepository) Create(ctx context.Context, tender *models.Tender) error {
	return translate(r.db.WithContext(ctx).Create(tender).Error)
}

func (r *tenderRepository) FindByID(ctx context.Context, id string) (*models.Tender, error) {
	var tender models.Tender
	if err := r.db.WithContext(ctx).First(&tender, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tender, nil
}

func (r *tenderRepository) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Delete(&models.Tender{}, "id = ?", id))
}

func (r *tenderRepository) List(ctx context.Context, status string) ([]models.Tender, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tenders []models.Tender
	err := q.Find(&tenders).Error
	return tenders, err
}

func (r *tenderRepository) UpdateStatus(ctx context.Context, id string, status models.TenderStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Tender{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	return affected(res)
}

type bidRepository struct {
	db *gorm.DB
}

func (r *bidRepository) Create(ctx context.Context, bid *models.Bid) error {
	return translate(r.db.WithContext(ctx).Create(bid).Error)
}

func (r *bidRepository) ListByTenders(ctx context.Context, tenderIDs []string) ([]models.Bid, error) {
	if len(tenderIDs) == 0 {
		return nil, nil
	}
	var bids []models.Bid
	err := r.db.WithContext(ctx).Where("tender_id IN ?", tenderIDs).Order("created_at desc").Find(&bids).Error
	return bids, err
}

func (r *bidRepository) ListByUser(ctx context.Context, userID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&bids).Error
	return bids, err
}
