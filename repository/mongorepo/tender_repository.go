package mongorepo

import (
	"context"
	"time"

	"janconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type tenderRepository struct {
	coll *mongo.Collection
}

func (r *tenderRepository) Create(ctx context.Context, tender *models.Tender) error {
	_, err := r.coll.InsertOne(ctx, tender)
	return translate(err)
}

func (r *tenderRepository) FindByID(ctx context.Context, id string) (*models.Tender, error) {
	return findOne[models.Tender](ctx, r.coll, bson.M{"_id": id})
}

func (r *tenderRepository) Delete(ctx context.Context, id string) error {
	return deleted(r.coll.DeleteOne(ctx, bson.M{"_id": id}))
}

func (r *tenderRepository) List(ctx context.Context, status string) ([]models.Tender, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findAll[models.Tender](ctx, r.coll, filter, newestFirst())
}

func (r *tenderRepository) UpdateStatus(ctx context.Context, id string, status models.TenderStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, update))
}

type bidRepository struct {
	coll *mongo.Collection
}

func (r *bidRepository) Create(ctx context.Context, bid *models.Bid) error {
	_, err := r.coll.InsertOne(ctx, bid)
	return translate(err)
}

func (r *bidRepository) ListByTenders(ctx context.Context, tenderIDs []string) ([]models.Bid, error) {
	if len(tenderIDs) == 0 {
		return nil, nil
	}
	return findAll[models.Bid](ctx, r.coll, bson.M{"tender_id": bson.M{"$in": tenderIDs}}, newestFirst())
}

func (r *bidRepository) ListByUser(ctx context.Context, userID string) ([]models.Bid, error) {
	return findAll[models.Bid](ctx, r.coll, bson.M{"user_id": userID}, newestFirst())
}
