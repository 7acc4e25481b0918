package mongorepo

import (
	"context"
	"time"

	"janconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postRepository struct {
	coll *mongo.Collection
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	_, err := r.coll.InsertOne(ctx, post)
	return translate(err)
}

func (r *postRepository) List(ctx context.Context, since *time.Time) ([]models.Post, error) {
	filter := bson.M{}
	if since != nil {
		filter["created_at"] = bson.M{"$gte": *since}
	}
	return findAll[models.Post](ctx, r.coll, filter, newestFirst())
}

type feedbackRepository struct {
	coll *mongo.Collection
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	_, err := r.coll.InsertOne(ctx, feedback)
	return translate(err)
}

func (r *feedbackRepository) ListByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	return findAll[models.Feedback](ctx, r.coll, bson.M{"user_id": userID}, newestFirst())
}

func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	return findAll[models.Feedback](ctx, r.coll, bson.M{}, newestFirst())
}

type notificationRepository struct {
	coll *mongo.Collection
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	_, err := r.coll.InsertOne(ctx, n)
	return translate(err)
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	return findOne[models.Notification](ctx, r.coll, bson.M{"_id": id})
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return findAll[models.Notification](ctx, r.coll, bson.M{"user_id": userID}, newestFirst())
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string, at time.Time) error {
	update := bson.M{"$set": bson.M{"is_read": true, "read_at": at}}
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, update))
}

type officialRepository struct {
	coll *mongo.Collection
}

func (r *officialRepository) Create(ctx context.Context, official *models.MunicipalOfficial) error {
	_, err := r.coll.InsertOne(ctx, official)
	return translate(err)
}

func (r *officialRepository) ListActive(ctx context.Context) ([]models.MunicipalOfficial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "department", Value: 1}, {Key: "full_name", Value: 1}})
	return findAll[models.MunicipalOfficial](ctx, r.coll, bson.M{"is_active": true}, opts)
}

func (r *officialRepository) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": active, "updated_at": at}}))
}
