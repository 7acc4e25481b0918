package mongorepo

import (
	"context"
	"regexp"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	coll *mongo.Collection
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return translate(err)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"email": email})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"_id": id})
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	update := bson.M{"$set": bson.M{"password": hash, "updated_at": time.Now()}}
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, update))
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return deleted(r.coll.DeleteOne(ctx, bson.M{"_id": id}))
}

type profileRepository struct {
	coll *mongo.Collection
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	_, err := r.coll.InsertOne(ctx, profile)
	return translate(err)
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	return findOne[models.Profile](ctx, r.coll, bson.M{"_id": id})
}

func (r *profileRepository) Update(ctx context.Context, id string, fields repository.Fields) error {
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)}))
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	return deleted(r.coll.DeleteOne(ctx, bson.M{"_id": id}))
}

func (r *profileRepository) List(ctx context.Context, f repository.ProfileFilter) ([]models.Profile, error) {
	filter := bson.M{}
	if f.UserType != "" {
		filter["user_type"] = f.UserType
	}
	if f.Search != "" {
		re := bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
		filter["$or"] = []bson.M{
			{"full_name": re}, {"email": re}, {"first_name": re}, {"last_name": re},
		}
	}
	return findAll[models.Profile](ctx, r.coll, filter, newestFirst())
}

func (r *profileRepository) TopByPoints(ctx context.Context, limit int) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "points", Value: -1}}).SetLimit(int64(limit))
	return findAll[models.Profile](ctx, r.coll, bson.M{}, opts)
}

func (r *profileRepository) IncrementPoints(ctx context.Context, id string, delta int64) error {
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"points": delta}}))
}
