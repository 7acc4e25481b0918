package mongorepo

import (
	"context"
	"regexp"

	"janconnect-be/models"
	"janconnect-be/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type issueRepository struct {
	coll *mongo.Collection
}

func (r *issueRepository) Create(ctx context.Context, issue *models.Issue) error {
	_, err := r.coll.InsertOne(ctx, issue)
	return translate(err)
}

func (r *issueRepository) FindByID(ctx context.Context, id string) (*models.Issue, error) {
	return findOne[models.Issue](ctx, r.coll, bson.M{"_id": id})
}

func (r *issueRepository) Update(ctx context.Context, id string, fields repository.Fields) error {
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)}))
}

func (r *issueRepository) Delete(ctx context.Context, id string) error {
	return deleted(r.coll.DeleteOne(ctx, bson.M{"_id": id}))
}

func (r *issueRepository) List(ctx context.Context, f repository.IssueFilter) ([]models.Issue, int64, error) {
	filter := issueFilter(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var sort bson.D
	switch f.Sort {
	case repository.SortOldest:
		sort = bson.D{{Key: "created_at", Value: 1}}
	case repository.SortVotes:
		sort = bson.D{{Key: "upvotes", Value: -1}, {Key: "created_at", Value: -1}}
	case repository.SortTrending:
		sort = bson.D{{Key: "views_count", Value: -1}, {Key: "upvotes", Value: -1}}
	default:
		sort = bson.D{{Key: "created_at", Value: -1}}
	}

	findOptions := options.Find().SetSort(sort)
	if f.Skip > 0 {
		findOptions.SetSkip(int64(f.Skip))
	}
	if f.Limit > 0 {
		findOptions.SetLimit(int64(f.Limit))
	}

	issues, err := findAll[models.Issue](ctx, r.coll, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	return issues, total, nil
}

func issueFilter(f repository.IssueFilter) bson.M {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}
	if f.Department != "" {
		filter["assigned_department"] = f.Department
	}
	if f.CreatedSince != nil {
		filter["created_at"] = bson.M{"$gte": *f.CreatedSince}
	}

	var or []bson.M
	if f.Location != "" {
		or = append(or, bson.M{"$or": []bson.M{{"area": f.Location}, {"ward": f.Location}}})
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		or = append(or, bson.M{"$or": []bson.M{
			{"title": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}})
	}
	if len(or) > 0 {
		filter["$and"] = or
	}
	return filter
}

func (r *issueRepository) IncrementViews(ctx context.Context, id string) error {
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views_count": 1}}))
}
