package mongorepo

import (
	"context"

	"janconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type voteRepository struct {
	coll *mongo.Collection
}

func (r *voteRepository) Find(ctx context.Context, issueID, userID string) (*models.Vote, error) {
	return findOne[models.Vote](ctx, r.coll, bson.M{"issue_id": issueID, "user_id": userID})
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	_, err := r.coll.InsertOne(ctx, vote)
	return translate(err)
}

func (r *voteRepository) UpdateType(ctx context.Context, id string, voteType models.VoteType) error {
	return matched(r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"vote_type": voteType}}))
}

func (r *voteRepository) Delete(ctx context.Context, id string) error {
	return deleted(r.coll.DeleteOne(ctx, bson.M{"_id": id}))
}

func (r *voteRepository) ListByIssue(ctx context.Context, issueID string) ([]models.Vote, error) {
	return findAll[models.Vote](ctx, r.coll, bson.M{"issue_id": issueID})
}

func (r *voteRepository) DeleteByIssue(ctx context.Context, issueID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"issue_id": issueID})
	return err
}

type commentRepository struct {
	coll *mongo.Collection
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	_, err := r.coll.InsertOne(ctx, comment)
	return translate(err)
}

func (r *commentRepository) ListByIssue(ctx context.Context, issueID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return findAll[models.Comment](ctx, r.coll, bson.M{"issue_id": issueID}, opts)
}

func (r *commentRepository) CountByIssue(ctx context.Context, issueID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"issue_id": issueID})
}

func (r *commentRepository) DeleteByIssue(ctx context.Context, issueID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"issue_id": issueID})
	return err
}
