// Package mongorepo implements the repositories on MongoDB collections.
package mongorepo

import (
	"context"
	"errors"
	"time"

	"janconnect-be/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	IssuesCollection        = "issues"
	VotesCollection         = "votes"
	CommentsCollection      = "comments"
	TendersCollection       = "tenders"
	BidsCollection          = "bids"
	UsersCollection         = "users"
	ProfilesCollection      = "profiles"
	PostsCollection         = "posts"
	FeedbackCollection      = "feedback"
	NotificationsCollection = "notifications"
	OfficialsCollection     = "municipal_officials"
)

func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Issues:        &issueRepository{coll: db.Collection(IssuesCollection)},
		Votes:         &voteRepository{coll: db.Collection(VotesCollection)},
		Comments:      &commentRepository{coll: db.Collection(CommentsCollection)},
		Tenders:       &tenderRepository{coll: db.Collection(TendersCollection)},
		Bids:          &bidRepository{coll: db.Collection(BidsCollection)},
		Users:         &userRepository{coll: db.Collection(UsersCollection)},
		Profiles:      &profileRepository{coll: db.Collection(ProfilesCollection)},
		Posts:         &postRepository{coll: db.Collection(PostsCollection)},
		Feedback:      &feedbackRepository{coll: db.Collection(FeedbackCollection)},
		Notifications: &notificationRepository{coll: db.Collection(NotificationsCollection)},
		Officials:     &officialRepository{coll: db.Collection(OfficialsCollection)},
	}
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		VotesCollection: {{
			Keys:    bson.D{{Key: "issue_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		UsersCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		IssuesCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		ProfilesCollection:  {{Keys: bson.D{{Key: "points", Value: -1}}}},
		CommentsCollection:  {{Keys: bson.D{{Key: "issue_id", Value: 1}}}},
		BidsCollection:      {{Keys: bson.D{{Key: "tender_id", Value: 1}}}},
		OfficialsCollection: {{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "department", Value: 1}}}},
	}
	for name, idx := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	}
	return err
}

func matched(res *mongo.UpdateResult, err error) error {
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleted(res *mongo.DeleteResult, err error) error {
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// findAll runs a query and decodes every document into out.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}
