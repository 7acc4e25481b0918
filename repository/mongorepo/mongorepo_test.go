package mongorepo

import (
	"context"
	"errors"
	"testing"

	"janconnect-be/models"
	"janconnect-be/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestIssueFilter(t *testing.T) {
	if got := issueFilter(repository.IssueFilter{}); len(got) != 0 {
		t.Fatalf("empty filter should match everything, got %v", got)
	}

	got := issueFilter(repository.IssueFilter{Status: "pending", Category: "roads", Department: "Roads"})
	if got["status"] != "pending" || got["category"] != "roads" || got["assigned_department"] != "Roads" {
		t.Fatalf("unexpected equality filter %v", got)
	}
	if _, ok := got["$and"]; ok {
		t.Fatalf("no $and expected without location or search: %v", got)
	}

	got = issueFilter(repository.IssueFilter{Location: "Ward 4"})
	and, ok := got["$and"].([]bson.M)
	if !ok || len(and) != 1 {
		t.Fatalf("location should add one $and clause, got %v", got)
	}
	or := and[0]["$or"].([]bson.M)
	if len(or) != 2 || or[0]["area"] != "Ward 4" || or[1]["ward"] != "Ward 4" {
		t.Fatalf("location should match area or ward, got %v", or)
	}

	got = issueFilter(repository.IssueFilter{Location: "Central", Search: "pipe.burst"})
	and = got["$and"].([]bson.M)
	if len(and) != 2 {
		t.Fatalf("location and search must both apply, got %v", got)
	}
	search := and[1]["$or"].([]bson.M)
	title := search[0]["title"].(bson.M)
	if title["$regex"] != `pipe\.burst` || title["$options"] != "i" {
		t.Fatalf("search should be a quoted case-insensitive regex, got %v", title)
	}
}

func TestTranslate(t *testing.T) {
	if err := translate(nil); err != nil {
		t.Fatalf("nil should stay nil, got %v", err)
	}
	if err := translate(mongo.ErrNoDocuments); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	if err := translate(dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	other := errors.New("connection reset")
	if err := translate(other); err != other {
		t.Fatalf("unexpected errors should pass through, got %v", err)
	}

	if err := matched(&mongo.UpdateResult{MatchedCount: 0}, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unmatched update: expected ErrNotFound, got %v", err)
	}
	if err := matched(&mongo.UpdateResult{MatchedCount: 1}, nil); err != nil {
		t.Fatalf("matched update: %v", err)
	}
	if err := deleted(&mongo.DeleteResult{DeletedCount: 0}, nil); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("no-op delete: expected ErrNotFound, got %v", err)
	}
	if err := deleted(nil, other); err != other {
		t.Fatalf("delete error should pass through, got %v", err)
	}
}

func TestVoteRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "janconnect." + VotesCollection

	mt.Run("find existing vote", func(mt *mtest.T) {
		repo := &voteRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "v1"},
			{Key: "issue_id", Value: "i1"},
			{Key: "user_id", Value: "u1"},
			{Key: "vote_type", Value: "upvote"},
		}))

		vote, err := repo.Find(context.Background(), "i1", "u1")
		if err != nil {
			mt.Fatalf("Find: %v", err)
		}
		if vote.ID != "v1" || vote.VoteType != models.Upvote {
			mt.Fatalf("unexpected vote %+v", vote)
		}
	})

	mt.Run("find missing vote", func(mt *mtest.T) {
		repo := &voteRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		if _, err := repo.Find(context.Background(), "i1", "u1"); !errors.Is(err, repository.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("create vote", func(mt *mtest.T) {
		repo := &voteRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := repo.Create(context.Background(), &models.Vote{ID: "v1", IssueID: "i1", UserID: "u1", VoteType: models.Upvote}); err != nil {
			mt.Fatalf("Create: %v", err)
		}
	})

	mt.Run("second vote hits unique index", func(mt *mtest.T) {
		repo := &voteRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: janconnect.votes index: issue_id_1_user_id_1",
		}))

		err := repo.Create(context.Background(), &models.Vote{ID: "v2", IssueID: "i1", UserID: "u1", VoteType: models.Downvote})
		if !errors.Is(err, repository.ErrDuplicate) {
			mt.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})

	mt.Run("update type of missing vote", func(mt *mtest.T) {
		repo := &voteRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		if err := repo.UpdateType(context.Background(), "missing", models.Downvote); !errors.Is(err, repository.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("delete missing vote", func(mt *mtest.T) {
		repo := &voteRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestIssueRepositoryList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "janconnect." + IssuesCollection

	mt.Run("count then page", func(mt *mtest.T) {
		repo := &issueRepository{coll: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(7)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "i1"}, {Key: "title", Value: "Pothole"}, {Key: "status", Value: "pending"}},
				bson.D{{Key: "_id", Value: "i2"}, {Key: "title", Value: "Broken light"}, {Key: "status", Value: "resolved"}},
			),
		)

		issues, total, err := repo.List(context.Background(), repository.IssueFilter{Skip: 5, Limit: 2})
		if err != nil {
			mt.Fatalf("List: %v", err)
		}
		if total != 7 || len(issues) != 2 {
			mt.Fatalf("expected 2 of 7, got %d of %d", len(issues), total)
		}
		if issues[0].ID != "i1" || issues[1].Status != models.Resolved {
			mt.Fatalf("unexpected issues %+v", issues)
		}
	})

	mt.Run("views on missing issue", func(mt *mtest.T) {
		repo := &issueRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		if err := repo.IncrementViews(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
