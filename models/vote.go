package models

import (
	"time"
)

// VoteType enum
type VoteType string

const (
	Upvote   VoteType = "upvote"
	Downvote VoteType = "downvote"
)

func (v VoteType) Valid() bool {
	return v == Upvote || v == Downvote
}

// Vote represents a user's vote on an issue. (issue_id, user_id) is unique.
type Vote struct {
	ID        string    `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	IssueID   string    `bson:"issue_id" json:"issue_id" gorm:"uniqueIndex:idx_vote_issue_user;size:36"`
	UserID    string    `bson:"user_id" json:"user_id" gorm:"uniqueIndex:idx_vote_issue_user;size:36"`
	VoteType  VoteType  `bson:"vote_type" json:"vote_type"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Comment is a remark left by a user on an issue.
type Comment struct {
	ID        string    `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	IssueID   string    `bson:"issue_id" json:"issue_id" gorm:"index;size:36"`
	UserID    string    `bson:"user_id" json:"user_id" gorm:"size:36"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
