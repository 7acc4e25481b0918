package models

import (
	"time"
)

// Post is a community post. Posts count towards the leaderboard.
type Post struct {
	ID        string    `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `bson:"user_id" json:"user_id" gorm:"index;size:36"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at" gorm:"index"`
}

type Feedback struct {
	ID        string    `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `bson:"user_id,omitempty" json:"user_id,omitempty" gorm:"index;size:36"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Rating    int       `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Notification types
const (
	NotificationTypeFeedback = "feedback"
	NotificationTypeIssue    = "issue"
	NotificationTypeTender   = "tender"
)

type Notification struct {
	ID        string     `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	UserID    string     `bson:"user_id" json:"user_id" gorm:"index;size:36"`
	Title     string     `bson:"title" json:"title"`
	Message   string     `bson:"message" json:"message"`
	Type      string     `bson:"type" json:"type"`
	RelatedID string     `bson:"related_id,omitempty" json:"related_id,omitempty"`
	IsRead    bool       `bson:"is_read" json:"is_read"`
	IsSent    bool       `bson:"is_sent" json:"is_sent"`
	ReadAt    *time.Time `bson:"read_at,omitempty" json:"read_at,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}
