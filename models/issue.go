package models

import (
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Roads       IssueCategory = "roads"
	Utilities   IssueCategory = "utilities"
	Environment IssueCategory = "environment"
	Safety      IssueCategory = "safety"
	Parks       IssueCategory = "parks"
	Other       IssueCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c IssueCategory) Valid() bool {
	switch c {
	case Roads, Utilities, Environment, Safety, Parks, Other:
		return true
	}
	return false
}

// IssuePriority enum
type IssuePriority string

const (
	Low    IssuePriority = "low"
	Medium IssuePriority = "medium"
	High   IssuePriority = "high"
	Urgent IssuePriority = "urgent"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case Low, Medium, High, Urgent:
		return true
	}
	return false
}

// TenderManagementDepartment is the department an issue is handed to once a
// tender has been raised for it.
const TenderManagementDepartment = "Tender Management"

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID                      string        `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	UserID                  string        `bson:"user_id" json:"user_id" gorm:"index;size:36"`
	Title                   string        `bson:"title" json:"title"`
	Description             string        `bson:"description" json:"description"`
	Category                IssueCategory `bson:"category" json:"category" gorm:"index"`
	Priority                IssuePriority `bson:"priority" json:"priority"`
	Status                  IssueStatus   `bson:"status" json:"status" gorm:"index"`
	LocationName            string        `bson:"location_name" json:"location_name"`
	Address                 string        `bson:"address" json:"address"`
	Area                    string        `bson:"area" json:"area"`
	Ward                    string        `bson:"ward" json:"ward"`
	Latitude                *float64      `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude               *float64      `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Images                  []string      `bson:"images" json:"images" gorm:"serializer:json"`
	Tags                    []string      `bson:"tags" json:"tags" gorm:"serializer:json"`
	Upvotes                 int64         `bson:"upvotes" json:"upvotes"`
	Downvotes               int64         `bson:"downvotes" json:"downvotes"`
	CommentsCount           int64         `bson:"comments_count" json:"comments_count"`
	ViewsCount              int64         `bson:"views_count" json:"views_count"`
	AssignedDepartment      string        `bson:"assigned_department" json:"assigned_department"`
	AssignedTo              string        `bson:"assigned_to" json:"assigned_to"`
	EstimatedResolutionDate *time.Time    `bson:"estimated_resolution_date,omitempty" json:"estimated_resolution_date,omitempty"`
	ActualResolutionDate    *time.Time    `bson:"actual_resolution_date,omitempty" json:"actual_resolution_date,omitempty"`
	CreatedAt               time.Time     `bson:"created_at" json:"created_at" gorm:"index"`
	UpdatedAt               time.Time     `bson:"updated_at" json:"updated_at"`
	ResolvedAt              *time.Time    `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
}

// IsHighPriority is true for high and urgent issues.
func (i *Issue) IsHighPriority() bool {
	return i.Priority == High || i.Priority == Urgent
}
