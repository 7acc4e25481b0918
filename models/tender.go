package models

import (
	"time"
)

// TenderStatus enum
type TenderStatus string

const (
	TenderAvailable TenderStatus = "available"
	TenderAwarded   TenderStatus = "awarded"
	TenderClosed    TenderStatus = "closed"
	TenderCancelled TenderStatus = "cancelled"
)

func (s TenderStatus) Valid() bool {
	switch s {
	case TenderAvailable, TenderAwarded, TenderClosed, TenderCancelled:
		return true
	}
	return false
}

// TenderMetadata records where a tender came from.
type TenderMetadata struct {
	SourceIssueID string `bson:"source_issue_id,omitempty" json:"source_issue_id,omitempty"`
	SourceType    string `bson:"source_type,omitempty" json:"source_type,omitempty"`
}

// Tender is a procurement listing contractors can bid on.
type Tender struct {
	ID                 string         `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	PostedBy           string         `bson:"posted_by" json:"posted_by" gorm:"size:36"`
	Title              string         `bson:"title" json:"title"`
	Description        string         `bson:"description" json:"description"`
	Category           IssueCategory  `bson:"category" json:"category"`
	Location           string         `bson:"location" json:"location"`
	Area               string         `bson:"area" json:"area"`
	Ward               string         `bson:"ward" json:"ward"`
	Priority           IssuePriority  `bson:"priority" json:"priority"`
	EstimatedBudgetMin float64        `bson:"estimated_budget_min" json:"estimated_budget_min"`
	EstimatedBudgetMax float64        `bson:"estimated_budget_max" json:"estimated_budget_max"`
	DeadlineDate       time.Time      `bson:"deadline_date" json:"deadline_date"`
	SubmissionDeadline time.Time      `bson:"submission_deadline" json:"submission_deadline"`
	Requirements       []string       `bson:"requirements" json:"requirements" gorm:"serializer:json"`
	Status             TenderStatus   `bson:"status" json:"status" gorm:"index"`
	Metadata           TenderMetadata `bson:"metadata" json:"metadata" gorm:"serializer:json"`
	CreatedAt          time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `bson:"updated_at" json:"updated_at"`
	Bids               []Bid          `bson:"-" json:"bids,omitempty" gorm:"-"`
}

// BidStatus enum
type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidAccepted BidStatus = "accepted"
	BidRejected BidStatus = "rejected"
)

// Bid is a contractor's offer on a tender.
type Bid struct {
	ID        string    `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	TenderID  string    `bson:"tender_id" json:"tender_id" gorm:"index;size:36"`
	UserID    string    `bson:"user_id" json:"user_id" gorm:"index;size:36"`
	Amount    float64   `bson:"amount" json:"amount"`
	Details   string    `bson:"details" json:"details"`
	Status    BidStatus `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
