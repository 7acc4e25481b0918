package models

import (
	"time"
)

// MunicipalOfficial is a staff contact in one of the departments issues are
// assigned to.
type MunicipalOfficial struct {
	ID          string    `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	UserID      string    `bson:"user_id,omitempty" json:"user_id,omitempty" gorm:"size:36"`
	FullName    string    `bson:"full_name" json:"full_name"`
	Designation string    `bson:"designation" json:"designation"`
	Department  string    `bson:"department" json:"department" gorm:"index"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Ward        string    `bson:"ward" json:"ward"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
