package models

import (
	"time"
)

// UserType enum
type UserType string

const (
	Citizen    UserType = "user"
	Admin      UserType = "admin"
	Contractor UserType = "tender"
)

func (t UserType) Valid() bool {
	return t == Citizen || t == Admin || t == Contractor
}

// Profile is the account record of a signed-up user.
type Profile struct {
	ID          string     `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	Email       string     `bson:"email" json:"email"`
	FullName    string     `bson:"full_name" json:"full_name"`
	FirstName   string     `bson:"first_name" json:"first_name"`
	LastName    string     `bson:"last_name" json:"last_name"`
	Phone       string     `bson:"phone" json:"phone"`
	Address     string     `bson:"address" json:"address"`
	City        string     `bson:"city" json:"city"`
	State       string     `bson:"state" json:"state"`
	PostalCode  string     `bson:"postal_code" json:"postal_code"`
	UserType    UserType   `bson:"user_type" json:"user_type" gorm:"index"`
	Points      int64      `bson:"points" json:"points" gorm:"index"`
	IsVerified  bool       `bson:"is_verified" json:"is_verified"`
	AvatarURL   string     `bson:"avatar_url" json:"avatar_url"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
}

// DisplayName falls back from the full name to first/last name to email.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if name := p.FirstName + " " + p.LastName; p.FirstName != "" || p.LastName != "" {
		return name
	}
	return p.Email
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID   string
	UserType UserType
}

func (a Actor) Authenticated() bool {
	return a.UserID != ""
}

func (a Actor) IsAdmin() bool {
	return a.UserType == Admin
}
