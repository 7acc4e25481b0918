package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User holds login credentials. The public face of an account is its Profile,
// which shares the same ID.
type User struct {
	ID        string    `bson:"_id" json:"id" gorm:"primaryKey;size:36"`
	Email     string    `bson:"email" json:"email" gorm:"uniqueIndex"`
	Password  string    `bson:"password,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
