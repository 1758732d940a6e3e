package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles form a closed set. The model is the single source of truth for
// the enumeration; the signup validator must accept exactly these values.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleCompany = "company"
	RoleAdmin   = "admin"
	RoleCouncil = "council"
)

// User represents a registered campus user.
type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"` // stored lowercased and trimmed
	Password   string             `json:"-" bson:"password"`  // bcrypt hash, never exposed in JSON
	DOB        time.Time          `json:"dob" bson:"dob"`
	Role       string             `json:"role" bson:"role"`
	Department string             `json:"department" bson:"department"`
	Year       string             `json:"year" bson:"year"`
	Avatar     string             `json:"avatar,omitempty" bson:"avatar"`
	CreatedAt  time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updatedAt"`
}

// UserRef is the projection of a user embedded in event responses.
type UserRef struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// Ref returns the embeddable projection of the user.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
