package schema

import (
	"strings"
	"time"

	"campushub/internal/httperr"
	"campushub/internal/model"
)

// SignupRequest is the payload for POST /api/user/signup.
type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	DOB        string `json:"dob" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=student teacher company admin council"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year" validate:"required"`
	Avatar     string `json:"avatar"`
}

// Normalize trims every string field, lowercases the email, and defaults
// the role to student.
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.DOB = strings.TrimSpace(r.DOB)
	r.Department = strings.TrimSpace(r.Department)
	r.Year = strings.TrimSpace(r.Year)
	r.Avatar = strings.TrimSpace(r.Avatar)
	if r.Role == "" {
		r.Role = model.RoleStudent
	}
}

// CheckRules validates the date of birth, which tags cannot express.
func (r *SignupRequest) CheckRules() []httperr.FieldError {
	if r.DOB == "" {
		return nil // already reported by the required tag
	}
	if _, err := ParseDate(r.DOB); err != nil {
		return []httperr.FieldError{{Field: "dob", Message: "Invalid date"}}
	}
	return nil
}

// DateOfBirth returns the parsed date of birth. Valid only after a
// successful Validate pass.
func (r *SignupRequest) DateOfBirth() time.Time {
	t, _ := ParseDate(r.DOB)
	return t
}
