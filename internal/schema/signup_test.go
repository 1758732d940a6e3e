package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campushub/internal/httperr"
)

func validSignup() SignupRequest {
	return SignupRequest{
		Name:       "Alice Chen",
		Email:      "Alice@Campus.EDU",
		Password:   "secret1",
		DOB:        "2000-03-14",
		Department: "Computer Science",
		Year:       "3",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SignupRequest)
		badField string
	}{
		{name: "valid", mutate: func(r *SignupRequest) {}},
		{name: "valid with role", mutate: func(r *SignupRequest) { r.Role = "council" }},
		{name: "missing name", mutate: func(r *SignupRequest) { r.Name = "  " }, badField: "name"},
		{name: "bad email", mutate: func(r *SignupRequest) { r.Email = "not-an-email" }, badField: "email"},
		{name: "short password", mutate: func(r *SignupRequest) { r.Password = "12345" }, badField: "password"},
		{name: "unparseable dob", mutate: func(r *SignupRequest) { r.DOB = "yesterday" }, badField: "dob"},
		{name: "unknown role", mutate: func(r *SignupRequest) { r.Role = "pirate" }, badField: "role"},
		{name: "missing department", mutate: func(r *SignupRequest) { r.Department = "" }, badField: "department"},
		{name: "missing year", mutate: func(r *SignupRequest) { r.Year = "" }, badField: "year"},
	}

	v := NewEchoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := v.Validate(&req)
			if tt.badField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *httperr.Error
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, 400, verr.Status)
			fields := make([]string, 0, len(verr.Fields))
			for _, fe := range verr.Fields {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.badField)
		})
	}
}

func TestSignupRequest_Normalize(t *testing.T) {
	req := validSignup()
	req.Email = "  Alice@Campus.EDU "
	req.Name = " Alice Chen "

	v := NewEchoValidator()
	assert.NoError(t, v.Validate(&req))

	assert.Equal(t, "alice@campus.edu", req.Email)
	assert.Equal(t, "Alice Chen", req.Name)
	assert.Equal(t, "student", req.Role, "role defaults to student")
	assert.Equal(t, 2000, req.DateOfBirth().Year())
}
