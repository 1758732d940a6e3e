package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func invoke(t *testing.T, err error) (int, Envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/user/signup", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	Handler(zerolog.Nop())(err, c)

	var envelope Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec.Code, envelope
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{name: "not found", err: NotFound("User not found"), expectedStatus: 404, expectedMessage: "User not found"},
		{name: "conflict", err: Conflict("User already exists"), expectedStatus: 409, expectedMessage: "User already exists"},
		{name: "unauthorized", err: Unauthorized("Token expired"), expectedStatus: 401, expectedMessage: "Token expired"},
		{name: "bad request", err: BadRequest("Cannot join past events"), expectedStatus: 400, expectedMessage: "Cannot join past events"},
		{
			name:            "duplicate key from storage",
			err:             mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}},
			expectedStatus:  409,
			expectedMessage: "Already exists",
		},
		{name: "framework error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), expectedStatus: 405, expectedMessage: "method not allowed"},
		// Unexpected faults surface as a bare 500 with no detail leaked.
		{name: "unexpected fault", err: assert.AnError, expectedStatus: 500, expectedMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := invoke(t, tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.expectedMessage, envelope.Message)
		})
	}
}

func TestHandler_ValidationFields(t *testing.T) {
	err := Validation([]FieldError{
		{Field: "title", Message: "title must be at least 3 characters"},
		{Field: "date", Message: "Event date must be in the future"},
	})

	status, envelope := invoke(t, err)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Validation failed", envelope.Message)
	assert.Len(t, envelope.Errors, 2)
	assert.Equal(t, "date", envelope.Errors[1].Field)
}
