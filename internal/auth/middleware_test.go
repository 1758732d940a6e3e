package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"campushub/internal/httperr"
)

func TestMiddleware(t *testing.T) {
	const userID = "64f0c2a5e13e4a2b9c8d7e6f"

	svc, err := NewTokenService(testSecret)
	assert.NoError(t, err)
	otherSvc, err := NewTokenService("another-secret")
	assert.NoError(t, err)

	valid, err := svc.IssueAccessToken(userID)
	assert.NoError(t, err)
	foreign, err := otherSvc.IssueAccessToken(userID)
	assert.NoError(t, err)
	expired := signWithExpiry(t, testSecret, userID, -time.Hour)

	tests := []struct {
		name            string
		header          string
		expectedMessage string
	}{
		{name: "no header", expectedMessage: "Access denied. No valid token provided."},
		{name: "missing bearer prefix", header: "Token " + valid, expectedMessage: "Access denied. No valid token provided."},
		{name: "empty token", header: "Bearer ", expectedMessage: "Access denied. No valid token provided."},
		{name: "garbage token", header: "Bearer not-a-token", expectedMessage: "Invalid token"},
		{name: "wrong signature", header: "Bearer " + foreign, expectedMessage: "Invalid token"},
		{name: "expired token", header: "Bearer " + expired, expectedMessage: "Token expired"},
		{name: "valid token", header: "Bearer " + valid},
	}

	e := echo.New()
	handler := svc.Middleware()(func(c echo.Context) error {
		id, err := UserID(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, id)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/event", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			if tt.expectedMessage == "" {
				assert.NoError(t, err)
				assert.Equal(t, userID, rec.Body.String(), "handler runs with the identity attached")
				return
			}

			var herr *httperr.Error
			assert.ErrorAs(t, err, &herr, "rejected before the handler")
			assert.Equal(t, http.StatusUnauthorized, herr.Status)
			assert.Equal(t, tt.expectedMessage, herr.Message)
			assert.Empty(t, rec.Body.String(), "handler never runs")
		})
	}
}
