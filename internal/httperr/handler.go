package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Envelope is the uniform response shape shared by every endpoint.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK builds a success envelope with a message.
func OK(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Handler returns the centralized echo error handler. It converts typed
// domain errors, storage-level unique-constraint violations, and framework
// errors into the uniform envelope. Unexpected faults are logged and
// surface as a bare 500.
func Handler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		resp := Envelope{Success: false, Message: "Internal server error"}

		var domainErr *Error
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &domainErr):
			status = domainErr.Status
			resp.Message = domainErr.Message
			resp.Errors = domainErr.Fields
		case mongo.IsDuplicateKeyError(err):
			// Unique-index violation raced past the application-level check.
			status = http.StatusConflict
			resp.Message = "Already exists"
		case errors.As(err, &echoErr):
			status = echoErr.Code
			resp.Message = fmt.Sprintf("%v", echoErr.Message)
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, resp)
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}
