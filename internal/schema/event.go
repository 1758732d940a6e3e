package schema

import (
	"strings"
	"time"

	"campushub/internal/httperr"
)

// CreateEventRequest is the payload for POST /api/event. The organizer is
// always taken from the authenticated identity; any organizer supplied in
// the body is ignored by construction.
type CreateEventRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=1000"`
	Tags        []string `json:"tags" validate:"omitempty,dive,min=1,max=30"`
	Location    string   `json:"location" validate:"required,min=3,max=200"`
	Date        string   `json:"date" validate:"required"`
	Banner      string   `json:"banner" validate:"omitempty,url"`
}

// Normalize trims string fields and defaults tags to an empty set.
func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.Date = strings.TrimSpace(r.Date)
	r.Banner = strings.TrimSpace(r.Banner)
	if r.Tags == nil {
		r.Tags = []string{}
	}
	for i, tag := range r.Tags {
		r.Tags[i] = strings.TrimSpace(tag)
	}
}

// CheckRules validates that the date parses and lies strictly in the
// future.
func (r *CreateEventRequest) CheckRules() []httperr.FieldError {
	if r.Date == "" {
		return nil // already reported by the required tag
	}
	t, err := ParseDate(r.Date)
	if err != nil {
		return []httperr.FieldError{{Field: "date", Message: "Invalid date format"}}
	}
	if !t.After(time.Now()) {
		return []httperr.FieldError{{Field: "date", Message: "Event date must be in the future"}}
	}
	return nil
}

// EventDate returns the parsed event date. Valid only after a successful
// Validate pass.
func (r *CreateEventRequest) EventDate() time.Time {
	t, _ := ParseDate(r.Date)
	return t
}

// JoinEventRequest is the payload for POST /api/event/join and
// POST /api/event/leave.
type JoinEventRequest struct {
	EventID string `json:"eventId"`
}

// ListEventsQuery carries the query parameters of GET /api/event.
type ListEventsQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Tag      string `query:"tag"`
	Upcoming string `query:"upcoming"`
}

// Normalize applies pagination defaults.
func (q *ListEventsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}

// UpcomingOnly reports whether the listing is restricted to future events.
func (q *ListEventsQuery) UpcomingOnly() bool {
	return q.Upcoming == "true"
}
