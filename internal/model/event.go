package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents a campus event organized by a user.
//
// Invariants maintained by the service and repository layers:
// the organizer is never a participant, participants hold no duplicates,
// and no participant is added once Date has passed.
type Event struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title        string               `json:"title" bson:"title"`
	Description  string               `json:"description" bson:"description"`
	Tags         []string             `json:"tags" bson:"tags"`
	Location     string               `json:"location" bson:"location"`
	Date         time.Time            `json:"date" bson:"date"`
	OrganizerID  primitive.ObjectID   `json:"organizer_id" bson:"organizerId"`
	Banner       string               `json:"banner,omitempty" bson:"banner"`
	Participants []primitive.ObjectID `json:"participants" bson:"participants"`
	CreatedAt    time.Time            `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time            `json:"updated_at" bson:"updatedAt"`
}

// HasParticipant reports whether the user is already a participant.
func (e *Event) HasParticipant(userID primitive.ObjectID) bool {
	for _, id := range e.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// EventProjection is the creation response shape, excluding internal
// bookkeeping fields (organizer, participants, timestamps).
type EventProjection struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	Date        time.Time          `json:"date"`
	Tags        []string           `json:"tags"`
	Banner      string             `json:"banner,omitempty"`
}

// Projection returns the creation response shape of the event.
func (e *Event) Projection() EventProjection {
	return EventProjection{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
		Tags:        e.Tags,
		Banner:      e.Banner,
	}
}

// EventView is the listing shape with organizer and participants populated
// as user projections.
type EventView struct {
	ID           primitive.ObjectID `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Tags         []string           `json:"tags"`
	Location     string             `json:"location"`
	Date         time.Time          `json:"date"`
	Banner       string             `json:"banner,omitempty"`
	Organizer    UserRef            `json:"organizer"`
	Participants []UserRef          `json:"participants"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Pagination describes the page window returned by event listings.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}
