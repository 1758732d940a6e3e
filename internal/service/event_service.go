package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campushub/internal/httperr"
	"campushub/internal/model"
	"campushub/internal/repository"
	"campushub/internal/schema"
)

// EventPage is a listing window with its pagination metadata.
type EventPage struct {
	Events     []model.EventView `json:"events"`
	Pagination model.Pagination  `json:"pagination"`
}

// EventService handles event creation, listing, and membership.
type EventService interface {
	Create(ctx context.Context, organizerID string, req *schema.CreateEventRequest) (*model.EventProjection, error)
	Get(ctx context.Context, eventID string) (*model.EventView, error)
	List(ctx context.Context, query *schema.ListEventsQuery) (*EventPage, error)
	Join(ctx context.Context, userID, eventID string) error
	Leave(ctx context.Context, userID, eventID string) error
}

type eventService struct {
	events repository.EventRepository
	users  repository.UserRepository
	now    func() time.Time
}

// NewEventService builds an EventService.
func NewEventService(events repository.EventRepository, users repository.UserRepository) EventService {
	return &eventService{events: events, users: users, now: time.Now}
}

// Create persists a new event. The organizer is always the authenticated
// caller and the participant set starts empty.
func (s *eventService) Create(ctx context.Context, organizerID string, req *schema.CreateEventRequest) (*model.EventProjection, error) {
	oid, err := primitive.ObjectIDFromHex(organizerID)
	if err != nil {
		return nil, httperr.Unauthorized("Invalid token")
	}

	event := &model.Event{
		Title:        req.Title,
		Description:  req.Description,
		Tags:         req.Tags,
		Location:     req.Location,
		Date:         req.EventDate(),
		OrganizerID:  oid,
		Banner:       req.Banner,
		Participants: []primitive.ObjectID{},
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	projection := event.Projection()
	return &projection, nil
}

func (s *eventService) Get(ctx context.Context, eventID string) (*model.EventView, error) {
	id, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, httperr.NotFound("Event not found")
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.NotFound("Event not found")
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	views, err := s.populate(ctx, []model.Event{*event})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *eventService) List(ctx context.Context, query *schema.ListEventsQuery) (*EventPage, error) {
	filter := repository.EventFilter{
		Tag:          query.Tag,
		UpcomingOnly: query.UpcomingOnly(),
		Now:          s.now(),
	}

	events, total, err := s.events.List(ctx, filter, query.Page, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	views, err := s.populate(ctx, events)
	if err != nil {
		return nil, err
	}

	pages := (total + int64(query.Limit) - 1) / int64(query.Limit)
	return &EventPage{
		Events: views,
		Pagination: model.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// Join adds the caller to the event. The preconditions are read first to
// classify the rejection; the write itself is a single conditional update,
// so a join racing another join for the last re-check still cannot
// duplicate membership and is reported as already joined.
func (s *eventService) Join(ctx context.Context, userID, eventID string) error {
	uid, eid, err := s.memberIDs(ctx, userID, eventID)
	if err != nil {
		return err
	}

	event, err := s.events.FindByID(ctx, eid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return httperr.NotFound("Event not found")
		}
		return fmt.Errorf("find event: %w", err)
	}

	// The deadline check must agree with the conditional write's
	// date > now filter: an event starting this instant is closed.
	now := s.now()
	switch {
	case !event.Date.After(now):
		return httperr.BadRequest("Cannot join past events")
	case event.OrganizerID == uid:
		return httperr.BadRequest("Organizer cannot join their own event")
	case event.HasParticipant(uid):
		return httperr.BadRequest("You have already joined this event")
	}

	added, err := s.events.AddParticipant(ctx, eid, uid, now)
	if err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	if !added {
		return httperr.BadRequest("You have already joined this event")
	}
	return nil
}

// Leave removes the caller from the event's participant set.
func (s *eventService) Leave(ctx context.Context, userID, eventID string) error {
	uid, eid, err := s.memberIDs(ctx, userID, eventID)
	if err != nil {
		return err
	}

	event, err := s.events.FindByID(ctx, eid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return httperr.NotFound("Event not found")
		}
		return fmt.Errorf("find event: %w", err)
	}
	if !event.HasParticipant(uid) {
		return httperr.BadRequest("You are not a participant of this event")
	}

	removed, err := s.events.RemoveParticipant(ctx, eid, uid)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	if !removed {
		return httperr.BadRequest("You are not a participant of this event")
	}
	return nil
}

// memberIDs parses both identifiers and verifies the requesting user still
// exists.
func (s *eventService) memberIDs(ctx context.Context, userID, eventID string) (uid, eid primitive.ObjectID, err error) {
	uid, err = primitive.ObjectIDFromHex(userID)
	if err != nil {
		return uid, eid, httperr.Unauthorized("Invalid token")
	}
	eid, err = primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return uid, eid, httperr.NotFound("Event not found")
	}

	if _, err := s.users.FindByID(ctx, uid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return uid, eid, httperr.NotFound("User not found")
		}
		return uid, eid, fmt.Errorf("find user: %w", err)
	}
	return uid, eid, nil
}

// populate resolves organizer and participant references into user
// projections for response shaping.
func (s *eventService) populate(ctx context.Context, events []model.Event) ([]model.EventView, error) {
	idSet := map[primitive.ObjectID]struct{}{}
	for _, e := range events {
		idSet[e.OrganizerID] = struct{}{}
		for _, p := range e.Participants {
			idSet[p] = struct{}{}
		}
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var users []model.User
	if len(ids) > 0 {
		var err error
		users, err = s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("populate users: %w", err)
		}
	}
	refs := make(map[primitive.ObjectID]model.UserRef, len(users))
	for i := range users {
		refs[users[i].ID] = users[i].Ref()
	}

	views := make([]model.EventView, 0, len(events))
	for _, e := range events {
		view := model.EventView{
			ID:           e.ID,
			Title:        e.Title,
			Description:  e.Description,
			Tags:         e.Tags,
			Location:     e.Location,
			Date:         e.Date,
			Banner:       e.Banner,
			Organizer:    refs[e.OrganizerID],
			Participants: make([]model.UserRef, 0, len(e.Participants)),
			CreatedAt:    e.CreatedAt,
		}
		for _, p := range e.Participants {
			if ref, ok := refs[p]; ok {
				view.Participants = append(view.Participants, ref)
			}
		}
		views = append(views, view)
	}
	return views, nil
}
