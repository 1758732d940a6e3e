package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campushub/internal/model"
)

// EventFilter narrows event listings.
type EventFilter struct {
	Tag          string
	UpcomingOnly bool
	Now          time.Time
}

// EventRepository defines event persistence operations. Membership writes
// are single conditional updates so that concurrent joins for the same
// event cannot produce duplicate participants.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	List(ctx context.Context, filter EventFilter, page, limit int) ([]model.Event, int64, error)
	AddParticipant(ctx context.Context, eventID, userID primitive.ObjectID, now time.Time) (bool, error)
	RemoveParticipant(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error)
}

type eventRepository struct {
	col *mongo.Collection
}

// NewEventRepository builds a Mongo-backed event repository.
func NewEventRepository(database *mongo.Database) EventRepository {
	return &eventRepository{col: database.Collection("events")}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid
	}
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	var event model.Event
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter, page, limit int) ([]model.Event, int64, error) {
	query := bson.M{}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.UpcomingOnly {
		query["date"] = bson.M{"$gte": filter.Now}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	events := []model.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// AddParticipant appends the user to the participant set in one conditional
// update. The filter re-states every join precondition, so a write that
// raced with another join (or with the deadline) simply matches nothing.
func (r *eventRepository) AddParticipant(ctx context.Context, eventID, userID primitive.ObjectID, now time.Time) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"_id":          eventID,
			"date":         bson.M{"$gt": now},
			"organizerId":  bson.M{"$ne": userID},
			"participants": bson.M{"$ne": userID},
		},
		bson.M{
			"$addToSet": bson.M{"participants": userID},
			"$set":      bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// RemoveParticipant removes the user from the participant set; matching
// nothing means the user was not a participant.
func (r *eventRepository) RemoveParticipant(ctx context.Context, eventID, userID primitive.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": eventID, "participants": userID},
		bson.M{
			"$pull": bson.M{"participants": userID},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}
