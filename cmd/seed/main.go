// Command seed loads development fixtures: a few campus users and a handful
// of upcoming events. Safe to run repeatedly; users are keyed by email and
// events by title.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campushub/internal/auth"
	"campushub/internal/config"
	"campushub/internal/db"
	"campushub/internal/model"
	"campushub/internal/repository"
)

const seedPassword = "secret123"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()
	database := client.Database(cfg.MongoDBName)

	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	userRepo := repository.NewUserRepository(database)
	users, err := seedUsers(ctx, userRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("seed users")
	}

	eventRepo := repository.NewEventRepository(database)
	created, err := seedEvents(ctx, database, eventRepo, users)
	if err != nil {
		log.Fatal().Err(err).Msg("seed events")
	}

	log.Info().Int("users", len(users)).Int("new_events", created).Msg("seed completed")
}

func seedUsers(ctx context.Context, repo repository.UserRepository) ([]*model.User, error) {
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	fixtures := []*model.User{
		{Name: "Alice Chen", Email: "alice@campus.edu", Role: model.RoleStudent, Department: "Computer Science", Year: "3"},
		{Name: "Prof. Brand", Email: "brand@campus.edu", Role: model.RoleTeacher, Department: "Physics", Year: "-"},
		{Name: "Student Council", Email: "council@campus.edu", Role: model.RoleCouncil, Department: "Administration", Year: "-"},
	}

	out := make([]*model.User, 0, len(fixtures))
	for _, u := range fixtures {
		existing, err := repo.FindByEmail(ctx, u.Email)
		if err == nil {
			out = append(out, existing)
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		u.Password = hash
		u.DOB = time.Date(2000, time.March, 14, 0, 0, 0, 0, time.UTC)
		if err := repo.Create(ctx, u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func seedEvents(ctx context.Context, database *mongo.Database, repo repository.EventRepository, users []*model.User) (int, error) {
	now := time.Now()
	fixtures := []*model.Event{
		{
			Title:       "Freshers Hackathon",
			Description: "A 24-hour build sprint open to all departments.",
			Tags:        []string{"hackathon", "tech"},
			Location:    "Engineering Block, Lab 4",
			Date:        now.AddDate(0, 0, 14),
		},
		{
			Title:       "Physics Colloquium",
			Description: "Guest lecture on gravitational wave detection.",
			Tags:        []string{"lecture", "physics"},
			Location:    "Auditorium B",
			Date:        now.AddDate(0, 1, 0),
		},
		{
			Title:       "Spring Career Fair",
			Description: "Meet recruiters from thirty partner companies.",
			Tags:        []string{"career"},
			Location:    "Main Hall",
			Date:        now.AddDate(0, 2, 0),
		},
	}

	col := database.Collection("events")
	created := 0
	for i, ev := range fixtures {
		n, err := col.CountDocuments(ctx, bson.M{"title": ev.Title})
		if err != nil {
			return created, err
		}
		if n > 0 {
			continue
		}

		ev.OrganizerID = users[i%len(users)].ID
		ev.Participants = []primitive.ObjectID{}
		if err := repo.Create(ctx, ev); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
