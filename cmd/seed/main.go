// Command seed idempotently creates the development test user
// ("testuser" / "testpassword") and ensures the collection indexes exist.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/spellnotes/notes-api/internal/core/domain"
	"github.com/spellnotes/notes-api/internal/infrastructure/config"
	mongodb "github.com/spellnotes/notes-api/internal/infrastructure/db/mongo"
	"github.com/spellnotes/notes-api/pkg/logger"
)

const (
	seedUsername = "testuser"
	seedPassword = "testpassword"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	users := mongodb.NewUserRepository(db)

	if _, err := users.FindByUsername(ctx, seedUsername); err == nil {
		log.Info().Str("username", seedUsername).Msg("test user already exists")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("user lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	if _, err := users.Insert(ctx, &domain.User{
		Username:     seedUsername,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		// A concurrent seed may have won the race; the unique index makes
		// that a clean conflict rather than a duplicate row.
		if errors.Is(err, domain.ErrUsernameTaken) {
			log.Info().Str("username", seedUsername).Msg("test user already exists")
			return
		}
		log.Fatal().Err(err).Msg("test user creation failed")
	}

	log.Info().Str("username", seedUsername).Msg("test user created")
}
