package container

import (
	"context"
	"fmt"
	"time"

	"superhero-backend/internal/config"
	"superhero-backend/internal/domains/superhero"
	superheroHandler "superhero-backend/internal/domains/superhero/handler"
	superheroRepo "superhero-backend/internal/domains/superhero/repository"
	superheroService "superhero-backend/internal/domains/superhero/service"
	"superhero-backend/internal/infrastructure/database"
	"superhero-backend/internal/infrastructure/storage"

	"github.com/rs/zerolog/log"
)

// Container is the root of the dependency graph. Everything is built
// once at startup, in order: config, infrastructure, repository,
// service, handler. Nothing is reached through ambient globals, so
// tests can assemble the same graph around fakes.
type Container struct {
	Config *config.Config
	Mongo  *database.MongoDB

	ImageStore superhero.ImageStore

	SuperheroRepo    superhero.Repository
	SuperheroService superhero.Service
	SuperheroHandler *superheroHandler.SuperheroHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	mongoDB, err := database.NewMongoDB(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	c.Mongo = mongoDB

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.TimeoutSec)*time.Second)
	defer cancel()
	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB connected")

	c.ImageStore, err = newImageStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}
	log.Info().Str("mode", cfg.Storage.Mode).Msg("Image store ready")

	c.SuperheroRepo = superheroRepo.NewMongoRepository(mongoDB)
	c.SuperheroService = superheroService.NewService(c.SuperheroRepo, c.ImageStore)
	c.SuperheroHandler = superheroHandler.NewSuperheroHandler(c.SuperheroService)

	return c, nil
}

// newImageStore selects the configured backend. The rest of the
// application only sees the superhero.ImageStore interface.
func newImageStore(cfg config.StorageConfig) (superhero.ImageStore, error) {
	switch cfg.Mode {
	case config.StorageModeMinIO:
		return storage.NewMinIOStorage(cfg.MinIO)
	default:
		return storage.NewLocalStorage(cfg)
	}
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to close mongo connection")
		}
	}
}
