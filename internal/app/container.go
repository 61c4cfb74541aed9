package app

import (
	"context"
	"log"
	"os"
	"time"

	"resume-forge/internal/compiler"
	"resume-forge/internal/config"
	"resume-forge/internal/database"
	dbpostgres "resume-forge/internal/database/postgres"
	"resume-forge/internal/infrastructure/cache"
	"resume-forge/internal/repository"
	"resume-forge/internal/storage"
	"resume-forge/internal/usecase"
	"resume-forge/internal/ws"
)

// Container wires the long-lived dependencies once at startup.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Store *storage.R2Store

	Hub       *ws.Hub
	WSHandler *ws.Handler

	Generate usecase.GenerateUsecase
	History  usecase.HistoryUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Generation history is optional: without DB config the service still
	// renders and uploads, it just does not record anything.
	var db database.DB
	var repo repository.GenerationRepository
	if cfg.Database.Enabled() {
		conn, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Printf("[DB] Postgres unavailable, history disabled: %v", err)
		} else {
			db = conn
			pgRepo := repository.NewPostgresGenerationRepository(db)
			if err := pgRepo.EnsureSchema(ctx); err != nil {
				logger.Printf("[DB] schema setup failed, history disabled: %v", err)
				_ = db.Close()
				db = nil
			} else {
				repo = pgRepo
			}
		}
	}

	store, err := storage.NewR2Store(ctx, cfg.R2, logger)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	comp := compiler.NewPDFLatex(cfg.Compiler.Bin, cfg.Compiler.OutputDir, cfg.Compiler.Timeout, logger)
	gen := usecase.NewGenerator(comp, store, repo, ws.NewEvents(hub), logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Store:     store,
		Hub:       hub,
		WSHandler: ws.NewHandler(hub, logger),
		Generate:  gen,
		History:   usecase.NewHistoryUsecase(repo),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
