package app

import (
	"context"
	"fmt"
	"time"

	"resume-matcher/internal/config"
	"resume-matcher/internal/database"
	dbpostgres "resume-matcher/internal/database/postgres"
	"resume-matcher/internal/database/schema"
	"resume-matcher/internal/embedding"
	"resume-matcher/internal/infrastructure/cache"
	"resume-matcher/internal/infrastructure/listings"
	"resume-matcher/internal/repository"
	"resume-matcher/internal/usecase"
	"resume-matcher/internal/ws"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency: the pool, the cache client,
// the embedding provider, the websocket hub, and the usecases wired on top.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Fetch     *usecase.FetchUsecase
	Engine    *usecase.MatchingEngine
	MatchList *usecase.MatchListUsecase
	Resumes   *usecase.ResumeUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := schema.Initialize(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	embedder, err := embedding.NewOpenAICompatible(cfg.Embedding, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init embedder: %w", err)
	}

	resumeRepo := repository.NewPostgresResumeRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	provider := embedding.NewProvider(embedder, resumeRepo, jobRepo)
	engine := usecase.NewMatchingEngine(provider, matchRepo, logger)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	listingsClient := listings.NewAdzunaClient(cfg.Listings, logger)

	fetchUC := usecase.NewFetchUsecase(listingsClient, jobRepo, resumeRepo, engine, redisCache, notifier, logger)
	matchListUC := usecase.NewMatchListUsecase(resumeRepo, matchRepo, redisCache)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Hub:       hub,
		Fetch:     fetchUC,
		Engine:    engine,
		MatchList: matchListUC,
		Resumes:   resumeUC,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("redis close", zap.Error(err))
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
