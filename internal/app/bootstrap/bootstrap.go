package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	commentservice "inkwell/contexts/engagement/comment-service"
	commentpostgres "inkwell/contexts/engagement/comment-service/adapters/postgres"
	accountservice "inkwell/contexts/identity/account-service"
	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	accountpostgres "inkwell/contexts/identity/account-service/adapters/postgres"
	tokenadapter "inkwell/contexts/identity/account-service/adapters/token"
	categoryservice "inkwell/contexts/publishing/category-service"
	categorypostgres "inkwell/contexts/publishing/category-service/adapters/postgres"
	postservice "inkwell/contexts/publishing/post-service"
	postpostgres "inkwell/contexts/publishing/post-service/adapters/postgres"
	"inkwell/internal/platform/config"
	"inkwell/internal/platform/db"
	"inkwell/internal/platform/httpserver"
	"inkwell/internal/platform/token"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	if err := db.Migrate(cfg.PostgresDSN); err != nil {
		return nil, err
	}
	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	codec := token.Codec{Secret: []byte(cfg.JWTSecret), TTL: cfg.TokenTTL}

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accounts := accountservice.NewModule(accountservice.Dependencies{
		Repository: accountRepo,
		Hasher:     bcryptadapter.Hasher{},
		Tokens:     tokenadapter.Issuer{Codec: codec},
		Clock:      accountpostgres.SystemClock{},
		IDs:        accountpostgres.UUIDGenerator{},
		DemoEmail:  cfg.DemoEmail,
		Logger:     logger,
	})

	postRepo := postpostgres.NewRepository(pg.DB, logger)
	posts := postservice.NewModule(postservice.Dependencies{
		Posts:             postRepo,
		Accounts:          postRepo,
		Clock:             postpostgres.SystemClock{},
		IDs:               postpostgres.UUIDGenerator{},
		FilterSingleReads: cfg.EnableReadVisibilityFilter,
		Logger:            logger,
	})

	categories := categoryservice.NewModule(categoryservice.Dependencies{
		Repository: categorypostgres.NewRepository(pg.DB, logger),
		IDs:        categorypostgres.UUIDGenerator{},
		Logger:     logger,
	})

	comments := commentservice.NewModule(commentservice.Dependencies{
		Repository: commentpostgres.NewRepository(pg.DB, logger),
		Clock:      commentpostgres.SystemClock{},
		IDs:        commentpostgres.UUIDGenerator{},
		Logger:     logger,
	})

	server := httpserver.New(httpserver.Options{
		Addr:           normalizeAddr(cfg.HTTPPort),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Codec:          codec,
		Accounts:       accounts,
		Posts:          posts,
		Categories:     categories,
		Comments:       comments,
		Logger:         logger,
	})
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
