package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/sinagolchin/SYNTHIUM/internal/api"
	"github.com/sinagolchin/SYNTHIUM/internal/auth"
	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
	"github.com/sinagolchin/SYNTHIUM/internal/embeddings"
	"github.com/sinagolchin/SYNTHIUM/internal/engine"
	"github.com/sinagolchin/SYNTHIUM/internal/projection"
	"github.com/sinagolchin/SYNTHIUM/internal/storage"
)

const version = "2.1.0"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	provider := embeddings.NewProvider(embeddings.Config{
		Provider: os.Getenv("EMBEDDINGS_PROVIDER"),
		APIKey:   os.Getenv("EMBEDDINGS_API_KEY"),
		BaseURL:  os.Getenv("EMBEDDINGS_BASE_URL"),
		Model:    os.Getenv("EMBEDDINGS_MODEL"),
	})
	projector := projection.NewProjector(provider)
	eng := engine.NewService(catalog.New(), projector)

	ctx := context.Background()

	var (
		store storage.HistoryStore
		db    *sql.DB
	)
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		var err error
		db, err = sql.Open("postgres", dbURL)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}

		pg := storage.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("failed to migrate history schema", "error", err)
			os.Exit(1)
		}
		store = pg
		logger.Info("using postgres history store")
	} else {
		store = storage.NewMemoryStore()
		logger.Info("using in-memory history store")
	}
	defer store.Close()

	var authService auth.Service
	if os.Getenv("AUTH_ENABLED") == "true" {
		cfg := auth.DefaultConfig()
		if secret := os.Getenv("JWT_SECRET"); secret != "" {
			cfg.SecretKey = secret
		}
		if raw := os.Getenv("TOKEN_TTL"); raw != "" {
			ttl, err := time.ParseDuration(raw)
			if err != nil {
				logger.Error("invalid TOKEN_TTL", "value", raw, "error", err)
				os.Exit(1)
			}
			cfg.TokenDuration = ttl
		}

		var repo auth.UserRepository
		if db != nil {
			pg := auth.NewPostgresRepository(db)
			if err := pg.EnsureSchema(ctx); err != nil {
				logger.Error("failed to migrate users schema", "error", err)
				os.Exit(1)
			}
			repo = pg
		} else {
			repo = auth.NewMemoryRepository()
		}
		authService = auth.NewJWTService(cfg, repo)
		logger.Info("auth enabled")
	}

	server := api.NewServer(api.Config{
		Engine:  eng,
		Store:   store,
		Auth:    authService,
		Version: version,
		Logger:  logger,
	})

	logger.Info("starting synthium server",
		"port", port,
		"version", version,
		"embeddings", providerName(os.Getenv("EMBEDDINGS_PROVIDER")),
	)
	if err := server.Run(":" + port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func providerName(name string) string {
	if name == "" {
		return "hash"
	}
	return name
}
