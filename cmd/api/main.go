// ABOUTME: Main entry point for the portfolio API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lolimmlost/appahouse-portfolio/api"
	"github.com/lolimmlost/appahouse-portfolio/api/handlers"
	"github.com/lolimmlost/appahouse-portfolio/core/contact"
	"github.com/lolimmlost/appahouse-portfolio/core/content"
	"github.com/lolimmlost/appahouse-portfolio/core/github"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
	"github.com/lolimmlost/appahouse-portfolio/core/showcase"
	"github.com/lolimmlost/appahouse-portfolio/infrastructure/cache/memory"
	"github.com/lolimmlost/appahouse-portfolio/infrastructure/cache/redis"
	"github.com/lolimmlost/appahouse-portfolio/infrastructure/cache/sqlite"
	stdhttp "github.com/lolimmlost/appahouse-portfolio/infrastructure/http/standard"
	logrusimpl "github.com/lolimmlost/appahouse-portfolio/infrastructure/logger/logrus"
	"github.com/lolimmlost/appahouse-portfolio/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusimpl.NewLogger(cfg.Server.LogLevel)
	logger.Info("Starting portfolio API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"github":     cfg.GitHub.Username,
	})

	cache := buildCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	contentService := content.NewService(deps, content.Options{
		BaseURL:         cfg.Content.BaseURL,
		PostsDir:        cfg.Content.PostsDir,
		ManifestName:    cfg.Content.ManifestName,
		FallbackFiles:   cfg.Content.FallbackFiles,
		DefaultAuthor:   cfg.Content.DefaultAuthor,
		SiteTitle:       cfg.Content.SiteTitle,
		SiteDescription: cfg.Content.SiteDescription,
		SiteURL:         cfg.Content.SiteURL,
	})
	githubService := github.NewService(deps, github.Options{
		Username:  cfg.GitHub.Username,
		APIBase:   cfg.GitHub.APIBase,
		KeyPrefix: cfg.GitHub.KeyPrefix,
		TTL:       cfg.GitHub.CacheTTL,
	})
	showcaseService := showcase.NewService(deps, showcase.Options{
		BaseURL: cfg.Content.BaseURL,
	})
	contactService := contact.NewService(deps, contact.Options{
		Endpoint: cfg.Contact.Endpoint,
	})

	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  100, // requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	blogHandler := handlers.NewBlogHandler(contentService, logger)
	blogHandler.RegisterFeedRoute(router)
	blogHandler.RegisterRoutes(humaAPI)

	githubHandler := handlers.NewGitHubHandler(githubService)
	githubHandler.RegisterRoutes(humaAPI)

	showcaseHandler := handlers.NewShowcaseHandler(showcaseService)
	showcaseHandler.RegisterRoutes(humaAPI)

	contactHandler := handlers.NewContactHandler(contactService)
	contactHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache selects the cache backend, falling back to memory when the
// configured backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}
