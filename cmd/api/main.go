package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/api/http"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/api/http/handlers"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/auth"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/config"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/events"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/observability"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/persistence"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/repository"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/service"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/sharelink"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/internal/worker"
	"github.com/badrabdoph-netizen/BadrAbdoph-sub000/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), migrations.FS, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var contentRepo repository.ContentRepository
	if pg.Enabled() {
		contentRepo = repository.NewContentRepository(pg.PoolHandle())
	} else {
		contentRepo = repository.NewMemoryContentRepository()
	}

	var backend sharelink.Backend
	switch cfg.ShareLinks.Store {
	case config.ShareLinkStoreRedis:
		if !redis.Enabled() {
			logger.Fatal("SHARE_LINK_STORE=redis requires REDIS_ADDR")
		}
		backend = sharelink.NewRedisBackend(redis.Client, cfg.ShareLinks.RedisKey)
	default:
		backend = sharelink.NewFileBackend(cfg.ShareLinks.FilePath)
	}
	shareStore := sharelink.NewStore(backend, logger.Named("sharelink"))
	logger.Info("share link store ready", zap.String("backend", cfg.ShareLinks.Store))

	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret)
	sessions := auth.NewSessionManager(codec, auth.Credentials{
		Username:     cfg.Auth.AdminUsername,
		Password:     cfg.Auth.AdminPassword,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}, cfg.Auth.SessionTTL())
	ephemeral := auth.NewShareLinkManager(codec)

	adminAuth := service.NewAdminAuthService(cfg.Auth, sessions, dispatcher, logger)
	shareLinks := service.NewShareLinkService(service.ShareLinkDependencies{
		Ephemeral:  ephemeral,
		Store:      shareStore,
		Dispatcher: dispatcher,
	}, logger)
	content := service.NewContentService(contentRepo, dispatcher)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}, metrics),
		Admin:            handlers.NewAdminHandler(adminAuth),
		ShareLinks:       handlers.NewShareLinksHandler(shareLinks),
		Content:          handlers.NewContentHandler(content),
		AdminMiddleware:  auth.NewAdminMiddleware(sessions, ephemeral, logger),
		LoginMaxAttempts: cfg.Auth.LoginMaxAttempts,
		LoginWindow:      cfg.Auth.LoginWindow(),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
