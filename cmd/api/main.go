package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/auth"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/config"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/content"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/database"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/database/migration"
	handlers "github.com/danielmorris2014/fiber-guys-sub000/internal/http/handler"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/http/middleware"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/mail"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/otel"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/ratelimit"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository/noop"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/repository/postgres"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/revalidate"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/service"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/storage"
	"github.com/danielmorris2014/fiber-guys-sub000/internal/turnstile"
)

// Lead print uploads go up to 25MB per file, so the request body cap has
// to leave room for several of them plus the rest of the form.
const maxBodyBytes = 64 * 1024 * 1024

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "failed to initialize tracing", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("tracing shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// Submissions run fail-open without a database, but a configured
	// connection that cannot be established is a deployment error.
	var db *sql.DB
	var repos repositories
	if cfg.Database.Configured() {
		pg, err := database.NewPostgres(cfg.Database)
		if err != nil {
			fatal(log, "failed to connect to database", err)
		}
		defer pg.Close()

		if err := migration.EnsureMigrated(ctx, pg, log); err != nil {
			fatal(log, "failed to run migrations", err)
		}

		db = pg
		repos = repositories{
			leads:        postgres.NewLeadPostgres(pg),
			applications: postgres.NewApplicationPostgres(pg),
			referrals:    postgres.NewReferralPostgres(pg),
			talentPool:   postgres.NewTalentPoolPostgres(pg),
		}
	} else {
		log.Warn("database not configured, submissions will not be persisted", nil)
		n := noop.New(log)
		repos = repositories{
			leads:        n.Leads,
			applications: n.Applications,
			referrals:    n.Referrals,
			talentPool:   n.TalentPool,
		}
	}

	var store storage.Storage = storage.Noop{}
	if cfg.MinIO.Endpoint != "" {
		s, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(log, "failed to initialize object storage", err)
		}
		store = s
	} else {
		log.Warn("object storage not configured, uploads will be skipped", nil)
	}

	var rdb *redis.Client
	if cfg.Redis.Configured() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	} else {
		log.Warn("redis not configured, content served from embedded defaults", nil)
	}

	contentStore := content.NewStore(rdb, cfg.ContentDir, cfg.Production(), log)
	invalidator := revalidate.NewBroadcaster(rdb, log)

	var mailer mail.Mailer
	if cfg.Email.Configured() {
		ses, err := mail.NewSES(ctx, cfg.Email.Region, log)
		if err != nil {
			fatal(log, "failed to initialize SES client", err)
		}
		mailer = ses
	} else {
		mailer = mail.NewConsole(log)
	}

	verifier := turnstile.New(cfg.TurnstileSecret, log)

	limiter := ratelimit.New()
	limiter.StartSweep(ctx, 10*time.Minute)

	sessions := auth.NewSessions(cfg.AdminPassword)

	svc := service.New(
		repos.leads,
		repos.applications,
		repos.referrals,
		repos.talentPool,
		store,
		mailer,
		verifier,
		cfg.Email,
		cfg.SiteURL,
		log,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    maxBodyBytes,
	})

	// RequestID first so every later middleware and handler can tag logs
	// and traces with it.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestLogger(log))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		fatal(log, "failed to register metrics", err)
	}
	app.Use(metrics.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:                 db,
		Submissions:        svc,
		Limiter:            limiter,
		RateLimit:          cfg.RateLimit,
		Sessions:           sessions,
		Content:            contentStore,
		Invalidator:        invalidator,
		RevalidationSecret: cfg.RevalidationSecret,
		Production:         cfg.Production(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()

	log.Info("server starting", map[string]interface{}{"port": cfg.Port, "env": cfg.Env})

	select {
	case err := <-errCh:
		if err != nil {
			fatal(log, "failed to start server", err)
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown error", map[string]interface{}{"error": err.Error()})
		}
	}
}

type repositories struct {
	leads        repository.LeadRepository
	applications repository.ApplicationRepository
	referrals    repository.ReferralRepository
	talentPool   repository.TalentPoolRepository
}

func fatal(log logger.Logger, msg string, err error) {
	log.Error(msg, map[string]interface{}{"error": err.Error()})
	os.Exit(1)
}
