package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quicktest/backend/internal/api"
	"github.com/quicktest/backend/internal/auth"
	"github.com/quicktest/backend/internal/infrastructure/config"
	"github.com/quicktest/backend/internal/jobs"
	"github.com/quicktest/backend/internal/service"
	"github.com/quicktest/backend/internal/store"

	_ "github.com/quicktest/backend/docs" // generated swagger docs
)

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

// @title           QuickTest API
// @version         1.0
// @description     Multiple-choice quiz practice: build tests, drill them with spaced repetition, track your progress.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token from /auth/login.

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath, cfg.WeekStart)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	reporter := service.NewReporter(db, cfg.ReportWorkers, cfg.ReportQueue, logger)
	quizSvc := service.NewQuizService(db, db, reporter, logger, service.QuizConfig{
		IdleTimeout: cfg.SessionIdleTimeout,
	})
	authSvc := auth.NewService(db, cfg.TokenTTL, logger)
	loginLimiter := auth.NewLimiter(cfg.LoginRate, cfg.LoginBurst)
	handler := api.NewHandler(db, quizSvc, authSvc, logger)

	// ── Housekeeping ────────────────────────────────────────────────
	scheduler := jobs.NewScheduler(logger)
	for _, job := range []jobs.Job{
		{Name: "suspend-idle-sessions", Spec: "@every 1m", Run: func() { quizSvc.SuspendIdle(context.Background()) }},
		{Name: "sweep-expired-tokens", Spec: "@every 10m", Run: authSvc.SweepExpired},
		{Name: "prune-login-limiter", Spec: "@every 10m", Run: func() { loginLimiter.Prune(time.Hour) }},
	} {
		if err := scheduler.Add(job); err != nil {
			logger.Error("failed to schedule job", "error", err)
			os.Exit(1)
		}
	}
	scheduler.Start()

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler, loginLimiter)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSOrigin)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
	<-stopped

	// Live sessions are parked so they resume after a restart; queued
	// reports are flushed before the database closes.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	scheduler.Stop(ctx)
	quizSvc.Shutdown(ctx)
	reporter.Close()
	logger.Info("server stopped")
}
