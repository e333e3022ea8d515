package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vaultpass/credgen/internal/app"
	"github.com/vaultpass/credgen/internal/config"
	"github.com/vaultpass/credgen/internal/identity"
	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/middleware"
	"github.com/vaultpass/credgen/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "credgen-api:", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.PrettyLog)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	if envErr != nil {
		log.Warn("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, pinger, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := app.NewGenerator(cfg)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	prefs := service.NewPreferencesService(st, cfg.AutosaveDelay, log)

	router := app.NewRouter(app.Deps{
		Logger:          log,
		Verifier:        identity.NewIssuer(cfg.IdentitySecret, cfg.IdentityTokenTTL),
		DefaultIdentity: cfg.DefaultIdentity,
		Limiter:         limiter,
		Generator:       service.NewGeneratorService(gen, st, log),
		History:         service.NewHistoryService(st, cfg.HistoryLimit),
		Preferences:     prefs,
		Store:           pinger,
		StoreDriver:     cfg.StoreDriver,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			logger.String("port", cfg.Port),
			logger.String("env", cfg.Env),
			logger.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced shutdown", logger.Error(err))
	}
	if err := prefs.Flush(shutdownCtx); err != nil {
		log.Error("failed to flush pending preferences", logger.Error(err))
	}

	log.Info("server stopped")
	return nil
}
