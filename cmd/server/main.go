package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/internal/app"
	"portfolio-api/internal/config"
	"portfolio-api/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(cfg.App)

	container, err := app.NewContainer(cfg, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to bootstrap app")
	}
	defer func() {
		if err := container.Close(); err != nil {
			lg.Error().Err(err).Msg("cleanup error")
		}
	}()

	application := app.New(container)

	addr, err := app.ListenAddr(cfg.Server.Port)
	if err != nil {
		lg.Fatal().Err(err).Msg("invalid HTTP port")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()
	lg.Info().Str("addr", addr).Str("env", cfg.App.Env).Msg("server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			lg.Fatal().Err(err).Msg("server error")
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			lg.Error().Err(err).Msg("shutdown error")
		}
	}
}
