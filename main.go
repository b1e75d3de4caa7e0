package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"guardian/internal/bootstrap"
	"guardian/internal/logging"
)

func main() {
	logger := logging.Setup(os.Stderr, os.Getenv("GUARDIAN_LOG_LEVEL"))

	services, err := bootstrap.Build()
	if err != nil {
		logger.Fatal().Err(err).Msg("startup failed")
	}

	addr := fmt.Sprintf(":%d", services.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      services.Server.Handler(),
		ReadTimeout:  services.Config.Server.ReadTimeout,
		WriteTimeout: services.Config.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", addr).
			Bool("slack_configured", services.Config.Slack.WebhookURL != "").
			Msg("starting context switch guardian")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), services.Config.Server.ShutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}
}
