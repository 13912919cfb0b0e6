package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/config"
	"github.com/loan-tracker/backend/internal/models"
	"github.com/loan-tracker/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			Loan Tracker
// @description	The backend for the loan tracker, keeping track of money and things lent to friends.
// @BasePath		/
func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = models.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"), cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			log.Error().Err(err).Str("addr", srv.Addr).Msg("Server failed")
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		exitCode = 1
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		log.Error().Err(err).Msg("Closing the record store failed")
		exitCode = 1
	}

	if exitCode != 0 {
		// Deferred functions do not run on os.Exit
		cancel()
		stop()
		teardown()
		os.Exit(exitCode)
	}

	log.Info().Msg("Stopped")
}
