package main

import (
	"context"
	"fmt"
	"github.com/cortex-platform/console/internal/api"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/clientstore/inmem"
	"github.com/cortex-platform/console/internal/clientstore/postgres"
	"github.com/cortex-platform/console/internal/config"
	"github.com/cortex-platform/console/internal/task"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Initialize the client store driver
	log.Info().Str("driver", cfg.StoreDriver).Msg("initializing the client store...")
	driver, err := newStoreDriver(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create the client store driver")
	}
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the client store")
	}
	defer driver.Close()

	// Schedule a task that purges client store entries nobody wrote to for a while
	cleanupTask := task.NewRepeating(func() {
		n, err := driver.RemoveExpired(context.Background(), time.Now().Add(-cfg.StoreEntryLifetime))
		if err != nil {
			log.Error().Err(err).Msg("could not purge expired client store entries")
		} else if n > 0 {
			log.Info().Int("amount", n).Msg("purged expired client store entries")
		}
	}, cfg.StoreCleanupInterval)
	cleanupTask.Start()
	defer cleanupTask.Stop(false)

	// Start up the console API
	log.Info().Str("address", cfg.ListenAddress).Str("backend", cfg.BackendURL).Msg("starting up the console API...")
	apis := &api.Service{
		Config: cfg,
		Store:  driver,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the console API raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the console API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	<-shutdown
}

func newStoreDriver(cfg *config.Config) (clientstore.Driver, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		driver, err := inmem.New()
		if err != nil {
			return nil, err
		}
		return driver, nil
	case config.StoreDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("the %s client store driver requires a DSN", cfg.StoreDriver)
		}
		return postgres.New(cfg.PostgresDSN), nil
	default:
		return nil, fmt.Errorf("unknown client store driver '%s'", cfg.StoreDriver)
	}
}
