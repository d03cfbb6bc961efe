package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"transit-ticketing/config"
	"transit-ticketing/database"
	"transit-ticketing/demo"
	"transit-ticketing/handlers"
	"transit-ticketing/services"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	if err := newApp(cfg).Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// newApp builds the CLI. The --seed default comes from cfg so SEED_FILE is
// read in one place.
func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "transit",
		Usage: "Public transport seat and ticket ledger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "seed",
				Usage: "YAML network fixture, SEED_FILE by default (the built-in demo network when unset)",
				Value: cfg.SeedFile,
			},
		},
		Commands: []*cli.Command{
			serveCommand(cfg),
			demoCommand(cfg),
			loadTestCommand(cfg),
			eventsCommand(cfg),
		},
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if cfg.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

// buildNetwork loads the seed and, when enabled, wires the journal. The
// returned func releases the database connection.
func buildNetwork(c *cli.Context, cfg *config.Config) (*services.Network, func(), error) {
	var recorder services.EventRecorder
	cleanup := func() {}

	if cfg.JournalEnabled {
		if err := database.Connect(cfg); err != nil {
			return nil, nil, err
		}
		cleanup = closeDatabase

		if err := database.RunMigrations(database.GetDB()); err != nil {
			cleanup()
			return nil, nil, err
		}
		recorder = database.NewJournal(database.GetDB())
	}

	var network *services.Network
	var err error
	if seed := c.String("seed"); seed != "" {
		network, err = services.LoadSeedFile(seed, recorder)
	} else {
		network, err = services.LoadDefaultSeed(recorder)
	}
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return network, cleanup, nil
}

func serveCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Value: cfg.ServerPort,
			},
		},
		Action: func(c *cli.Context) error {
			network, cleanup, err := buildNetwork(c, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			srv := &http.Server{
				Addr:    ":" + c.String("port"),
				Handler: setupRouter(cfg, network),
			}

			// Wait for interrupt signal for graceful shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			return runServer(srv, quit)
		},
	}
}

// runServer serves until a signal arrives on quit, then shuts down
// gracefully. A listen failure is returned so deferred cleanup still runs.
func runServer(srv *http.Server, quit <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("Server exited")
	return nil
}

func closeDatabase() {
	if err := database.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
}

func demoCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "replay the demo walkthrough and print the transcript",
		Action: func(c *cli.Context) error {
			network, cleanup, err := buildNetwork(c, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			_, err = demo.Run(c.Context, os.Stdout, network)
			return err
		},
	}
}

func loadTestCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "load-test",
		Usage: "book one vehicle concurrently and report how many seats were taken",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "passenger", Value: demo.SecondPassenger},
			&cli.StringFlag{Name: "route", Value: demo.BusRoute},
			&cli.StringFlag{Name: "descriptor", Value: "load-test"},
			&cli.IntFlag{Name: "attempts", Value: 1000},
			&cli.IntFlag{Name: "workers", Value: 32},
		},
		Action: func(c *cli.Context) error {
			network, cleanup, err := buildNetwork(c, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := network.BookMany(c.Context,
				c.String("passenger"), c.String("route"), c.String("descriptor"),
				c.Int("attempts"), c.Int("workers"))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}

func eventsCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "print the most recent ledger events from the journal",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 20},
		},
		Action: func(c *cli.Context) error {
			if !cfg.JournalEnabled {
				return cli.Exit("the journal is disabled, set JOURNAL_ENABLED=true", 1)
			}

			if err := database.Connect(cfg); err != nil {
				return err
			}
			defer closeDatabase()

			events, err := database.NewJournal(database.GetDB()).Recent(c.Context, c.Int("limit"))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(events)
		},
	}
}

func setupRouter(cfg *config.Config, network *services.Network) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handlers.New(network).Register(router)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

// requestLogger logs each request through zerolog instead of gin's writer
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request")
	}
}
