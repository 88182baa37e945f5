package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medibook/medibook/internal/config"
	"github.com/medibook/medibook/internal/domain/availability"
	"github.com/medibook/medibook/internal/domain/booking"
	"github.com/medibook/medibook/internal/domain/dashboard"
	"github.com/medibook/medibook/internal/domain/directory"
	"github.com/medibook/medibook/internal/platform/auth"
	"github.com/medibook/medibook/internal/platform/db"
	"github.com/medibook/medibook/internal/platform/middleware"
)

func main() {
	root := &cobra.Command{
		Use:   "medibook-server",
		Short: "Appointment booking and settlement service",
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			pool, err := db.NewPool(cmd.Context(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true
			e.Use(middleware.RequestID())
			e.Use(middleware.Recovery(logger))
			e.Use(middleware.Logger(logger))
			e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
				AllowOrigins: cfg.CORSOrigins,
				AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			}))

			e.GET("/health", func(c echo.Context) error {
				if err := pool.Ping(c.Request().Context()); err != nil {
					return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				}
				return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
			})

			api := e.Group("/api/v1")
			if cfg.IsDev() {
				logger.Warn().Msg("development mode: all requests run as admin")
				api.Use(auth.DevAuthMiddleware())
			} else {
				api.Use(auth.JWTMiddleware([]byte(cfg.JWTSecret)))
			}

			directorySvc := directory.NewService(
				directory.NewHospitalRepoPG(pool),
				directory.NewDepartmentRepoPG(pool),
				directory.NewDoctorRepoPG(pool),
				directory.NewPatientRepoPG(pool),
			)
			availabilitySvc := availability.NewService(availability.NewRepoPG(pool))
			ledger := booking.NewLedgerPG(pool)
			bookingSvc := booking.NewService(ledger, directorySvc, availabilitySvc, logger)
			dashboardSvc := dashboard.NewService(directorySvc, ledger, logger)

			directory.NewHandler(directorySvc).RegisterRoutes(api)
			availability.NewHandler(availabilitySvc).RegisterRoutes(api)
			booking.NewHandler(bookingSvc).RegisterRoutes(api)
			dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)

			go func() {
				logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
				if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server stopped")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Info().Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	var migrationsDir string

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	migrate.PersistentFlags().StringVar(&migrationsDir, "dir", "migrations", "directory containing migration files")

	withMigrator := func(ctx context.Context, fn func(*db.Migrator) error) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, 2, 1)
		if err != nil {
			return err
		}
		defer pool.Close()
		return fn(db.NewMigrator(pool, migrationsDir))
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(m *db.Migrator) error {
				n, err := m.Up(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("applied %d migration(s)\n", n)
				return nil
			})
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(m *db.Migrator) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				for _, s := range statuses {
					state := "pending"
					if s.Applied {
						state = "applied " + s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Printf("%04d %-40s %s\n", s.Version, s.Name, state)
				}
				return nil
			})
		},
	})

	return migrate
}
