package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/duty-roster/internal/config"
	"github.com/diegoclair/duty-roster/internal/database"
	"github.com/diegoclair/duty-roster/internal/domain/service"
	"github.com/diegoclair/duty-roster/internal/handlers"
	"github.com/diegoclair/duty-roster/migrator/sqlite"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Slack bot, the web form and the daily notifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(database.NewInstance(db), slackClient, service.HolidayConfig{
		Holidays:  cfg.Holidays,
		Durations: cfg.HolidayDurations,
	})

	services.Notifier.Start()
	defer services.Notifier.Stop()

	horizon := handlers.Horizon{Start: cfg.HorizonStart, End: cfg.HorizonEnd}
	slackHandler := handlers.New(slackClient, services.Roster, cfg.SlackSigningSecret, horizon)
	webHandler := handlers.NewWebHandler(services.Roster, horizon)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", slackHandler.HandleSlashCommand)
	mux.HandleFunc("/", webHandler.HandleIndex)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("Shutdown signal received, stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		server.Close()
		return fmt.Errorf("could not stop server gracefully: %w", err)
	}

	return nil
}
