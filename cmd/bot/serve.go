package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/config"
	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot and post the scrum thread on schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("/metrics", promhttp.Handler())

	switch a.cfg.Platform {
	case config.PlatformSlack:
		handler := handlers.New(a.slackClient, a.instance.Scrum, a.cfg.Slack.SigningSecret, a.log)
		mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	default:
		handler := handlers.NewDiscord(ctx, a.discordSession, a.instance.Scrum, a.cfg.Discord.GuildID, a.cfg.Discord.CommandPrefix, a.log)
		a.discordSession.AddHandler(handler.HandleMessageCreate)
		if err := a.discordSession.Open(); err != nil {
			return fmt.Errorf("failed to connect to discord: %w", err)
		}
		a.log.Info("connected to discord", zap.String("guild_id", a.cfg.Discord.GuildID))
	}

	sched := a.instance.Scheduler
	sched.Start()
	defer sched.Stop()

	if a.cfg.Scrum.RunOnStart {
		go func() {
			if _, err := a.instance.Scrum.RunOnce(ctx, domain.TriggerStartup); err != nil {
				a.log.Error("startup scrum run failed", zap.Error(err))
			}
		}()
	}

	server := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("server starting", zap.String("port", a.cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		a.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
