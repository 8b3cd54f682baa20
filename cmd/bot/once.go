package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newOnceCmd runs the job a single time and exits, for external schedulers
// such as a CI cron workflow.
func newOnceCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "once",
		Short: "Create today's scrum thread once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runOnce(ctx, a)
		},
	}
}

func runOnce(ctx context.Context, a *app) error {
	result, err := a.instance.Scrum.RunOnce(ctx, domain.TriggerOnce)
	if err != nil {
		return err
	}

	a.log.Info("one-shot run finished",
		zap.String("run_id", result.RunID),
		zap.String("thread_id", result.Thread.ID),
		zap.Int("missing_members", len(result.MissingMembers)))
	return nil
}
