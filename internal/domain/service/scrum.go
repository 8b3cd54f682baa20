package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/config"
	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/contract"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
	"github.com/diegoclair/daily-scrum-bot/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Settings is the explicit configuration of a scrum run
type Settings struct {
	GuildID        string
	ForumID        string
	Location       *time.Location
	ExcludedRoles  []string
	HistoryWindow  int
	Marker         string
	TitleSuffix    string
	Weekdays       []string
	Callout        string
	Sections       []domain.Section
	RequestTimeout time.Duration
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		GuildID:        cfg.GuildID(),
		ForumID:        cfg.ForumID(),
		Location:       cfg.Scrum.Location,
		ExcludedRoles:  cfg.Scrum.ExcludedRoles,
		HistoryWindow:  cfg.Scrum.HistoryWindow,
		Marker:         cfg.Scrum.Marker,
		TitleSuffix:    cfg.Scrum.TitleSuffix,
		Weekdays:       cfg.Scrum.Weekdays,
		Callout:        cfg.Scrum.Callout,
		Sections:       cfg.Scrum.Sections,
		RequestTimeout: cfg.Scrum.RequestTimeout,
	}
}

type scrumService struct {
	platform contract.Platform
	settings Settings
	log      *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func newScrum(platform contract.Platform, settings Settings, log *zap.Logger, m *metrics.Metrics) *scrumService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.HistoryWindow <= 0 {
		settings.HistoryWindow = domain.DefaultHistoryWindow
	}
	if settings.RequestTimeout <= 0 {
		settings.RequestTimeout = domain.DefaultRequestTimeout
	}
	if len(settings.Weekdays) != 7 {
		settings.Weekdays = domain.DefaultWeekdayLabels
	}
	if settings.Marker == "" {
		settings.Marker = domain.DefaultMarker
	}
	if settings.Callout == "" {
		settings.Callout = domain.DefaultCallout
	}

	return &scrumService{
		platform: platform,
		settings: settings,
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

// RunOnce checks yesterday's attendance and publishes today's thread.
// Reconciliation problems only shrink the callout list; a failure to publish
// is returned as *domain.PublishError.
func (s *scrumService) RunOnce(ctx context.Context, trigger domain.Trigger) (*entity.RunResult, error) {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("trigger", string(trigger)))

	today := s.now().In(s.settings.Location)
	result := &entity.RunResult{
		RunID: runID,
		Date:  today,
		Title: s.RenderTitle(today),
	}

	log.Info("starting daily scrum run", zap.String("date", today.Format(domain.DateLayout)))

	if err := s.resolveForum(ctx); err != nil {
		log.Error("forum channel could not be resolved", zap.Error(err))
		s.observeRun(trigger, "config_error", 0)
		return result, err
	}

	result.MissingMembers, result.PriorThreadID = s.reconcile(ctx, log, today)

	if err := ctx.Err(); err != nil {
		log.Warn("run cancelled before publishing", zap.Error(err))
		s.observeRun(trigger, "cancelled", 0)
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	handle, err := s.ComposeAndPublish(ctx, today, result.MissingMembers)
	if err != nil {
		log.Error("failed to publish daily scrum thread", zap.Error(err))
		s.observeRun(trigger, "publish_error", 0)
		return result, err
	}

	result.Thread = handle
	result.Published = true
	s.observeRun(trigger, "success", len(result.MissingMembers))

	log.Info("daily scrum thread created",
		zap.String("thread_id", handle.ID),
		zap.String("title", handle.Title),
		zap.Int("missing_members", len(result.MissingMembers)))

	return result, nil
}

// Preview computes what a run would publish without creating a thread
func (s *scrumService) Preview(ctx context.Context) (*entity.RunResult, error) {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("trigger", "preview"))

	today := s.now().In(s.settings.Location)
	result := &entity.RunResult{
		RunID: runID,
		Date:  today,
		Title: s.RenderTitle(today),
	}

	if err := s.resolveForum(ctx); err != nil {
		return result, err
	}

	result.MissingMembers, result.PriorThreadID = s.reconcile(ctx, log, today)
	return result, nil
}

func (s *scrumService) resolveForum(ctx context.Context) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	err := s.platform.ResolveForum(callCtx, s.settings.ForumID)
	if err == nil {
		return nil
	}

	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return err
	}
	return &domain.ConfigurationError{Setting: "forum_channel_id", Err: err}
}

// callContext bounds a single platform call
func (s *scrumService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.settings.RequestTimeout)
}

func (s *scrumService) observeRun(trigger domain.Trigger, result string, missing int) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveRun(string(trigger), result, missing)
}
