package service

import (
	"github.com/diegoclair/daily-scrum-bot/internal/domain/contract"
	"github.com/diegoclair/daily-scrum-bot/internal/metrics"
	"go.uber.org/zap"
)

type Instance struct {
	Scrum     *scrumService
	Scheduler *scheduler
}

func NewInstance(platform contract.Platform, settings Settings, schedule string, log *zap.Logger, m *metrics.Metrics) (*Instance, error) {
	scrumService := newScrum(platform, settings, log, m)

	sched, err := newScheduler(scrumService, schedule, scrumService.settings.Location, log)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Scrum:     scrumService,
		Scheduler: sched,
	}, nil
}
