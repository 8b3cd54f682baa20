package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/contract"
	"github.com/diegoclair/daily-scrum-bot/internal/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type scheduler struct {
	scrum   contract.ScrumService
	cron    *cron.Cron
	entryID cron.EntryID
	loc     *time.Location
	log     *zap.Logger

	mu      sync.Mutex
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// newScheduler registers a daily run at spec, evaluated in loc
func newScheduler(scrum contract.ScrumService, spec string, loc *time.Location, log *zap.Logger) (*scheduler, error) {
	cronLog := logger.NewCronLogger(log)
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &scheduler{
		scrum:  scrum,
		cron:   c,
		loc:    loc,
		log:    log.Named("scheduler"),
		ctx:    ctx,
		cancel: cancel,
	}

	id, err := c.AddFunc(spec, s.runScheduled)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	s.entryID = id

	return s, nil
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
	s.log.Info("Scheduler started", zap.Time("next_run", s.next()))
}

// Stop cancels an in-flight run and waits for it to return
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.log.Info("Scheduler stopping...")
	s.cancel()
	<-s.cron.Stop().Done()
	s.running = false
}

// Next reports when the daily run fires next
func (s *scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next()
}

// next expects s.mu to be held
func (s *scheduler) next() time.Time {
	if s.running {
		return s.cron.Entry(s.entryID).Next
	}
	return s.cron.Entry(s.entryID).Schedule.Next(time.Now().In(s.loc))
}

func (s *scheduler) runScheduled() {
	result, err := s.scrum.RunOnce(s.ctx, domain.TriggerSchedule)
	if err != nil {
		s.log.Error("Scheduled scrum run failed", zap.Error(err))
		return
	}
	s.log.Info("Scheduled scrum run finished", zap.String("run_id", result.RunID))
}
