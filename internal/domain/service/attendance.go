package service

import (
	"context"
	"strings"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// FindMissingMembers returns the eligible members who did not post in the
// thread of the day before today. It never fails: any platform fault yields
// an empty result.
func (s *scrumService) FindMissingMembers(ctx context.Context, today time.Time) []entity.Member {
	missing, _ := s.reconcile(ctx, s.log, today)
	return missing
}

func (s *scrumService) reconcile(ctx context.Context, log *zap.Logger, today time.Time) ([]entity.Member, string) {
	yesterday := today.In(s.settings.Location).AddDate(0, 0, -1)
	prefix := s.threadPrefix(yesterday)
	log = log.With(zap.String("target_tag", yesterday.Format(domain.DateLayout)))

	thread, err := s.findThread(ctx, prefix)
	if err != nil {
		s.fault(log, err)
		return nil, ""
	}
	if thread == nil {
		log.Info("no scrum thread found for previous day, skipping attendance check")
		return nil, ""
	}
	log = log.With(zap.String("prior_thread_id", thread.ID), zap.Bool("archived", thread.Archived))

	active, err := s.activeAuthors(ctx, *thread)
	if err != nil {
		s.fault(log, err)
		return nil, thread.ID
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	members, err := s.platform.GuildMembers(callCtx, s.settings.GuildID)
	if err != nil {
		s.fault(log, &domain.ReconciliationFault{Op: "list_members", Err: err})
		return nil, thread.ID
	}

	missing := MissingMembers(members, active, s.settings.ExcludedRoles)
	log.Info("attendance reconciled",
		zap.Int("members", len(members)),
		zap.Int("active_authors", len(active)),
		zap.Int("missing", len(missing)))

	return missing, thread.ID
}

// findThread searches active threads first and only then walks archived
// threads, stopping at the first title starting with prefix.
func (s *scrumService) findThread(ctx context.Context, prefix string) (*entity.Thread, error) {
	activeCtx, cancelActive := s.callContext(ctx)
	defer cancelActive()

	threads, err := s.platform.ActiveThreads(activeCtx, s.settings.ForumID)
	if err != nil {
		return nil, &domain.ReconciliationFault{Op: "list_active_threads", Err: err}
	}
	for _, thread := range threads {
		if strings.HasPrefix(thread.Title, prefix) {
			return &thread, nil
		}
	}

	archivedCtx, cancelArchived := s.callContext(ctx)
	defer cancelArchived()

	for thread, err := range s.platform.ArchivedThreads(archivedCtx, s.settings.ForumID) {
		if err != nil {
			return nil, &domain.ReconciliationFault{Op: "list_archived_threads", Err: err}
		}
		if strings.HasPrefix(thread.Title, prefix) {
			thread.Archived = true
			return &thread, nil
		}
	}

	return nil, nil
}

// activeAuthors collects the distinct authors among the newest messages of
// thread, bounded by the history window.
func (s *scrumService) activeAuthors(ctx context.Context, thread entity.Thread) (map[string]struct{}, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	window := s.settings.HistoryWindow
	messages, err := s.platform.RecentMessages(callCtx, thread, window)
	if err != nil {
		return nil, &domain.ReconciliationFault{Op: "read_messages", Err: err}
	}
	if len(messages) > window {
		messages = messages[:window]
	}

	authors := make(map[string]struct{}, len(messages))
	for _, msg := range messages {
		authors[msg.AuthorID] = struct{}{}
	}
	return authors, nil
}

func (s *scrumService) fault(log *zap.Logger, err error) {
	op := "unknown"
	if f, ok := err.(*domain.ReconciliationFault); ok {
		op = f.Op
	}
	log.Warn("attendance check failed, continuing without callout", zap.String("op", op), zap.Error(err))
	if s.metrics != nil {
		s.metrics.ObserveFault(op)
	}
}

// MissingMembers keeps, in member-list order, every member who is not a bot,
// holds none of the excluded roles and is not among the active authors.
func MissingMembers(members []entity.Member, active map[string]struct{}, excludedRoles []string) []entity.Member {
	var missing []entity.Member
	seen := make(map[string]struct{}, len(members))

	for _, member := range members {
		if member.IsBot || member.HasAnyRole(excludedRoles) {
			continue
		}
		if _, ok := active[member.ID]; ok {
			continue
		}
		if _, dup := seen[member.ID]; dup {
			continue
		}
		seen[member.ID] = struct{}{}
		missing = append(missing, member)
	}

	return missing
}
