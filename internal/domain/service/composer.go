package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
)

// ComposeAndPublish renders today's thread and creates it in the forum
func (s *scrumService) ComposeAndPublish(ctx context.Context, today time.Time, missing []entity.Member) (*entity.ThreadHandle, error) {
	title := s.RenderTitle(today)
	body := s.RenderBody(missing)

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	handle, err := s.platform.CreateForumThread(callCtx, s.settings.ForumID, title, body)
	if err != nil {
		var pubErr *domain.PublishError
		if errors.As(err, &pubErr) {
			return nil, err
		}
		return nil, &domain.PublishError{Err: err}
	}
	if handle == nil {
		return nil, &domain.PublishError{Err: errors.New("platform returned no thread")}
	}

	return handle, nil
}

// threadPrefix is the title prefix shared by every thread of day
func (s *scrumService) threadPrefix(day time.Time) string {
	return s.settings.Marker + " " + day.In(s.settings.Location).Format(domain.DateLayout)
}

// RenderTitle formats e.g. "📢 2025-06-02(월) 데일리 스크럼"
func (s *scrumService) RenderTitle(day time.Time) string {
	local := day.In(s.settings.Location)
	weekday := s.settings.Weekdays[domain.ISOWeekday(local)-1]

	title := fmt.Sprintf("%s(%s)", s.threadPrefix(local), weekday)
	if s.settings.TitleSuffix != "" {
		title += " " + s.settings.TitleSuffix
	}
	return title
}

// RenderBody renders the template sections followed by the callout list
// when anyone is missing.
func (s *scrumService) RenderBody(missing []entity.Member) string {
	sections := s.settings.Sections
	if len(sections) == 0 {
		sections = domain.DefaultSections
	}

	blocks := make([]string, 0, len(sections)+1)
	for _, section := range sections {
		lines := append([]string{section.Header}, section.Examples...)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if len(missing) > 0 {
		mentions := make([]string, 0, len(missing))
		for _, member := range missing {
			mentions = append(mentions, s.platform.Mention(member))
		}
		blocks = append(blocks, s.settings.Callout+" "+strings.Join(mentions, " "))
	}

	return strings.Join(blocks, "\n\n")
}
