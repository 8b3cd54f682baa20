package service

import (
	"iter"
	"testing"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
	"github.com/diegoclair/daily-scrum-bot/internal/metrics"
	"github.com/diegoclair/daily-scrum-bot/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type allMocks struct {
	mockPlatform     *mocks.MockPlatform
	mockScrumService *mocks.MockScrumService
}

var seoul = mustLoadLocation("Asia/Seoul")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func testSettings() Settings {
	return Settings{
		GuildID:        "guild-1",
		ForumID:        "forum-1",
		Location:       seoul,
		ExcludedRoles:  []string{"PM", "Designer"},
		HistoryWindow:  100,
		Marker:         domain.DefaultMarker,
		TitleSuffix:    domain.DefaultTitleSuffix,
		Weekdays:       domain.DefaultWeekdayLabels,
		Callout:        domain.DefaultCallout,
		Sections:       domain.DefaultSections,
		RequestTimeout: time.Second,
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockPlatform:     mocks.NewMockPlatform(ctrl),
		mockScrumService: mocks.NewMockScrumService(ctrl),
	}

	return
}

// newTestScrum builds a scrum service whose clock is fixed at now
func newTestScrum(t *testing.T, m allMocks, now time.Time) (*scrumService, *metrics.Metrics) {
	t.Helper()

	met := metrics.New(prometheus.NewRegistry())
	s := newScrum(m.mockPlatform, testSettings(), zaptest.NewLogger(t), met)
	require.NotNil(t, s)
	s.now = func() time.Time { return now }

	return s, met
}

// archivedSeq yields threads in order and counts how many were pulled
func archivedSeq(threads []entity.Thread, failWith error, pulled *int) iter.Seq2[entity.Thread, error] {
	return func(yield func(entity.Thread, error) bool) {
		for _, thread := range threads {
			if pulled != nil {
				*pulled++
			}
			if !yield(thread, nil) {
				return
			}
		}
		if failWith != nil {
			yield(entity.Thread{}, failWith)
		}
	}
}
