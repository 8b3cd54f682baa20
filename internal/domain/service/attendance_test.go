package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice = entity.Member{ID: "1", DisplayName: "alice"}
	bob   = entity.Member{ID: "2", DisplayName: "bob"}
	carol = entity.Member{ID: "3", DisplayName: "carol", Roles: []string{"PM"}}
	dave  = entity.Member{ID: "4", DisplayName: "dave", Roles: []string{"Backend", "Designer"}}
	erin  = entity.Member{ID: "5", DisplayName: "erin", Roles: []string{"Backend"}}
	robot = entity.Member{ID: "6", DisplayName: "scrum-bot", IsBot: true}

	// Tuesday morning in Seoul; the previous day's tag is 2025-06-02
	runTime = time.Date(2025, 6, 3, 9, 0, 0, 0, seoul)

	yesterdayThread = entity.Thread{ID: "t-0602", Title: "📢 2025-06-02(월) 데일리 스크럼"}
	olderThread     = entity.Thread{ID: "t-0601", Title: "📢 2025-06-01(일) 데일리 스크럼"}
)

func messagesBy(authorIDs ...string) []entity.Message {
	msgs := make([]entity.Message, 0, len(authorIDs))
	for i, id := range authorIDs {
		msgs = append(msgs, entity.Message{ID: fmt.Sprintf("m%d", i), AuthorID: id})
	}
	return msgs
}

func Test_scrumService_FindMissingMembers(t *testing.T) {
	allMembers := []entity.Member{alice, bob, carol, dave, erin, robot}
	boom := errors.New("discord unavailable")

	tests := []struct {
		name       string
		now        time.Time
		buildMocks func(m allMocks)
		want       []entity.Member
		wantFault  string
	}{
		{
			name: "Should report eligible members who did not post in the active thread",
			now:  runTime,
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{olderThread, yesterdayThread}, nil).Times(1)
				m.mockPlatform.EXPECT().RecentMessages(gomock.Any(), yesterdayThread, 100).
					Return(messagesBy("6", "1", "1"), nil).Times(1)
				m.mockPlatform.EXPECT().GuildMembers(gomock.Any(), "guild-1").
					Return(allMembers, nil).Times(1)
			},
			want: []entity.Member{bob, erin},
		},
		{
			name: "Should never search archived threads when an active thread matches",
			now:  runTime,
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{yesterdayThread}, nil).Times(1)
				m.mockPlatform.EXPECT().ArchivedThreads(gomock.Any(), gomock.Any()).Times(0)
				m.mockPlatform.EXPECT().RecentMessages(gomock.Any(), yesterdayThread, 100).
					Return(messagesBy("1", "2", "5"), nil).Times(1)
				m.mockPlatform.EXPECT().GuildMembers(gomock.Any(), "guild-1").
					Return(allMembers, nil).Times(1)
			},
			want: nil,
		},
		{
			name: "Should fall back to archived threads",
			now:  runTime,
			buildMocks: func(m allMocks) {
				archived := yesterdayThread
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{olderThread}, nil).Times(1)
				m.mockPlatform.EXPECT().ArchivedThreads(gomock.Any(), "forum-1").
					Return(archivedSeq([]entity.Thread{olderThread, archived}, nil, nil)).Times(1)
				archived.Archived = true
				m.mockPlatform.EXPECT().RecentMessages(gomock.Any(), archived, 100).
					Return(messagesBy("2"), nil).Times(1)
				m.mockPlatform.EXPECT().GuildMembers(gomock.Any(), "guild-1").
					Return([]entity.Member{alice, bob}, nil).Times(1)
			},
			want: []entity.Member{alice},
		},
		{
			name: "Should return nobody when no thread carries the previous day's tag",
			now:  runTime,
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{olderThread}, nil).Times(1)
				m.mockPlatform.EXPECT().ArchivedThreads(gomock.Any(), "forum-1").
					Return(archivedSeq([]entity.Thread{olderThread}, nil, nil)).Times(1)
				m.mockPlatform.EXPECT().GuildMembers(gomock.Any(), gomock.Any()).Times(0)
			},
			want: nil,
		},
		{
			name: "Should use the configured time zone for the day boundary",
			// 23:30 UTC on June 2nd is already June 3rd in Seoul
			now: time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC),
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{olderThread, yesterdayThread}, nil).Times(1)
				m.mockPlatform.EXPECT().RecentMessages(gomock.Any(), yesterdayThread, 100).
					Return(messagesBy("1"), nil).Times(1)
				m.mockPlatform.EXPECT().GuildMembers(gomock.Any(), "guild-1").
					Return([]entity.Member{alice, bob}, nil).Times(1)
			},
			want: []entity.Member{bob},
		},
		{
			name: "Should only consult the newest messages of the history window",
			now:  runTime,
			buildMocks: func(m allMocks) {
				authors := make([]string, 0, 101)
				for i := 0; i < 100; i++ {
					authors = append(authors, "1")
				}
				// the oldest message, position 101, is bob's only post
				authors = append(authors, "2")

				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{yesterdayThread}, nil).Times(1)
				m.mockPlatform.EXPECT().RecentMessages(gomock.Any(), yesterdayThread, 100).
					Return(messagesBy(authors...), nil).Times(1)
				m.mockPlatform.EXPECT().GuildMembers(gomock.Any(), "guild-1").
					Return([]entity.Member{alice, bob}, nil).Times(1)
			},
			want: []entity.Member{bob},
		},
		{
			name: "Should swallow a failure to list active threads",
			now:  runTime,
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return(nil, boom).Times(1)
			},
			want:      nil,
			wantFault: "list_active_threads",
		},
		{
			name: "Should swallow a failure while paging archived threads",
			now:  runTime,
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return(nil, nil).Times(1)
				m.mockPlatform.EXPECT().ArchivedThreads(gomock.Any(), "forum-1").
					Return(archivedSeq([]entity.Thread{olderThread}, boom, nil)).Times(1)
			},
			want:      nil,
			wantFault: "list_archived_threads",
		},
		{
			name: "Should swallow a failure to read the thread history",
			now:  runTime,
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{yesterdayThread}, nil).Times(1)
				m.mockPlatform.EXPECT().RecentMessages(gomock.Any(), yesterdayThread, 100).
					Return(nil, boom).Times(1)
			},
			want:      nil,
			wantFault: "read_messages",
		},
		{
			name: "Should swallow a failure to list members instead of reporting everyone",
			now:  runTime,
			buildMocks: func(m allMocks) {
				m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").
					Return([]entity.Thread{yesterdayThread}, nil).Times(1)
				m.mockPlatform.EXPECT().RecentMessages(gomock.Any(), yesterdayThread, 100).
					Return(messagesBy("1"), nil).Times(1)
				m.mockPlatform.EXPECT().GuildMembers(gomock.Any(), "guild-1").
					Return(nil, boom).Times(1)
			},
			want:      nil,
			wantFault: "list_members",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s, met := newTestScrum(t, m, tt.now)
			tt.buildMocks(m)

			got := s.FindMissingMembers(context.Background(), tt.now)
			assert.Equal(t, tt.want, got)

			if tt.wantFault != "" {
				assert.Equal(t, 1.0, testutil.ToFloat64(met.ReconciliationFaults.WithLabelValues(tt.wantFault)))
			}
		})
	}
}

func Test_scrumService_findThread_stopsArchivedPaging(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s, _ := newTestScrum(t, m, runTime)

	pulled := 0
	later := entity.Thread{ID: "t-later", Title: "📢 2025-06-02 duplicate"}
	m.mockPlatform.EXPECT().ActiveThreads(gomock.Any(), "forum-1").Return(nil, nil).Times(1)
	m.mockPlatform.EXPECT().ArchivedThreads(gomock.Any(), "forum-1").
		Return(archivedSeq([]entity.Thread{olderThread, yesterdayThread, later}, nil, &pulled)).Times(1)

	got, err := s.findThread(context.Background(), "📢 2025-06-02")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "t-0602", got.ID)
	assert.True(t, got.Archived)
	assert.Equal(t, 2, pulled, "archived iteration should stop at the first match")
}

func TestMissingMembers(t *testing.T) {
	excluded := []string{"PM", "Designer"}

	tests := []struct {
		name     string
		members  []entity.Member
		active   []string
		excluded []string
		want     []entity.Member
	}{
		{
			name:     "Should exclude bots, excluded roles and active authors",
			members:  []entity.Member{alice, bob, carol, dave, erin, robot},
			active:   []string{"1"},
			excluded: excluded,
			want:     []entity.Member{bob, erin},
		},
		{
			name:     "Should never report bots or excluded roles even without posts",
			members:  []entity.Member{carol, dave, robot},
			excluded: excluded,
			want:     nil,
		},
		{
			name:     "Should honor a different exclusion list",
			members:  []entity.Member{carol, dave, erin},
			excluded: []string{"Backend"},
			want:     []entity.Member{carol},
		},
		{
			name:     "Should keep member list order and drop duplicates",
			members:  []entity.Member{erin, bob, erin},
			excluded: nil,
			want:     []entity.Member{erin, bob},
		},
		{
			name:     "Should return nobody when everyone posted",
			members:  []entity.Member{alice, bob},
			active:   []string{"2", "1", "99"},
			excluded: excluded,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active := make(map[string]struct{}, len(tt.active))
			for _, id := range tt.active {
				active[id] = struct{}{}
			}

			got := MissingMembers(tt.members, active, tt.excluded)
			assert.Equal(t, tt.want, got)

			for _, member := range got {
				assert.False(t, member.IsBot)
				assert.False(t, member.HasAnyRole(tt.excluded))
			}
		})
	}
}
