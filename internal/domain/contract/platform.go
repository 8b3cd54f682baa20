package contract

//go:generate mockgen -source=platform.go -destination=../../../mocks/platform_mock.go -package=mocks

import (
	"context"
	"iter"

	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
)

// Platform is the narrow set of chat-platform capabilities the scrum job needs.
// Implementations live under internal/platform.
type Platform interface {
	// ResolveForum checks that the configured forum channel exists and accepts threads
	ResolveForum(ctx context.Context, forumID string) error

	// ActiveThreads lists non-archived threads of the forum in platform order
	ActiveThreads(ctx context.Context, forumID string) ([]entity.Thread, error)

	// ArchivedThreads lazily yields archived threads of the forum in platform order.
	// Breaking out of the loop stops pagination.
	ArchivedThreads(ctx context.Context, forumID string) iter.Seq2[entity.Thread, error]

	// RecentMessages returns at most maxCount messages of the thread, newest first
	RecentMessages(ctx context.Context, thread entity.Thread, maxCount int) ([]entity.Message, error)

	// GuildMembers lists every member of the guild (or workspace)
	GuildMembers(ctx context.Context, guildID string) ([]entity.Member, error)

	// CreateForumThread opens a new thread in the forum
	CreateForumThread(ctx context.Context, forumID, title, body string) (*entity.ThreadHandle, error)

	// Mention renders the platform token that pings the member
	Mention(member entity.Member) string
}
