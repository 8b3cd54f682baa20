package slack

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/contract"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

const (
	historyPageSize = 100
	repliesPageSize = 200

	slackbotID = "USLACKBOT"
)

// Platform maps the forum model onto a Slack channel: every top-level message
// is a thread titled by its first line, and its replies are the thread's
// messages. The newest history page plays the role of the active threads.
type Platform struct {
	client contract.SlackClient
}

func New(client contract.SlackClient) *Platform {
	return &Platform{client: client}
}

func (p *Platform) ResolveForum(ctx context.Context, forumID string) error {
	ch, err := p.client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{ChannelID: forumID})
	if err != nil {
		return &domain.ConfigurationError{Setting: "slack.channel_id", Err: fmt.Errorf("failed to get channel %s: %w", forumID, err)}
	}
	if ch.IsArchived {
		return &domain.ConfigurationError{Setting: "slack.channel_id", Err: fmt.Errorf("channel %s is archived", forumID)}
	}
	return nil
}

func (p *Platform) ActiveThreads(ctx context.Context, forumID string) ([]entity.Thread, error) {
	resp, err := p.history(ctx, forumID, "")
	if err != nil {
		return nil, err
	}
	return toThreads(forumID, resp.Messages), nil
}

// ArchivedThreads walks the history pages that follow the first one
func (p *Platform) ArchivedThreads(ctx context.Context, forumID string) iter.Seq2[entity.Thread, error] {
	return func(yield func(entity.Thread, error) bool) {
		resp, err := p.history(ctx, forumID, "")
		if err != nil {
			yield(entity.Thread{}, err)
			return
		}

		for resp.HasMore && resp.ResponseMetaData.NextCursor != "" {
			resp, err = p.history(ctx, forumID, resp.ResponseMetaData.NextCursor)
			if err != nil {
				yield(entity.Thread{}, err)
				return
			}

			for _, thread := range toThreads(forumID, resp.Messages) {
				thread.Archived = true
				if !yield(thread, nil) {
					return
				}
			}
		}
	}
}

// RecentMessages returns up to maxCount replies of the thread, newest first
func (p *Platform) RecentMessages(ctx context.Context, thread entity.Thread, maxCount int) ([]entity.Message, error) {
	channelID, ts, ok := strings.Cut(thread.ID, threadIDSeparator)
	if !ok {
		return nil, fmt.Errorf("malformed thread id %q", thread.ID)
	}

	var (
		replies []slack.Message
		cursor  string
	)
	for {
		page, hasMore, next, err := p.client.GetConversationRepliesContext(ctx, &slack.GetConversationRepliesParameters{
			ChannelID: channelID,
			Timestamp: ts,
			Cursor:    cursor,
			Limit:     repliesPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read replies of thread %s: %w", ts, err)
		}
		replies = append(replies, page...)

		if !hasMore || next == "" {
			break
		}
		cursor = next
	}

	// replies come oldest first
	slices.Reverse(replies)

	messages := make([]entity.Message, 0, min(len(replies), maxCount))
	for _, msg := range replies {
		if len(messages) == maxCount {
			break
		}
		if msg.User == "" {
			continue
		}
		messages = append(messages, entity.Message{ID: msg.Timestamp, AuthorID: msg.User})
	}
	return messages, nil
}

// GuildMembers lists the workspace users. User group handles and names act as
// roles.
func (p *Platform) GuildMembers(ctx context.Context, _ string) ([]entity.Member, error) {
	groups, err := p.client.GetUserGroupsContext(ctx, slack.GetUserGroupsOptionIncludeUsers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list user groups: %w", err)
	}
	roles := make(map[string][]string)
	for _, group := range groups {
		for _, userID := range group.Users {
			roles[userID] = append(roles[userID], group.Handle, group.Name)
		}
	}

	users, err := p.client.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	members := make([]entity.Member, 0, len(users))
	for _, user := range users {
		if user.Deleted {
			continue
		}
		members = append(members, entity.Member{
			ID:          user.ID,
			DisplayName: displayName(user),
			IsBot:       user.IsBot || user.ID == slackbotID,
			Roles:       roles[user.ID],
		})
	}
	return members, nil
}

func (p *Platform) CreateForumThread(ctx context.Context, forumID, title, body string) (*entity.ThreadHandle, error) {
	channelID, ts, err := p.client.PostMessageContext(ctx, forumID, slack.MsgOptionText(title+"\n\n"+body, false))
	if err != nil {
		return nil, &domain.PublishError{Err: err}
	}
	return &entity.ThreadHandle{ID: threadID(channelID, ts), Title: title}, nil
}

func (p *Platform) Mention(member entity.Member) string {
	return "<@" + member.ID + ">"
}

func (p *Platform) history(ctx context.Context, channelID, cursor string) (*slack.GetConversationHistoryResponse, error) {
	resp, err := p.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Cursor:    cursor,
		Limit:     historyPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read history of channel %s: %w", channelID, err)
	}
	return resp, nil
}

// a thread is addressed by its channel and the timestamp of its parent message
const threadIDSeparator = "/"

func threadID(channelID, ts string) string {
	return channelID + threadIDSeparator + ts
}

func toThreads(channelID string, msgs []slack.Message) []entity.Thread {
	threads := make([]entity.Thread, 0, len(msgs))
	for _, msg := range msgs {
		// skip replies broadcast to the channel
		if msg.ThreadTimestamp != "" && msg.ThreadTimestamp != msg.Timestamp {
			continue
		}
		title, _, _ := strings.Cut(msg.Text, "\n")
		threads = append(threads, entity.Thread{
			ID:    threadID(channelID, msg.Timestamp),
			Title: title,
		})
	}
	return threads
}

func displayName(user slack.User) string {
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.RealName != "" {
		return user.RealName
	}
	return user.Name
}
