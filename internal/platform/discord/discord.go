package discord

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
)

const (
	// Discord caps these endpoints at 100 messages and 1000 members per page
	messagesPageSize = 100
	membersPageSize  = 1000
	archivedPageSize = 50

	// forum threads auto-archive after one day of inactivity
	threadArchiveMinutes = 1440
)

// Session is the subset of *discordgo.Session used by the platform
type Session interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildThreadsActive(guildID string, options ...discordgo.RequestOption) (*discordgo.ThreadsList, error)
	ThreadsArchived(channelID string, before *time.Time, limit int, options ...discordgo.RequestOption) (*discordgo.ThreadsList, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	ForumThreadStart(channelID, name string, archiveDuration int, content string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

// Platform implements contract.Platform on top of a Discord forum channel
type Platform struct {
	session Session
	guildID string
}

func New(session Session, guildID string) *Platform {
	return &Platform{
		session: session,
		guildID: guildID,
	}
}

func (p *Platform) ResolveForum(ctx context.Context, forumID string) error {
	ch, err := p.session.Channel(forumID, discordgo.WithContext(ctx))
	if err != nil {
		return &domain.ConfigurationError{Setting: "discord.forum_channel_id", Err: fmt.Errorf("failed to get channel %s: %w", forumID, err)}
	}
	if ch.Type != discordgo.ChannelTypeGuildForum {
		return &domain.ConfigurationError{Setting: "discord.forum_channel_id", Err: fmt.Errorf("channel %s is not a forum channel", forumID)}
	}
	if ch.GuildID != p.guildID {
		return &domain.ConfigurationError{Setting: "discord.guild_id", Err: fmt.Errorf("channel %s belongs to guild %s", forumID, ch.GuildID)}
	}
	return nil
}

func (p *Platform) ActiveThreads(ctx context.Context, forumID string) ([]entity.Thread, error) {
	list, err := p.session.GuildThreadsActive(p.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list active threads: %w", err)
	}

	var threads []entity.Thread
	for _, ch := range list.Threads {
		if ch.ParentID != forumID {
			continue
		}
		threads = append(threads, toThread(ch))
	}
	return threads, nil
}

func (p *Platform) ArchivedThreads(ctx context.Context, forumID string) iter.Seq2[entity.Thread, error] {
	return func(yield func(entity.Thread, error) bool) {
		var before *time.Time
		for {
			list, err := p.session.ThreadsArchived(forumID, before, archivedPageSize, discordgo.WithContext(ctx))
			if err != nil {
				yield(entity.Thread{}, fmt.Errorf("failed to list archived threads: %w", err))
				return
			}

			for _, ch := range list.Threads {
				if !yield(toThread(ch), nil) {
					return
				}
			}

			if !list.HasMore || len(list.Threads) == 0 {
				return
			}
			last := list.Threads[len(list.Threads)-1]
			if last.ThreadMetadata == nil {
				return
			}
			archivedAt := last.ThreadMetadata.ArchiveTimestamp
			before = &archivedAt
		}
	}
}

func (p *Platform) RecentMessages(ctx context.Context, thread entity.Thread, maxCount int) ([]entity.Message, error) {
	var (
		messages []entity.Message
		beforeID string
	)

	for len(messages) < maxCount {
		limit := min(messagesPageSize, maxCount-len(messages))
		page, err := p.session.ChannelMessages(thread.ID, limit, beforeID, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to read messages of thread %s: %w", thread.ID, err)
		}

		for _, msg := range page {
			if msg.Author == nil {
				continue
			}
			messages = append(messages, entity.Message{ID: msg.ID, AuthorID: msg.Author.ID})
		}

		if len(page) < limit {
			break
		}
		beforeID = page[len(page)-1].ID
	}

	return messages, nil
}

func (p *Platform) GuildMembers(ctx context.Context, guildID string) ([]entity.Member, error) {
	roles, err := p.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list guild roles: %w", err)
	}
	roleNames := make(map[string]string, len(roles))
	for _, role := range roles {
		roleNames[role.ID] = role.Name
	}

	var (
		members []entity.Member
		after   string
	)
	for {
		page, err := p.session.GuildMembers(guildID, after, membersPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list guild members: %w", err)
		}

		for _, m := range page {
			if m.User == nil {
				continue
			}
			members = append(members, toMember(m, roleNames))
		}

		if len(page) < membersPageSize {
			break
		}
		last := page[len(page)-1]
		if last.User == nil {
			break
		}
		after = last.User.ID
	}

	return members, nil
}

func (p *Platform) CreateForumThread(ctx context.Context, forumID, title, body string) (*entity.ThreadHandle, error) {
	ch, err := p.session.ForumThreadStart(forumID, title, threadArchiveMinutes, body, discordgo.WithContext(ctx))
	if err != nil {
		return nil, &domain.PublishError{Err: err}
	}
	if ch == nil {
		return nil, &domain.PublishError{Err: errors.New("discord returned no thread")}
	}
	return &entity.ThreadHandle{ID: ch.ID, Title: ch.Name}, nil
}

func (p *Platform) Mention(member entity.Member) string {
	return "<@" + member.ID + ">"
}

func toThread(ch *discordgo.Channel) entity.Thread {
	archived := ch.ThreadMetadata != nil && ch.ThreadMetadata.Archived
	return entity.Thread{ID: ch.ID, Title: ch.Name, Archived: archived}
}

func toMember(m *discordgo.Member, roleNames map[string]string) entity.Member {
	name := m.Nick
	if name == "" {
		name = m.User.GlobalName
	}
	if name == "" {
		name = m.User.Username
	}

	roles := make([]string, 0, len(m.Roles))
	for _, id := range m.Roles {
		if roleName, ok := roleNames[id]; ok {
			roles = append(roles, roleName)
		}
	}

	return entity.Member{
		ID:          m.User.ID,
		DisplayName: name,
		IsBot:       m.User.Bot,
		Roles:       roles,
	}
}
