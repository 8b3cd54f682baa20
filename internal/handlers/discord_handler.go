package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/command"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// DiscordSession is the subset of *discordgo.Session used to answer commands
type DiscordSession interface {
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordHandler answers "<prefix>scrum" chat commands posted in the
// configured guild. Runs started from chat are cancelled when ctx is.
type DiscordHandler struct {
	ctx          context.Context
	session      DiscordSession
	guildID      string
	scrumService contract.ScrumService
	invocation   string
	log          *zap.Logger
}

func NewDiscord(ctx context.Context, session DiscordSession, scrumService contract.ScrumService, guildID, prefix string, log *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		ctx:          ctx,
		session:      session,
		guildID:      guildID,
		scrumService: scrumService,
		invocation:   prefix + "scrum",
		log:          log.Named("discord_handler"),
	}
}

// HandleMessageCreate is meant to be registered with (*discordgo.Session).AddHandler
func (h *DiscordHandler) HandleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	h.HandleMessage(m.Message)
}

func (h *DiscordHandler) HandleMessage(msg *discordgo.Message) {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return
	}
	// permissions in another guild say nothing about this one
	if msg.GuildID != h.guildID {
		return
	}

	fields := strings.Fields(msg.Content)
	if len(fields) == 0 || fields[0] != h.invocation {
		return
	}

	cmd, err := command.ParseCommand(strings.Join(fields[1:], " "))
	if err != nil {
		h.reply(msg, errorReply(fmt.Sprintf("%v. Use `%s help` to see the available commands.", err, h.invocation)))
		return
	}

	if cmd.Type == command.CmdHelp {
		h.reply(msg, command.GetHelpText(h.invocation))
		return
	}

	perms, err := h.session.UserChannelPermissions(msg.Author.ID, msg.ChannelID, discordgo.WithContext(h.ctx))
	if err != nil {
		h.log.Error("failed to resolve permissions", zap.String("user_id", msg.Author.ID), zap.Error(err))
		h.reply(msg, errorReply("Could not verify your permissions, please try again."))
		return
	}
	if perms&discordgo.PermissionAdministrator == 0 {
		h.reply(msg, errorReply(notAdminText))
		return
	}

	switch cmd.Type {
	case command.CmdRun:
		h.handleRun(msg)
	case command.CmdPreview:
		h.handlePreview(msg)
	}
}

func (h *DiscordHandler) handleRun(msg *discordgo.Message) {
	h.log.Info("manual scrum run requested", zap.String("user_id", msg.Author.ID))

	result, err := h.scrumService.RunOnce(h.ctx, domain.TriggerManual)
	if err != nil {
		h.reply(msg, errorReply(fmt.Sprintf("Failed to create the scrum thread: %v", err)))
		return
	}
	h.reply(msg, runReply(result))
}

func (h *DiscordHandler) handlePreview(msg *discordgo.Message) {
	result, err := h.scrumService.Preview(h.ctx)
	if err != nil {
		h.reply(msg, errorReply(fmt.Sprintf("Failed to build the preview: %v", err)))
		return
	}
	h.reply(msg, previewReply(result))
}

func (h *DiscordHandler) reply(msg *discordgo.Message, content string) {
	if _, err := h.session.ChannelMessageSend(msg.ChannelID, content, discordgo.WithContext(h.ctx)); err != nil {
		h.log.Error("failed to send command reply", zap.String("channel_id", msg.ChannelID), zap.Error(err))
	}
}
