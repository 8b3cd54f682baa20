package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/command"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/contract"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	scrumService  contract.ScrumService
	signingSecret string
	log           *zap.Logger
}

func New(slackClient contract.SlackClient, scrumService contract.ScrumService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		scrumService:  scrumService,
		signingSecret: signingSecret,
		log:           log.Named("slack_handler"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// an empty secret would accept requests signed by anyone
	if h.signingSecret == "" {
		h.log.Error("rejected slash command: no signing secret configured")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected slash command with invalid signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := command.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(fmt.Sprintf("%v. Use `%s help` to see the available commands.", err, s.Command)))
		return
	}

	h.respond(w, h.handleCommand(r, cmd, &s))
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *command.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == command.CmdHelp {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         command.GetHelpText(slashCmd.Command),
		}
	}

	isAdmin, err := h.isAdmin(r, slashCmd.UserID)
	if err != nil {
		h.log.Error("failed to look up command user", zap.String("user_id", slashCmd.UserID), zap.Error(err))
		return h.createErrorResponse("Could not verify your permissions, please try again.")
	}
	if !isAdmin {
		return h.createErrorResponse(notAdminText)
	}

	switch cmd.Type {
	case command.CmdRun:
		return h.handleRun(r, slashCmd)
	case command.CmdPreview:
		return h.handlePreview(r)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleRun(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	h.log.Info("manual scrum run requested", zap.String("user_id", slashCmd.UserID))

	result, err := h.scrumService.RunOnce(r.Context(), domain.TriggerManual)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to create the scrum thread: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         runReply(result),
	}
}

func (h *SlackHandler) handlePreview(r *http.Request) *slack.Msg {
	result, err := h.scrumService.Preview(r.Context())
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to build the preview: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         previewReply(result),
	}
}

func (h *SlackHandler) isAdmin(r *http.Request, userID string) (bool, error) {
	user, err := h.slackClient.GetUserInfoContext(r.Context(), userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin || user.IsOwner || user.IsPrimaryOwner, nil
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         errorReply(message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, response *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write slash command response", zap.Error(err))
	}
}
