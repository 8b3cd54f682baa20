package contract

//go:generate mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the subset of *slack.Client used by the bot.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, user string) (*slack.User, error)

	// GetUsersContext lists every user of the workspace
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)

	// GetUserGroupsContext lists user groups, used as role names
	GetUserGroupsContext(ctx context.Context, options ...slack.GetUserGroupsOption) ([]slack.UserGroup, error)

	// GetConversationInfoContext resolves a channel
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)

	// GetConversationHistoryContext pages through top-level channel messages
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)

	// GetConversationRepliesContext pages through a thread
	GetConversationRepliesContext(ctx context.Context, params *slack.GetConversationRepliesParameters) ([]slack.Message, bool, string, error)

	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
