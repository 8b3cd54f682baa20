package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// NewSession creates a bot session. Member and message content intents are
// privileged and must be enabled for the bot in the developer portal.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMembers |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent

	return s, nil
}
