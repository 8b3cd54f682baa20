package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDiscordEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_GUILD_ID", "guild-1")
	t.Setenv("DISCORD_FORUM_CHANNEL_ID", "forum-1")
}

func TestLoad_Defaults(t *testing.T) {
	setDiscordEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, PlatformDiscord, cfg.Platform)
	assert.Equal(t, "guild-1", cfg.GuildID())
	assert.Equal(t, "forum-1", cfg.ForumID())
	assert.Equal(t, []string{"PM", "Designer"}, cfg.Scrum.ExcludedRoles)
	assert.Equal(t, 100, cfg.Scrum.HistoryWindow)
	assert.Equal(t, domain.DefaultMarker, cfg.Scrum.Marker)
	assert.Equal(t, domain.DefaultWeekdayLabels, cfg.Scrum.Weekdays)
	assert.Len(t, cfg.Scrum.Sections, 5)
	assert.Equal(t, 30*time.Second, cfg.Scrum.RequestTimeout)
	assert.Equal(t, "0 9 * * *", cfg.Scrum.Schedule)
	require.NotNil(t, cfg.Scrum.Location)
	assert.Equal(t, "Asia/Seoul", cfg.Scrum.Location.String())
	assert.Equal(t, "3000", cfg.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setDiscordEnv(t)
	t.Setenv("SCRUM_EXCLUDED_ROLES", "QA, Lead")
	t.Setenv("SCRUM_HISTORY_WINDOW", "50")
	t.Setenv("SCRUM_TIMEZONE", "UTC")
	t.Setenv("SCRUM_REQUEST_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"QA", "Lead"}, cfg.Scrum.ExcludedRoles)
	assert.Equal(t, 50, cfg.Scrum.HistoryWindow)
	assert.Equal(t, time.UTC, cfg.Scrum.Location)
	assert.Equal(t, 5*time.Second, cfg.Scrum.RequestTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	setDiscordEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
scrum:
  marker: "[scrum]"
  title_suffix: "Daily"
  weekdays: [Mon, Tue, Wed, Thu, Fri, Sat, Sun]
  sections:
    - header: "Yesterday"
      examples: ["shipped login"]
    - header: "Today"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "[scrum]", cfg.Scrum.Marker)
	assert.Equal(t, "Daily", cfg.Scrum.TitleSuffix)
	assert.Equal(t, "Mon", cfg.Scrum.Weekdays[0])
	require.Len(t, cfg.Scrum.Sections, 2)
	assert.Equal(t, "Yesterday", cfg.Scrum.Sections[0].Header)
	assert.Equal(t, []string{"shipped login"}, cfg.Scrum.Sections[0].Examples)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	setDiscordEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Platform: PlatformDiscord,
			Discord:  DiscordConfig{Token: "t", GuildID: "g", ForumChannelID: "f"},
			Scrum: ScrumConfig{
				Timezone:       "Asia/Seoul",
				Weekdays:       domain.DefaultWeekdayLabels,
				HistoryWindow:  100,
				Marker:         domain.DefaultMarker,
				RequestTimeout: time.Second,
			},
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantSetting string
	}{
		{
			name:   "Should accept a complete discord config",
			mutate: func(c *Config) {},
		},
		{
			name:        "Should require the guild id",
			mutate:      func(c *Config) { c.Discord.GuildID = "" },
			wantSetting: "discord.guild_id",
		},
		{
			name:        "Should require the forum channel id",
			mutate:      func(c *Config) { c.Discord.ForumChannelID = "" },
			wantSetting: "discord.forum_channel_id",
		},
		{
			name:        "Should require the discord token",
			mutate:      func(c *Config) { c.Discord.Token = "" },
			wantSetting: "discord.token",
		},
		{
			name: "Should accept a complete slack config",
			mutate: func(c *Config) {
				c.Platform = PlatformSlack
				c.Slack = SlackConfig{BotToken: "xoxb", SigningSecret: "secret", ChannelID: "C1"}
			},
		},
		{
			name: "Should require the slack channel",
			mutate: func(c *Config) {
				c.Platform = PlatformSlack
				c.Slack = SlackConfig{BotToken: "xoxb", SigningSecret: "secret"}
			},
			wantSetting: "slack.channel_id",
		},
		{
			name: "Should require the slack signing secret",
			mutate: func(c *Config) {
				c.Platform = PlatformSlack
				c.Slack = SlackConfig{BotToken: "xoxb", ChannelID: "C1"}
			},
			wantSetting: "slack.signing_secret",
		},
		{
			name:        "Should reject unknown platforms",
			mutate:      func(c *Config) { c.Platform = "irc" },
			wantSetting: "platform",
		},
		{
			name:        "Should reject an unknown time zone",
			mutate:      func(c *Config) { c.Scrum.Timezone = "Mars/Olympus" },
			wantSetting: "scrum.timezone",
		},
		{
			name:        "Should require seven weekday labels",
			mutate:      func(c *Config) { c.Scrum.Weekdays = []string{"Mon"} },
			wantSetting: "scrum.weekdays",
		},
		{
			name:        "Should reject a non positive history window",
			mutate:      func(c *Config) { c.Scrum.HistoryWindow = 0 },
			wantSetting: "scrum.history_window",
		},
		{
			name:        "Should reject a non positive request timeout",
			mutate:      func(c *Config) { c.Scrum.RequestTimeout = 0 },
			wantSetting: "scrum.request_timeout",
		},
		{
			name:        "Should require a marker",
			mutate:      func(c *Config) { c.Scrum.Marker = " " },
			wantSetting: "scrum.marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantSetting == "" {
				require.NoError(t, err)
				assert.NotNil(t, cfg.Scrum.Location)
				return
			}

			var cfgErr *domain.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
			assert.Equal(t, tt.wantSetting, cfgErr.Setting)
		})
	}
}

func TestLoad_SlackWithoutSigningSecret(t *testing.T) {
	t.Setenv("PLATFORM", "slack")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb")
	t.Setenv("SLACK_CHANNEL_ID", "C1")

	_, err := Load("")

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "slack.signing_secret", cfgErr.Setting)
}

func TestConfig_SlackScopes(t *testing.T) {
	cfg := &Config{Platform: PlatformSlack, Slack: SlackConfig{ChannelID: "C1"}}

	assert.Equal(t, "C1", cfg.GuildID())
	assert.Equal(t, "C1", cfg.ForumID())
}
