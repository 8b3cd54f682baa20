package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/daily-scrum-bot/internal/domain"
	"github.com/spf13/viper"
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"
)

type Config struct {
	Platform string        `mapstructure:"platform"`
	Discord  DiscordConfig `mapstructure:"discord"`
	Slack    SlackConfig   `mapstructure:"slack"`
	Scrum    ScrumConfig   `mapstructure:"scrum"`
	Server   ServerConfig  `mapstructure:"server"`
	Log      LogConfig     `mapstructure:"log"`
}

type DiscordConfig struct {
	Token          string `mapstructure:"token"`
	GuildID        string `mapstructure:"guild_id"`
	ForumChannelID string `mapstructure:"forum_channel_id"`
	CommandPrefix  string `mapstructure:"command_prefix"`
}

type SlackConfig struct {
	BotToken      string `mapstructure:"bot_token"`
	SigningSecret string `mapstructure:"signing_secret"`
	ChannelID     string `mapstructure:"channel_id"`
}

type ScrumConfig struct {
	Timezone       string           `mapstructure:"timezone"`
	Schedule       string           `mapstructure:"schedule"`
	RunOnStart     bool             `mapstructure:"run_on_start"`
	ExcludedRoles  []string         `mapstructure:"excluded_roles"`
	HistoryWindow  int              `mapstructure:"history_window"`
	Marker         string           `mapstructure:"marker"`
	TitleSuffix    string           `mapstructure:"title_suffix"`
	Weekdays       []string         `mapstructure:"weekdays"`
	Callout        string           `mapstructure:"callout"`
	Sections       []domain.Section `mapstructure:"sections"`
	RequestTimeout time.Duration    `mapstructure:"request_timeout"`

	// Location is resolved from Timezone by Validate
	Location *time.Location `mapstructure:"-"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GuildID returns the member directory to reconcile against. Slack has a
// single workspace per token, so the channel id doubles as the scope.
func (c *Config) GuildID() string {
	if c.Platform == PlatformSlack {
		return c.Slack.ChannelID
	}
	return c.Discord.GuildID
}

// ForumID returns the channel that receives the daily threads
func (c *Config) ForumID() string {
	if c.Platform == PlatformSlack {
		return c.Slack.ChannelID
	}
	return c.Discord.ForumChannelID
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("platform", PlatformDiscord)
	v.SetDefault("discord.command_prefix", "!")
	v.SetDefault("scrum.timezone", domain.DefaultTimezone)
	v.SetDefault("scrum.schedule", domain.DefaultSchedule)
	v.SetDefault("scrum.run_on_start", false)
	v.SetDefault("scrum.excluded_roles", domain.DefaultExcludedRoles)
	v.SetDefault("scrum.history_window", domain.DefaultHistoryWindow)
	v.SetDefault("scrum.marker", domain.DefaultMarker)
	v.SetDefault("scrum.title_suffix", domain.DefaultTitleSuffix)
	v.SetDefault("scrum.weekdays", domain.DefaultWeekdayLabels)
	v.SetDefault("scrum.callout", domain.DefaultCallout)
	v.SetDefault("scrum.request_timeout", domain.DefaultRequestTimeout)
	v.SetDefault("server.port", "3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads configuration from the environment and, when path is not empty,
// from a config file. Environment variables use upper-case keys with
// underscores, e.g. DISCORD_GUILD_ID or SCRUM_EXCLUDED_ROLES.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range []string{
		"discord.token", "discord.guild_id", "discord.forum_channel_id",
		"slack.bot_token", "slack.signing_secret", "slack.channel_id",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// comma separated env values arrive as a single element
	cfg.Scrum.ExcludedRoles = splitList(cfg.Scrum.ExcludedRoles)
	cfg.Scrum.Weekdays = splitList(cfg.Scrum.Weekdays)
	if len(cfg.Scrum.Sections) == 0 {
		cfg.Scrum.Sections = domain.DefaultSections
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required identifiers and resolves the time zone
func (c *Config) Validate() error {
	switch c.Platform {
	case PlatformDiscord:
		if c.Discord.Token == "" {
			return configErr("discord.token", errors.New("is required"))
		}
		if c.Discord.GuildID == "" {
			return configErr("discord.guild_id", errors.New("is required"))
		}
		if c.Discord.ForumChannelID == "" {
			return configErr("discord.forum_channel_id", errors.New("is required"))
		}
	case PlatformSlack:
		if c.Slack.BotToken == "" {
			return configErr("slack.bot_token", errors.New("is required"))
		}
		if c.Slack.ChannelID == "" {
			return configErr("slack.channel_id", errors.New("is required"))
		}
		if c.Slack.SigningSecret == "" {
			return configErr("slack.signing_secret", errors.New("is required"))
		}
	default:
		return configErr("platform", fmt.Errorf("unsupported platform %q, use %q or %q", c.Platform, PlatformDiscord, PlatformSlack))
	}

	loc, err := time.LoadLocation(c.Scrum.Timezone)
	if err != nil {
		return configErr("scrum.timezone", err)
	}
	c.Scrum.Location = loc

	if len(c.Scrum.Weekdays) != 7 {
		return configErr("scrum.weekdays", fmt.Errorf("expected 7 Monday-first entries, got %d", len(c.Scrum.Weekdays)))
	}
	if c.Scrum.HistoryWindow <= 0 {
		return configErr("scrum.history_window", fmt.Errorf("must be positive, got %d", c.Scrum.HistoryWindow))
	}
	if c.Scrum.RequestTimeout <= 0 {
		return configErr("scrum.request_timeout", fmt.Errorf("must be positive, got %s", c.Scrum.RequestTimeout))
	}
	if strings.TrimSpace(c.Scrum.Marker) == "" {
		return configErr("scrum.marker", errors.New("is required"))
	}

	return nil
}

func configErr(setting string, err error) error {
	return &domain.ConfigurationError{Setting: setting, Err: err}
}

func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
