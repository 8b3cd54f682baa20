package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	_ "time/tzdata"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/daily-scrum-bot/internal/config"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/contract"
	"github.com/diegoclair/daily-scrum-bot/internal/domain/service"
	"github.com/diegoclair/daily-scrum-bot/internal/logger"
	"github.com/diegoclair/daily-scrum-bot/internal/metrics"
	"github.com/diegoclair/daily-scrum-bot/internal/platform/discord"
	slackplatform "github.com/diegoclair/daily-scrum-bot/internal/platform/slack"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// app holds the wiring shared by every subcommand
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	instance *service.Instance

	// exactly one of these is set, depending on cfg.Platform
	discordSession *discordgo.Session
	slackClient    *slack.Client
}

func bootstrap(configPath string) (*app, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to read .env file: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	zl = zl.With(zap.String("platform", cfg.Platform))

	a := &app{cfg: cfg, log: zl}

	var platform contract.Platform
	switch cfg.Platform {
	case config.PlatformSlack:
		a.slackClient = slack.New(cfg.Slack.BotToken)
		platform = slackplatform.New(a.slackClient)
	default:
		a.discordSession, err = discord.NewSession(cfg.Discord.Token)
		if err != nil {
			return nil, err
		}
		platform = discord.New(a.discordSession, cfg.Discord.GuildID)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	a.instance, err = service.NewInstance(platform, service.SettingsFromConfig(cfg), cfg.Scrum.Schedule, zl, m)
	if err != nil {
		return nil, fmt.Errorf("failed to build scrum service: %w", err)
	}

	return a, nil
}

func (a *app) close() {
	if a.discordSession != nil {
		if err := a.discordSession.Close(); err != nil {
			a.log.Warn("failed to close discord session", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
