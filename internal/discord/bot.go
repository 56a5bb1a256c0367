package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

// ErrNoNotificationChannel is returned when a notification is sent without a channel configured
var ErrNoNotificationChannel = errors.New("notification channel not configured")

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	notificationChanID string
	sse                *SSEClient
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string // empty registers commands globally
	APIURL  string
	APIKey  string

	// NotificationChannelID receives farm event notices. Empty disables them.
	NotificationChannelID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	b := &Bot{
		Session:            s,
		Client:             NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:              cfg.AppID,
		GuildID:            cfg.GuildID,
		Registry:           NewCommandRegistry(),
		notificationChanID: cfg.NotificationChannelID,
	}

	if cfg.NotificationChannelID != "" {
		b.sse = NewSSEClient(cfg.APIURL, cfg.APIKey, NotifiedEventTypes)
		NewSSENotifier(b).RegisterHandlers(b.sse)
	}

	return b, nil
}

// Start starts the bot
func (b *Bot) Start(ctx context.Context) error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.sse != nil {
		b.sse.Start(ctx)
		slog.Info("Farm event notifications enabled", "channel_id", b.notificationChanID)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	if b.sse != nil {
		b.sse.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := b.Start(ctx); err != nil {
		return err
	}
	defer b.Stop()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

// SendNotification posts an embed to the notification channel
func (b *Bot) SendNotification(embed *discordgo.MessageEmbed) error {
	if b.notificationChanID == "" {
		return ErrNoNotificationChannel
	}
	if _, err := b.Session.ChannelMessageSendEmbed(b.notificationChanID, embed); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
