package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/discord"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := config.ValidateEnv(config.RequiredDiscordEnvVars); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, requests fail if the farm API requires one")
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:                 cfg.DiscordToken,
		AppID:                 cfg.DiscordAppID,
		GuildID:               cfg.DiscordGuildID,
		APIURL:                cfg.APIURL,
		APIKey:                cfg.APIKey,
		NotificationChannelID: cfg.DiscordChannelID,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.DiscordHTTPPort, bot)
	httpServer.Start()

	registerCommands(bot, getCommandFactories())

	if cfg.DiscordForceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	err = bot.Run()
	httpServer.Stop()
	if err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// getCommandFactories returns every slash command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,

		// Farm
		discord.FarmCommand,
		discord.MarketCommand,
		discord.PlantCommand,
		discord.HarvestCommand,
		discord.SellCommand,
		discord.BuyPlotCommand,
		discord.RenameCommand,

		// Farmers
		discord.HireCommand,
		discord.FireCommand,
		discord.AssignCommand,
		discord.UnassignCommand,
		discord.ReplantCommand,
	}
}

// registerCommands adds each factory's command to the bot's registry
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
	slog.Info("Commands registered", "count", len(factories))
}
