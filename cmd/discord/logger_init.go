package main

import (
	"github.com/Owennied/HimmyGames/internal/config"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// initLogger initializes the logger using centralized app configuration.
// The bot logs to stdout only.
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName+"-discord",
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	logger.InitLogger(loggerConfig)
}
