package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogDir           = "LOG_DIR"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvAPIKey           = "API_KEY"
	EnvStorageBackend   = "STORAGE_BACKEND"
	EnvDataDir          = "DATA_DIR"
	EnvSQLitePath       = "SQLITE_PATH"
	EnvDBUser           = "DB_USER"
	EnvDBPassword       = "DB_PASSWORD"
	EnvDBHost           = "DB_HOST"
	EnvDBPort           = "DB_PORT"
	EnvDBName           = "DB_NAME"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvTickInterval     = "TICK_INTERVAL"
	EnvAutosaveInterval = "AUTOSAVE_INTERVAL"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvRandomSeed       = "RANDOM_SEED"
	EnvDiscordToken     = "DISCORD_TOKEN"
	EnvDiscordAppID     = "DISCORD_APP_ID"
	EnvDiscordGuildID   = "DISCORD_GUILD_ID"
	EnvDiscordChannelID = "DISCORD_NOTIFICATION_CHANNEL_ID"
	EnvDiscordHTTPPort  = "DISCORD_WEBHOOK_PORT"
	EnvDiscordForceSync = "DISCORD_FORCE_COMMAND_UPDATE"
	EnvAPIURL           = "API_URL"
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "tiny-farm"
	DefaultVersion          = "dev"
	DefaultStorageBackend   = "file"
	DefaultDataDir          = "data"
	DefaultSQLitePath       = "data/tinyfarm.db"
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBName           = "tinyfarm"
	DefaultDBMaxConns       = 4
	DefaultTickInterval     = time.Second
	DefaultAutosaveInterval = time.Minute
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultAPIURL           = "http://localhost:8080"
	DefaultDiscordHTTPPort  = "8082"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Port range
const (
	MinPort = 1
	MaxPort = 65535
)

// Example values shipped in .env.example
const (
	ExamplePassword = "change_this_secure_password"
	ExampleAPIKey   = "generate_with_openssl_rand_hex_32"
)
