package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Owennied/HimmyGames/internal/storage"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // optional; when set every API request must carry it

	StorageBackend string
	DataDir        string
	SQLitePath     string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int

	TickInterval     time.Duration
	AutosaveInterval time.Duration
	ShutdownTimeout  time.Duration
	CatalogPath      string
	RandomSeed       int64
	HasRandomSeed    bool

	DiscordToken       string
	DiscordAppID       string
	DiscordGuildID     string
	DiscordChannelID   string
	DiscordHTTPPort    string
	DiscordForceUpdate bool
	APIURL             string
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		APIKey:      getEnv(EnvAPIKey, ""),

		StorageBackend: strings.ToLower(getEnv(EnvStorageBackend, DefaultStorageBackend)),
		DataDir:        getEnv(EnvDataDir, DefaultDataDir),
		SQLitePath:     getEnv(EnvSQLitePath, DefaultSQLitePath),
		DBUser:         getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:     getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:         getEnv(EnvDBHost, DefaultDBHost),
		DBPort:         getEnv(EnvDBPort, DefaultDBPort),
		DBName:         getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:     getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),

		TickInterval:     getEnvAsDuration(EnvTickInterval, DefaultTickInterval),
		AutosaveInterval: getEnvAsDuration(EnvAutosaveInterval, DefaultAutosaveInterval),
		ShutdownTimeout:  getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		CatalogPath:      getEnv(EnvCatalogPath, ""),

		DiscordToken:       getEnv(EnvDiscordToken, ""),
		DiscordAppID:       getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:     getEnv(EnvDiscordGuildID, ""),
		DiscordChannelID:   getEnv(EnvDiscordChannelID, ""),
		DiscordHTTPPort:    getEnv(EnvDiscordHTTPPort, DefaultDiscordHTTPPort),
		DiscordForceUpdate: getEnv(EnvDiscordForceSync, "") == "true",
		APIURL:             getEnv(EnvAPIURL, DefaultAPIURL),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if raw := getEnv(EnvRandomSeed, ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvRandomSeed, err)
		}
		cfg.RandomSeed = seed
		cfg.HasRandomSeed = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	if c.Port < MinPort || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("%s must be between %d and %d, got %d", EnvPort, MinPort, MaxPort, c.Port))
	}
	if !slices.Contains(storage.Backends, c.StorageBackend) {
		problems = append(problems, fmt.Sprintf("%s must be one of %s, got %q",
			EnvStorageBackend, strings.Join(storage.Backends, ", "), c.StorageBackend))
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		problems = append(problems, fmt.Sprintf("%s must be %s or %s, got %q", EnvLogFormat, LogFormatText, LogFormatJSON, c.LogFormat))
	}
	if c.TickInterval <= 0 {
		problems = append(problems, fmt.Sprintf("%s must be positive", EnvTickInterval))
	}
	if c.AutosaveInterval <= 0 {
		problems = append(problems, fmt.Sprintf("%s must be positive", EnvAutosaveInterval))
	}
	if c.StorageBackend == storage.BackendPostgres && c.DBMaxConns < 1 {
		problems = append(problems, fmt.Sprintf("%s must be at least 1", EnvDBMaxConns))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a duration such as "500ms" or "2s", falling back to
// the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
