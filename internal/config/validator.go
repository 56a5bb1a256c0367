package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Owennied/HimmyGames/internal/storage"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredDiscordEnvVars must be set for the Discord front-end
var RequiredDiscordEnvVars = []string{
	EnvDiscordToken,
	EnvDiscordAppID,
}

// ValidateEnv checks the optional schema version marker and that every
// variable in required is set
func ValidateEnv(required []string) error {
	if schemaVersion := os.Getenv(EnvSchemaVersion); schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated",
			EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Warnings lists non-fatal issues with a loaded configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - the farm API accepts unauthenticated requests")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.StorageBackend == storage.BackendPostgres && c.DBPassword == ExamplePassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.StorageBackend == storage.BackendMemory {
		warnings = append(warnings, "STORAGE_BACKEND is memory - the farm is lost on restart")
	}

	return warnings
}
