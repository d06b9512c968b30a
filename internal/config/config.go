package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir string
	DBPath  string

	ClientMatchThresholdAuto    int
	ClientMatchThresholdConfirm int
	ClientMatchMaxCandidates    int

	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	OpenAITimeoutSec int
}

// AssistEnabled reports whether the OpenAI-backed extraction path is
// configured. Without an API key the parser runs on rules alone.
func (c Config) AssistEnabled() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

func FromEnv() Config {
	// Best effort; plain environment variables win when no .env exists.
	_ = godotenv.Load()

	dataDir := stringOrDefault("SEGURYMAT_DATA_DIR", "data")

	return Config{
		DataDir: dataDir,
		DBPath:  stringOrDefault("SEGURYMAT_DB_PATH", filepath.Join(dataDir, "app.db")),

		ClientMatchThresholdAuto:    intOrDefault("SEGURYMAT_CLIENT_MATCH_THRESHOLD_AUTO", 85),
		ClientMatchThresholdConfirm: intOrDefault("SEGURYMAT_CLIENT_MATCH_THRESHOLD_CONFIRM", 70),
		ClientMatchMaxCandidates:    intOrDefault("SEGURYMAT_CLIENT_MATCH_MAX_CANDIDATES", 3),

		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("SEGURYMAT_OPENAI_API_KEY")),
		OpenAIBaseURL:    stringOrDefault("SEGURYMAT_OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:      stringOrDefault("SEGURYMAT_OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeoutSec: intOrDefault("SEGURYMAT_OPENAI_TIMEOUT_SECONDS", 30),
	}
}

func stringOrDefault(name, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func intOrDefault(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
