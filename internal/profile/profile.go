package profile

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Profile is configuration to start the main server.
type Profile struct {
	// LiveKit configuration (consumed by the connection-token endpoint)
	LiveKitURL       string
	LiveKitAPIKey    string
	LiveKitAPISecret string

	// OpenAI / embedding configuration
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	EmbeddingModel string
	EmbeddingDims  int

	// PostgreSQL configuration
	DSN string

	// Vector index configuration
	ChunkTable string

	// Server configuration
	Mode    string
	Addr    string
	Port    int
	Version string
}

// getEnvOrDefault returns environment variable value or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default value.
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
func (p *Profile) FromEnv() {
	if p.DSN == "" {
		p.DSN = getEnvOrDefault("POSTGRESQL_URL", "")
	}

	p.LiveKitURL = getEnvOrDefault("LIVEKIT_URL", p.LiveKitURL)
	p.LiveKitAPIKey = getEnvOrDefault("LIVEKIT_API_KEY", p.LiveKitAPIKey)
	p.LiveKitAPISecret = getEnvOrDefault("LIVEKIT_API_SECRET", p.LiveKitAPISecret)

	p.OpenAIAPIKey = getEnvOrDefault("OPENAI_API_KEY", p.OpenAIAPIKey)
	p.OpenAIBaseURL = getEnvOrDefault("OPENAI_BASE_URL", p.OpenAIBaseURL)
	p.EmbeddingModel = getEnvOrDefault("EMBEDDING_MODEL", "text-embedding-3-small")
	p.EmbeddingDims = getEnvOrDefaultInt("EMBEDDING_DIMENSIONS", 1536)

	p.ChunkTable = getEnvOrDefault("CHUNK_TABLE", "cv_chunks")
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// Validate checks that required configuration is present.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	required := map[string]string{
		"POSTGRESQL_URL":     p.DSN,
		"OPENAI_API_KEY":     p.OpenAIAPIKey,
		"LIVEKIT_URL":        p.LiveKitURL,
		"LIVEKIT_API_KEY":    p.LiveKitAPIKey,
		"LIVEKIT_API_SECRET": p.LiveKitAPISecret,
	}
	for name, value := range required {
		if value == "" {
			return errors.Errorf("missing required configuration: %s", name)
		}
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port: %d", p.Port)
	}
	if p.EmbeddingDims <= 0 {
		return errors.Errorf("invalid embedding dimensions: %d", p.EmbeddingDims)
	}

	return nil
}
