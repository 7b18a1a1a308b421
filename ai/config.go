package ai

import (
	"errors"

	"github.com/cvoice/cvoice/internal/profile"
)

// EmbeddingConfig represents vector embedding configuration.
type EmbeddingConfig struct {
	Model      string
	APIKey     string
	BaseURL    string
	Dimensions int
}

// NewEmbeddingConfigFromProfile creates embedding config from profile.
func NewEmbeddingConfigFromProfile(p *profile.Profile) *EmbeddingConfig {
	return &EmbeddingConfig{
		Model:      p.EmbeddingModel,
		APIKey:     p.OpenAIAPIKey,
		BaseURL:    p.OpenAIBaseURL,
		Dimensions: p.EmbeddingDims,
	}
}

// Validate checks the embedding configuration.
func (c *EmbeddingConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("embedding API key is required")
	}
	if c.Model == "" {
		return errors.New("embedding model is required")
	}
	return nil
}
