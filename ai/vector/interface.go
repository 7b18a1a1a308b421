// Package vector provides the vector retrieval interface consumed by
// the CV tools. The concrete implementation lives next to the
// relational driver (pgvector over the same database).
package vector

import (
	"context"

	"github.com/pkg/errors"
)

// Sections are the accepted values for SearchOptions.Section besides
// "all" and the empty string.
var Sections = []string{"work_experience", "education", "publication", "projects"}

// Hit is one ranked similarity search result.
type Hit struct {
	ChunkID string         `json:"chunk_id"`
	CVID    string         `json:"cv_id"`
	Section string         `json:"section"`
	Score   float32        `json:"similarity_score"`
	Payload map[string]any `json:"payload,omitempty"`
}

// SearchOptions parameterizes a top-k similarity search.
type SearchOptions struct {
	Vector []float32

	// Section restricts hits to one payload section. Empty or "all"
	// means no filter.
	Section string

	Limit int
}

// Validate checks options and applies the default limit.
func (o *SearchOptions) Validate() error {
	if len(o.Vector) == 0 {
		return errors.New("vector cannot be empty")
	}
	if o.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if o.Limit == 0 {
		o.Limit = 5
	}
	if o.Limit > 100 {
		return errors.New("limit too large")
	}
	if o.Section != "" && o.Section != "all" && !IsValidSection(o.Section) {
		return errors.Errorf("unknown section: %s", o.Section)
	}
	return nil
}

// Index is a similarity-search client over embedded CV chunks.
type Index interface {
	Search(ctx context.Context, opts *SearchOptions) ([]Hit, error)
}

// IsValidSection reports whether section is one of the enumerated
// chunk sections.
func IsValidSection(section string) bool {
	for _, s := range Sections {
		if s == section {
			return true
		}
	}
	return false
}
