package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    SearchOptions
		wantErr string
	}{
		{"defaults limit", SearchOptions{Vector: []float32{0.1}}, ""},
		{"section all", SearchOptions{Vector: []float32{0.1}, Section: "all"}, ""},
		{"known section", SearchOptions{Vector: []float32{0.1}, Section: "education"}, ""},
		{"empty vector", SearchOptions{}, "vector cannot be empty"},
		{"negative limit", SearchOptions{Vector: []float32{0.1}, Limit: -1}, "limit cannot be negative"},
		{"oversized limit", SearchOptions{Vector: []float32{0.1}, Limit: 101}, "limit too large"},
		{"unknown section", SearchOptions{Vector: []float32{0.1}, Section: "hobbies"}, "unknown section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Positive(t, tt.opts.Limit)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestIsValidSection(t *testing.T) {
	for _, s := range Sections {
		assert.True(t, IsValidSection(s))
	}
	assert.False(t, IsValidSection("all"), "all is a filter wildcard, not a section")
	assert.False(t, IsValidSection(""))
}
