package tools

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvoice/cvoice/ai/vector"
)

func workHit(id string, score float32, payload map[string]any) vector.Hit {
	return vector.Hit{ChunkID: id, CVID: "cv-001", Section: "work_experience", Score: score, Payload: payload}
}

func TestSemanticSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("section filter and limit honored, sorted by score", func(t *testing.T) {
		index := &mockIndex{hits: []vector.Hit{
			workHit("c1", 0.92, map[string]any{"company": "Acme", "role": "Head of ML"}),
			workHit("c2", 0.87, map[string]any{"company": "Initech", "role": "Lead"}),
			workHit("c3", 0.61, map[string]any{"company": "Globex"}),
		}}
		tools := newTestTools(nil, nil, index)

		env := tools.SemanticSearch(ctx, "machine learning leadership", "work_experience", 2)

		require.Equal(t, "success", env.Status)
		assert.Equal(t, "machine learning leadership", env.Query)
		assert.Equal(t, "work_experience", env.SectionFilter)
		assert.Equal(t, "work_experience", index.lastOpts.Section)
		assert.Equal(t, 2, index.lastOpts.Limit)

		results, ok := env.Results.([]map[string]any)
		require.True(t, ok)
		require.Len(t, results, 2)
		prev := float32(2)
		for _, r := range results {
			assert.Equal(t, "work_experience", r["section"])
			assert.Contains(t, r, "company")
			assert.Contains(t, r, "role")
			score := r["similarity_score"].(float32)
			assert.LessOrEqual(t, score, prev, "hits must be ranked by descending similarity")
			prev = score
		}
	})

	t.Run("empty section defaults to all", func(t *testing.T) {
		index := &mockIndex{}
		tools := newTestTools(nil, nil, index)

		env := tools.SemanticSearch(ctx, "thesis topic", "", 0)

		require.Equal(t, "success", env.Status)
		assert.Equal(t, "all", env.SectionFilter)
		assert.Equal(t, 5, index.lastOpts.Limit, "default top_k")
	})

	t.Run("embedding failure is an error envelope", func(t *testing.T) {
		embedder := &mockEmbedder{err: errors.New("create embeddings failed: provider unavailable")}
		tools := newTestTools(nil, embedder, nil)

		env := tools.SemanticSearch(ctx, "anything", "all", 5)

		require.Equal(t, "error", env.Status)
		assert.Contains(t, env.Error, "create embeddings failed")
	})

	t.Run("index failure is an error envelope", func(t *testing.T) {
		index := &mockIndex{err: errors.New("failed to query vector index")}
		tools := newTestTools(nil, nil, index)

		env := tools.SemanticSearch(ctx, "anything", "all", 5)

		require.Equal(t, "error", env.Status)
		assert.Contains(t, env.Error, "vector index")
	})

	t.Run("unknown section is rejected", func(t *testing.T) {
		tools := newTestTools(nil, nil, nil)

		env := tools.SemanticSearch(ctx, "anything", "hobbies", 5)

		require.Equal(t, "error", env.Status)
		assert.Contains(t, env.Error, "unknown section")
	})

	t.Run("empty query is rejected without touching backends", func(t *testing.T) {
		embedder := &mockEmbedder{}
		tools := newTestTools(nil, embedder, nil)

		env := tools.SemanticSearch(ctx, "", "all", 5)

		require.Equal(t, "error", env.Status)
		assert.Zero(t, embedder.calls)
	})
}

func TestProjectHit(t *testing.T) {
	t.Run("core fields always present", func(t *testing.T) {
		result := projectHit(vector.Hit{ChunkID: "c1", CVID: "cv-001", Section: "publication", Score: 0.5})

		assert.Equal(t, "c1", result["chunk_id"])
		assert.Equal(t, "cv-001", result["cv_id"])
		assert.Equal(t, "publication", result["section"])
		assert.Equal(t, float32(0.5), result["similarity_score"])
		assert.Len(t, result, 4)
	})

	t.Run("education fields projected", func(t *testing.T) {
		result := projectHit(vector.Hit{ChunkID: "c2", CVID: "cv-001", Section: "education", Score: 0.8,
			Payload: map[string]any{
				"institution":     "TU Wien",
				"degree":          "PhD",
				"thesis":          "Neural ranking",
				"graduation_date": "2014-06-30",
				"company":         "Acme", // not an education field, must not leak
			}})

		assert.Equal(t, "TU Wien", result["institution"])
		assert.Equal(t, "PhD", result["degree"])
		assert.Equal(t, "Neural ranking", result["thesis"])
		assert.Equal(t, "2014-06-30", result["graduation_date"])
		assert.NotContains(t, result, "company")
	})

	t.Run("empty payload values are never emitted", func(t *testing.T) {
		result := projectHit(workHit("c3", 0.7, map[string]any{
			"company":      "",
			"role":         "Engineer",
			"technologies": []any{},
			"skills":       nil,
		}))

		assert.NotContains(t, result, "company")
		assert.NotContains(t, result, "technologies")
		assert.NotContains(t, result, "skills")
		assert.Equal(t, "Engineer", result["role"])
	})

	t.Run("cross-cutting fields projected for any section", func(t *testing.T) {
		result := projectHit(vector.Hit{ChunkID: "c4", CVID: "cv-001", Section: "publication", Score: 0.6,
			Payload: map[string]any{
				"title":        "A Paper",
				"technologies": []any{"Python"},
				"skills":       []any{"NLP"},
			}})

		assert.Equal(t, "A Paper", result["title"])
		assert.Equal(t, []any{"Python"}, result["technologies"])
		assert.Equal(t, []any{"NLP"}, result["skills"])
	})

	t.Run("projects section fields", func(t *testing.T) {
		result := projectHit(vector.Hit{ChunkID: "c5", CVID: "cv-001", Section: "projects", Score: 0.9,
			Payload: map[string]any{
				"project_name":   "Voice CV",
				"responsibility": "architecture",
				"technologies":   []any{"Go"},
			}})

		assert.Equal(t, "Voice CV", result["project_name"])
		assert.Equal(t, "architecture", result["responsibility"])
		assert.Equal(t, []any{"Go"}, result["technologies"])
	})
}
