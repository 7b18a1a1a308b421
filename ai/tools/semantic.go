package tools

import (
	"context"
	"log/slog"

	"github.com/cvoice/cvoice/ai/vector"
)

// sectionFields is the per-section projection: payload fields carried
// into a semantic search result only for hits of that section.
var sectionFields = map[string][]string{
	"work_experience": {"company", "role", "domain", "responsibility"},
	"education":       {"institution", "degree", "thesis", "graduation_date"},
	"publication":     {"title"},
	"projects":        {"project_name", "responsibility", "technologies"},
}

// commonFields are projected for every section when present.
var commonFields = []string{"technologies", "skills"}

// SemanticSearch embeds the query text and runs a top-k similarity
// search against the vector index, optionally restricted to one
// section. Hits are projected to their stable core fields plus the
// section-dependent payload fields.
func (t *CVTools) SemanticSearch(ctx context.Context, query, section string, topK int) Envelope {
	if query == "" {
		return errorResult(ToolSemanticSearch, "query text is required")
	}

	embedding, err := t.embedder.Embed(ctx, query)
	if err != nil {
		slog.Error("semantic_search embedding failed", "query", truncate(query, 80), "error", err)
		return errorResult(ToolSemanticSearch, err.Error())
	}

	hits, err := t.index.Search(ctx, &vector.SearchOptions{
		Vector:  embedding,
		Section: section,
		Limit:   topK,
	})
	if err != nil {
		slog.Error("semantic_search failed", "query", truncate(query, 80), "error", err)
		return errorResult(ToolSemanticSearch, err.Error())
	}

	results := make([]map[string]any, 0, len(hits))
	for _, hit := range hits {
		results = append(results, projectHit(hit))
	}

	sectionFilter := section
	if sectionFilter == "" {
		sectionFilter = "all"
	}

	env := successList(ToolSemanticSearch, results, len(results))
	env.Query = query
	env.SectionFilter = sectionFilter
	return env
}

// projectHit flattens one hit: the four core fields always, then the
// section-specific set, then the cross-cutting fields. A payload
// field is emitted only when present and non-empty.
func projectHit(hit vector.Hit) map[string]any {
	result := map[string]any{
		"chunk_id":         hit.ChunkID,
		"cv_id":            hit.CVID,
		"section":          hit.Section,
		"similarity_score": hit.Score,
	}

	for _, field := range sectionFields[hit.Section] {
		copyIfPresent(result, hit.Payload, field)
	}
	for _, field := range commonFields {
		copyIfPresent(result, hit.Payload, field)
	}

	return result
}

func copyIfPresent(dst map[string]any, payload map[string]any, field string) {
	value, ok := payload[field]
	if !ok || isEmpty(value) {
		return
	}
	dst[field] = value
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
