package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"

	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/ai/vector"
)

// Table names cannot be bound as statement parameters, so the
// configured chunk table is validated against this before any SQL is
// assembled from it.
var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ChunkIndex implements vector.Index with pgvector cosine similarity
// over an embedded chunk table.
type ChunkIndex struct {
	db    *sql.DB
	table string
}

// NewChunkIndex verifies once, at construction, that the database can
// serve similarity queries (vector extension installed, chunk table
// present) and returns the index. Capability problems fail here, not
// per call.
func NewChunkIndex(d *DB, table string) (*ChunkIndex, error) {
	if !identPattern.MatchString(table) {
		return nil, errors.Errorf("invalid chunk table name: %q", table)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var installed bool
	err := d.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')`).Scan(&installed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to vector index")
	}
	if !installed {
		return nil, errors.New("vector extension not installed")
	}

	var exists bool
	err = d.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = `+placeholder(1)+`)`,
		table).Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to vector index")
	}
	if !exists {
		return nil, errors.Errorf("chunk table %q does not exist", table)
	}

	return &ChunkIndex{db: d.db, table: table}, nil
}

// Search runs a top-k cosine similarity query with an optional exact
// section filter. Hits come back ranked by descending similarity.
func (x *ChunkIndex) Search(ctx context.Context, opts *vector.SearchOptions) ([]vector.Hit, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	embedded := pgvector.NewVector(opts.Vector)
	args := []any{embedded}

	filter := ""
	if opts.Section != "" && opts.Section != "all" {
		filter = "WHERE section = " + placeholder(2)
		args = append(args, opts.Section)
	}

	query := `
		SELECT chunk_id, cv_id, section, payload,
		       1 - (embedding <=> $1) AS similarity
		FROM ` + x.table + `
		` + filter + `
		ORDER BY embedding <=> $1
		LIMIT ` + placeholder(len(args)+1)
	args = append(args, opts.Limit)

	rows, err := x.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query vector index")
	}
	defer rows.Close()

	hits := []vector.Hit{}
	for rows.Next() {
		var hit vector.Hit
		var payload []byte
		if err := rows.Scan(&hit.ChunkID, &hit.CVID, &hit.Section, &payload, &hit.Score); err != nil {
			return nil, errors.Wrap(err, "failed to scan chunk")
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &hit.Payload); err != nil {
				return nil, errors.Wrap(err, "failed to decode chunk payload")
			}
		}
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate chunks")
	}

	return hits, nil
}
