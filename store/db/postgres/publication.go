package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/store"
)

// ListPublications lists publications matching find, ordered by year
// descending.
func (d *DB) ListPublications(ctx context.Context, find *store.FindPublication) ([]*store.Publication, error) {
	where, args := []string{"cv_id = " + placeholder(1)}, []any{find.CVID}

	if find.Year != nil {
		where, args = append(where, "year = "+placeholder(len(args)+1)), append(args, *find.Year)
	}

	query := `
		SELECT title, year, conference_name, doi, keywords, content_text
		FROM publications
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY year DESC
	`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query publications")
	}
	defer rows.Close()

	list := []*store.Publication{}
	for rows.Next() {
		var pub store.Publication
		var conference, doi, content sql.NullString
		err := rows.Scan(
			&pub.Title,
			&pub.Year,
			&conference,
			&doi,
			pq.Array(&pub.Keywords),
			&content,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan publication")
		}

		pub.ConferenceName = conference.String
		pub.DOI = doi.String
		pub.ContentText = content.String

		list = append(list, &pub)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate publications")
	}

	return list, nil
}
