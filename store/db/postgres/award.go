package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/store"
)

// ListAwardCertifications lists awards and certifications matching
// find, ordered by issue date descending. The type filter is tested
// against both issuer columns and the title.
func (d *DB) ListAwardCertifications(ctx context.Context, find *store.FindAwardCertification) ([]*store.AwardCertification, error) {
	where, args := []string{"cv_id = " + placeholder(1)}, []any{find.CVID}

	if find.Type != nil {
		n := placeholder(len(args) + 1)
		where, args = append(where,
			"(issuing_organization ILIKE "+n+" OR organization ILIKE "+n+" OR title ILIKE "+n+")"),
			append(args, "%"+*find.Type+"%")
	}

	query := `
		SELECT title, issuing_organization, organization, issue_date, keywords
		FROM awards_certifications
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY issue_date DESC
	`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query awards")
	}
	defer rows.Close()

	list := []*store.AwardCertification{}
	for rows.Next() {
		var award store.AwardCertification
		var issuing, organization sql.NullString
		var issueDate sql.NullTime
		err := rows.Scan(
			&award.Title,
			&issuing,
			&organization,
			&issueDate,
			pq.Array(&award.Keywords),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan award")
		}

		award.IssuingOrganization = issuing.String
		award.Organization = organization.String
		award.IssueDate = dateString(issueDate)

		list = append(list, &award)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate awards")
	}

	return list, nil
}
