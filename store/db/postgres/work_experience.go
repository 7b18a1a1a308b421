package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/store"
)

// ListWorkExperiences lists work experience records matching find,
// ordered by start date descending.
func (d *DB) ListWorkExperiences(ctx context.Context, find *store.FindWorkExperience) ([]*store.WorkExperience, error) {
	where, args := []string{"cv_id = " + placeholder(1)}, []any{find.CVID}

	if find.Company != nil {
		where, args = append(where, "company ILIKE "+placeholder(len(args)+1)), append(args, "%"+*find.Company+"%")
	}
	if find.Technology != nil {
		where, args = append(where, placeholder(len(args)+1)+" = ANY(technologies)"), append(args, *find.Technology)
	}
	if find.StartYear != nil && find.EndYear != nil {
		lower := fmt.Sprintf("%d-01-01", *find.StartYear)
		upper := fmt.Sprintf("%d-12-31", *find.EndYear)
		where, args = append(where, "start_date >= "+placeholder(len(args)+1)+"::date"), append(args, lower)
		where, args = append(where,
			"start_date <= "+placeholder(len(args)+1)+"::date AND (end_date <= "+placeholder(len(args)+1)+"::date OR end_date IS NULL)"),
			append(args, upper)
	}

	query := `
		SELECT company, role, location, start_date, end_date, is_current,
		       technologies, skills, keywords, domain, seniority, team_size
		FROM work_experience
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY start_date DESC
	`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query work experience")
	}
	defer rows.Close()

	list := []*store.WorkExperience{}
	for rows.Next() {
		var exp store.WorkExperience
		var location, domain, seniority sql.NullString
		var startDate, endDate sql.NullTime
		var isCurrent sql.NullBool
		var teamSize sql.NullInt64
		err := rows.Scan(
			&exp.Company,
			&exp.Role,
			&location,
			&startDate,
			&endDate,
			&isCurrent,
			pq.Array(&exp.Technologies),
			pq.Array(&exp.Skills),
			pq.Array(&exp.Keywords),
			&domain,
			&seniority,
			&teamSize,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan work experience")
		}

		exp.Location = location.String
		exp.Domain = domain.String
		exp.Seniority = seniority.String
		exp.StartDate = dateString(startDate)
		exp.EndDate = formatDate(endDate)
		exp.IsCurrent = isCurrent.Bool
		exp.TeamSize = int(teamSize.Int64)

		list = append(list, &exp)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate work experience")
	}

	return list, nil
}
