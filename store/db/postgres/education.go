package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/store"
)

// ListEducation lists education records matching find. Institution
// takes precedence over Degree when both filters are set.
func (d *DB) ListEducation(ctx context.Context, find *store.FindEducation) ([]*store.Education, error) {
	where, args := []string{"cv_id = " + placeholder(1)}, []any{find.CVID}

	switch {
	case find.Institution != nil:
		where, args = append(where, "institution ILIKE "+placeholder(len(args)+1)), append(args, "%"+*find.Institution+"%")
	case find.Degree != nil:
		where, args = append(where, "degree ILIKE "+placeholder(len(args)+1)), append(args, "%"+*find.Degree+"%")
	}

	query := `
		SELECT institution, degree, field, specialization, graduation_date, thesis, publications
		FROM education
		WHERE ` + strings.Join(where, " AND ")

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query education")
	}
	defer rows.Close()

	list := []*store.Education{}
	for rows.Next() {
		var edu store.Education
		var field, specialization, thesis sql.NullString
		var graduationDate sql.NullTime
		err := rows.Scan(
			&edu.Institution,
			&edu.Degree,
			&field,
			&specialization,
			&graduationDate,
			&thesis,
			pq.Array(&edu.Publications),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan education")
		}

		edu.Field = field.String
		edu.Specialization = specialization.String
		edu.Thesis = thesis.String
		edu.GraduationDate = dateString(graduationDate)

		list = append(list, &edu)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate education")
	}

	return list, nil
}
