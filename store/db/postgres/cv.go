package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/store"
)

// ResolveCVID returns one distinct profile identifier from the skills
// table. The skills table is guaranteed non-empty in a seeded
// deployment; sql.ErrNoRows is passed through for the caller's
// fallback handling.
func (d *DB) ResolveCVID(ctx context.Context) (string, error) {
	var cvID string
	err := d.db.QueryRowContext(ctx, `SELECT DISTINCT cv_id FROM skills LIMIT 1`).Scan(&cvID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		return "", errors.Wrap(err, "failed to query cv_id")
	}
	return cvID, nil
}

// GetCVSummary fetches the single aggregate profile row. Returns
// (nil, nil) when the summary table is empty.
func (d *DB) GetCVSummary(ctx context.Context) (*store.CVSummary, error) {
	query := `
		SELECT name, crole, total_years_experience,
		       total_jobs, total_degrees, total_publications,
		       domains, all_skills
		FROM cv_summary
		LIMIT 1
	`

	var summary store.CVSummary
	var currentRole sql.NullString
	var years sql.NullFloat64
	var jobs, degrees, publications sql.NullInt64
	err := d.db.QueryRowContext(ctx, query).Scan(
		&summary.Name,
		&currentRole,
		&years,
		&jobs,
		&degrees,
		&publications,
		pq.Array(&summary.Domains),
		pq.Array(&summary.AllSkills),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to query cv summary")
	}

	summary.CurrentRole = currentRole.String
	summary.TotalYearsExperience = years.Float64
	summary.TotalJobs = int(jobs.Int64)
	summary.TotalDegrees = int(degrees.Int64)
	summary.TotalPublications = int(publications.Int64)

	return &summary, nil
}
