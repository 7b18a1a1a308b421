package postgres

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/store"
)

// ListSkills lists skills in one category, ordered alphabetically.
func (d *DB) ListSkills(ctx context.Context, find *store.FindSkill) ([]*store.Skill, error) {
	query := `
		SELECT skill_name, skill_category
		FROM skills
		WHERE cv_id = ` + placeholder(1) + ` AND skill_category = ` + placeholder(2) + `
		ORDER BY skill_name
	`

	rows, err := d.db.QueryContext(ctx, query, find.CVID, find.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query skills")
	}
	defer rows.Close()

	list := []*store.Skill{}
	for rows.Next() {
		var skill store.Skill
		if err := rows.Scan(&skill.SkillName, &skill.SkillCategory); err != nil {
			return nil, errors.Wrap(err, "failed to scan skill")
		}
		list = append(list, &skill)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate skills")
	}

	return list, nil
}
