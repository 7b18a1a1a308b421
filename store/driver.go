package store

import (
	"context"
	"database/sql"
)

// Driver is the row-source abstraction over the relational store.
// There is exactly one implementation (store/db/postgres); whether
// connections are pooled or opened per call is its concern, not the
// caller's.
type Driver interface {
	GetDB() *sql.DB
	Ping(ctx context.Context) error
	Close() error

	// ResolveCVID returns one distinct profile identifier from the
	// skills table, or sql.ErrNoRows when the database is unseeded.
	ResolveCVID(ctx context.Context) (string, error)

	GetCVSummary(ctx context.Context) (*CVSummary, error)
	ListWorkExperiences(ctx context.Context, find *FindWorkExperience) ([]*WorkExperience, error)
	ListEducation(ctx context.Context, find *FindEducation) ([]*Education, error)
	ListPublications(ctx context.Context, find *FindPublication) ([]*Publication, error)
	ListSkills(ctx context.Context, find *FindSkill) ([]*Skill, error)
	ListAwardCertifications(ctx context.Context, find *FindAwardCertification) ([]*AwardCertification, error)
}
