package store

import (
	"context"
)

// Store provides read access to all CV records.
type Store struct {
	driver Driver
}

// New creates a new instance of Store.
func New(driver Driver) *Store {
	return &Store{driver: driver}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

func (s *Store) ResolveCVID(ctx context.Context) (string, error) {
	return s.driver.ResolveCVID(ctx)
}

func (s *Store) GetCVSummary(ctx context.Context) (*CVSummary, error) {
	return s.driver.GetCVSummary(ctx)
}

func (s *Store) ListWorkExperiences(ctx context.Context, find *FindWorkExperience) ([]*WorkExperience, error) {
	return s.driver.ListWorkExperiences(ctx, find)
}

func (s *Store) ListEducation(ctx context.Context, find *FindEducation) ([]*Education, error) {
	return s.driver.ListEducation(ctx, find)
}

func (s *Store) ListPublications(ctx context.Context, find *FindPublication) ([]*Publication, error) {
	return s.driver.ListPublications(ctx, find)
}

func (s *Store) ListSkills(ctx context.Context, find *FindSkill) ([]*Skill, error) {
	return s.driver.ListSkills(ctx, find)
}

func (s *Store) ListAwardCertifications(ctx context.Context, find *FindAwardCertification) ([]*AwardCertification, error) {
	return s.driver.ListAwardCertifications(ctx, find)
}
