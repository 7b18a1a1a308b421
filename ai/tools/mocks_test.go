package tools

import (
	"context"
	"database/sql"

	"github.com/cvoice/cvoice/ai/vector"
	"github.com/cvoice/cvoice/store"
)

// mockDriver is an in-memory store.Driver with call counters.
type mockDriver struct {
	cvID         string
	cvIDErr      error
	resolveCalls int

	summary    *store.CVSummary
	summaryErr error

	work     []*store.WorkExperience
	workErr  error
	workFind *store.FindWorkExperience

	education    []*store.Education
	educationErr error
	eduFind      *store.FindEducation

	publications    []*store.Publication
	publicationsErr error

	skills    []*store.Skill
	skillsErr error

	awards    []*store.AwardCertification
	awardsErr error
}

func (m *mockDriver) GetDB() *sql.DB             { return nil }
func (m *mockDriver) Ping(context.Context) error { return nil }
func (m *mockDriver) Close() error               { return nil }

func (m *mockDriver) ResolveCVID(context.Context) (string, error) {
	m.resolveCalls++
	if m.cvIDErr != nil {
		return "", m.cvIDErr
	}
	return m.cvID, nil
}

func (m *mockDriver) GetCVSummary(context.Context) (*store.CVSummary, error) {
	return m.summary, m.summaryErr
}

func (m *mockDriver) ListWorkExperiences(_ context.Context, find *store.FindWorkExperience) ([]*store.WorkExperience, error) {
	m.workFind = find
	if m.workErr != nil {
		return nil, m.workErr
	}
	if m.work == nil {
		return []*store.WorkExperience{}, nil
	}
	return m.work, nil
}

func (m *mockDriver) ListEducation(_ context.Context, find *store.FindEducation) ([]*store.Education, error) {
	m.eduFind = find
	if m.educationErr != nil {
		return nil, m.educationErr
	}
	if m.education == nil {
		return []*store.Education{}, nil
	}
	return m.education, nil
}

func (m *mockDriver) ListPublications(_ context.Context, find *store.FindPublication) ([]*store.Publication, error) {
	if m.publicationsErr != nil {
		return nil, m.publicationsErr
	}
	if m.publications == nil {
		return []*store.Publication{}, nil
	}
	return m.publications, nil
}

func (m *mockDriver) ListSkills(_ context.Context, find *store.FindSkill) ([]*store.Skill, error) {
	if m.skillsErr != nil {
		return nil, m.skillsErr
	}
	if m.skills == nil {
		return []*store.Skill{}, nil
	}
	return m.skills, nil
}

func (m *mockDriver) ListAwardCertifications(_ context.Context, find *store.FindAwardCertification) ([]*store.AwardCertification, error) {
	if m.awardsErr != nil {
		return nil, m.awardsErr
	}
	if m.awards == nil {
		return []*store.AwardCertification{}, nil
	}
	return m.awards, nil
}

// mockEmbedder returns a fixed vector.
type mockEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (m *mockEmbedder) Embed(context.Context, string) ([]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.vector == nil {
		return []float32{0.1, 0.2, 0.3}, nil
	}
	return m.vector, nil
}

func (m *mockEmbedder) Dimensions() int { return 3 }

// mockIndex returns canned hits and records the last options.
type mockIndex struct {
	hits     []vector.Hit
	err      error
	lastOpts *vector.SearchOptions
}

func (m *mockIndex) Search(_ context.Context, opts *vector.SearchOptions) ([]vector.Hit, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if len(m.hits) > opts.Limit {
		return m.hits[:opts.Limit], nil
	}
	return m.hits, nil
}

func newTestTools(driver *mockDriver, embedder *mockEmbedder, index *mockIndex) *CVTools {
	if driver == nil {
		driver = &mockDriver{cvID: "cv-001"}
	}
	if embedder == nil {
		embedder = &mockEmbedder{}
	}
	if index == nil {
		index = &mockIndex{}
	}
	t, err := NewCVTools(store.New(driver), embedder, index)
	if err != nil {
		panic(err)
	}
	return t
}
