package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/cvoice/cvoice/ai"
	"github.com/cvoice/cvoice/ai/vector"
	"github.com/cvoice/cvoice/store"
)

// FallbackCVID is returned by identity resolution when the database
// is unreachable or unseeded. It is deliberately not cached so an
// eventually-seeded database is picked up on the next call.
const FallbackCVID = "default-cv-id"

// Tool operation names, echoed in every envelope.
const (
	ToolGetCVSummary       = "get_cv_summary"
	ToolSearchCompany      = "search_company_experience"
	ToolSearchTechnology   = "search_technology_experience"
	ToolSearchWorkByDate   = "search_work_by_date"
	ToolSearchEducation    = "search_education"
	ToolSearchPublications = "search_publications"
	ToolSearchSkills       = "search_skills"
	ToolSearchAwards       = "search_awards_certifications"
	ToolSemanticSearch     = "semantic_search"
)

// CVTools exposes the nine CV retrieval operations. Safe for
// concurrent use; the only mutable state is the cv_id cache.
type CVTools struct {
	store    *store.Store
	embedder ai.EmbeddingService
	index    vector.Index

	mu   sync.Mutex
	cvID string
}

// NewCVTools creates the tool set over its three backends.
func NewCVTools(s *store.Store, embedder ai.EmbeddingService, index vector.Index) (*CVTools, error) {
	if s == nil {
		return nil, errors.New("store cannot be nil")
	}
	if embedder == nil {
		return nil, errors.New("embedder cannot be nil")
	}
	if index == nil {
		return nil, errors.New("index cannot be nil")
	}
	return &CVTools{store: s, embedder: embedder, index: index}, nil
}

// resolveCVID returns the profile identifier scoping all queries.
// The first non-fallback value is cached for the process lifetime;
// resolution failure degrades to FallbackCVID instead of failing the
// calling operation.
func (t *CVTools) resolveCVID(ctx context.Context) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cvID != "" {
		return t.cvID
	}

	cvID, err := t.store.ResolveCVID(ctx)
	if err != nil || cvID == "" {
		slog.Warn("could not resolve cv_id, using fallback", "error", err)
		return FallbackCVID
	}

	t.cvID = cvID
	return cvID
}

// ResetCVID clears the cached profile identifier. Intended for tests.
func (t *CVTools) ResetCVID() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cvID = ""
}

// GetCVSummary returns the aggregate profile record. An empty summary
// table is the one not-found condition surfaced as an error.
func (t *CVTools) GetCVSummary(ctx context.Context) Envelope {
	summary, err := t.store.GetCVSummary(ctx)
	if err != nil {
		slog.Error("get_cv_summary failed", "error", err)
		return errorResult(ToolGetCVSummary, err.Error())
	}
	if summary == nil {
		slog.Warn("CV not found in database")
		return errorResult(ToolGetCVSummary, "CV not found")
	}
	return successSummary(ToolGetCVSummary, summary)
}

// SearchCompanyExperience finds all jobs at companies whose name
// contains company, case-insensitively.
func (t *CVTools) SearchCompanyExperience(ctx context.Context, company string) Envelope {
	cvID := t.resolveCVID(ctx)
	results, err := t.store.ListWorkExperiences(ctx, &store.FindWorkExperience{
		CVID:    cvID,
		Company: &company,
	})
	if err != nil {
		slog.Error("search_company_experience failed", "company", company, "error", err)
		return errorResult(ToolSearchCompany, err.Error())
	}

	env := successList(ToolSearchCompany, results, len(results))
	env.Company = company
	return env
}

// SearchTechnologyExperience finds all jobs whose technology list
// contains technology exactly.
func (t *CVTools) SearchTechnologyExperience(ctx context.Context, technology string) Envelope {
	cvID := t.resolveCVID(ctx)
	results, err := t.store.ListWorkExperiences(ctx, &store.FindWorkExperience{
		CVID:       cvID,
		Technology: &technology,
	})
	if err != nil {
		slog.Error("search_technology_experience failed", "technology", technology, "error", err)
		return errorResult(ToolSearchTechnology, err.Error())
	}

	env := successList(ToolSearchTechnology, results, len(results))
	env.Technology = technology
	return env
}

// SearchWorkByDate finds work experience whose start date falls in
// [startYear-01-01, endYear-12-31]. Rows with a null end date count
// as ongoing and pass the upper bound.
func (t *CVTools) SearchWorkByDate(ctx context.Context, startYear, endYear int) Envelope {
	if startYear <= 0 || endYear <= 0 || startYear > endYear {
		return errorResult(ToolSearchWorkByDate, fmt.Sprintf("invalid date range: %d-%d", startYear, endYear))
	}

	cvID := t.resolveCVID(ctx)
	results, err := t.store.ListWorkExperiences(ctx, &store.FindWorkExperience{
		CVID:      cvID,
		StartYear: &startYear,
		EndYear:   &endYear,
	})
	if err != nil {
		slog.Error("search_work_by_date failed", "start_year", startYear, "end_year", endYear, "error", err)
		return errorResult(ToolSearchWorkByDate, err.Error())
	}

	env := successList(ToolSearchWorkByDate, results, len(results))
	env.DateRange = fmt.Sprintf("%d-%d", startYear, endYear)
	return env
}

// SearchEducation finds education records. When both filters are
// given, institution wins; when neither is, all records are returned.
func (t *CVTools) SearchEducation(ctx context.Context, institution, degree string) Envelope {
	cvID := t.resolveCVID(ctx)
	find := &store.FindEducation{CVID: cvID}

	var searchType string
	switch {
	case institution != "":
		find.Institution = &institution
		searchType = "institution: " + institution
	case degree != "":
		find.Degree = &degree
		searchType = "degree: " + degree
	default:
		searchType = "all education"
	}

	results, err := t.store.ListEducation(ctx, find)
	if err != nil {
		slog.Error("search_education failed", "search_type", searchType, "error", err)
		return errorResult(ToolSearchEducation, err.Error())
	}

	env := successList(ToolSearchEducation, results, len(results))
	env.SearchType = searchType
	return env
}

// SearchPublications finds publications, optionally for one year.
// A year of 0 returns all publications.
func (t *CVTools) SearchPublications(ctx context.Context, year int) Envelope {
	cvID := t.resolveCVID(ctx)
	find := &store.FindPublication{CVID: cvID}

	searchType := "all publications"
	if year != 0 {
		find.Year = &year
		searchType = fmt.Sprintf("year: %d", year)
	}

	results, err := t.store.ListPublications(ctx, find)
	if err != nil {
		slog.Error("search_publications failed", "year", year, "error", err)
		return errorResult(ToolSearchPublications, err.Error())
	}

	env := successList(ToolSearchPublications, results, len(results))
	env.SearchType = searchType
	return env
}

// SearchSkills finds skills in one category, sorted alphabetically.
// An unknown category is not an error; it simply matches nothing.
func (t *CVTools) SearchSkills(ctx context.Context, category string) Envelope {
	cvID := t.resolveCVID(ctx)
	results, err := t.store.ListSkills(ctx, &store.FindSkill{
		CVID:     cvID,
		Category: category,
	})
	if err != nil {
		slog.Error("search_skills failed", "category", category, "error", err)
		return errorResult(ToolSearchSkills, err.Error())
	}

	env := successList(ToolSearchSkills, results, len(results))
	env.Category = category
	return env
}

// SearchAwardsCertifications finds award and certification records,
// optionally filtered by a type keyword tested against both issuer
// columns and the title.
func (t *CVTools) SearchAwardsCertifications(ctx context.Context, awardType string) Envelope {
	cvID := t.resolveCVID(ctx)
	find := &store.FindAwardCertification{CVID: cvID}

	searchType := "all awards and certifications"
	if awardType != "" {
		find.Type = &awardType
		searchType = "type: " + awardType
	}

	results, err := t.store.ListAwardCertifications(ctx, find)
	if err != nil {
		slog.Error("search_awards_certifications failed", "type", awardType, "error", err)
		return errorResult(ToolSearchAwards, err.Error())
	}

	env := successList(ToolSearchAwards, results, len(results))
	env.SearchType = searchType
	return env
}
