package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"

	"github.com/cvoice/cvoice/ai/metrics"
	"github.com/cvoice/cvoice/ai/tools"
	"github.com/cvoice/cvoice/store"
)

// defaultMaxConcurrentTools bounds retrieval calls in flight so one slow
// lookup cannot starve the conversational loop.
const defaultMaxConcurrentTools = 4

// Toolset adapts the CV retrieval operations into agent tools.
type Toolset struct {
	cv  *tools.CVTools
	sem *semaphore.Weighted
}

// NewCVToolset creates the agent-facing tool set. maxConcurrent <= 0
// selects the default bound.
func NewCVToolset(cv *tools.CVTools, maxConcurrent int64) (*Toolset, error) {
	if cv == nil {
		return nil, errors.New("cv tools cannot be nil")
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentTools
	}
	return &Toolset{
		cv:  cv,
		sem: semaphore.NewWeighted(maxConcurrent),
	}, nil
}

// run executes one retrieval call under the concurrency bound, records
// metrics, and converts every failure mode, panics included, into an
// "Error: ..." reply instead of a Go error.
func (s *Toolset) run(ctx context.Context, tool string, call func(context.Context) tools.Envelope, render func(tools.Envelope) string) (out string, err error) {
	start := time.Now()
	status := "error"
	defer func() {
		metrics.ObserveToolCall(tool, status, time.Since(start))
		if r := recover(); r != nil {
			slog.Error("tool execution panicked", "tool", tool, "panic", r)
			out, err = fmt.Sprintf("Error: %v", r), nil
		}
	}()

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "Error: " + err.Error(), nil
	}
	defer s.sem.Release(1)

	env := call(ctx)
	if !env.IsSuccess() {
		return "Error: " + env.Error, nil
	}
	status = "success"
	return render(env), nil
}

func parseArgs(input string, v any) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	return json.Unmarshal([]byte(input), v)
}

// compact renders a result collection for relay into the
// conversation; the runtime's LLM rephrases it into speech.
func compact(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func count(env tools.Envelope) int {
	if env.ResultsCount == nil {
		return 0
	}
	return *env.ResultsCount
}

// Tools returns the nine CV tools for registration with the agent
// runtime.
func (s *Toolset) Tools() []ToolWithSchema {
	return []ToolWithSchema{
		s.summaryTool(),
		s.companyTool(),
		s.technologyTool(),
		s.dateRangeTool(),
		s.educationTool(),
		s.publicationsTool(),
		s.skillsTool(),
		s.awardsTool(),
		s.semanticTool(),
	}
}

func (s *Toolset) summaryTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolGetCVSummary,
		"Get a high-level summary of the person's CV including role, experience, and key stats.",
		func(ctx context.Context, _ string) (string, error) {
			return s.run(ctx, tools.ToolGetCVSummary, s.cv.GetCVSummary, func(env tools.Envelope) string {
				return "Summary: " + compact(env.Summary)
			})
		},
		objectSchema(map[string]interface{}{}),
	)
}

func (s *Toolset) companyTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSearchCompany,
		"Find all work experience at a specific company.",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				CompanyName string `json:"company_name"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSearchCompany,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SearchCompanyExperience(ctx, args.CompanyName)
				},
				func(env tools.Envelope) string {
					if count(env) == 0 {
						return "No experience found at " + args.CompanyName
					}
					return fmt.Sprintf("Found %d job(s) at %s: %s", count(env), args.CompanyName, compact(env.Results))
				})
		},
		objectSchema(map[string]interface{}{
			"company_name": stringParam("Name of the company, e.g. 'KasiOss'"),
		}, "company_name"),
	)
}

func (s *Toolset) technologyTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSearchTechnology,
		"Find all jobs using a specific technology.",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				Technology string `json:"technology"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSearchTechnology,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SearchTechnologyExperience(ctx, args.Technology)
				},
				func(env tools.Envelope) string {
					if count(env) == 0 {
						return "No experience found with " + args.Technology
					}
					return fmt.Sprintf("Found %d job(s) using %s: %s", count(env), args.Technology, compact(env.Results))
				})
		},
		objectSchema(map[string]interface{}{
			"technology": stringParam("Technology name, e.g. 'Python', 'TensorFlow'"),
		}, "technology"),
	)
}

func (s *Toolset) dateRangeTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSearchWorkByDate,
		"Find work experience within a date range.",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				StartYear int `json:"start_year"`
				EndYear   int `json:"end_year"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSearchWorkByDate,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SearchWorkByDate(ctx, args.StartYear, args.EndYear)
				},
				func(env tools.Envelope) string {
					if count(env) == 0 {
						return fmt.Sprintf("No jobs found between %d and %d", args.StartYear, args.EndYear)
					}
					return fmt.Sprintf("Found %d job(s) between %d and %d: %s", count(env), args.StartYear, args.EndYear, compact(env.Results))
				})
		},
		objectSchema(map[string]interface{}{
			"start_year": integerParam("Start year, e.g. 2020"),
			"end_year":   integerParam("End year, e.g. 2024"),
		}, "start_year", "end_year"),
	)
}

func (s *Toolset) educationTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSearchEducation,
		"Find education records by institution or degree type.",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				Institution string `json:"institution"`
				Degree      string `json:"degree"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSearchEducation,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SearchEducation(ctx, args.Institution, args.Degree)
				},
				func(env tools.Envelope) string {
					if count(env) == 0 {
						return "No education records found"
					}
					return fmt.Sprintf("Found %d education record(s): %s", count(env), compact(env.Results))
				})
		},
		objectSchema(map[string]interface{}{
			"institution": stringParam("University or institution name (optional)"),
			"degree":      stringParam("Degree type, e.g. 'PhD', 'Master' (optional)"),
		}),
	)
}

func (s *Toolset) publicationsTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSearchPublications,
		"Search publications by year or get all publications.",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				Year int `json:"year"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSearchPublications,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SearchPublications(ctx, args.Year)
				},
				func(env tools.Envelope) string {
					if count(env) == 0 {
						return "No publications found"
					}
					return fmt.Sprintf("Found %d publication(s): %s", count(env), compact(env.Results))
				})
		},
		objectSchema(map[string]interface{}{
			"year": integerParam("Publication year (optional, omit for all publications)"),
		}),
	)
}

func (s *Toolset) skillsTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSearchSkills,
		"Find skills by category (AI, ML, programming, Tools, Cloud, Data_tools).",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				Category string `json:"category"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSearchSkills,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SearchSkills(ctx, args.Category)
				},
				func(env tools.Envelope) string {
					results, ok := env.Results.([]*store.Skill)
					if !ok || len(results) == 0 {
						return "No skills found in category " + args.Category
					}
					names := make([]string, 0, len(results))
					for _, skill := range results {
						names = append(names, skill.SkillName)
					}
					return fmt.Sprintf("Skills in %s: %s", args.Category, strings.Join(names, ", "))
				})
		},
		objectSchema(map[string]interface{}{
			"category": stringParam("Skill category: AI, ML, programming, Tools, Cloud, or Data_tools"),
		}, "category"),
	)
}

func (s *Toolset) awardsTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSearchAwards,
		"Find awards and certifications, optionally filtered by type.",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				AwardType string `json:"award_type"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSearchAwards,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SearchAwardsCertifications(ctx, args.AwardType)
				},
				func(env tools.Envelope) string {
					if count(env) == 0 {
						return "No awards or certifications found"
					}
					return fmt.Sprintf("Found %d award(s)/certification(s): %s", count(env), compact(env.Results))
				})
		},
		objectSchema(map[string]interface{}{
			"award_type": stringParam("Type of award or certification to filter (optional)"),
		}),
	)
}

func (s *Toolset) semanticTool() ToolWithSchema {
	return NewNativeTool(
		tools.ToolSemanticSearch,
		"Semantic search over the whole CV content. Use for open questions that do not map to one structured lookup.",
		func(ctx context.Context, input string) (string, error) {
			var args struct {
				Query   string `json:"query"`
				Section string `json:"section"`
				TopK    int    `json:"top_k"`
			}
			if err := parseArgs(input, &args); err != nil {
				return "Error: " + err.Error(), nil
			}
			return s.run(ctx, tools.ToolSemanticSearch,
				func(ctx context.Context) tools.Envelope {
					return s.cv.SemanticSearch(ctx, args.Query, args.Section, args.TopK)
				},
				func(env tools.Envelope) string {
					if count(env) == 0 {
						return "No relevant CV content found for: " + args.Query
					}
					return fmt.Sprintf("Found %d relevant passage(s): %s", count(env), compact(env.Results))
				})
		},
		objectSchema(map[string]interface{}{
			"query":   stringParam("Natural language search query"),
			"section": stringParam("Restrict to one section: work_experience, education, publication, projects, or all"),
			"top_k":   integerParam("Number of results to return (default 5)"),
		}, "query"),
	)
}
