// Package tools implements the CV retrieval tools: nine read
// operations over the relational store and the vector index, all
// returning one uniform response envelope. No failure escapes an
// operation; every error is converted into an error envelope at the
// boundary.
package tools

// Envelope is the uniform response shape of every tool operation.
// On success with a collection payload, Results and ResultsCount are
// both always set (ResultsCount may be 0 with an empty, non-nil
// Results). On success for the single-record operation, Summary is
// set instead. On error only Error is set besides Status and Tool.
type Envelope struct {
	Status       string `json:"status"`
	Tool         string `json:"tool"`
	ResultsCount *int   `json:"results_count,omitempty"`
	Results      any    `json:"results,omitempty"`
	Summary      any    `json:"summary,omitempty"`
	Error        string `json:"error,omitempty"`

	// Echoed filters.
	Company       string `json:"company,omitempty"`
	Technology    string `json:"technology,omitempty"`
	DateRange     string `json:"date_range,omitempty"`
	Category      string `json:"category,omitempty"`
	SearchType    string `json:"search_type,omitempty"`
	Query         string `json:"query,omitempty"`
	SectionFilter string `json:"section_filter,omitempty"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// successList builds a success envelope around a collection result.
// count must equal the collection length; it is carried explicitly so
// callers can branch on zero results without re-deriving it.
func successList(tool string, results any, count int) Envelope {
	return Envelope{
		Status:       statusSuccess,
		Tool:         tool,
		Results:      results,
		ResultsCount: &count,
	}
}

// successSummary builds a success envelope around a single record.
func successSummary(tool string, summary any) Envelope {
	return Envelope{
		Status:  statusSuccess,
		Tool:    tool,
		Summary: summary,
	}
}

// errorResult builds an error envelope. The original failure never
// crosses the tool boundary; only its description does.
func errorResult(tool, message string) Envelope {
	return Envelope{
		Status: statusError,
		Tool:   tool,
		Error:  message,
	}
}

// IsSuccess reports whether the envelope carries a success status.
func (e Envelope) IsSuccess() bool {
	return e.Status == statusSuccess
}
