package store

// WorkExperience is one job record on the CV. Dates are surfaced as
// ISO 8601 strings; a nil EndDate means the role is ongoing.
type WorkExperience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date,omitempty"`
	IsCurrent    bool     `json:"is_current"`
	Technologies []string `json:"technologies,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Domain       string   `json:"domain,omitempty"`
	Seniority    string   `json:"seniority,omitempty"`
	TeamSize     int      `json:"team_size,omitempty"`
}

// FindWorkExperience narrows the work experience listing. All filters
// are optional; rows are always ordered by start date descending.
type FindWorkExperience struct {
	CVID string

	// Company matches case-insensitively as a substring.
	Company *string

	// Technology requires exact membership in the technologies array.
	Technology *string

	// StartYear/EndYear bound start_date inclusively; rows with a null
	// end date pass the upper bound regardless.
	StartYear *int
	EndYear   *int
}
