package store

// CVSummary is the single aggregate row describing the whole profile.
type CVSummary struct {
	Name                 string   `json:"name"`
	CurrentRole          string   `json:"current_role,omitempty"`
	TotalYearsExperience float64  `json:"total_years_experience,omitempty"`
	TotalJobs            int      `json:"total_jobs,omitempty"`
	TotalDegrees         int      `json:"total_degrees,omitempty"`
	TotalPublications    int      `json:"total_publications,omitempty"`
	Domains              []string `json:"domains,omitempty"`
	AllSkills            []string `json:"all_skills,omitempty"`
}
