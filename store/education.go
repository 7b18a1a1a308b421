package store

// Education is one degree record on the CV.
type Education struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree"`
	Field          string   `json:"field,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	GraduationDate string   `json:"graduation_date,omitempty"`
	Thesis         string   `json:"thesis,omitempty"`
	Publications   []string `json:"publications,omitempty"`
}

// FindEducation narrows the education listing. Institution takes
// precedence over Degree when both are set; both match
// case-insensitively as substrings.
type FindEducation struct {
	CVID        string
	Institution *string
	Degree      *string
}
