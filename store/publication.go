package store

// Publication is one published paper on the CV.
type Publication struct {
	Title          string   `json:"title"`
	Year           int      `json:"year"`
	ConferenceName string   `json:"conference_name,omitempty"`
	DOI            string   `json:"doi,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	ContentText    string   `json:"content_text,omitempty"`
}

// FindPublication narrows the publication listing. A nil Year returns
// all publications; rows are ordered by year descending.
type FindPublication struct {
	CVID string
	Year *int
}
