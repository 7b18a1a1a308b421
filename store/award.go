package store

// AwardCertification is one award or certification record. The issuer
// lives in two alternate columns due to schema evolution; both are
// populated from whichever the row carries.
type AwardCertification struct {
	Title               string   `json:"title"`
	IssuingOrganization string   `json:"issuing_organization,omitempty"`
	Organization        string   `json:"organization,omitempty"`
	IssueDate           string   `json:"issue_date,omitempty"`
	Keywords            []string `json:"keywords,omitempty"`
}

// FindAwardCertification narrows the awards listing. Type matches
// case-insensitively as a substring against issuing_organization,
// organization, and title; rows are ordered by issue date descending.
type FindAwardCertification struct {
	CVID string
	Type *string
}
