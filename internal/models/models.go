package models

// QuestionInfo is one row of the survey structure listing.
type QuestionInfo struct {
	Name         string `json:"question"`
	Type         string `json:"type"`
	UniqueValues int    `json:"unique_values"`
	Responses    int    `json:"responses"`
}

// DistributionEntry is one option's share of a question's answers.
type DistributionEntry struct {
	Option     string  `json:"option"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DistributionResult is the full answer to a distribution query.
type DistributionResult struct {
	Question string              `json:"question"`
	Type     string              `json:"type"`
	Scope    string              `json:"scope"` // "full" or "subset"
	Total    int                 `json:"total_responses"`
	Entries  []DistributionEntry `json:"distribution"`

	// OthersPercentage aggregates everything cut off by top-N.
	OthersPercentage float64 `json:"others_percentage,omitempty"`
}

// SubsetSummary describes a freshly created respondent subset.
type SubsetSummary struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Rows      int    `json:"rows"`
	TotalRows int    `json:"total_rows"`
	Saved     bool   `json:"saved"`
}
