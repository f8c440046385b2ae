package types

// Seed is the fixture payload a registry is initialized from: one flat list
// per entity type, matching the JSON fixture files. Stores take ownership of
// the slices; callers must not retain them after opening a registry.
type Seed struct {
	CaseReports []CaseReport `json:"caseReports"`
	Documents   []Document   `json:"documents"`
	Feedbacks   []Feedback   `json:"feedbacks"`
	Meetings    []Meeting    `json:"meetings"`
}
