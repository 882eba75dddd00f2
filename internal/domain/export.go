package domain

// ExportFormat selects the download rendering of an itinerary.
type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportText     ExportFormat = "text"
	ExportJSON     ExportFormat = "json"
)

// ExportDocument is a rendered itinerary ready to be served as a file
// attachment. Filename is already sanitized for a Content-Disposition header.
type ExportDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}

// TripSummary is the flat listing row for saved trips. The full itinerary
// document is only loaded when a single trip is fetched.
type TripSummary struct {
	ID          string      `json:"id"`
	Destination string      `json:"destination"`
	StartDate   string      `json:"start_date"` // "2006-01-02" formatted date
	EndDate     string      `json:"end_date"`
	BudgetLevel BudgetLevel `json:"budget_level"`
	GroupType   GroupType   `json:"group_type"`
	CreatedAt   string      `json:"created_at"`
}
