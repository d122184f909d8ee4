package model

const (
	DefaultJobTitle    = "Unknown Title"
	DefaultCompany     = "Unknown Company"
	DefaultDescription = "No description"
)

// JobListing is read from the detail pane of an opened card and discarded
// once the card has been processed.
type JobListing struct {
	Title       string
	Company     string
	URL         string
	Description string
}

type SearchCriteria struct {
	Keywords   []string
	Location   string
	DailyLimit int
}
