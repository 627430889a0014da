package news

import "time"

// Closed category set used by the newspaper sections. Aggregator items may
// also carry an externally-sourced label outside this set.
const (
	CategoryWorld      = "World"
	CategoryTechnology = "Technology"
	CategoryBusiness   = "Business"
	CategoryScience    = "Science"
	CategoryArts       = "Arts"
	CategorySports     = "Sports"
)

// Article is a single newspaper item. Values are immutable once built:
// translation produces new Articles rather than mutating in place.
//
// Date is a display string, not a structured timestamp. Consumers must not
// rely on parsing it.
type Article struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Content     string `json:"content"`
	Summary     string `json:"summary,omitempty"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Location    string `json:"location,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	SourceName  string `json:"sourceName,omitempty"`
}

// DisplayDate renders an aggregator timestamp for the masthead. Unparseable
// input yields today's date; callers never see an error.
func DisplayDate(raw string) string {
	layouts := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		time.RFC1123Z,
		time.RFC1123,
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return time.Now().Format("Jan 2, 2006")
}
