package newsdata

// Response is the aggregator's envelope for /api/1/news.
type Response struct {
	Status       string   `json:"status"`
	TotalResults int      `json:"totalResults"`
	Results      []Result `json:"results"`
}

// Result is one raw aggregator item.
type Result struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	PubDate     string   `json:"pubDate"`
	ImageURL    string   `json:"image_url"`
	SourceID    string   `json:"source_id"`
	SourceName  string   `json:"source_name"`
	Creator     []string `json:"creator"`
	Language    string   `json:"language"`
	Category    []string `json:"category"`
}

// Author returns the display attribution: first creator, else the source id.
func (r Result) Author() string {
	if len(r.Creator) > 0 && r.Creator[0] != "" {
		return r.Creator[0]
	}
	return r.SourceID
}
