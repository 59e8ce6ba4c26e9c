package insights

// InsightItem is a single categorized finding sourced from a platform
type InsightItem struct {
	ID         string `json:"id"`
	Platform   string `json:"platform"`
	Content    string `json:"content"`
	Engagement int    `json:"engagement,omitempty"`
	TrendScore int    `json:"trendScore,omitempty"`
	Source     string `json:"source"`
}

// ContentIdea is a suggested piece of content derived from the insights
type ContentIdea struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Platforms   []string `json:"platforms"`
}

// SearchResult is the full payload returned for one query
type SearchResult struct {
	PainPoints    []InsightItem `json:"painPoints"`
	TrendingIdeas []InsightItem `json:"trendingIdeas"`
	ContentIdeas  []ContentIdea `json:"contentIdeas"`
}

// Script is a generated content script for a topic
type Script struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Hook         string   `json:"hook"`
	Outline      []string `json:"outline"`
	CallToAction string   `json:"callToAction"`
}
