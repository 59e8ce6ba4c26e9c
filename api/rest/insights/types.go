package insights

import "codeberg.org/insightsnap/server/insightsnap/searches"

// SearchRequest carries the free-text query
type SearchRequest struct {
	Query string `json:"query" binding:"required,min=1,max=200"`
}

// GenerateRequest carries the topic to generate a script for
type GenerateRequest struct {
	Query string `json:"query" binding:"required,min=1,max=200"`
}

// ExportRequest selects a past search and an output format
type ExportRequest struct {
	SearchID string `json:"searchId" binding:"required"`
	Format   string `json:"format" binding:"required"`
}

// ExportResponse points at the produced file
type ExportResponse struct {
	DownloadURL string `json:"downloadUrl"`
	Success     bool   `json:"success"`
}

// HistoryResponse wraps a user's recent searches
type HistoryResponse struct {
	History []searches.Record `json:"history"`
}
