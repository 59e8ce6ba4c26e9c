package searches

import (
	"time"

	"codeberg.org/insightsnap/server/internal/insights"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles search history database operations
type Repository struct {
	db *pgxpool.Pool
}

// Record is one archived search with its full result payload.
// Records are append-only: nothing ever mutates or deletes them.
type Record struct {
	ID        string                `json:"id"`
	UserID    string                `json:"userId"`
	Query     string                `json:"query"`
	Results   insights.SearchResult `json:"results"`
	Timestamp time.Time             `json:"timestamp"`
}
