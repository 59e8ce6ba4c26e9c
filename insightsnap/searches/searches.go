package searches

import (
	"context"
	"encoding/json"
	"fmt"

	"codeberg.org/insightsnap/server/internal/insights"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new search history repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// archives a search and its full result payload
func (r *Repository) Insert(ctx context.Context, userID, query string, results *insights.SearchResult) (*Record, error) {
	payload, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("encoding results: %w", err)
	}

	record, err := scanRecord(r.db.QueryRow(ctx, queryInsert, uuid.NewString(), userID, query, payload))
	if err != nil {
		return nil, fmt.Errorf("inserting search record: %w", err)
	}

	return record, nil
}

// lists a user's most recent searches
func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing search history: %w", err)
	}
	defer rows.Close()

	var result []Record

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning search record: %w", err)
		}

		result = append(result, *record)
	}

	return result, rows.Err()
}

func scanRecord(row pgx.Row) (*Record, error) {
	var (
		record  Record
		payload []byte
	)

	if err := row.Scan(&record.ID, &record.UserID, &record.Query, &payload, &record.Timestamp); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, &record.Results); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}

	return &record, nil
}
