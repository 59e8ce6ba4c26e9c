package searches

const (
	queryInsert = `
		INSERT INTO search_history (id, user_id, query, results)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, query, results, created_at
	`

	queryListByUser = `
		SELECT id, user_id, query, results, created_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
)
