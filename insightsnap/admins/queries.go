package admins

const (
	queryFindByUsername = `
		SELECT id, username, password_hash, created_at
		FROM admins
		WHERE username = $1
	`

	queryInsertIfMissing = `
		INSERT INTO admins (id, username, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`
)
