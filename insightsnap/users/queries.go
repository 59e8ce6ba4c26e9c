package users

const (
	userColumns = `id, name, email, password_hash, plan,
		searches_remaining, ai_generations_remaining, exports_remaining,
		searches_used_today, ai_generations_used_today, exports_used_this_month,
		last_reset_date, created_at, updated_at`

	ledgerColumns = `searches_remaining, ai_generations_remaining, exports_remaining,
		searches_used_today, ai_generations_used_today, exports_used_this_month,
		last_reset_date`

	queryCreate = `
		INSERT INTO users (id, name, email, password_hash, plan,
			searches_remaining, ai_generations_remaining, exports_remaining,
			last_reset_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryFindByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	queryList = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`

	queryLedger = `
		SELECT ` + ledgerColumns + `
		FROM users
		WHERE id = $1
	`

	queryExists = `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
	`

	// the conditional consume statements: the WHERE clause refuses a zero
	// balance and the CASE keeps the unlimited sentinel in place, so the
	// check and the decrement land in one atomic update

	queryConsumeSearch = `
		UPDATE users
		SET searches_remaining = CASE WHEN searches_remaining = -1 THEN -1 ELSE searches_remaining - 1 END,
			searches_used_today = searches_used_today + 1,
			updated_at = NOW()
		WHERE id = $1 AND searches_remaining <> 0
		RETURNING ` + ledgerColumns

	queryConsumeAIGeneration = `
		UPDATE users
		SET ai_generations_remaining = CASE WHEN ai_generations_remaining = -1 THEN -1 ELSE ai_generations_remaining - 1 END,
			ai_generations_used_today = ai_generations_used_today + 1,
			updated_at = NOW()
		WHERE id = $1 AND ai_generations_remaining <> 0
		RETURNING ` + ledgerColumns

	queryConsumeExport = `
		UPDATE users
		SET exports_remaining = CASE WHEN exports_remaining = -1 THEN -1 ELSE exports_remaining - 1 END,
			exports_used_this_month = exports_used_this_month + 1,
			updated_at = NOW()
		WHERE id = $1 AND exports_remaining <> 0
		RETURNING ` + ledgerColumns

	// plan name and ledger reset travel in one statement so no reader
	// ever sees an upgraded plan with a stale ledger
	querySetPlan = `
		UPDATE users
		SET plan = $2,
			searches_remaining = $3,
			ai_generations_remaining = $4,
			exports_remaining = $5,
			searches_used_today = 0,
			ai_generations_used_today = 0,
			exports_used_this_month = 0,
			last_reset_date = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	queryOverrideBalances = `
		UPDATE users
		SET searches_remaining = COALESCE($2, searches_remaining),
			ai_generations_remaining = COALESCE($3, ai_generations_remaining),
			exports_remaining = COALESCE($4, exports_remaining),
			updated_at = NOW()
		WHERE id = $1
	`
)
