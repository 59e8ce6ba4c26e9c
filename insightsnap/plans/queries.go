package plans

const (
	planColumns = `id, name, description, price, billing, trial_info, features,
		searches_per_day, ai_generations, exports_per_month, results_per_category,
		is_popular, is_active, created_at, updated_at`

	queryCreate = `
		INSERT INTO pricing_plans (id, name, description, price, billing, trial_info, features,
			searches_per_day, ai_generations, exports_per_month, results_per_category,
			is_popular, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + planColumns

	queryUpdate = `
		UPDATE pricing_plans
		SET name = $2, description = $3, price = $4, billing = $5, trial_info = $6,
			features = $7, searches_per_day = $8, ai_generations = $9,
			exports_per_month = $10, results_per_category = $11,
			is_popular = $12, is_active = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + planColumns

	queryDelete = `
		DELETE FROM pricing_plans
		WHERE id = $1
	`

	queryFindByID = `
		SELECT ` + planColumns + `
		FROM pricing_plans
		WHERE id = $1
	`

	queryFindByName = `
		SELECT ` + planColumns + `
		FROM pricing_plans
		WHERE name = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	queryListAll = `
		SELECT ` + planColumns + `
		FROM pricing_plans
		ORDER BY price ASC
	`

	queryListActive = `
		SELECT ` + planColumns + `
		FROM pricing_plans
		WHERE is_active = TRUE
		ORDER BY price ASC
	`
)
