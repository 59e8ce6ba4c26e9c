package settings

const (
	paymentColumns = `id, gateway, enabled, key_id, key_secret, client_id, client_secret, updated_at`

	queryUpsertPayment = `
		INSERT INTO payment_settings (id, gateway, enabled, key_id, key_secret, client_id, client_secret)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (gateway)
		DO UPDATE SET
			enabled = EXCLUDED.enabled,
			key_id = EXCLUDED.key_id,
			key_secret = EXCLUDED.key_secret,
			client_id = EXCLUDED.client_id,
			client_secret = EXCLUDED.client_secret,
			updated_at = NOW()
		RETURNING ` + paymentColumns

	queryListPayment = `
		SELECT ` + paymentColumns + `
		FROM payment_settings
		ORDER BY gateway
	`

	seoColumns = `id, page, title, description, keywords, canonical, og_image, updated_at`

	queryUpsertSEO = `
		INSERT INTO seo_settings (id, page, title, description, keywords, canonical, og_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (page)
		DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			keywords = EXCLUDED.keywords,
			canonical = EXCLUDED.canonical,
			og_image = EXCLUDED.og_image,
			updated_at = NOW()
		RETURNING ` + seoColumns

	queryListSEO = `
		SELECT ` + seoColumns + `
		FROM seo_settings
		ORDER BY page
	`

	queryFindSEOByPage = `
		SELECT ` + seoColumns + `
		FROM seo_settings
		WHERE page = $1
	`
)
