package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new settings repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// writes a gateway's configuration, inserting or updating by gateway name
func (r *Repository) UpsertPayment(ctx context.Context, gateway string, enabled bool, creds PaymentCredentials) (*PaymentSettings, error) {
	ps, err := scanPayment(r.db.QueryRow(
		ctx,
		queryUpsertPayment,
		uuid.NewString(),
		gateway,
		enabled,
		creds.KeyID,
		creds.KeySecret,
		creds.ClientID,
		creds.ClientSecret,
	))

	if err != nil {
		return nil, fmt.Errorf("upserting payment settings: %w", err)
	}

	return ps, nil
}

// lists every gateway's configuration
func (r *Repository) ListPayment(ctx context.Context) ([]PaymentSettings, error) {
	rows, err := r.db.Query(ctx, queryListPayment)
	if err != nil {
		return nil, fmt.Errorf("listing payment settings: %w", err)
	}
	defer rows.Close()

	var result []PaymentSettings

	for rows.Next() {
		ps, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment settings: %w", err)
		}

		result = append(result, *ps)
	}

	return result, rows.Err()
}

// writes a page's SEO metadata, inserting or updating by page name
func (r *Repository) UpsertSEO(ctx context.Context, page string, fields SEOFields) (*SEOSettings, error) {
	seo, err := scanSEO(r.db.QueryRow(
		ctx,
		queryUpsertSEO,
		uuid.NewString(),
		page,
		fields.Title,
		fields.Description,
		fields.Keywords,
		fields.Canonical,
		fields.OGImage,
	))

	if err != nil {
		return nil, fmt.Errorf("upserting seo settings: %w", err)
	}

	return seo, nil
}

// lists SEO metadata for every page
func (r *Repository) ListSEO(ctx context.Context) ([]SEOSettings, error) {
	rows, err := r.db.Query(ctx, queryListSEO)
	if err != nil {
		return nil, fmt.Errorf("listing seo settings: %w", err)
	}
	defer rows.Close()

	var result []SEOSettings

	for rows.Next() {
		seo, err := scanSEO(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning seo settings: %w", err)
		}

		result = append(result, *seo)
	}

	return result, rows.Err()
}

// finds a page's SEO metadata
func (r *Repository) FindSEOByPage(ctx context.Context, page string) (*SEOSettings, error) {
	seo, err := scanSEO(r.db.QueryRow(ctx, queryFindSEOByPage, page))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPageNotFound
		}

		return nil, fmt.Errorf("finding seo settings: %w", err)
	}

	return seo, nil
}

func scanPayment(row pgx.Row) (*PaymentSettings, error) {
	var ps PaymentSettings

	err := row.Scan(
		&ps.ID,
		&ps.Gateway,
		&ps.Enabled,
		&ps.KeyID,
		&ps.KeySecret,
		&ps.ClientID,
		&ps.ClientSecret,
		&ps.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &ps, nil
}

func scanSEO(row pgx.Row) (*SEOSettings, error) {
	var seo SEOSettings

	err := row.Scan(
		&seo.ID,
		&seo.Page,
		&seo.Title,
		&seo.Description,
		&seo.Keywords,
		&seo.Canonical,
		&seo.OGImage,
		&seo.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &seo, nil
}
