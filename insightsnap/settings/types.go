package settings

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles payment and SEO settings database operations
type Repository struct {
	db *pgxpool.Pool
}

// ErrPageNotFound means no SEO record exists for the requested page
var ErrPageNotFound = errors.New("seo settings not found")

// PaymentSettings is the per-gateway configuration. The credential
// fields are opaque to this system: they are stored and echoed back to
// administrators, never used to contact the gateway.
type PaymentSettings struct {
	ID           string    `json:"id"`
	Gateway      string    `json:"gateway"`
	Enabled      bool      `json:"enabled"`
	KeyID        string    `json:"keyId,omitempty"`
	KeySecret    string    `json:"-"`
	ClientID     string    `json:"clientId,omitempty"`
	ClientSecret string    `json:"-"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PaymentCredentials is the opaque credential bag supplied on update
type PaymentCredentials struct {
	KeyID        string `json:"keyId"`
	KeySecret    string `json:"keySecret"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// SEOSettings is the per-page metadata record
type SEOSettings struct {
	ID          string    `json:"id"`
	Page        string    `json:"page"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Canonical   string    `json:"canonical"`
	OGImage     string    `json:"ogImage,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SEOFields carries the writable SEO attributes for upserts
type SEOFields struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	OGImage     string
}
