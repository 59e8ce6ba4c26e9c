package seo

import "codeberg.org/insightsnap/server/insightsnap/settings"

// PageMeta is the public SEO projection for a page
type PageMeta struct {
	Page        string   `json:"page"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Canonical   string   `json:"canonical"`
	OGImage     string   `json:"ogImage,omitempty"`
}

// builds the public projection of an SEO record
func NewPageMeta(s *settings.SEOSettings) PageMeta {
	return PageMeta{
		Page:        s.Page,
		Title:       s.Title,
		Description: s.Description,
		Keywords:    s.Keywords,
		Canonical:   s.Canonical,
		OGImage:     s.OGImage,
	}
}
