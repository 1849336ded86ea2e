package domain

import (
	"encoding/json"
	"time"
)

// ContentResource names a CMS collection.
type ContentResource string

const (
	ContentSiteText     ContentResource = "site_text"
	ContentImages       ContentResource = "images"
	ContentPortfolio    ContentResource = "portfolio"
	ContentPackages     ContentResource = "packages"
	ContentTestimonials ContentResource = "testimonials"
	ContentContactInfo  ContentResource = "contact_info"
	ContentPageSections ContentResource = "page_sections"
)

var contentResources = map[ContentResource]struct{}{
	ContentSiteText:     {},
	ContentImages:       {},
	ContentPortfolio:    {},
	ContentPackages:     {},
	ContentTestimonials: {},
	ContentContactInfo:  {},
	ContentPageSections: {},
}

// Valid reports whether r is a known collection.
func (r ContentResource) Valid() bool {
	_, ok := contentResources[r]
	return ok
}

// ContentEntry is one keyed item of a collection. Value is opaque JSON owned by the site.
// Draft entries are only visible to admins and share-link previews.
type ContentEntry struct {
	Resource  ContentResource `json:"resource"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	Draft     bool            `json:"draft"`
	SortOrder int             `json:"sortOrder"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
