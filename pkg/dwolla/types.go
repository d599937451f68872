package dwolla

import "strings"

// Link represents a single HAL link.
type Link struct {
	Href         string `json:"href"                    yaml:"href"`
	Type         string `json:"type,omitempty"          yaml:"type,omitempty"`
	ResourceType string `json:"resource-type,omitempty" yaml:"resource-type,omitempty"`
}

// Links maps HAL relation names to links.
type Links map[string]Link

// Has reports whether the relation is present.
func (l Links) Has(rel string) bool {
	_, ok := l[rel]

	return ok
}

// Href returns the target URL of the relation, or "" when it is absent.
func (l Links) Href(rel string) string {
	return l[rel].Href
}

// Resource is the common base embedded by all API resources.
type Resource struct {
	Links Links `json:"_links,omitempty" yaml:"_links,omitempty"`
}

// SelfHref returns the canonical URL of the resource, or "" when the
// resource carries no self link.
func (r *Resource) SelfHref() string {
	return r.Links.Href("self")
}

// ListResponse represents a paginated HAL collection. The embedded
// collection sits under a resource-specific key ("customers",
// "transfers", ...), so it is modeled as a single-entry map.
type ListResponse[T any] struct {
	Links    Links          `json:"_links,omitempty" yaml:"_links,omitempty"`
	Embedded map[string][]T `json:"_embedded"        yaml:"_embedded"`
	Total    int            `json:"total,omitempty"  yaml:"total,omitempty"`
}

// Resources returns the embedded collection regardless of its key.
func (l *ListResponse[T]) Resources() []T {
	for _, items := range l.Embedded {
		return items
	}

	return nil
}

// NextHref returns the URL of the next page, or "" on the last page.
func (l *ListResponse[T]) NextHref() string {
	return l.Links.Href("next")
}

// PrevHref returns the URL of the previous page, or "" on the first page.
func (l *ListResponse[T]) PrevHref() string {
	return l.Links.Href("prev")
}

// Amount represents a monetary value. Values travel as decimal strings
// so no precision is lost in transit.
type Amount struct {
	Value    string `json:"value"    yaml:"value"`
	Currency string `json:"currency" yaml:"currency"`
}

// ResourceIDFromHref extracts the trailing path segment of a resource
// URL. Create operations answer with a Location header such as
// "https://api.example.com/customers/132a-...", and the trailing
// segment is the resource id.
func ResourceIDFromHref(href string) string {
	trimmed := strings.TrimSuffix(href, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ""
	}

	return trimmed[idx+1:]
}
