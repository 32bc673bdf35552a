package tweeter

import "fmt"

const (
	ContentTypeHTML       = "text/html"
	ContentTypeCSS        = "text/css"
	ContentTypeJavaScript = "application/javascript"
)

// Resource file names, relative to the resource storage root.
const (
	IndexResource    = "index.html"
	StyleResource    = "style.css"
	ScriptResource   = "index.js"
	NotFoundResource = "404.html"
)

// Entry is a preloaded response. Content is shared by every request that
// resolves to the entry and must not be modified.
type Entry struct {
	Content     []byte
	ContentType string
	Status      int
}

// Route pairs an exact request path with the entry it resolves to.
type Route struct {
	Path string
	Entry
}

// Resource describes a file loaded into the route table at startup.
type Resource struct {
	Name        string
	ContentType string
	Paths       []string
}

// DefaultResources returns the resources of the Tweeter page.
// A new slice is returned on every call.
func DefaultResources() []Resource {
	return []Resource{
		{Name: IndexResource, ContentType: ContentTypeHTML, Paths: []string{"/", "/index.html"}},
		{Name: StyleResource, ContentType: ContentTypeCSS, Paths: []string{"/style.css"}},
		{Name: ScriptResource, ContentType: ContentTypeJavaScript, Paths: []string{"/index.js"}},
		{Name: NotFoundResource, ContentType: ContentTypeHTML, Paths: []string{"/404.html"}},
	}
}

// Validate checks that the resource has a storage name, a content type and
// at least one request path.
func (r Resource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("validate resource: %w: empty name", ErrInvalidInput)
	}

	if !IsValidResourceName(r.Name) {
		return fmt.Errorf("validate resource: %w: invalid name %q", ErrInvalidInput, r.Name)
	}

	if r.ContentType == "" {
		return fmt.Errorf("validate resource %s: %w: empty content type", r.Name, ErrInvalidInput)
	}

	if len(r.Paths) == 0 {
		return fmt.Errorf("validate resource %s: %w: no request paths", r.Name, ErrInvalidInput)
	}

	for _, p := range r.Paths {
		if !IsValidRequestPath(p) {
			return fmt.Errorf("validate resource %s: %w: invalid request path %q", r.Name, ErrInvalidInput, p)
		}
	}

	return nil
}
