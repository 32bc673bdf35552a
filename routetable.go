package tweeter

import (
	"cmp"
	"context"
	"fmt"
	"net/http"
	"slices"
)

// ResourceStorage reads resource files by name.
type ResourceStorage interface {
	// Read returns the full content of the named resource.
	// It returns an error wrapping ErrNotFound if the resource does not exist.
	Read(ctx context.Context, name string) ([]byte, error)
}

// RouteTable resolves request paths to preloaded entries.
// It is immutable after construction and safe for concurrent use.
type RouteTable struct {
	routes   map[string]Entry
	fallback Entry
}

// NewDefaultRouteTable builds the Tweeter route table from storage,
// using DefaultResources and NotFoundResource as the fallback.
func NewDefaultRouteTable(ctx context.Context, storage ResourceStorage) (*RouteTable, error) {
	return NewRouteTable(ctx, storage, DefaultResources(), NotFoundResource)
}

// NewRouteTable reads every resource from storage and returns the table.
//
// Each resource is read exactly once; all of its paths share the same
// content. The resource named fallback answers every path that is not in the
// table, with status 404. A resource that cannot be read aborts construction,
// so a table never exists with missing content.
func NewRouteTable(ctx context.Context, storage ResourceStorage, resources []Resource, fallback string) (*RouteTable, error) {
	if storage == nil {
		return nil, fmt.Errorf("new route table: %w: storage is nil", ErrInvalidInput)
	}

	routes := make(map[string]Entry)
	names := make(map[string]struct{}, len(resources))

	var (
		fallbackEntry Entry
		fallbackFound bool
	)

	for _, res := range resources {
		if err := res.Validate(); err != nil {
			return nil, fmt.Errorf("new route table: %w", err)
		}

		if _, dup := names[res.Name]; dup {
			return nil, fmt.Errorf("new route table: %w: duplicate resource %s", ErrInvalidInput, res.Name)
		}
		names[res.Name] = struct{}{}

		content, err := storage.Read(ctx, res.Name)
		if err != nil {
			return nil, fmt.Errorf("new route table: read %s: %w", res.Name, err)
		}

		entry := Entry{
			Content:     content,
			ContentType: res.ContentType,
			Status:      http.StatusOK,
		}

		for _, p := range res.Paths {
			if _, dup := routes[p]; dup {
				return nil, fmt.Errorf("new route table: %w: duplicate path %s", ErrInvalidInput, p)
			}
			routes[p] = entry
		}

		if res.Name == fallback {
			fallbackEntry = entry
			fallbackEntry.Status = http.StatusNotFound
			fallbackFound = true
		}
	}

	if !fallbackFound {
		return nil, fmt.Errorf("new route table: %w: fallback resource %q is not in the resource list", ErrInvalidInput, fallback)
	}

	return &RouteTable{
		routes:   routes,
		fallback: fallbackEntry,
	}, nil
}

// Resolve returns the entry for requestPath. Paths are matched exactly;
// anything not in the table resolves to the fallback entry.
func (t *RouteTable) Resolve(requestPath string) Entry {
	if entry, ok := t.routes[requestPath]; ok {
		return entry
	}
	return t.fallback
}

// Fallback returns the entry served for unknown paths.
func (t *RouteTable) Fallback() Entry {
	return t.fallback
}

// Routes returns every exact route, sorted by path.
func (t *RouteTable) Routes() []Route {
	routes := make([]Route, 0, len(t.routes))
	for p, entry := range t.routes {
		routes = append(routes, Route{Path: p, Entry: entry})
	}

	slices.SortFunc(routes, func(a, b Route) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return routes
}
