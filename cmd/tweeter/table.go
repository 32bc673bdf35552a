package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sagarc03/tweeter"
	"github.com/sagarc03/tweeter/config"
	"github.com/sagarc03/tweeter/filesystem"
	"github.com/sagarc03/tweeter/public"
)

// loadTable reads the default resources from the configured source.
// A missing resource is an error: the table is never built partially.
func loadTable(ctx context.Context, cfg config.StorageConfig) (*tweeter.RouteTable, error) {
	if cfg.Embedded {
		slog.Debug("loading embedded resources")
		table, err := tweeter.NewDefaultRouteTable(ctx, filesystem.NewFSStorage(public.FS))
		if err != nil {
			return nil, fmt.Errorf("load embedded resources: %w", err)
		}
		return table, nil
	}

	root, err := os.OpenRoot(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open public directory: %w", err)
	}
	defer func() { _ = root.Close() }()

	slog.Debug("loading resources", "path", cfg.Path)
	table, err := tweeter.NewDefaultRouteTable(ctx, filesystem.NewFileStorage(root))
	if err != nil {
		return nil, fmt.Errorf("load resources from %s: %w", cfg.Path, err)
	}
	return table, nil
}
