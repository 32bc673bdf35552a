// Package filesystem provides resource storage backends for tweeter.
// It reads resources from a sandboxed directory (os.Root) or from any
// fs.FS, such as the embedded public.FS.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sagarc03/tweeter"
)

// Store provides read access to resource files.
type Store struct {
	fsys fs.FS
}

// NewFileStorage creates a new Store reading from the given root directory.
// The root provides sandboxed file operations preventing path traversal.
func NewFileStorage(root *os.Root) *Store {
	return &Store{fsys: root.FS()}
}

// NewFSStorage creates a new Store reading from fsys.
func NewFSStorage(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Read returns the content of the named file. It returns tweeter.ErrNotFound
// if the file does not exist and tweeter.ErrInvalidInput if the name is not a
// valid slash-separated relative path or names a directory.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", tweeter.ErrNotFound, name)
		case errors.Is(err, fs.ErrInvalid):
			return nil, fmt.Errorf("%w: invalid path %q", tweeter.ErrInvalidInput, name)
		default:
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close file", "name", name, "err", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", tweeter.ErrInvalidInput, name)
	}

	content, err := io.ReadAll(&ctxReader{ctx: ctx, r: f})
	if err != nil {
		return nil, fmt.Errorf("could not read file contents: %w", err)
	}

	return content, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
