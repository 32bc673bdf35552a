package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/sagarc03/tweeter"
	"github.com/sagarc03/tweeter/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRoot(t *testing.T, dir string) *os.Root {
	t.Helper()

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	return root
}

func TestStore_Read_Success(t *testing.T) {
	tempDir := t.TempDir()
	content := []byte("<html>tweeter</html>")
	err := os.WriteFile(filepath.Join(tempDir, "index.html"), content, 0o644)
	require.NoError(t, err)

	store := filesystem.NewFileStorage(openRoot(t, tempDir))

	result, err := store.Read(context.Background(), "index.html")

	assert.NoError(t, err)
	assert.Equal(t, content, result)
}

func TestStore_Read_EmptyFile(t *testing.T) {
	tempDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tempDir, "style.css"), nil, 0o644)
	require.NoError(t, err)

	store := filesystem.NewFileStorage(openRoot(t, tempDir))

	result, err := store.Read(context.Background(), "style.css")

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestStore_Read_ContextCanceled(t *testing.T) {
	store := filesystem.NewFileStorage(openRoot(t, t.TempDir()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := store.Read(ctx, "index.html")

	assert.Nil(t, result)
	assert.Equal(t, context.Canceled, err)
}

func TestStore_Read_NotFound(t *testing.T) {
	store := filesystem.NewFileStorage(openRoot(t, t.TempDir()))

	result, err := store.Read(context.Background(), "404.html")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, tweeter.ErrNotFound)
	assert.Contains(t, err.Error(), "404.html")
}

func TestStore_Read_Directory(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "assets"), 0o755))

	store := filesystem.NewFileStorage(openRoot(t, tempDir))

	result, err := store.Read(context.Background(), "assets")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, tweeter.ErrInvalidInput)
}

func TestStore_Read_PathTraversal(t *testing.T) {
	parent := t.TempDir()
	publicDir := filepath.Join(parent, "public")
	require.NoError(t, os.Mkdir(publicDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("secret"), 0o644))

	store := filesystem.NewFileStorage(openRoot(t, publicDir))

	for _, name := range []string{"../secret.txt", "/secret.txt", "./index.html"} {
		t.Run(name, func(t *testing.T) {
			result, err := store.Read(context.Background(), name)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tweeter.ErrInvalidInput)
		})
	}
}

func TestStore_Read_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"index.js": &fstest.MapFile{Data: []byte("console.log('hi');")},
	}
	store := filesystem.NewFSStorage(fsys)

	result, err := store.Read(context.Background(), "index.js")
	assert.NoError(t, err)
	assert.Equal(t, []byte("console.log('hi');"), result)

	_, err = store.Read(context.Background(), "missing.js")
	assert.ErrorIs(t, err, tweeter.ErrNotFound)
}

func TestStore_ImplementsResourceStorage(t *testing.T) {
	var _ tweeter.ResourceStorage = filesystem.NewFSStorage(fstest.MapFS{})
}

func TestStore_BuildsDefaultRouteTable(t *testing.T) {
	tempDir := t.TempDir()
	files := map[string]string{
		"index.html": "<html>home</html>",
		"style.css":  "body {}",
		"index.js":   "void 0;",
		"404.html":   "<html>missing</html>",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte(content), 0o644))
	}

	table, err := tweeter.NewDefaultRouteTable(context.Background(), filesystem.NewFileStorage(openRoot(t, tempDir)))
	require.NoError(t, err)

	assert.Equal(t, []byte("body {}"), table.Resolve("/style.css").Content)
	assert.Equal(t, []byte("<html>missing</html>"), table.Resolve("/nope").Content)
}
