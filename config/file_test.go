package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/tweeter/config"
)

func TestSave_LoadReadsItBack(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	cfg.Server.Port = 8081
	cfg.Server.ShutdownTimeout = 2 * time.Second
	cfg.Storage.Path = "/srv/tweeter"
	cfg.Log.Format = "json"

	path := filepath.Join(t.TempDir(), "nested", "tweeter.yaml")
	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load([]string{path}, nil)
	require.NoError(t, err)

	assert.Equal(t, 8081, loaded.Server.Port)
	assert.Equal(t, 2*time.Second, loaded.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, loaded.Server.ReadTimeout)
	assert.Equal(t, "/srv/tweeter", loaded.Storage.Path)
	assert.Equal(t, "json", loaded.Log.Format)
}

func TestSave_WritesSnakeCaseKeys(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))

	assert.Equal(t, 3000, raw["server"]["port"])
	assert.Equal(t, "10s", raw["server"]["read_timeout"])
	assert.Equal(t, "./public", raw["storage"]["path"])
	assert.Contains(t, raw["cors"], "allowed_origins")
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	cfg := &config.Config{}

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := config.Save(path, cfg)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
