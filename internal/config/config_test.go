package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThePyromage/dungeonGenerator/internal/generation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	for _, env := range []string{"SERVER_ADDR", "DUNGEON_MAX_BATCH", "DUNGEON_WORKERS", "DUNGEON_CACHE_SIZE"} {
		t.Setenv(env, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `{
		"server_addr": "127.0.0.1:9000",
		"max_batch": 8,
		"generator": {"width": 21, "height": 21, "room_gen_tries": 10, "winding_percent": 60}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, 8, cfg.MaxBatch)
	assert.Equal(t, 4, cfg.Workers, "unset fields keep defaults")
	assert.Equal(t, 21, cfg.Generator.Width)
	assert.Equal(t, 60, cfg.Generator.WindingPercent)
	assert.Equal(t, 20, cfg.Generator.ExtraConnectorChance)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("DUNGEON_MAX_BATCH", "3")
	t.Setenv("DUNGEON_CACHE_SIZE", "0")

	cfg, err := Load(writeConfig(t, `{"server_addr": ":1234", "max_batch": 50}`))
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ServerAddr)
	assert.Equal(t, 3, cfg.MaxBatch)
	assert.Equal(t, 0, cfg.CacheSize)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `{"max_batch": `))
	require.Error(t, err)

	_, err = Load(writeConfig(t, `{"workers": 0}`))
	assert.True(t, errors.Is(err, ErrInvalid))

	_, err = Load(writeConfig(t, `{"generator": {"width": 20, "height": 21}}`))
	assert.True(t, errors.Is(err, generation.ErrEvenDimension))

	t.Setenv("DUNGEON_WORKERS", "many")
	_, err = Load("")
	require.Error(t, err)
}
