package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := NewFlagSet("test")
	require.NoError(t, fs.Parse(args))
	return Load(fs)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadWithoutFlagSet(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Bands)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("RTA_BANDS", "8")
	t.Setenv("RTA_MIN_DB", "-90")
	t.Setenv("RTA_SHOW_LABELS", "false")

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Bands)
	assert.Equal(t, -90.0, cfg.MinDB)
	assert.False(t, cfg.ShowLabels)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("RTA_BANDS", "8")

	cfg, err := parse(t, "--bands", "12", "--backend", "tcell", "--min-db=-72")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Bands)
	assert.Equal(t, BackendTcell, cfg.Backend)
	assert.Equal(t, -72.0, cfg.MinDB)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rta.yaml")
	content := "bands: 10\nmin_db: -100\nborder: false\ntitle: live\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := parse(t, "--config", path, "--title", "override")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Bands)
	assert.Equal(t, -100.0, cfg.MinDB)
	assert.False(t, cfg.Border)
	assert.Equal(t, "override", cfg.Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := parse(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Bands = 0
	cfg.MinDB = 3
	cfg.FPS = 500
	cfg.Backend = "sdl"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"bands", "min_db", "fps", "backend", "log_level"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := parse(t, "--bands", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestDumpWritesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Dump(&buf))

	var back Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, Default(), back)
	assert.Contains(t, buf.String(), "min_db: -60")
}

func TestClampFloor(t *testing.T) {
	assert.Equal(t, MinFloorDB, ClampFloor(-200))
	assert.Equal(t, MaxFloorDB, ClampFloor(-5))
	assert.Equal(t, -65.0, ClampFloor(-65))
}

func TestValidateFloorRange(t *testing.T) {
	for _, db := range []float64{-10, -121, -1000} {
		cfg := Default()
		cfg.MinDB = db
		err := cfg.Validate()
		require.Error(t, err, "min_db %v", db)
		assert.Contains(t, err.Error(), "min_db")
	}
	for _, db := range []float64{MinFloorDB, -60, MaxFloorDB} {
		cfg := Default()
		cfg.MinDB = db
		assert.NoError(t, cfg.Validate(), "min_db %v", db)
	}
}

func TestLoadRejectsFloorOutsideRange(t *testing.T) {
	_, err := parse(t, "--min-db=-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_db")
}
