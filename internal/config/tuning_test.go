package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmptyConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := EmptyScanConfig()

	assert.InDelta(t, 0.5*math.Pi/512, cfg.GetSmoothingHalfWidthRad(), 1e-15)
	assert.Equal(t, "scan_data.db", cfg.GetDBPath())
	assert.Equal(t, "internal/scandb/migrations", cfg.GetMigrationsDir())
	assert.Equal(t, 8000, cfg.GetChartMaxPoints())
}

func TestLoadScanConfigPartial(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "scan.json", `{"smoothing_half_width_rad": 0.01, "chart_max_points": 500}`)

	cfg, err := LoadScanConfig(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.01, cfg.GetSmoothingHalfWidthRad(), 1e-15)
	assert.Equal(t, 500, cfg.GetChartMaxPoints())
	// Omitted fields keep their defaults.
	assert.Equal(t, "scan_data.db", cfg.GetDBPath())
}

func TestLoadScanConfigRejectsNonJSON(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "scan.yaml", "smoothing_half_width_rad: 0.01")

	_, err := LoadScanConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("negative half width", func(t *testing.T) {
		t.Parallel()
		hw := -0.1
		cfg := &ScanConfig{SmoothingHalfWidthRad: &hw}
		assert.Error(t, cfg.Validate())
	})

	t.Run("half width above pi", func(t *testing.T) {
		t.Parallel()
		hw := 4.0
		cfg := &ScanConfig{SmoothingHalfWidthRad: &hw}
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive chart points", func(t *testing.T) {
		t.Parallel()
		n := 0
		cfg := &ScanConfig{ChartMaxPoints: &n}
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		hw := 0.0031
		n := 2000
		cfg := &ScanConfig{SmoothingHalfWidthRad: &hw, ChartMaxPoints: &n}
		assert.NoError(t, cfg.Validate())
	})
}

func TestMustLoadDefaultConfig(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Positive(t, cfg.GetSmoothingHalfWidthRad())
}
