package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DefaultConfigPath is the path to the canonical scan tuning defaults file.
// This is the single source of truth for all default tuning values.
const DefaultConfigPath = "config/scan.defaults.json"

// ScanConfig represents the tuning parameters for the scan layer. Fields are
// pointers so a partial JSON file only overrides what it names; the Get*
// accessors supply defaults for everything else.
type ScanConfig struct {
	// Smoothing params
	SmoothingHalfWidthRad *float64 `json:"smoothing_half_width_rad,omitempty"`

	// Sweep store params
	DBPath        *string `json:"db_path,omitempty"`
	MigrationsDir *string `json:"migrations_dir,omitempty"`

	// Debug chart params
	ChartMaxPoints *int `json:"chart_max_points,omitempty"`
}

// EmptyScanConfig returns a ScanConfig with all fields set to nil.
// Use LoadScanConfig to load actual values from the defaults file.
func EmptyScanConfig() *ScanConfig {
	return &ScanConfig{}
}

// LoadScanConfig loads a ScanConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the
// max file size. Fields omitted from the JSON file retain their default
// values, so partial configs are safe.
func LoadScanConfig(path string) (*ScanConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyScanConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical scan defaults from DefaultConfigPath.
// It searches for the file in the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *ScanConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
		"../../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadScanConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *ScanConfig) Validate() error {
	if c.SmoothingHalfWidthRad != nil {
		hw := *c.SmoothingHalfWidthRad
		if hw <= 0 || hw > math.Pi {
			return fmt.Errorf("smoothing_half_width_rad must be in (0, pi], got %f", hw)
		}
	}

	if c.ChartMaxPoints != nil {
		if *c.ChartMaxPoints <= 0 {
			return fmt.Errorf("chart_max_points must be positive, got %d", *c.ChartMaxPoints)
		}
	}

	return nil
}

// GetSmoothingHalfWidthRad returns the smoothing_half_width_rad value or the default.
func (c *ScanConfig) GetSmoothingHalfWidthRad() float64 {
	if c.SmoothingHalfWidthRad == nil {
		return 0.5 * math.Pi / 512 // default: half the beam spacing of a 1024-step quarter sweep
	}
	return *c.SmoothingHalfWidthRad
}

// GetDBPath returns the db_path value or the default.
func (c *ScanConfig) GetDBPath() string {
	if c.DBPath == nil || *c.DBPath == "" {
		return "scan_data.db"
	}
	return *c.DBPath
}

// GetMigrationsDir returns the migrations_dir value or the default.
func (c *ScanConfig) GetMigrationsDir() string {
	if c.MigrationsDir == nil || *c.MigrationsDir == "" {
		return "internal/scandb/migrations"
	}
	return *c.MigrationsDir
}

// GetChartMaxPoints returns the chart_max_points value or the default.
func (c *ScanConfig) GetChartMaxPoints() int {
	if c.ChartMaxPoints == nil {
		return 8000
	}
	return *c.ChartMaxPoints
}
