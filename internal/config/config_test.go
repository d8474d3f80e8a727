package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultConfig(t *testing.T) {
	cfg := Default()

	err := Validate(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Tick())
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		TickInterval: "250ms",
		LogsDir:      "/tmp/logs",
		DriveDefaults: DriveDefaults{
			Spots:      100,
			PostLimit:  10,
			ZoneRadius: 2000,
		},
		DriveSchedules: []DriveSchedule{
			{DriveID: "drive-versova-001", RRule: "FREQ=MONTHLY;BYDAY=SU;BYSETPOS=3"},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick())
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := Default()
	cfg.LogsDir = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_DriveDefaultsOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*DriveDefaults)
	}{
		{"spots too low", func(d *DriveDefaults) { d.Spots = 4 }},
		{"spots too high", func(d *DriveDefaults) { d.Spots = 501 }},
		{"post limit zero", func(d *DriveDefaults) { d.PostLimit = 0 }},
		{"post limit too high", func(d *DriveDefaults) { d.PostLimit = 11 }},
		{"radius too small", func(d *DriveDefaults) { d.ZoneRadius = 99 }},
		{"radius too large", func(d *DriveDefaults) { d.ZoneRadius = 2001 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg.DriveDefaults)

			err := Validate(cfg)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidate_InvalidTickInterval(t *testing.T) {
	cfg := Default()
	cfg.TickInterval = "soon"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tickInterval")

	cfg.TickInterval = "-1s"
	err = Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := Default()
	cfg.DriveSchedules = []DriveSchedule{
		{DriveID: "drive-1", RRule: "FREQ=WEEKLY;BYDAY=SA"},
		{DriveID: "drive-2", RRule: "INVALID_RRULE"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule in driveSchedules[1]")
}

func TestValidate_ScheduleMissingDriveID(t *testing.T) {
	cfg := Default()
	cfg.DriveSchedules = []DriveSchedule{{RRule: "FREQ=WEEKLY"}}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestSchedule_Lookup(t *testing.T) {
	cfg := Default()
	cfg.DriveSchedules = []DriveSchedule{
		{DriveID: "drive-1", RRule: "FREQ=WEEKLY;BYDAY=SA"},
	}

	rule, ok := cfg.Schedule("drive-1")
	assert.True(t, ok)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SA", rule)

	_, ok = cfg.Schedule("drive-2")
	assert.False(t, ok)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "activibe_config.yaml")

	validConfig := `
tickInterval: "2s"
logsDir: "var/logs"
driveDefaults:
  spots: 50
  postLimit: 3
  zoneRadius: 800
driveSchedules:
  - driveID: "drive-versova-001"
    rrule: "FREQ=MONTHLY;BYDAY=SU;BYSETPOS=3"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Tick())
	assert.Equal(t, "var/logs", cfg.LogsDir)
	assert.Equal(t, DriveDefaults{Spots: 50, PostLimit: 3, ZoneRadius: 800}, cfg.DriveDefaults)
	require.Len(t, cfg.DriveSchedules, 1)
	assert.Equal(t, "drive-versova-001", cfg.DriveSchedules[0].DriveID)
}

func TestLoadFromPath_PartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	err := os.WriteFile(configPath, []byte("logsDir: \"elsewhere\"\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "elsewhere", cfg.LogsDir)
	assert.Equal(t, "1s", cfg.TickInterval)
	assert.Equal(t, Default().DriveDefaults, cfg.DriveDefaults)
	assert.Empty(t, cfg.DriveSchedules)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	invalidConfig := `
driveSchedules:
  - driveID: "drive-versova-001"
    rrule: "INVALID_RRULE_SYNTAX"
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	err := os.WriteFile(configPath, []byte("driveDefaults: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadWithEnv_PrefersEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("HOME", tmpDir)

	require.NoError(t, os.WriteFile("activibe_config.yaml", []byte("logsDir: \"base\"\n"), 0644))
	require.NoError(t, os.WriteFile("activibe_config.test.yaml", []byte("logsDir: \"test\"\n"), 0644))

	cfg, err := LoadWithEnv("test")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.LogsDir)

	cfg, err = LoadWithEnv("prod")
	require.NoError(t, err)
	assert.Equal(t, "base", cfg.LogsDir)
}

func TestLoadWithEnv_NotFound(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("HOME", tmpDir)

	_, err := LoadWithEnv("test")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
