package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	require.Zero(t, cfg.App.Width)
	require.True(t, cfg.App.Mouse)
	require.Equal(t, 8, cfg.App.Settings.Dropdown.MaxVisible)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"-width", "100", "-placeholder", "Say something"},
		[]string{"SLASHPAD_WIDTH=90", "SLASHPAD_HEIGHT=30", "SLASHPAD_MOUSE=false", "SLASHPAD_TRACE=1"},
	)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.App.Width)
	require.Equal(t, 30, cfg.App.Height)
	require.False(t, cfg.App.Mouse)
	require.True(t, cfg.Logging.Trace)
	require.Equal(t, "Say something", cfg.App.Placeholder)
	require.Equal(t, "100", cfg.Flags["width"])
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	_, err := LoadArgs([]string{"-height", "-1"}, nil)
	require.Error(t, err)
}

func TestLoadArgsReadsSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slashpad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dropdown]\nmax_visible = 5\n"), 0o644))
	cfg, err := LoadArgs([]string{"-settings", path}, nil)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.App.Settings.Dropdown.MaxVisible)
	require.Equal(t, 200, int(cfg.App.Settings.Timing.RetryInterval))
}

func TestValidateAttachDir(t *testing.T) {
	cfg, err := LoadArgs([]string{"-attach-dir", filepath.Join(t.TempDir(), "missing")}, nil)
	require.NoError(t, err)
	require.Error(t, Validate(cfg))
}
