package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/slashpad/internal/app"
	"github.com/atomicstack/slashpad/internal/settings"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
	Mouse   bool
}

const (
	envWidth       = "SLASHPAD_WIDTH"
	envHeight      = "SLASHPAD_HEIGHT"
	envShowFooter  = "SLASHPAD_FOOTER"
	envVerbose     = "SLASHPAD_VERBOSE"
	envTrace       = "SLASHPAD_TRACE"
	envLogFile     = "SLASHPAD_LOG_FILE"
	envSettings    = "SLASHPAD_SETTINGS"
	envPlaceholder = "SLASHPAD_PLACEHOLDER"
	envMouse       = "SLASHPAD_MOUSE"
	envAttachDir   = "SLASHPAD_ATTACH_DIR"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("slashpad", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	settingsPath := fs.String("settings", envOrDefault(env, envSettings, ""), "path to a TOML file overriding slash menu settings")
	placeholder := fs.String("placeholder", envOrDefault(env, envPlaceholder, ""), "text shown in empty paragraphs")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse hover and click support")
	attachDir := fs.String("attach-dir", envOrDefault(env, envAttachDir, ""), "directory the file picker starts in")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	tunables, err := settings.Load(*settingsPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			Mouse:       *mouse,
			Placeholder: *placeholder,
			AttachDir:   *attachDir,
			Settings:    tunables,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
			Mouse:   *mouse,
		},
		Flags: map[string]string{
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
			"settings":    *settingsPath,
			"placeholder": *placeholder,
			"mouse":       strconv.FormatBool(*mouse),
			"attachDir":   *attachDir,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the slash menu settings are usable.
func Validate(cfg Config) error {
	if err := settings.Validate(cfg.App.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if dir := cfg.App.AttachDir; dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("attach-dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("attach-dir %s is not a directory", dir)
		}
	}
	return nil
}
