// Package settings holds the tunable constants of the slash menu: popup
// placement, host-binding timing, selectors, class names and key names.
// Defaults mirror the values the menu shipped with; a TOML file can override
// any subset of them.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the configuration object exposed to embedders.
type Settings struct {
	Dropdown  Dropdown  `toml:"dropdown"`
	Timing    Timing    `toml:"timing"`
	Selectors Selectors `toml:"selectors"`
	Classes   Classes   `toml:"classes"`
	Keys      Keys      `toml:"keys"`
}

type Dropdown struct {
	OffsetY        int    `toml:"offset_y"`
	ScrollBehavior string `toml:"scroll_behavior"`
	MaxVisible     int    `toml:"max_visible"`
	MinWidth       int    `toml:"min_width"`
}

// Timing values are expressed in milliseconds in the file.
type Timing struct {
	RetryInterval Millis `toml:"retry_interval"`
	MaxRetries    int    `toml:"max_retries"`
	InitialDelay  Millis `toml:"initial_delay"`
	TurboDelay    Millis `toml:"turbo_delay"`
}

type Selectors struct {
	Editor    string `toml:"editor"`
	FileInput string `toml:"file_input"`
	Paragraph string `toml:"paragraph"`
}

type Classes struct {
	Dropdown string `toml:"dropdown"`
	Item     string `toml:"item"`
	Selected string `toml:"selected"`
	Empty    string `toml:"empty"`
}

// Keys use Bubble Tea key names (tea.KeyMsg.String()).
type Keys struct {
	Escape    string `toml:"escape"`
	ArrowDown string `toml:"arrow_down"`
	ArrowUp   string `toml:"arrow_up"`
	Enter     string `toml:"enter"`
	Tab       string `toml:"tab"`
}

// Millis is a duration stored as an integer count of milliseconds.
type Millis int

// Duration converts the value to a time.Duration.
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

const ScrollNearest = "nearest"

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Dropdown: Dropdown{
			OffsetY:        0,
			ScrollBehavior: ScrollNearest,
			MaxVisible:     8,
			MinWidth:       24,
		},
		Timing: Timing{
			RetryInterval: 200,
			MaxRetries:    10,
			InitialDelay:  100,
			TurboDelay:    500,
		},
		Selectors: Selectors{
			Editor:    "slash-editor",
			FileInput: "#file-input",
			Paragraph: "p",
		},
		Classes: Classes{
			Dropdown: "slash-commands-dropdown",
			Item:     "slash-command-item",
			Selected: "selected",
			Empty:    "is-empty",
		},
		Keys: Keys{
			Escape:    "esc",
			ArrowDown: "down",
			ArrowUp:   "up",
			Enter:     "enter",
			Tab:       "tab",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := Validate(s); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the menu cannot operate with.
func Validate(s Settings) error {
	var errs []error
	if s.Dropdown.MaxVisible <= 0 {
		errs = append(errs, fmt.Errorf("dropdown.max_visible must be > 0 (got %d)", s.Dropdown.MaxVisible))
	}
	if s.Dropdown.ScrollBehavior != ScrollNearest {
		errs = append(errs, fmt.Errorf("dropdown.scroll_behavior %q is not supported", s.Dropdown.ScrollBehavior))
	}
	if s.Timing.RetryInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.retry_interval must be > 0 (got %d)", s.Timing.RetryInterval))
	}
	if s.Timing.MaxRetries <= 0 {
		errs = append(errs, fmt.Errorf("timing.max_retries must be > 0 (got %d)", s.Timing.MaxRetries))
	}
	if s.Timing.InitialDelay < 0 || s.Timing.TurboDelay < 0 {
		errs = append(errs, errors.New("timing delays must be >= 0"))
	}
	keys := map[string]string{
		"escape":     s.Keys.Escape,
		"arrow_down": s.Keys.ArrowDown,
		"arrow_up":   s.Keys.ArrowUp,
		"enter":      s.Keys.Enter,
		"tab":        s.Keys.Tab,
	}
	for name, value := range keys {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("keys.%s must not be empty", name))
		}
	}
	if strings.TrimSpace(s.Selectors.Editor) == "" {
		errs = append(errs, errors.New("selectors.editor must not be empty"))
	}
	return errors.Join(errs...)
}
