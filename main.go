package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/slashpad/internal/app"
	"github.com/atomicstack/slashpad/internal/config"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/ui"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Sync()

	events.App.Start(startupTracePayload(cfg, probeTerminal()))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// editorDetails is what every editor on the page starts with.
type editorDetails struct {
	Placeholder string `json:"placeholder"`
	AttachDir   string `json:"attach_dir"`
	Mouse       bool   `json:"mouse"`
	Footer      bool   `json:"footer"`
}

// terminalSize is the first descriptor that answered as a terminal. Source
// is empty when none did.
type terminalSize struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// startupTracePayload records the resolved settings the editors run with.
func startupTracePayload(cfg config.Config, tty terminalSize) map[string]interface{} {
	placeholder := cfg.App.Placeholder
	if placeholder == "" {
		placeholder = ui.DefaultPlaceholder
	}
	return map[string]interface{}{
		"argv":         cfg.Args,
		"flags":        cfg.Flags,
		"settingsFile": cfg.Flags["settings"],
		"settings":     cfg.App.Settings,
		"editor": editorDetails{
			Placeholder: placeholder,
			AttachDir:   cfg.App.AttachDir,
			Mouse:       cfg.Features.Mouse,
			Footer:      cfg.App.ShowFooter,
		},
		"size":     viewportSize(cfg.App, tty),
		"terminal": tty,
	}
}

// viewportSize reports the size the app will lay out for: fixed flags win
// over the probed terminal.
func viewportSize(cfg app.Config, tty terminalSize) [2]int {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = tty.Width
	}
	if h == 0 {
		h = tty.Height
	}
	return [2]int{w, h}
}

func probeTerminal() terminalSize {
	for _, f := range []*os.File{os.Stdout, os.Stdin} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if w, h, err := term.GetSize(fd); err == nil {
			return terminalSize{Source: f.Name(), Width: w, Height: h}
		}
	}
	return terminalSize{}
}
