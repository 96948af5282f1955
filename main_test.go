package main

import (
	"testing"

	"github.com/atomicstack/slashpad/internal/app"
	"github.com/atomicstack/slashpad/internal/config"
	"github.com/atomicstack/slashpad/internal/settings"
	"github.com/atomicstack/slashpad/internal/ui"
)

func TestStartupPayloadCarriesEditorSettings(t *testing.T) {
	tunables := settings.Default()
	tunables.Dropdown.MaxVisible = 5
	cfg := config.Config{
		App: app.Config{
			ShowFooter: true,
			AttachDir:  "/tmp/files",
			Settings:   tunables,
		},
		Features: config.Features{Mouse: true},
		Flags:    map[string]string{"settings": "menu.toml"},
		Args:     []string{"-settings", "menu.toml"},
	}

	payload := startupTracePayload(cfg, terminalSize{Source: "/dev/stdout", Width: 120, Height: 40})

	details, ok := payload["editor"].(editorDetails)
	if !ok {
		t.Fatalf("expected editor details in payload")
	}
	want := editorDetails{Placeholder: ui.DefaultPlaceholder, AttachDir: "/tmp/files", Mouse: true, Footer: true}
	if details != want {
		t.Fatalf("expected %+v, got %+v", want, details)
	}
	if payload["settingsFile"] != "menu.toml" {
		t.Fatalf("expected settings file menu.toml, got %v", payload["settingsFile"])
	}
	got, ok := payload["settings"].(settings.Settings)
	if !ok || got.Dropdown.MaxVisible != 5 {
		t.Fatalf("expected resolved settings with max visible 5, got %#v", payload["settings"])
	}
	if size := payload["size"]; size != [2]int{120, 40} {
		t.Fatalf("expected probed size 120x40, got %v", size)
	}
}

func TestStartupPayloadKeepsConfiguredPlaceholderAndSize(t *testing.T) {
	cfg := config.Config{
		App: app.Config{Width: 80, Height: 24, Placeholder: "Type here", Settings: settings.Default()},
	}

	payload := startupTracePayload(cfg, terminalSize{})

	if got := payload["editor"].(editorDetails).Placeholder; got != "Type here" {
		t.Fatalf("expected placeholder %q, got %q", "Type here", got)
	}
	if size := payload["size"]; size != [2]int{80, 24} {
		t.Fatalf("expected fixed size 80x24, got %v", size)
	}
	if tty := payload["terminal"].(terminalSize); tty.Source != "" {
		t.Fatalf("expected no terminal source, got %q", tty.Source)
	}
}
