package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/slashpad/internal/menu"
)

func commandTitles(cmds []menu.Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Title
	}
	return out
}

func TestFilterCommandsBlankQueryReturnsAll(t *testing.T) {
	cmds := menu.DefaultCommands()
	for _, q := range []string{"", "  "} {
		got := FilterCommands(cmds, q)
		if !reflect.DeepEqual(commandTitles(got), commandTitles(cmds)) {
			t.Fatalf("query %q: expected full registry, got %v", q, commandTitles(got))
		}
	}
}

func TestFilterCommandsWordPrefix(t *testing.T) {
	got := commandTitles(FilterCommands(menu.DefaultCommands(), "bul"))
	if !reflect.DeepEqual(got, []string{"Bullet List"}) {
		t.Fatalf("expected only Bullet List, got %v", got)
	}
}

func TestFilterCommandsCaseInsensitiveSubstring(t *testing.T) {
	got := commandTitles(FilterCommands(menu.DefaultCommands(), "CODE"))
	want := []string{"Inline Code", "Code Block"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterCommandsKeepsRegistryOrder(t *testing.T) {
	cmds := []menu.Command{{Title: "Zeta list"}, {Title: "Alpha list"}, {Title: "Other"}}
	got := commandTitles(FilterCommands(cmds, "list"))
	if !reflect.DeepEqual(got, []string{"Zeta list", "Alpha list"}) {
		t.Fatalf("expected registry order, got %v", got)
	}
}

func TestFilterCommandsNoMatch(t *testing.T) {
	if got := FilterCommands(menu.DefaultCommands(), "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", commandTitles(got))
	}
}
