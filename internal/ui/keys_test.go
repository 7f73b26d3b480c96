package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/clipvox/internal/config"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), "j"},
		{tcell.NewEventKey(tcell.KeyRune, 'T', tcell.ModShift), "T"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModAlt), "alt+c"},
		{tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModAlt), "alt+shift+c"},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModAlt|tcell.ModShift), "alt+shift+k"},
		{tcell.NewEventKey(tcell.KeyRune, '&', tcell.ModAlt), "alt+shift+7"},
		{tcell.NewEventKey(tcell.KeyRune, '(', tcell.ModAlt), "alt+shift+9"},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "ctrl+c"},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModAlt), "alt+down"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
	}
	for _, tt := range tests {
		if got := keyString(tt.ev); got != tt.want {
			t.Fatalf("keyString(%v) = %q, want %q", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestDefaultKeymapActionsAreKnown(t *testing.T) {
	tv := newTestView(t, "text")
	for key, action := range config.Default().Keymap {
		if action == ActionQuit {
			continue
		}
		tv.Do(action)
		if strings.HasPrefix(tv.Status(), "unknown action") {
			t.Fatalf("key %q maps to unknown action %q", key, action)
		}
	}
}

func TestHandleKeyDispatches(t *testing.T) {
	tv := newTestView(t, "one", "two")
	if tv.HandleKey(tcell.NewEventKey(tcell.KeyRune, '(', tcell.ModAlt)) {
		t.Fatalf("next_item reported quit")
	}
	if tv.rec.Last() != "1, one" {
		t.Fatalf("spoke %q, want %q", tv.rec.Last(), "1, one")
	}
	if !tv.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatalf("q did not quit")
	}
	if tv.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModShift)) {
		t.Fatalf("unbound key reported quit")
	}
}
