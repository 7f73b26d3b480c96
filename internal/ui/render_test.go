package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func rowText(cells []tcell.SimCell, w, y int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRenderLayout(t *testing.T) {
	tv := newTestView(t, "hello", strings.Repeat("x", 150))
	tv.SetKeyboardLayout("ABC")
	tv.Do(ActionNextItem)

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer s.Fini()
	s.SetSize(40, 8)

	tv.Render(s)
	cells, w, h := s.GetContents()

	if got := rowText(cells, w, 0); got != "1  hello" {
		t.Fatalf("row 0 = %q, want %q", got, "1  hello")
	}
	if got := rowText(cells, w, 1); got != "2  "+strings.Repeat("x", 37) {
		t.Fatalf("row 1 = %q", got)
	}
	if got := rowText(cells, w, 5); got != "hello" {
		t.Fatalf("current line row = %q, want %q", got, "hello")
	}
	if got := rowText(cells, w, 6); got != "> 1, hello" {
		t.Fatalf("detail row = %q, want %q", got, "> 1, hello")
	}
	status := rowText(cells, w, h-1)
	if !strings.HasPrefix(status, " 2 items") {
		t.Fatalf("status = %q, want item count first", status)
	}
	if !strings.HasSuffix(status, "Ln 1, Col 1, 5 chars | ABC") {
		t.Fatalf("status = %q, want position and layout last", status)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	tv := newTestView(t, "a")
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer s.Fini()
	s.SetSize(10, 2)
	tv.Render(s)

	cells, w, _ := s.GetContents()
	if got := rowText(cells, w, 0); got != "1  a" {
		t.Fatalf("row 0 = %q, want %q", got, "1  a")
	}
}

func TestItemLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "short", "short"},
		{"exact", strings.Repeat("y", 100), strings.Repeat("y", 100)},
		{"long", strings.Repeat("x", 150), strings.Repeat("x", 100) + " ~~"},
		{"combining", strings.Repeat("e\u0301", 60), strings.Repeat("e\u0301", 50) + " ~~"},
	}
	for _, tt := range tests {
		if got := ItemLabel(tt.in); got != tt.want {
			t.Fatalf("%s: ItemLabel = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestComposeStatusLine(t *testing.T) {
	tests := []struct {
		left, right string
		width       int
		want        string
	}{
		{"left", "right", 12, "left   right"},
		{"left", "right", 3, "ght"},
		{"中", "ab", 5, "中 ab"},
		{"toolong", "ab", 5, "too" + "ab"},
	}
	for _, tt := range tests {
		if got := composeStatusLine(tt.left, tt.right, tt.width); got != tt.want {
			t.Fatalf("composeStatusLine(%q, %q, %d) = %q, want %q", tt.left, tt.right, tt.width, got, tt.want)
		}
	}
}

func TestRenderInputPrompt(t *testing.T) {
	tv := newTestView(t, "hello")
	tv.Do(ActionNextItem)
	tv.Do(ActionEditItem)
	tv.press(tcell.KeyLeft, tcell.ModNone)

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer s.Fini()
	s.SetSize(40, 8)
	tv.Render(s)

	cells, w, _ := s.GetContents()
	if got := rowText(cells, w, 5); got != "edit: hello" {
		t.Fatalf("prompt row = %q, want %q", got, "edit: hello")
	}
	if got := rowText(cells, w, 6); got != "> Editing" {
		t.Fatalf("detail row = %q, want %q", got, "> Editing")
	}
	x, y, visible := s.GetCursor()
	if !visible || x != 10 || y != 5 {
		t.Fatalf("cursor = (%d, %d, %v), want (10, 5, true)", x, y, visible)
	}

	tv.press(tcell.KeyEscape, tcell.ModNone)
	tv.Render(s)
	if _, _, visible := s.GetCursor(); visible {
		t.Fatalf("cursor still shown after the prompt closed")
	}
}

func TestRenderInputOnTinyScreen(t *testing.T) {
	tv := newTestView(t)
	tv.Do(ActionTranslateText)
	tv.typeText("abcdefghijkl")

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer s.Fini()
	s.SetSize(16, 2)
	tv.Render(s)

	cells, w, h := s.GetContents()
	// The prompt scrolls so the end of the text stays beside the cursor.
	if got := rowText(cells, w, h-1); got != "translate: ijkl" {
		t.Fatalf("prompt row = %q, want %q", got, "translate: ijkl")
	}
	if x, _, _ := s.GetCursor(); x != 15 {
		t.Fatalf("cursor x = %d, want 15", x)
	}
}
