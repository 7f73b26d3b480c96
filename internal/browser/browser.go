// Package browser implements a cursor over a block of text that can be
// stepped one character or one line at a time, the way a screen-reader user
// reviews a clipboard item.
//
// Positions are rune offsets. A Cursor is not safe for concurrent use.
package browser

import "strings"

// LineSentinel is returned by line steps that land on an empty line.
const LineSentinel = "\n"

type Direction int

const (
	PrevChar Direction = iota
	NextChar
	PrevLine
	NextLine
)

func (d Direction) String() string {
	switch d {
	case PrevChar:
		return "prev_char"
	case NextChar:
		return "next_char"
	case PrevLine:
		return "prev_line"
	case NextLine:
		return "next_line"
	}
	return "unknown"
}

// Explainer maps a character or line to the text that should be spoken for
// it. Unknown input is returned unchanged.
type Explainer interface {
	Explain(s string) string
}

type identity struct{}

func (identity) Explain(s string) string { return s }

type Cursor struct {
	text    []rune
	lines   [][]rune
	pos     int
	total   int
	curLine string
	explain Explainer
}

// New returns an empty cursor. A nil explainer leaves results untouched.
func New(explain Explainer) *Cursor {
	if explain == nil {
		explain = identity{}
	}
	return &Cursor{explain: explain}
}

// Load replaces the buffer and moves the focus back to the first character.
func (c *Cursor) Load(text string) {
	c.text = []rune(text)
	c.total = len(c.text)
	c.pos = 0
	c.curLine = ""
	parts := strings.Split(text, "\n")
	c.lines = make([][]rune, len(parts))
	for i, p := range parts {
		c.lines[i] = []rune(p)
	}
}

func (c *Cursor) Text() string { return string(c.text) }

func (c *Cursor) Len() int { return c.total }

// Offset is the raw focus index.
func (c *Cursor) Offset() int { return c.pos }

// Step moves the focus and returns the explained character or line under it.
func (c *Cursor) Step(dir Direction) string {
	if c.total == 0 {
		return ""
	}
	var out string
	switch dir {
	case PrevChar:
		c.pos = max(0, c.pos-1)
		out = string(c.text[c.pos])
	case NextChar:
		c.pos = min(c.total-1, c.pos+1)
		out = string(c.text[c.pos])
	case PrevLine:
		out = c.moveLine(c.lineAt(c.pos) - 1)
	case NextLine:
		out = c.moveLine(c.lineAt(c.pos) + 1)
	default:
		return ""
	}
	return c.explain.Explain(out)
}

func (c *Cursor) moveLine(target int) string {
	target = max(0, min(len(c.lines)-1, target))
	text := string(c.lines[target])
	if text == "" {
		text = LineSentinel
	}
	c.curLine = text
	// A trailing empty line starts one past the last rune; keep the focus on
	// a real character.
	c.pos = min(c.total-1, c.lineStart(target))
	return text
}

// Peek returns the explained character under the focus without moving it.
func (c *Cursor) Peek() string {
	if c.total == 0 {
		return ""
	}
	return c.explain.Explain(string(c.text[c.pos]))
}

// Position returns the 1-based row and column of the focus.
func (c *Cursor) Position() (row, col int) {
	if c.total == 0 {
		return 1, 1
	}
	line := c.lineAt(c.pos)
	return line + 1, c.pos - c.lineStart(line) + 1
}

// CurrentLineText returns the line produced by the last line step, sentinel
// included. It is empty until a line step happens after Load.
func (c *Cursor) CurrentLineText() string { return c.curLine }

// Summary describes the focus for a "where am I" announcement.
type Summary struct {
	Row   int
	Col   int
	Total int
}

func (c *Cursor) Summary() Summary {
	row, col := c.Position()
	return Summary{Row: row, Col: col, Total: c.total}
}

// lineAt returns the index of the line holding pos. The separator after a
// line belongs to that line.
func (c *Cursor) lineAt(pos int) int {
	if len(c.lines) == 0 {
		return 0
	}
	cumulative := 0
	for i, line := range c.lines {
		cumulative += len(line) + 1
		if pos < cumulative {
			return i
		}
	}
	return len(c.lines) - 1
}

func (c *Cursor) lineStart(line int) int {
	start := 0
	for i := 0; i < line && i < len(c.lines); i++ {
		start += len(c.lines[i]) + 1
	}
	return start
}
