package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/kobzarvs/clipvox/internal/history"
)

const (
	itemLabelLimit = 100
	itemLabelTail  = " ~~"
	detailRows     = 2
)

// ItemLabel shortens a history item for the list: at most 100 characters,
// cut on a grapheme boundary, followed by " ~~" when anything was dropped.
func ItemLabel(s string) string {
	if len([]rune(s)) <= itemLabelLimit {
		return s
	}
	var b strings.Builder
	count := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		n := len([]rune(cluster))
		if count+n > itemLabelLimit {
			break
		}
		b.WriteString(cluster)
		count += n
		s = rest
		state = newState
	}
	return b.String() + itemLabelTail
}

// flatten puts a multi-line item on one row.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ↵ ")
	return strings.ReplaceAll(s, "\t", " ")
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	return w
}

// drawText writes text from x up to limit and returns the next free column.
func drawText(s tcell.Screen, x, y, limit int, style tcell.Style, text string) int {
	state := -1
	for len(text) > 0 && x < limit {
		cluster, rest, _, newState := uniseg.StepString(text, state)
		text, state = rest, newState
		w := clusterWidth(cluster)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r := []rune(cluster)
		s.SetContent(x, y, r[0], r[1:], style)
		x += w
	}
	return x
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// composeStatusLine right-aligns right and fills the gap, measuring in cells.
func composeStatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := runewidth.StringWidth(right)
	if rw >= width {
		return runewidth.TruncateLeft(right, rw-width, "")
	}
	left = runewidth.Truncate(left, width-rw, "")
	return runewidth.FillRight(left, width-rw) + right
}

func (v *View) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	v.syncCursor()
	s.SetStyle(v.styleMain)
	s.Clear()

	statusY := h - 1
	detailH := detailRows
	if h < detailRows+3 {
		detailH = 0
	}
	listH := statusY - detailH
	if detailH > 0 {
		listH-- // separator
	}
	if listH < 0 {
		listH = 0
	}

	s.HideCursor()
	v.renderList(s, w, listH)
	if detailH > 0 {
		v.renderDetail(s, w, listH)
	}
	if v.mode != inputNone && detailH == 0 {
		v.renderInput(s, w, statusY)
	} else {
		v.renderStatusline(s, w, statusY)
	}
	s.Show()
}

func (v *View) renderList(s tcell.Screen, w, height int) {
	items := v.hist.Items()
	sel := v.hist.Selected()
	if sel != history.NoSelection {
		if sel < v.listScroll {
			v.listScroll = sel
		}
		if sel >= v.listScroll+height {
			v.listScroll = sel - height + 1
		}
	}
	if v.listScroll > len(items)-height {
		v.listScroll = max(0, len(items)-height)
	}
	numW := len(fmt.Sprint(len(items)))
	for y := 0; y < height; y++ {
		i := v.listScroll + y
		if i >= len(items) {
			break
		}
		style := v.styleMain
		if i == sel {
			style = v.styleSelected
			clearLine(s, y, w, style)
		}
		prefix := fmt.Sprintf("%*d  ", numW, i+1)
		x := drawText(s, 0, y, w, style, prefix)
		drawText(s, x, y, w, style, flatten(ItemLabel(items[i])))
	}
}

func (v *View) renderDetail(s tcell.Screen, w, y int) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, '─', nil, v.styleDim)
	}
	y++
	if v.mode != inputNone {
		v.renderInput(s, w, y)
	} else {
		v.renderCurrentLine(s, w, y)
	}
	y++
	if v.detail != "" {
		x := drawText(s, 0, y, w, v.styleDim, "> ")
		drawText(s, x, y, w, v.styleMain, flatten(v.detail))
	}
}

func (v *View) renderCurrentLine(s tcell.Screen, w, y int) {
	row, col := v.cursor.Position()
	lines := strings.Split(v.cursor.Text(), "\n")
	if row-1 < len(lines) && v.cursor.Len() > 0 {
		line := []rune(lines[row-1])
		x := 0
		for i, r := range line {
			style := v.styleMain
			if i == col-1 {
				style = v.styleFocus
			}
			x = drawText(s, x, y, w, style, flatten(string(r)))
			if x >= w {
				break
			}
		}
		if col-1 == len(line) && x < w {
			// Focus sits on the line break itself.
			s.SetContent(x, y, '↵', nil, v.styleFocus)
		}
	}
}

func (v *View) renderStatusline(s tcell.Screen, w, y int) {
	sum := v.cursor.Summary()
	left := fmt.Sprintf(" %d items", v.hist.Len())
	if v.status != "" {
		left += " | " + v.status
	}
	right := fmt.Sprintf(" Ln %d, Col %d, %d chars ", sum.Row, sum.Col, sum.Total)
	if v.layout != "" {
		right += "| " + v.layout + " "
	}
	clearLine(s, y, w, v.styleStatus)
	drawText(s, 0, y, w, v.styleStatus, composeStatusLine(left, right, w))
}
