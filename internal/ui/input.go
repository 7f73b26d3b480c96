package ui

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/kobzarvs/clipvox/internal/textproc"
	"github.com/kobzarvs/clipvox/internal/translate"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputEdit
	inputTranslate
)

const maxUndo = 100

// inputTransforms are the rewrites reachable while typing.
var inputTransforms = map[string]string{
	"alt+1": textproc.RemoveWhitespaceName,
	"alt+2": textproc.MergeSpacesName,
	"alt+3": textproc.NumeralsToChineseName,
	"alt+4": textproc.PunctuationToNewlineName,
}

type snapshot struct {
	text []rune
	pos  int
}

// lineInput is the text buffer behind the edit and translate prompts. Every
// change records the previous state so it can be undone.
type lineInput struct {
	text []rune
	pos  int
	undo []snapshot
	redo []snapshot
}

func (in *lineInput) reset(text string) {
	in.text = []rune(text)
	in.pos = len(in.text)
	in.undo = nil
	in.redo = nil
}

func (in *lineInput) String() string { return string(in.text) }

func (in *lineInput) state() snapshot {
	return snapshot{text: slices.Clone(in.text), pos: in.pos}
}

func (in *lineInput) restore(s snapshot) {
	in.text = s.text
	in.pos = min(s.pos, len(s.text))
}

// save records the current state before a change.
func (in *lineInput) save() {
	cur := in.state()
	if n := len(in.undo); n > 0 && in.undo[n-1].pos == cur.pos && slices.Equal(in.undo[n-1].text, cur.text) {
		return
	}
	if len(in.undo) >= maxUndo {
		in.undo = in.undo[1:]
	}
	in.undo = append(in.undo, cur)
	in.redo = in.redo[:0]
}

func (in *lineInput) insert(r rune) {
	in.save()
	in.text = slices.Insert(in.text, in.pos, r)
	in.pos++
}

func (in *lineInput) backspace() bool {
	if in.pos == 0 {
		return false
	}
	in.save()
	in.text = slices.Delete(in.text, in.pos-1, in.pos)
	in.pos--
	return true
}

func (in *lineInput) del() bool {
	if in.pos >= len(in.text) {
		return false
	}
	in.save()
	in.text = slices.Delete(in.text, in.pos, in.pos+1)
	return true
}

// deleteWord removes the word before the cursor, like ctrl+w in a shell.
func (in *lineInput) deleteWord() bool {
	if in.pos == 0 {
		return false
	}
	i := in.pos
	for i > 0 && in.text[i-1] == ' ' {
		i--
	}
	for i > 0 && in.text[i-1] != ' ' {
		i--
	}
	in.save()
	in.text = slices.Delete(in.text, i, in.pos)
	in.pos = i
	return true
}

func (in *lineInput) clear() {
	if len(in.text) == 0 {
		return
	}
	in.save()
	in.text = in.text[:0:0]
	in.pos = 0
}

// replace swaps the whole buffer as one undoable step.
func (in *lineInput) replace(text string) {
	if text == in.String() {
		return
	}
	in.save()
	in.text = []rune(text)
	in.pos = len(in.text)
}

func (in *lineInput) Undo() bool {
	if len(in.undo) == 0 {
		return false
	}
	in.redo = append(in.redo, in.state())
	last := len(in.undo) - 1
	in.restore(in.undo[last])
	in.undo = in.undo[:last]
	return true
}

func (in *lineInput) Redo() bool {
	if len(in.redo) == 0 {
		return false
	}
	in.undo = append(in.undo, in.state())
	last := len(in.redo) - 1
	in.restore(in.redo[last])
	in.redo = in.redo[:last]
	return true
}

// editItem opens the selected item in the edit prompt.
func (v *View) editItem() {
	idx := v.hist.Selected()
	text, ok := v.hist.Get(idx)
	if !ok {
		v.speak(v.msg.empty)
		return
	}
	v.mode = inputEdit
	v.editIndex = idx
	v.input.reset(text)
	v.speak(v.msg.editing)
}

// translateInput opens an empty prompt whose text is translated on demand.
func (v *View) translateInput() {
	v.mode = inputTranslate
	v.input.reset("")
	v.speak(v.msg.translateMode)
}

// InputActive reports whether keys currently go to the text prompt.
func (v *View) InputActive() bool { return v.mode != inputNone }

// Input returns the prompt's text.
func (v *View) Input() string { return v.input.String() }

func (v *View) handleInputKey(ev *tcell.EventKey) {
	v.status = ""
	key := keyString(ev)
	switch key {
	case "esc", "ctrl+c":
		v.mode = inputNone
		v.pendingInput = false
		v.speak(v.msg.cancelled)
		return
	case "ctrl+z":
		if !v.input.Undo() {
			v.speak(v.msg.nothingToUndo)
			return
		}
		v.speakInput()
		return
	case "ctrl+y":
		if !v.input.Redo() {
			v.speak(v.msg.nothingToRedo)
			return
		}
		v.speakInput()
		return
	case "alt+x":
		if v.mode == inputEdit {
			v.commitEdit()
		}
		return
	case "alt+enter":
		if v.mode == inputEdit {
			v.commitEdit()
			return
		}
		v.submitInput(translate.EnToZh)
		return
	case "alt+shift+enter":
		if v.mode == inputTranslate {
			v.submitInput(translate.ZhToEn)
		}
		return
	case "enter":
		v.input.insert('\n')
		return
	case "tab":
		v.input.insert('\t')
		return
	case "backspace":
		v.input.backspace()
		return
	case "del":
		v.input.del()
		return
	case "left", "ctrl+b":
		v.input.pos = max(0, v.input.pos-1)
		return
	case "right", "ctrl+f":
		v.input.pos = min(len(v.input.text), v.input.pos+1)
		return
	case "home", "ctrl+a":
		v.input.pos = 0
		return
	case "end", "ctrl+e":
		v.input.pos = len(v.input.text)
		return
	case "ctrl+u":
		v.input.clear()
		return
	case "ctrl+w":
		v.input.deleteWord()
		return
	}
	if name, ok := inputTransforms[key]; ok {
		out, err := textproc.Apply(name, v.input.String())
		if err != nil {
			v.status = err.Error()
			return
		}
		v.input.replace(out)
		v.speakInput()
		return
	}
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) == 0 {
		v.input.insert(ev.Rune())
	}
}

func (v *View) speakInput() {
	if len(v.input.text) == 0 {
		v.speak(v.msg.emptyItem)
		return
	}
	v.speak(v.input.String())
}

// commitEdit writes the prompt back to the item it was opened on. Empty text
// deletes the item; otherwise the item is copied like copy_item does.
func (v *View) commitEdit() {
	v.mode = inputNone
	text := v.input.String()
	if _, ok := v.hist.Get(v.editIndex); !ok {
		v.speak(v.msg.empty)
		return
	}
	if err := v.hist.Set(v.editIndex, text); err != nil {
		v.status = err.Error()
		return
	}
	v.log.Debug("item edited", zap.Int("index", v.editIndex), zap.Int("len", len(v.input.text)))
	if text == "" {
		v.syncCursor()
		v.speak(v.msg.deleted)
		return
	}
	v.hist.SelectIndex(v.editIndex)
	v.copyItem()
}

func (v *View) submitInput(dir translate.Direction) {
	text := v.input.String()
	if strings.TrimSpace(text) == "" {
		v.speak(v.msg.emptyItem)
		return
	}
	if v.translator == nil {
		v.speak(v.msg.noTranslator)
		return
	}
	v.submit(strings.TrimSpace(text), dir)
	v.pendingInput = true
}

// renderInput draws the prompt on row y, scrolled so the cursor stays
// visible, and places the terminal cursor.
func (v *View) renderInput(s tcell.Screen, w, y int) {
	prompt := v.msg.editPrompt
	if v.mode == inputTranslate {
		prompt = v.msg.translatePrompt
	}
	clearLine(s, y, w, v.styleMain)
	x := drawText(s, 0, y, w, v.styleDim, prompt)

	shown := make([]rune, len(v.input.text))
	for i, r := range v.input.text {
		switch r {
		case '\n':
			r = '↵'
		case '\t':
			r = ' '
		}
		shown[i] = r
	}
	avail := w - x - 1
	start := 0
	for start < v.input.pos && runewidth.StringWidth(string(shown[start:v.input.pos])) > avail {
		start++
	}
	drawText(s, x, y, w, v.styleMain, string(shown[start:]))
	cx := x + runewidth.StringWidth(string(shown[start:v.input.pos]))
	s.ShowCursor(min(cx, w-1), y)
}
