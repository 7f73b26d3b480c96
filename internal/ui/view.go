// Package ui is the terminal front end: a history list, a detail pane and a
// status line, driven by keymap actions that answer through a Speaker.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/kobzarvs/clipvox/internal/browser"
	"github.com/kobzarvs/clipvox/internal/clipboard"
	"github.com/kobzarvs/clipvox/internal/glyph"
	"github.com/kobzarvs/clipvox/internal/history"
	"github.com/kobzarvs/clipvox/internal/numeral"
	"github.com/kobzarvs/clipvox/internal/speech"
	"github.com/kobzarvs/clipvox/internal/textproc"
	"github.com/kobzarvs/clipvox/internal/translate"
)

const (
	ActionPrevItem      = "prev_item"
	ActionNextItem      = "next_item"
	ActionPrevLine      = "prev_line"
	ActionNextLine      = "next_line"
	ActionPrevChar      = "prev_char"
	ActionNextChar      = "next_char"
	ActionExplainChar   = "explain_char"
	ActionSpeakLine     = "speak_line"
	ActionSummary       = "summary"
	ActionVerbalize     = "verbalize"
	ActionTranslateEn   = "translate_en"
	ActionTranslateZh   = "translate_zh"
	ActionCopyItem      = "copy_item"
	ActionDeleteItem    = "delete_item"
	ActionClearHistory  = "clear_history"
	ActionCapturePhrase = "capture_phrase"
	ActionAppendPhrase  = "append_phrase"
	ActionEditItem      = "edit_item"
	ActionTranslateText = "translate_input"
	ActionQuit          = "quit"

	transformPrefix = "transform_"
)

const ioTimeout = 5 * time.Second

// Submitter queues a translation; results come back through HandleTranslation.
type Submitter interface {
	Submit(text string, dir translate.Direction) uint64
}

type Options struct {
	History    *history.Store
	Clipboard  clipboard.Source
	Speaker    speech.Speaker
	Translator Submitter
	Glyphs     *glyph.Table
	Keymap     map[string]string
	Logger     *zap.Logger
}

type View struct {
	hist       *history.Store
	clip       clipboard.Source
	speaker    speech.Speaker
	phrases    speech.PhraseReader
	translator Submitter
	glyphs     *glyph.Table
	keymap     map[string]string
	log        *zap.Logger
	msg        messages

	cursor     *browser.Cursor
	loaded     int
	loadedText string
	pending    uint64

	mode         inputMode
	input        lineInput
	editIndex    int
	pendingInput bool

	status     string
	detail     string
	layout     string
	listScroll int

	styleMain     tcell.Style
	styleSelected tcell.Style
	styleStatus   tcell.Style
	styleDim      tcell.Style
	styleFocus    tcell.Style
}

func New(opts Options) *View {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	glyphs := opts.Glyphs
	if glyphs == nil {
		glyphs = glyph.New(glyph.Chinese)
	}
	v := &View{
		hist:       opts.History,
		clip:       opts.Clipboard,
		speaker:    opts.Speaker,
		translator: opts.Translator,
		glyphs:     glyphs,
		keymap:     opts.Keymap,
		log:        log,
		msg:        messagesFor(glyphs.Lang()),
		cursor:     browser.New(glyphs),
		loaded:     history.NoSelection,

		styleMain:     tcell.StyleDefault,
		styleSelected: tcell.StyleDefault.Reverse(true),
		styleStatus:   tcell.StyleDefault.Reverse(true),
		styleDim:      tcell.StyleDefault.Dim(true),
		styleFocus:    tcell.StyleDefault.Underline(true).Bold(true),
	}
	if v.speaker == nil {
		v.speaker = speech.NewRecorder(log)
	}
	if pr, ok := v.speaker.(speech.PhraseReader); ok {
		v.phrases = pr
	}
	return v
}

func (v *View) SetKeyboardLayout(name string) { v.layout = name }

func (v *View) Status() string { return v.status }

// Detail returns the text last spoken or produced by an action.
func (v *View) Detail() string { return v.detail }

// HandleKey runs the action bound to ev. It returns true when the user asked
// to quit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	if v.mode != inputNone {
		v.handleInputKey(ev)
		return false
	}
	key := keyString(ev)
	action, ok := v.keymap[key]
	if !ok {
		return false
	}
	v.log.Debug("key", zap.String("key", key), zap.String("action", action))
	return v.Do(action)
}

func (v *View) Do(action string) bool {
	v.status = ""
	switch action {
	case ActionQuit:
		return true
	case ActionPrevItem:
		v.stepItem(-1)
	case ActionNextItem:
		v.stepItem(1)
	case ActionPrevLine:
		v.step(browser.PrevLine)
	case ActionNextLine:
		v.step(browser.NextLine)
	case ActionPrevChar:
		v.step(browser.PrevChar)
	case ActionNextChar:
		v.step(browser.NextChar)
	case ActionExplainChar:
		v.explainChar()
	case ActionSpeakLine:
		v.speakLine()
	case ActionSummary:
		v.summary()
	case ActionVerbalize:
		v.verbalize()
	case ActionTranslateEn:
		v.translate(translate.EnToZh)
	case ActionTranslateZh:
		v.translate(translate.ZhToEn)
	case ActionCopyItem:
		v.copyItem()
	case ActionDeleteItem:
		v.deleteItem()
	case ActionClearHistory:
		v.hist.Clear()
		v.syncCursor()
		v.speak(v.msg.cleared)
	case ActionCapturePhrase:
		v.capturePhrase()
	case ActionAppendPhrase:
		v.appendPhrase()
	case ActionEditItem:
		v.editItem()
	case ActionTranslateText:
		v.translateInput()
	default:
		if name, ok := strings.CutPrefix(action, transformPrefix); ok {
			v.transform(name)
			break
		}
		v.status = "unknown action: " + action
		v.log.Warn("unknown action", zap.String("action", action))
	}
	return false
}

// HandleClipboard records a clipboard change as the newest item and selects it.
func (v *View) HandleClipboard(c clipboard.Change) {
	if !v.hist.Push(c.Text) {
		return
	}
	if v.mode == inputEdit {
		v.editIndex++
	}
	v.hist.SelectIndex(0)
	v.syncCursor()
	v.status = fmt.Sprintf("%s (%d)", v.msg.captured, v.hist.Len())
}

// HandleTranslation speaks a finished translation. Results for anything but
// the most recent request are dropped. A translation of typed text replaces
// the text in the open prompt.
func (v *View) HandleTranslation(r translate.Result) {
	if r.Seq != v.pending {
		v.log.Debug("stale translation dropped", zap.Uint64("seq", r.Seq), zap.Uint64("want", v.pending))
		return
	}
	v.pending = 0
	fromInput := v.pendingInput
	v.pendingInput = false
	if r.Err != nil {
		v.log.Warn("translation failed", zap.Error(r.Err))
		v.speak(r.Err.Error())
		return
	}
	if fromInput && v.mode == inputTranslate {
		v.input.replace(r.Output)
	}
	v.speak(r.Output)
}

// syncCursor reloads the cursor when the selected item changed underneath it.
func (v *View) syncCursor() {
	idx := v.hist.Selected()
	text, _ := v.hist.Get(idx)
	if idx == v.loaded && text == v.loadedText {
		return
	}
	v.cursor.Load(text)
	v.loaded = idx
	v.loadedText = text
}

func (v *View) stepItem(delta int) {
	idx, text, ok := v.hist.Select(delta)
	if !ok {
		v.speak(v.msg.empty)
		return
	}
	v.cursor.Load(text)
	v.loaded, v.loadedText = idx, text
	// Prime the current line so speak_line works before any line step.
	v.cursor.Step(browser.PrevLine)
	v.speak(fmt.Sprintf("%d, %s", idx+1, text))
}

func (v *View) step(dir browser.Direction) {
	v.syncCursor()
	if out := v.cursor.Step(dir); out != "" {
		v.speak(out)
	}
}

func (v *View) currentRune() string {
	runes := []rune(v.cursor.Text())
	off := v.cursor.Offset()
	if off < 0 || off >= len(runes) {
		return ""
	}
	return string(runes[off])
}

func (v *View) explainChar() {
	v.syncCursor()
	raw := v.currentRune()
	if raw == "" {
		return
	}
	if explained := v.cursor.Peek(); explained != raw {
		v.speak(explained)
		return
	}
	if v.translator == nil {
		v.speak(raw)
		return
	}
	v.submit(raw, translate.EnToZh)
}

func (v *View) speakLine() {
	v.syncCursor()
	line := v.cursor.CurrentLineText()
	if line == "" {
		return
	}
	v.speak(v.glyphs.Explain(line))
}

func (v *View) summary() {
	v.syncCursor()
	if v.cursor.Len() == 0 {
		v.speak(v.msg.emptyItem)
		return
	}
	v.speak(v.msg.summary(v.cursor.Summary()))
}

// sourceText is what verbalize and translate act on: the current line when
// one has been visited, the whole item otherwise.
func (v *View) sourceText() string {
	v.syncCursor()
	if line := v.cursor.CurrentLineText(); line != "" && line != browser.LineSentinel {
		return line
	}
	return v.cursor.Text()
}

func (v *View) verbalize() {
	text := v.sourceText()
	if strings.TrimSpace(text) == "" {
		v.speak(v.msg.emptyItem)
		return
	}
	v.speak(numeral.Render(textproc.FoldWidth(text)))
}

// translate prefers the screen reader's last phrase, as the global hotkeys
// did, and falls back to the selected text.
func (v *View) translate(dir translate.Direction) {
	text := ""
	if v.phrases != nil {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		p, err := v.phrases.LastPhrase(ctx)
		cancel()
		if err == nil {
			text = p
		} else if !errors.Is(err, speech.ErrNoPhrase) {
			v.log.Debug("last phrase unavailable", zap.Error(err))
		}
	}
	if text == "" {
		text = v.sourceText()
	}
	text = strings.TrimSpace(text)
	if text == "" {
		v.speak(v.msg.emptyItem)
		return
	}
	if dir == translate.EnToZh {
		if explained := v.glyphs.Explain(text); explained != text {
			v.speak(explained)
			return
		}
	}
	if v.translator == nil {
		v.speak(v.msg.noTranslator)
		return
	}
	v.submit(text, dir)
}

func (v *View) submit(text string, dir translate.Direction) {
	v.pendingInput = false
	v.pending = v.translator.Submit(text, dir)
	v.status = v.msg.translating
}

func (v *View) copyItem() {
	idx := v.hist.Selected()
	text, ok := v.hist.Get(idx)
	if !ok {
		v.speak(v.msg.empty)
		return
	}
	if err := v.writeClipboard(text); err != nil {
		return
	}
	if idx > 0 {
		if err := v.hist.Remove(idx); err == nil {
			v.hist.Push(text)
		}
	}
	v.hist.SelectIndex(0)
	v.syncCursor()
	v.speak(v.msg.copied)
}

func (v *View) writeClipboard(text string) error {
	if v.clip == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	if err := v.clip.Write(ctx, text); err != nil {
		v.status = err.Error()
		v.log.Error("clipboard write failed", zap.Error(err))
		return err
	}
	return nil
}

func (v *View) deleteItem() {
	idx := v.hist.Selected()
	if err := v.hist.Remove(idx); err != nil {
		v.speak(v.msg.empty)
		return
	}
	v.syncCursor()
	v.speak(v.msg.deleted)
}

func (v *View) transform(name string) {
	idx := v.hist.Selected()
	text, ok := v.hist.Get(idx)
	if !ok {
		v.speak(v.msg.empty)
		return
	}
	out, err := textproc.Apply(name, text)
	if err != nil {
		v.status = err.Error()
		return
	}
	if err := v.hist.Set(idx, out); err != nil {
		v.status = err.Error()
		return
	}
	v.syncCursor()
	if out == "" {
		v.speak(v.msg.deleted)
		return
	}
	v.speak(out)
}

func (v *View) lastPhrase() (string, bool) {
	if v.phrases == nil {
		v.speak(v.msg.voWarning)
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	p, err := v.phrases.LastPhrase(ctx)
	if err != nil {
		v.status = v.msg.voWarning
		v.log.Debug("last phrase unavailable", zap.Error(err))
		return "", false
	}
	return p, true
}

// capturePhrase adds what the screen reader just said as a new item.
func (v *View) capturePhrase() {
	p, ok := v.lastPhrase()
	if !ok {
		return
	}
	if v.hist.Push(p) {
		v.status = v.msg.captured
	}
}

// appendPhrase adds the screen reader's last phrase as a new line of the
// newest item and copies the result.
func (v *View) appendPhrase() {
	if v.hist.Len() == 0 {
		v.capturePhrase()
		return
	}
	p, ok := v.lastPhrase()
	if !ok {
		return
	}
	v.hist.AppendToFirst(p)
	text, _ := v.hist.SelectIndex(0)
	v.syncCursor()
	if err := v.writeClipboard(text); err != nil {
		return
	}
	v.status = v.msg.appended
}

func (v *View) speak(text string) {
	v.detail = text
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()
	if err := v.speaker.Speak(ctx, text); err != nil {
		v.status = err.Error()
		v.log.Warn("speak failed", zap.Error(err))
	}
}
