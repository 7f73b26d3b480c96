// Package translate answers lookups from a local dictionary first and falls
// back to an external machine-translation model.
package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

type Direction string

const (
	EnToZh Direction = "EN"
	ZhToEn Direction = "ZH"
)

func (d Direction) langs() (src, tgt string) {
	if d == ZhToEn {
		return "zh_CN", "en_XX"
	}
	return "en_XX", "zh_CN"
}

const (
	promptMarker  = "###T###"
	promptEnglish = "Translation English to Chinese:" + promptMarker
	promptChinese = "翻译中文到英语:" + promptMarker
)

var (
	ErrEmptyInput = errors.New("nothing to translate")
	ErrNoModel    = errors.New("no translation model configured and no dictionary entry")
	ErrNoResult   = errors.New("translation produced no usable result")
)

var (
	singleWord = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	hasLatin   = regexp.MustCompile(`[a-zA-Z]`)
	blankish   = regexp.MustCompile(`^[\s.,!?;:'"]*$`)
	// Models echo the prompt back in various mangled forms.
	residue = []*regexp.Regexp{
		regexp.MustCompile(`(?is)^.*?###T###`),
		regexp.MustCompile(`(?is)^.*?#.*?T.*?#`),
		regexp.MustCompile(`(?is)^.*?#.*?T`),
	}
)

// Model is the black-box translation backend.
type Model interface {
	Translate(ctx context.Context, prompt string, dir Direction) (string, error)
}

// CommandModel runs an external program with the prompt on stdin and reads
// the translation from stdout. Source and target language codes are passed
// in CLIPVOX_SRC_LANG and CLIPVOX_TGT_LANG.
type CommandModel struct {
	Command string
	Args    []string
}

func (m CommandModel) Translate(ctx context.Context, prompt string, dir Direction) (string, error) {
	src, tgt := dir.langs()
	cmd := exec.CommandContext(ctx, m.Command, m.Args...)
	cmd.Stdin = strings.NewReader(prompt)
	cmd.Env = append(os.Environ(), "CLIPVOX_SRC_LANG="+src, "CLIPVOX_TGT_LANG="+tgt)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", m.Command, err, msg)
		}
		return "", fmt.Errorf("%s: %w", m.Command, err)
	}
	return string(out), nil
}

type Translator struct {
	dict  *Dictionary
	model Model
	log   *zap.Logger
}

// New returns a translator. Both dict and model may be nil.
func New(dict *Dictionary, model Model, log *zap.Logger) *Translator {
	if dict == nil {
		dict = NewDictionary()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Translator{dict: dict, model: model, log: log}
}

func (t *Translator) HasModel() bool { return t.model != nil }

// Translate looks up single Chinese characters and single English words in
// the dictionary and sends everything else to the model.
func (t *Translator) Translate(ctx context.Context, text string, dir Direction) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}

	if utf8.RuneCountInString(text) == 1 && containsHan(text) {
		if v, ok := t.lookup(text); ok {
			return v, nil
		}
	}
	if isEnglish(text) && singleWord.MatchString(text) {
		if v, ok := t.lookup(text); ok {
			return v, nil
		}
	}

	if t.model == nil {
		return "", ErrNoModel
	}
	out, err := t.model.Translate(ctx, BuildPrompt(text, dir), dir)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	out = CleanOutput(out)
	if blankish.MatchString(out) {
		return "", fmt.Errorf("%w for %q", ErrNoResult, text)
	}
	return out, nil
}

func (t *Translator) lookup(word string) (string, bool) {
	v, ok := t.dict.Lookup(word)
	if ok {
		t.log.Debug("dictionary hit", zap.String("word", word))
	} else {
		t.log.Debug("dictionary miss", zap.String("word", word))
	}
	return v, ok
}

func BuildPrompt(text string, dir Direction) string {
	if dir == ZhToEn {
		return promptChinese + text
	}
	return promptEnglish + text
}

// CleanOutput strips any echoed prompt from model output.
func CleanOutput(s string) string {
	for _, re := range residue {
		s = strings.TrimSpace(re.ReplaceAllString(s, ""))
	}
	return s
}

func isHan(r rune) bool {
	return r >= '一' && r <= '鿿'
}

func containsHan(s string) bool {
	return strings.IndexFunc(s, isHan) >= 0
}

// isEnglish reports text with Latin letters and no CJK ideographs.
func isEnglish(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || containsHan(s) {
		return false
	}
	return hasLatin.MatchString(s)
}

// DetectDirection guesses the direction from the text itself.
func DetectDirection(s string) Direction {
	if strings.IndexFunc(s, func(r rune) bool { return unicode.Is(unicode.Han, r) }) >= 0 {
		return ZhToEn
	}
	return EnToZh
}
