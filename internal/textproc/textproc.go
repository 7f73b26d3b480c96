package textproc

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"github.com/kobzarvs/clipvox/internal/numeral"
)

// Transform names accepted by Apply.
const (
	RemoveWhitespaceName     = "remove_whitespace"
	MergeSpacesName          = "merge_spaces"
	PunctuationToNewlineName = "punctuation_to_newline"
	NumeralsToChineseName    = "numerals_to_chinese"
	FoldWidthName            = "fold_width"
)

var (
	newlineRun = regexp.MustCompile(`\n+`)
	blankRun   = regexp.MustCompile(`[ \t]+`)
)

var whitespaceRemover = strings.NewReplacer(
	" ", "", "\t", "", "\n", "", "\r", "", "\f", "", "\v", "",
)

var punctuationSplitter = strings.NewReplacer(
	",", "\n", "，", "\n",
	".", "\n", "。", "\n",
	"!", "\n", "！", "\n",
	"?", "\n", "？", "\n",
	";", "\n", "；", "\n",
	":", "\n", "：", "\n",
	`"`, "\n",
	"-", "\n",
)

func RemoveWhitespace(s string) string {
	return whitespaceRemover.Replace(s)
}

// MergeSpaces collapses runs of newlines into one newline and runs of spaces
// and tabs into one space.
func MergeSpaces(s string) string {
	s = newlineRun.ReplaceAllString(s, "\n")
	return blankRun.ReplaceAllString(s, " ")
}

// PunctuationToNewline breaks text into one clause per line.
func PunctuationToNewline(s string) string {
	return punctuationSplitter.Replace(s)
}

func NumeralsToChinese(s string) string {
	return numeral.Render(s)
}

// FoldWidth maps full-width ASCII variants (digits, Latin letters, symbols)
// to their narrow forms so that text copied from CJK documents verbalizes
// like ASCII input.
func FoldWidth(s string) string {
	return width.Narrow.String(s)
}

var transforms = map[string]func(string) string{
	RemoveWhitespaceName:     RemoveWhitespace,
	MergeSpacesName:          MergeSpaces,
	PunctuationToNewlineName: PunctuationToNewline,
	NumeralsToChineseName:    NumeralsToChinese,
	FoldWidthName:            FoldWidth,
}

// Apply runs the named transform.
func Apply(name, s string) (string, error) {
	fn, ok := transforms[name]
	if !ok {
		return s, fmt.Errorf("unknown transform: %s", name)
	}
	return fn(s), nil
}

// Names lists the transforms Apply accepts.
func Names() []string {
	return []string{
		RemoveWhitespaceName,
		MergeSpacesName,
		PunctuationToNewlineName,
		NumeralsToChineseName,
		FoldWidthName,
	}
}
