// Package glyph names characters that a screen reader would otherwise skip
// or read ambiguously: whitespace, quotes and brackets, full-width
// punctuation, capitals, pinyin tone marks, bopomofo and Roman numerals.
package glyph

import "strings"

type Lang string

const (
	Chinese Lang = "zh"
	English Lang = "en"
)

// ParseLang maps a locale-ish string such as "zh-Hans" or "en_US" to a Lang.
// Anything that is not Chinese is English.
func ParseLang(s string) Lang {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "zh") {
		return Chinese
	}
	return English
}

type Table struct {
	lang  Lang
	names map[string]string
}

func New(lang Lang) *Table {
	names := enNames
	if lang == Chinese {
		names = zhNames
	}
	return &Table{lang: lang, names: names}
}

func (t *Table) Lang() Lang { return t.lang }

// Explain returns the spoken name of s, or s itself when it has none.
func (t *Table) Explain(s string) string {
	if name, ok := t.names[s]; ok {
		return name
	}
	return s
}

// Has reports whether s has a spoken name.
func (t *Table) Has(s string) bool {
	_, ok := t.names[s]
	return ok
}
