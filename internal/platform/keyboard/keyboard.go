// Package keyboard reports the active input source so the status line can
// show whether keys will reach clipvox or an IME.
package keyboard

import "strings"

var layoutAbbreviations = map[string]string{
	"ABC":            "US",
	"US":             "US",
	"British":        "GB",
	"ITABC":          "拼音",
	"Pinyin":         "拼音",
	"Shuangpin":      "双拼",
	"WBX":            "五笔",
	"WBH":            "五笔",
	"Zhuyin":         "注音",
	"ZhuyinEten":     "注音",
	"Cangjie":        "仓颉",
	"SuchengIM":      "速成",
	"Handwriting":    "手写",
	"PinyinKeyboard": "拼音",
}

func simplifyLayoutName(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	sep := strings.LastIndexAny(raw, ".")
	if sep >= 0 && sep < len(raw)-1 {
		raw = raw[sep+1:]
	}
	raw = strings.ReplaceAll(raw, "-", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if abbr, ok := layoutAbbreviations[raw]; ok {
		return abbr
	}
	return raw
}

// IsIME reports whether the raw input source id belongs to an input method
// rather than a plain keyboard layout.
func IsIME(raw string) bool {
	return strings.Contains(raw, ".inputmethod.")
}

// CurrentLayout returns a short display name for the active input source,
// or "" when it cannot be determined.
func CurrentLayout() string {
	return simplifyLayoutName(CurrentLayoutRaw())
}
