// Package numeral reads the numbers embedded in a piece of text aloud in
// Chinese.
//
// Render extracts fractions, percentages, decimals, integers and the
// single-letter arithmetic operators a, s, m and d from its input and joins
// their spoken forms. Everything else in the input is dropped. Integers are
// read with the usual four-digit grouping (万, 亿, 万亿).
//
// Numbers are handled as digit strings, so arbitrarily long inputs never
// overflow. All functions are safe for concurrent use.
package numeral

import (
	"regexp"
	"strings"
)

const (
	zero     = "零"
	negative = "负"
	point    = "点"
	percent  = "百分之"
	over     = "分之"
	ten      = "十"
)

var digitNames = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// magnitudes are indexed by four-digit group, least significant first.
var magnitudes = [4]string{"", "万", "亿", "万亿"}

// placeUnits are indexed by position inside a full four-digit group.
var placeUnits = [4]string{"千", "百", "十", ""}

var operators = map[string]string{
	"a": " + ",
	"s": " - ",
	"m": " × ",
	"d": " ÷ ",
}

// Alternatives are tried in order at each position; the first that matches
// wins. Letters are consumed as whole runs so that only a lone letter can
// act as an operator.
var tokenPattern = regexp.MustCompile(
	`(-?[0-9]+/[0-9]+)` +
		`|(-?[0-9]+(?:\.[0-9]+)?%)` +
		`|(-?[0-9]+\.[0-9]+)` +
		`|(-?\.[0-9]+)` +
		`|(-?[0-9]+)` +
		`|([A-Za-z]+)`)

type kind int

const (
	kindFraction kind = iota + 1
	kindPercent
	kindDecimal
	kindDotDecimal
	kindInteger
	kindWord
)

// Render returns the spoken form of every numeral and operator in text.
func Render(text string) string {
	var sb strings.Builder
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		for k := kindFraction; k <= kindWord; k++ {
			start, end := m[2*int(k)], m[2*int(k)+1]
			if start < 0 {
				continue
			}
			sb.WriteString(renderToken(k, text[start:end]))
			break
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func renderToken(k kind, tok string) string {
	switch k {
	case kindFraction:
		num, den, _ := strings.Cut(tok, "/")
		if den == "1" {
			return Integer(num)
		}
		return Integer(den) + over + Integer(num)
	case kindPercent:
		return percent + renderDecimal(strings.TrimSuffix(tok, "%"))
	case kindDecimal, kindDotDecimal:
		return renderDecimal(tok)
	case kindInteger:
		return Integer(tok)
	case kindWord:
		if len(tok) == 1 {
			return operators[strings.ToLower(tok)]
		}
	}
	return ""
}

// renderDecimal reads s as an optionally signed number with an optional
// fraction part. The sign belongs to the integer part, so it is lost when
// that part is zero or missing.
func renderDecimal(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := Integer(intPart)
	if hasFrac && frac != "" {
		out += point + digitByDigit(frac)
	}
	return out
}

func splitSign(s string) (bool, string) {
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

func digitByDigit(digits string) string {
	var sb strings.Builder
	for i := 0; i < len(digits); i++ {
		sb.WriteString(digitNames[digits[i]-'0'])
	}
	return sb.String()
}

// Integer reads an optionally signed decimal digit string. Leading zeros are
// ignored and negative zero reads as 零.
func Integer(digits string) string {
	sign, body := splitSign(digits)
	body = strings.TrimLeft(body, "0")
	if body == "" {
		return zero
	}

	var out string
	if (len(body)+3)/4 > len(magnitudes) {
		// Beyond 万亿 there is no unit to attach; read the digits instead.
		out = digitByDigit(body)
	} else {
		out = groupsToChinese(body)
	}
	if sign {
		return negative + out
	}
	return out
}

func groupsToChinese(body string) string {
	// Split from the right; the most significant group is not padded.
	var groups []string
	for end := len(body); end > 0; end -= 4 {
		groups = append(groups, body[max(0, end-4):end])
	}

	var sb strings.Builder
	pendingZero := false
	for i := len(groups) - 1; i >= 0; i-- {
		g := fourDigits(groups[i])
		if g == "" {
			pendingZero = true
			continue
		}
		if pendingZero {
			sb.WriteString(zero)
			pendingZero = false
		}
		sb.WriteString(g)
		sb.WriteString(magnitudes[i])
	}

	out := strings.TrimRight(sb.String(), zero)
	if out == digitNames[1]+ten {
		out = ten
	}
	return out
}

// fourDigits reads a group of one to four digits. Zeros before a non-zero
// digit collapse into one 零; an all-zero group reads as nothing. A leading
// 1 in the tens place reads as 十 alone.
func fourDigits(group string) string {
	var sb strings.Builder
	offset := len(placeUnits) - len(group)
	sawZero := false
	first := true
	for i := 0; i < len(group); i++ {
		d := group[i] - '0'
		if d == 0 {
			sawZero = true
			continue
		}
		if sawZero {
			sb.WriteString(zero)
			sawZero = false
		}
		unit := placeUnits[offset+i]
		if unit == ten && d == 1 && first {
			sb.WriteString(unit)
		} else {
			sb.WriteString(digitNames[d])
			sb.WriteString(unit)
		}
		first = false
	}
	return sb.String()
}
