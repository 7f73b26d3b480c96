package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Terminals deliver option+shift+digit as the shifted symbol with ModAlt
// (US layout). Map it back so keymaps can say "alt+shift+7".
var shiftedDigits = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

// keyString names a key event the way keymaps spell it: "j", "T",
// "alt+c", "alt+shift+7", "ctrl+c", "up", "enter".
func keyString(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if mods&tcell.ModCtrl != 0 {
			return "ctrl+" + string(unicode.ToLower(r))
		}
		if mods&tcell.ModAlt != 0 {
			shift := mods&tcell.ModShift != 0
			if d, ok := shiftedDigits[r]; ok {
				r, shift = d, true
			} else if unicode.IsUpper(r) {
				r, shift = unicode.ToLower(r), true
			}
			if shift {
				return "alt+shift+" + string(r)
			}
			return "alt+" + string(r)
		}
		if r == ' ' {
			return "space"
		}
		return string(r)
	}

	prefix := ""
	if mods&tcell.ModAlt != 0 {
		prefix += "alt+"
	}
	if mods&tcell.ModShift != 0 {
		prefix += "shift+"
	}
	// Named keys first: Enter, Tab and Backspace share codes with ctrl+m/i/h.
	switch ev.Key() {
	case tcell.KeyUp:
		return prefix + "up"
	case tcell.KeyDown:
		return prefix + "down"
	case tcell.KeyLeft:
		return prefix + "left"
	case tcell.KeyRight:
		return prefix + "right"
	case tcell.KeyPgUp:
		return prefix + "pgup"
	case tcell.KeyPgDn:
		return prefix + "pgdn"
	case tcell.KeyHome:
		return prefix + "home"
	case tcell.KeyEnd:
		return prefix + "end"
	case tcell.KeyEnter:
		return prefix + "enter"
	case tcell.KeyTab:
		return prefix + "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return prefix + "backspace"
	case tcell.KeyDelete:
		return prefix + "del"
	case tcell.KeyEscape:
		return "esc"
	}
	if name := ctrlKeyName(ev.Key()); name != "" {
		return name
	}
	return ""
}

func ctrlKeyName(key tcell.Key) string {
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(key-tcell.KeyCtrlA)))
	}
	return ""
}
