package ui

import (
	"fmt"

	"github.com/kobzarvs/clipvox/internal/browser"
	"github.com/kobzarvs/clipvox/internal/glyph"
)

type messages struct {
	now, row, column, totalChars string

	empty        string
	emptyItem    string
	copied       string
	deleted      string
	cleared      string
	translating  string
	voWarning    string
	noTranslator string
	captured     string
	appended     string

	editing         string
	translateMode   string
	cancelled       string
	nothingToUndo   string
	nothingToRedo   string
	editPrompt      string
	translatePrompt string
}

var zhMessages = messages{
	now:          "当前",
	row:          "行",
	column:       "列",
	totalChars:   "个字",
	empty:        "列表为空",
	emptyItem:    "没有内容",
	copied:       "已复制",
	deleted:      "已删除",
	cleared:      "已清空",
	translating:  "正在翻译",
	voWarning:    "获取VoiceOver朗读内容失败",
	noTranslator: "翻译不可用",
	captured:     "已添加",
	appended:     "已追加",

	editing:         "编辑",
	translateMode:   "翻译模式",
	cancelled:       "已取消",
	nothingToUndo:   "没有可撤销的操作",
	nothingToRedo:   "没有可重做的操作",
	editPrompt:      "编辑: ",
	translatePrompt: "翻译: ",
}

var enMessages = messages{
	now:          "Is",
	row:          "Row",
	column:       "Column",
	totalChars:   "Characters",
	empty:        "List is empty",
	emptyItem:    "Nothing here",
	copied:       "Copied",
	deleted:      "Deleted",
	cleared:      "Cleared",
	translating:  "Translating",
	voWarning:    "Getting VoiceOver Reading Failed",
	noTranslator: "Translation unavailable",
	captured:     "Added",
	appended:     "Appended",

	editing:         "Editing",
	translateMode:   "Translation mode",
	cancelled:       "Cancelled",
	nothingToUndo:   "Nothing to undo",
	nothingToRedo:   "Nothing to redo",
	editPrompt:      "edit: ",
	translatePrompt: "translate: ",
}

func messagesFor(lang glyph.Lang) messages {
	if lang == glyph.English {
		return enMessages
	}
	return zhMessages
}

func (m messages) summary(s browser.Summary) string {
	return fmt.Sprintf("%s: %d %s; %d %s; %d: %s",
		m.now, s.Row, m.row, s.Col, m.column, s.Total, m.totalChars)
}
