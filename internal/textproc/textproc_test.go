package textproc

import "testing"

func TestRemoveWhitespace(t *testing.T) {
	got := RemoveWhitespace(" a\tb\nc\r\nd\fe\vf ")
	if got != "abcdef" {
		t.Fatalf("RemoveWhitespace = %q, want %q", got, "abcdef")
	}
}

func TestMergeSpaces(t *testing.T) {
	got := MergeSpaces("a  b\t\tc\n\n\nd \t e")
	want := "a b c\nd e"
	if got != want {
		t.Fatalf("MergeSpaces = %q, want %q", got, want)
	}
}

func TestPunctuationToNewline(t *testing.T) {
	got := PunctuationToNewline(`你好，世界。ok!fine?a;b:c"d-e`)
	want := "你好\n世界\nok\nfine\na\nb\nc\nd\ne"
	if got != want {
		t.Fatalf("PunctuationToNewline = %q, want %q", got, want)
	}
}

func TestFoldWidth(t *testing.T) {
	got := FoldWidth("１２３ＡＢ％")
	if got != "123AB%" {
		t.Fatalf("FoldWidth = %q, want %q", got, "123AB%")
	}
	if got := NumeralsToChinese(FoldWidth("５０％")); got != "百分之五十" {
		t.Fatalf("NumeralsToChinese(FoldWidth) = %q, want %q", got, "百分之五十")
	}
}

func TestApply(t *testing.T) {
	got, err := Apply(NumeralsToChineseName, "12")
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got != "十二" {
		t.Fatalf("Apply = %q, want %q", got, "十二")
	}
	if _, err := Apply("nope", "x"); err == nil {
		t.Fatalf("Apply(nope) error = nil, want error")
	}
	for _, name := range Names() {
		if _, err := Apply(name, "a b"); err != nil {
			t.Fatalf("Apply(%s) error: %v", name, err)
		}
	}
}
