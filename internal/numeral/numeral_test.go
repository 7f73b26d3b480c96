package numeral

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"hello, world!", ""},
		{"5", "五"},
		{"0", "零"},
		{"10", "十"},
		{"15", "十五"},
		{"20", "二十"},
		{"110", "一百一十"},
		{"1001", "一千零一"},
		{"0.5", "零点五"},
		{".5", "零点五"},
		{"3.14", "三点一四"},
		{"1/2", "二分之一"},
		{"3/1", "三"},
		{"1/0", "零分之一"},
		{"-1/2", "二分之负一"},
		{"50%", "百分之五十"},
		{"12.5%", "百分之十二点五"},
		{"-5%", "百分之负五"},
		{"3a4", "三 + 四"},
		{"3A4", "三 + 四"},
		{"8s2", "八 - 二"},
		{"6m7", "六 × 七"},
		{"9D3", "九 ÷ 三"},
		{"-12", "负十二"},
		{"-0", "零"},
		{"-1.5", "负一点五"},
		{"-.5", "零点五"},
		{"-0.5", "零点五"},
		{"-0.0", "零点零"},
		{"-0.5%", "百分之零点五"},
		{"-2.5%", "百分之负二点五"},
		{"price 42 yuan", "四十二"},
		{"add 1 and 2", "一二"},
		{"a", "+"},
		{"x 3 y", "三"},
		{"1.2.3", "一点二零点三"},
		{"007", "七"},
		{"50 % off", "五十"},
		{"共3a4个", "三 + 四"},
	}
	for _, tt := range tests {
		if got := Render(tt.in); got != tt.want {
			t.Fatalf("Render(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "零"},
		{"000", "零"},
		{"1", "一"},
		{"10", "十"},
		{"11", "十一"},
		{"19", "十九"},
		{"100", "一百"},
		{"101", "一百零一"},
		{"1000", "一千"},
		{"1010", "一千零一十"},
		{"9999", "九千九百九十九"},
		{"10000", "一万"},
		{"10001", "一万零一"},
		{"10010", "一万零十"},
		{"10100", "一万零一百"},
		{"100000", "十万"},
		{"110000", "十一万"},
		{"1000000", "一百万"},
		{"12345678", "一千二百三十四万五千六百七十八"},
		{"100000000", "一亿"},
		{"100010000", "一亿零一万"},
		{"1000000010", "十亿零零十"},
		{"1000000000000", "一万亿"},
		{"9999999999999999", "九千九百九十九万亿九千九百九十九亿九千九百九十九万九千九百九十九"},
		{"-10", "负十"},
		{"-100000000", "负一亿"},
	}
	for _, tt := range tests {
		if got := Integer(tt.in); got != tt.want {
			t.Fatalf("Integer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIntegerBeyondLargestMagnitude(t *testing.T) {
	got := Integer("12345678901234567")
	want := "一二三四五六七八九零一二三四五六七"
	if got != want {
		t.Fatalf("Integer = %q, want %q", got, want)
	}
}

func TestFourDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0000", ""},
		{"0", ""},
		{"10", "十"},
		{"0010", "零十"},
		{"0100", "零一百"},
		{"1001", "一千零一"},
		{"1100", "一千一百"},
		{"0011", "零十一"},
		{"2010", "二千零一十"},
	}
	for _, tt := range tests {
		if got := fourDigits(tt.in); got != tt.want {
			t.Fatalf("fourDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderCollapsesWhitespace(t *testing.T) {
	if got := Render("1a a2"); got != "一 + + 二" {
		t.Fatalf("Render = %q, want %q", got, "一 + + 二")
	}
	if got := Render("s"); got != "-" {
		t.Fatalf("Render = %q, want %q", got, "-")
	}
}
