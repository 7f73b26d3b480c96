package glyph

// Generated from the zh and en spoken-name lists; keep the two in step.

var zhNames = map[string]string{
	" ":  "空格",
	"\n": "换行",
	"[":  "左中括号",
	"]":  "右中括号",
	"［":  "全角左中括号",
	"］":  "全角右中括号",
	"\"": "双引号",
	"“":  "左双引号",
	"”":  "右双引号",
	"'":  "单引号",
	"‘":  "左单引号",
	"’":  "右单引号",
	"A":  "大写A",
	"B":  "大写B",
	"C":  "大写C",
	"D":  "大写D",
	"E":  "大写E",
	"F":  "大写F",
	"G":  "大写G",
	"H":  "大写H",
	"I":  "大写I",
	"J":  "大写J",
	"K":  "大写K",
	"L":  "大写L",
	"M":  "大写M",
	"N":  "大写N",
	"O":  "大写O",
	"P":  "大写P",
	"Q":  "大写Q",
	"R":  "大写R",
	"S":  "大写S",
	"T":  "大写T",
	"U":  "大写U",
	"V":  "大写V",
	"W":  "大写W",
	"X":  "大写X",
	"Y":  "大写Y",
	"Z":  "大写Z",
	"٠":  "数字0",
	"٩":  "数字9",
	"٨":  "数字8",
	"٧":  "数字7",
	"٦":  "数字6",
	"٥":  "数字5",
	"٤":  "数字4",
	"٣":  "数字3",
	"٢":  "数字2",
	"١":  "数字1",
	"，":  "全角逗号",
	"。":  "句号",
	"？":  "全角问号",
	"！":  "全角感叹号",
	"：":  "全角冒号",
	"；":  "全角分号",
	"ā":  "一声阿",
	"á":  "二声嗄",
	"ǎ":  "三声啊",
	"à":  "四声啊",
	"ō":  "一声噢",
	"ó":  "二声哦",
	"ǒ":  "三声呕",
	"ò":  "四声怄",
	"ē":  "一声婀",
	"é":  "二声鹅",
	"ě":  "三声恶",
	"è":  "四声饿",
	"ī":  "一声衣",
	"í":  "二声姨",
	"ǐ":  "三声已",
	"ì":  "四声亿",
	"ū":  "一声屋",
	"ú":  "二声吴",
	"ǔ":  "三声五",
	"ù":  "四声务",
	"ǖ":  "一声淤",
	"ǘ":  "二声鱼",
	"ǚ":  "三声雨",
	"ǜ":  "四声欲",
	"ㄅ":  "注音符號,八聲,B3",
	"ㄆ":  "注音符號,匹聲,P1",
	"ㄇ":  "注音符號,罵聲,M1",
	"ㄈ":  "注音符號,芳聲,F2",
	"ㄉ":  "注音符號,刀聲,D",
	"ㄊ":  "注音符號,他聲,T",
	"ㄋ":  "注音符號,鳥聲,N1",
	"ㄌ":  "注音符號,拉聲,L2",
	"ㄍ":  "注音符號,哥聲,G1",
	"ㄎ":  "注音符號,客聲,K2",
	"ㄏ":  "注音符號,喝聲,H",
	"ㄐ":  "注音符號,機聲,J1",
	"ㄑ":  "注音符號,氣聲,CI",
	"ㄒ":  "注音符號,西聲,X",
	"ㄓ":  "注音符號,知聲,J2",
	"ㄔ":  "注音符號,吃聲,CH",
	"ㄕ":  "注音符號,詩聲,SH",
	"ㄖ":  "注音符號,日聲,R2",
	"ㄗ":  "注音符號,姿聲,Z",
	"ㄘ":  "注音符號,疵聲,C2",
	"ㄙ":  "注音符號,思聲,S2",
	"ㄧ":  "注音符號,一聲,I",
	"ㄨ":  "注音符號,烏聲,W2",
	"ㄩ":  "注音符號,迂聲,U1",
	"ㄚ":  "注音符號,阿聲,A1",
	"ㄛ":  "注音符號,喔聲,O3",
	"ㄜ":  "注音符號,婀聲,E3",
	"ㄝ":  "注音符號,葉聲,E2",
	"ㄞ":  "注音符號,埃聲,AI",
	"ㄟ":  "注音符號,威聲,EI",
	"ㄠ":  "注音符號,凹聲,AU",
	"ㄡ":  "注音符號,歐聲,OU",
	"ㄢ":  "注音符號,安聲,AN",
	"ㄣ":  "注音符號,恩聲,EN",
	"ㄤ":  "注音符號,骯聲,ANG",
	"ㄥ":  "注音符號,英聲,ENG",
	"ㄦ":  "注音符號,兒聲,R3",
	"Ⅰ":  "羅馬數字一",
	"Ⅱ":  "羅馬數字二",
	"Ⅲ":  "羅馬數字三",
	"Ⅳ":  "羅馬數字四",
	"Ⅴ":  "羅馬數字五",
	"Ⅵ":  "羅馬數字六",
	"Ⅶ":  "羅馬數字七",
	"Ⅷ":  "羅馬數字八",
	"Ⅸ":  "羅馬數字九",
	"Ⅹ":  "羅馬數字十",
}

var enNames = map[string]string{
	" ":  "space",
	"\n": "new line",
	"[":  "left square bracket",
	"]":  "right square bracket",
	"［":  "full-width left square bracket",
	"］":  "full-width right square bracket",
	"\"": "half-width double quote",
	"“":  "full-width left double quote",
	"”":  "full-width right double quote",
	"'":  "half-width single quote",
	"‘":  "full-width left single quote",
	"’":  "full-width right single quote",
	"A":  "cap A",
	"B":  "cap B",
	"C":  "cap C",
	"D":  "cap D",
	"E":  "cap E",
	"F":  "cap F",
	"G":  "cap G",
	"H":  "cap H",
	"I":  "cap I",
	"J":  "cap J",
	"K":  "cap K",
	"L":  "cap L",
	"M":  "cap M",
	"N":  "cap N",
	"O":  "cap O",
	"P":  "cap P",
	"Q":  "cap Q",
	"R":  "cap R",
	"S":  "cap S",
	"T":  "cap T",
	"U":  "cap U",
	"V":  "cap V",
	"W":  "cap W",
	"X":  "cap X",
	"Y":  "cap Y",
	"Z":  "cap Z",
	"٠":  "digit 0",
	"٩":  "digit 9",
	"٨":  "digit 8",
	"٧":  "digit 7",
	"٦":  "digit 6",
	"٥":  "digit 5",
	"٤":  "digit 4",
	"٣":  "digit 3",
	"٢":  "digit 2",
	"١":  "digit 1",
	"，":  "full-width comma",
	"。":  "full-width period",
	"？":  "full-width question mark",
	"！":  "full-width exclamation mark",
	"：":  "full-width colon",
	"；":  "full-width semicolon",
	"ā":  "first tone a",
	"á":  "second tone a",
	"ǎ":  "third tone a",
	"à":  "fourth tone a",
	"ō":  "first tone o",
	"ó":  "second tone o",
	"ǒ":  "third tone o",
	"ò":  "fourth tone o",
	"ē":  "first tone e",
	"é":  "second tone e",
	"ě":  "third tone e",
	"è":  "fourth tone e",
	"ī":  "first tone i",
	"í":  "second tone i",
	"ǐ":  "third tone i",
	"ì":  "fourth tone i",
	"ū":  "first tone u",
	"ú":  "second tone u",
	"ǔ":  "third tone u",
	"ù":  "fourth tone u",
	"ǖ":  "first tone ü",
	"ǘ":  "second tone ü",
	"ǚ":  "third tone ü",
	"ǜ":  "fourth tone ü",
	"ㄅ":  "bopomofo, ba sound, B3",
	"ㄆ":  "bopomofo, pi sound, P1",
	"ㄇ":  "bopomofo, ma sound, M1",
	"ㄈ":  "bopomofo, fang sound, F2",
	"ㄉ":  "bopomofo, dao sound, D",
	"ㄊ":  "bopomofo, ta sound, T",
	"ㄋ":  "bopomofo, niao sound, N1",
	"ㄌ":  "bopomofo, la sound, L2",
	"ㄍ":  "bopomofo, ge sound, G1",
	"ㄎ":  "bopomofo, ke sound, K2",
	"ㄏ":  "bopomofo, he sound, H",
	"ㄐ":  "bopomofo, ji sound, J1",
	"ㄑ":  "bopomofo, qi sound, CI",
	"ㄒ":  "bopomofo, xi sound, X",
	"ㄓ":  "bopomofo, zhi sound, J2",
	"ㄔ":  "bopomofo, chi sound, CH",
	"ㄕ":  "bopomofo, shi sound, SH",
	"ㄖ":  "bopomofo, ri sound, R2",
	"ㄗ":  "bopomofo, zi sound, Z",
	"ㄘ":  "bopomofo, ci sound, C2",
	"ㄙ":  "bopomofo, si sound, S2",
	"ㄧ":  "bopomofo, yi sound, I",
	"ㄨ":  "bopomofo, wu sound, W2",
	"ㄩ":  "bopomofo, yu sound, U1",
	"ㄚ":  "bopomofo, a sound, A1",
	"ㄛ":  "bopomofo, o sound, O3",
	"ㄜ":  "bopomofo, e sound, E3",
	"ㄝ":  "bopomofo, ye sound, E2",
	"ㄞ":  "bopomofo, ai sound, AI",
	"ㄟ":  "bopomofo, wei sound, EI",
	"ㄠ":  "bopomofo, ao sound, AU",
	"ㄡ":  "bopomofo, ou sound, OU",
	"ㄢ":  "bopomofo, an sound, AN",
	"ㄣ":  "bopomofo, en sound, EN",
	"ㄤ":  "bopomofo, ang sound, ANG",
	"ㄥ":  "bopomofo, ying sound, ENG",
	"ㄦ":  "bopomofo, er sound, R3",
	"Ⅰ":  "Roman numeral I",
	"Ⅱ":  "Roman numeral II",
	"Ⅲ":  "Roman numeral III",
	"Ⅳ":  "Roman numeral IV",
	"Ⅴ":  "Roman numeral V",
	"Ⅵ":  "Roman numeral VI",
	"Ⅶ":  "Roman numeral VII",
	"Ⅷ":  "Roman numeral VIII",
	"Ⅸ":  "Roman numeral IX",
	"Ⅹ":  "Roman numeral X",
}
