package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// japanese holds the ja translations, keyed by the en-US format.
var japanese = map[string]string{
	"row %d: %v":                               "%d 行目: %v",
	"offset address of %v is invalid: '%v'":    "%v のオフセットアドレスが不正です: '%v'",
	"assignment of %v is invalid: '%v': %v":    "%v のビット割り当てが不正です: '%v': %v",
	"bit field %v has no preceding register":   "ビットフィールド %v の前にレジスタがありません",
	"%v cell has the wrong type: %v":           "%v セルの型が不正です: %v",
	"empty cell":                               "空のセル",
	"cell is not text":                         "セルが文字列ではありません",
	"register name":                            "レジスタ名",
	"not a downto description":                 "downto 記述ではありません",
	"no bit notation matched":                  "ビット記法に一致しません",
	"bit field name missing":                   "ビットフィールド名がありません",
	"bit position out of range":                "ビット位置が範囲外です",
	"register %v: %v":                          "レジスタ %v: %v",
	"register has no bit fields":               "レジスタにビットフィールドがありません",
	"%v.%v is declared at row %d, expected %d": "%v.%v は %d 行目に宣言されています (期待値 %d)",
	"%v.%v is not a known attribute":           "%v.%v は不明な属性です",
	"%v.%v is required":                        "%v.%v は必須です",
	"%v.%v has an invalid location (%d, %d)":   "%v.%v の位置 (%d, %d) が不正です",
	"%v.%v shares column %d with %v":           "%v.%v は列 %d を %v と共有しています",
	"layout format '%v' unknown":               "レイアウト形式 '%v' は不明です",
	"register block %v is invalid: '%v'":       "レジスタブロックの %v が不正です: '%v'",
	"sheet %v not found":                       "シート %v が見つかりません",
	"input format '%v' unknown":                "入力形式 '%v' は不明です",
	"output format '%v' unknown":               "出力形式 '%v' は不明です",
}

var _ = loadCatalog()

// loadCatalog registers every message for en-US and ja, so that
// locale matching has an English default to fall back on.
func loadCatalog() bool {
	for key, ja := range japanese {
		_ = message.SetString(language.AmericanEnglish, key, key)
		_ = message.SetString(language.Japanese, key, ja)
	}
	return true
}
