package ipadic

import "strings"

const (
	katakanaFirst = 'ァ' // U+30A1
	katakanaLast  = 'ヶ' // U+30F6
	kanaOffset    = 0x60

	hiraganaFirst = 'ぁ' // U+3041
	hiraganaLast  = 'ゞ' // U+309E
	prolonged     = 'ー'
)

// Small and archaic katakana with no direct shifted form in use.
var katakanaSpecial = map[rune]rune{
	'ヵ': 'か',
	'ヶ': 'け',
	'ヷ': 'わ',
	'ヸ': 'ゐ',
	'ヹ': 'ゑ',
	'ヺ': 'を',
	'ヴ': 'ゔ',
}

// KatakanaToHiragana converts katakana to hiragana and leaves everything
// else untouched.
func KatakanaToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if mapped, ok := katakanaSpecial[r]; ok {
			return mapped
		}
		if r >= katakanaFirst && r <= katakanaLast {
			return r - kanaOffset
		}
		return r
	}, s)
}

// Normalize converts s to hiragana and drops every rune outside ぁ..ゞ and ー.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= hiraganaFirst && r <= hiraganaLast) || r == prolonged {
			return r
		}
		return -1
	}, KatakanaToHiragana(s))
}
