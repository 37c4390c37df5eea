package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Long-vowel variants collapse to a canonical spelling so that とおい and
// とうい (or けえ and けい) compare equal.
var (
	longO = regexp.MustCompile("([おこそとのほもよろごぞどぼぽ])お")
	longE = regexp.MustCompile("([けせてねへめれげぜでべぺ])え")
)

// NormalizeLongVowel rewrites o-row + お to o-row + う and e-row + え to
// e-row + い. Input is expected to be hiragana; other text passes through.
func NormalizeLongVowel(s string) string {
	s = longO.ReplaceAllString(s, "${1}う")
	s = longE.ReplaceAllString(s, "${1}い")
	return s
}

// IsKana reports whether s is non-empty and consists entirely of kana
// (hiragana, katakana, or the prolonged sound mark). Half-width katakana is
// folded to full-width before the check.
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range width.Fold.String(s) {
		if !isKanaRune(r) {
			return false
		}
	}
	return true
}

func isKanaRune(r rune) bool {
	switch {
	case r >= 0x3041 && r <= 0x3096: // hiragana
		return true
	case r >= 0x30A1 && r <= 0x30FA: // katakana
		return true
	case r == 'ー' || r == '・':
		return true
	}
	return false
}

// ContainsKanji reports whether s has at least one CJK ideograph.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF || r == '々' || r == '〆' {
			return true
		}
	}
	return false
}

// ToHiragana folds katakana (including half-width) to hiragana; everything
// else is left untouched.
func ToHiragana(s string) string {
	s = width.Fold.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x30A1 && r <= 0x30F6 {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeKey is the canonical comparison form used by the vocabulary
// index and matcher: hiragana-folded with long vowels collapsed.
func NormalizeKey(s string) string {
	return NormalizeLongVowel(ToHiragana(s))
}
