package segment

import "github.com/heartmarshall/myjapanese-miner/internal/domain"

// ReconstructReading derives the pronunciation of a conjugated surface form
// from its lemma's reading when the tokenizer did not supply one. The
// surface and lemma share a leading stem (the kanji plus any unchanged
// kana); the lemma's unshared tail is kana that reads as itself, so
// trimming that many runes off the lemma reading yields the stem's reading.
// The surface's own kana tail is then appended. The result is always
// hiragana-folded.
//
// 行く(いく) with surface 行った: stem 行, stem reading い, result いった.
//
// For verbs the lemma always ends in its inflecting kana; when the whole
// lemma matched (surface extends it, e.g. imperative stems), one trailing
// reading rune is still trimmed so the surface ending replaces the lemma's.
func ReconstructReading(surface, lemmaForm, lemmaReading string, verb bool) string {
	if surface == lemmaForm {
		return domain.ToHiragana(lemmaReading)
	}
	if domain.IsKana(surface) {
		return domain.ToHiragana(surface)
	}

	sr := []rune(surface)
	lf := []rune(lemmaForm)
	lr := []rune(domain.ToHiragana(lemmaReading))

	shared := 0
	for shared < len(sr) && shared < len(lf) && sr[shared] == lf[shared] {
		shared++
	}
	if shared == 0 {
		return string(lr)
	}

	tail := len(lf) - shared
	if verb && tail == 0 {
		tail = 1
	}
	if tail > len(lr) {
		return string(lr)
	}

	stemReading := string(lr[:len(lr)-tail])
	return stemReading + domain.ToHiragana(string(sr[shared:]))
}
