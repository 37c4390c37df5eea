package pipeline

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
	"github.com/heartmarshall/myjapanese-miner/internal/freqdict"
)

// Phrase detection thresholds. Frequencies are ranks, so a smaller value
// means a more common word.
const (
	// phraseMinRunes rejects spans too short to be a set phrase.
	phraseMinRunes = 4

	// phraseScoreThreshold accepts a span whose listed rank is good
	// relative to the product of its members' ranks.
	phraseScoreThreshold = 10.0

	// phraseRatioThreshold accepts a span that is much rarer than its
	// most common member: the members alone would overstate familiarity.
	phraseRatioThreshold = 120.0

	// Rarely listed spans (rank beyond phraseRareRank) additionally need
	// a minimum ratio, or the listing is likely coincidental.
	phraseRareRank     = 10000
	phraseRareMinRatio = 40.0
)

// detectPhrase scans one sentence's composed words for an adjacent span
// whose joined spelling is itself listed in the frequency dictionaries.
// Longest span wins and at most one phrase is emitted per sentence.
func (p *Pipeline) detectPhrase(words []domain.Word) (domain.Word, bool) {
	for start := 0; start < len(words); start++ {
		for end := len(words) - 1; end > start; end-- {
			if phrase, ok := p.phraseFromSpan(words[start : end+1]); ok {
				return phrase, true
			}
		}
	}
	return domain.Word{}, false
}

// phraseFromSpan joins a span into a candidate phrase and applies the
// listing heuristics.
func (p *Pipeline) phraseFromSpan(span []domain.Word) (domain.Word, bool) {
	phrase := joinSpan(span)
	if utf8.RuneCountInString(phrase.LemmaForm) < phraseMinRunes {
		return domain.Word{}, false
	}

	reading := domain.ToHiragana(phrase.SurfaceReading)
	freq := p.freqs.Combined(phrase.SurfaceForm, reading, domain.IsKana(phrase.SurfaceForm))
	if freq == freqdict.UnknownFrequency {
		return domain.Word{}, false
	}

	product := 1.0
	maxRatio := 0.0
	for _, w := range span {
		member := float64(p.freqs.Combined(w.LemmaForm, domain.ToHiragana(w.LemmaReading), domain.IsKana(w.LemmaForm)))
		product *= member
		if ratio := float64(freq) / member; ratio > maxRatio {
			maxRatio = ratio
		}
	}
	score := math.Pow(float64(freq), float64(len(span))) / product

	if freq > phraseRareRank && maxRatio < phraseRareMinRatio {
		return domain.Word{}, false
	}
	if score > phraseScoreThreshold && maxRatio < phraseRatioThreshold {
		return domain.Word{}, false
	}
	return phrase, true
}

// joinSpan concatenates adjacent words into one candidate phrase. Set
// phrases are cited by their joined spelling, so it doubles as the lemma.
// A span of nouns stays a compound noun; anything else is an expression.
func joinSpan(span []domain.Word) domain.Word {
	var surface, reading strings.Builder
	var tokens []domain.Token
	category := domain.CompoundNoun
	for _, w := range span {
		surface.WriteString(w.SurfaceForm)
		reading.WriteString(w.SurfaceReading)
		tokens = append(tokens, w.Tokens...)
		switch w.Category {
		case domain.Noun, domain.CompoundNoun, domain.ProperNoun:
		default:
			category = domain.Expression
		}
	}
	return domain.Word{
		SurfaceForm:    surface.String(),
		SurfaceReading: reading.String(),
		LemmaForm:      surface.String(),
		LemmaReading:   reading.String(),
		Category:       category,
		Tokens:         tokens,
	}
}
