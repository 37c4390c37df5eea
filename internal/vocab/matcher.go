package vocab

import (
	"github.com/heartmarshall/myjapanese-miner/internal/domain"
	"github.com/heartmarshall/myjapanese-miner/internal/freqdict"
)

// Weights holds the confidence values the tiered matcher assigns. Tier
// ordering and short-circuit behavior are fixed; only the values move.
type Weights struct {
	Threshold float64
	High      float64
	Medium    float64
	Low       float64
}

// DefaultWeights mirrors the values the heuristics were tuned with.
func DefaultWeights() Weights {
	return Weights{
		Threshold: 0.60,
		High:      0.85,
		Medium:    0.70,
		Low:       0.55,
	}
}

// FrequencyProvider is the raw-lookup slice of the frequency engine the
// structural tier needs for reading plausibility.
type FrequencyProvider interface {
	EntriesByTerm(term string) []freqdict.Entry
}

// contentCategories are the open-class categories worth fuzzy matching.
// Everything else is grammar glue the user is assumed to know.
var contentCategories = map[domain.Category]struct{}{
	domain.Noun:           {},
	domain.ProperNoun:     {},
	domain.CompoundNoun:   {},
	domain.Verb:           {},
	domain.SuruVerb:       {},
	domain.Adjective:      {},
	domain.AdjectivalNoun: {},
	domain.Adverb:         {},
	domain.Expression:     {},
	domain.Onomatopoeia:   {},
}

// Matcher scores candidate words against a vocabulary snapshot.
type Matcher struct {
	snapshot *Snapshot
	freqs    FrequencyProvider
	weights  Weights
}

// NewMatcher builds a matcher over a snapshot. freqs may be nil, in which
// case the kana/kanji structural tier never fires: without frequency
// records the pair cannot be verified.
func NewMatcher(snapshot *Snapshot, freqs FrequencyProvider, weights Weights) *Matcher {
	return &Matcher{snapshot: snapshot, freqs: freqs, weights: weights}
}

// Score rates how likely the (term, reading) pair is already part of the
// collection, in [0,1]. Candidates come from the snapshot's four-key index;
// tiers run in strict precedence and an exact match returns immediately.
func (m *Matcher) Score(term, reading string, category domain.Category) float64 {
	candidates := m.snapshot.candidates(term, reading)
	if len(candidates) == 0 {
		return 0
	}

	readingKey := domain.NormalizeKey(reading)

	// Exact term and reading beats everything, including the
	// closed-class cutoff below.
	for _, i := range candidates {
		e := m.snapshot.entries[i]
		if e.Term == term && domain.NormalizeKey(e.Reading) == readingKey {
			return 1.0
		}
	}

	if _, ok := contentCategories[category]; !ok {
		return 0
	}

	best := 0.0
	for _, i := range candidates {
		if s := m.scoreAgainst(m.snapshot.entries[i], term, readingKey); s > best {
			best = s
		}
	}
	return best
}

// scoreAgainst rates one candidate below the exact tier.
func (m *Matcher) scoreAgainst(e Entry, term, readingKey string) float64 {
	if e.Term == term {
		return m.weights.High
	}

	entryReadingKey := domain.NormalizeKey(e.Reading)
	sameReading := entryReadingKey == readingKey && readingKey != ""

	termIsKana := domain.IsKana(term)
	entryIsKana := domain.IsKana(e.Term)

	// One side written in kana, the other in kanji, same pronunciation:
	// likely the same word in a different spelling. Confidence scales
	// with how plausible that reading is for the kanji form.
	if sameReading && termIsKana != entryIsKana {
		kanjiForm := term
		if termIsKana {
			kanjiForm = e.Term
		}
		return m.weights.High * m.readingPlausibility(kanjiForm, readingKey)
	}

	if domain.NormalizeKey(e.Term) == domain.NormalizeKey(term) && sameReading {
		return m.weights.Medium
	}

	if sameReading && !termIsKana && !entryIsKana {
		return m.weights.Low
	}

	return 0
}

// readingPlausibility rates how common the matched reading is for the kanji
// form, using every reading-qualified frequency record for that term. No
// records at all means the pairing cannot be verified and scores 0. A term
// with a single recorded reading scores 0.9. Otherwise per-reading averages
// are rescaled linearly across the observed range: the most common reading
// scores 0.9, the rarest 0.1.
func (m *Matcher) readingPlausibility(kanjiForm, readingKey string) float64 {
	if m.freqs == nil {
		return 0
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range m.freqs.EntriesByTerm(kanjiForm) {
		if e.Reading == "" || e.Value <= 0 {
			continue
		}
		key := domain.NormalizeKey(e.Reading)
		sums[key] += float64(e.Value)
		counts[key]++
	}
	if len(counts) == 0 {
		return 0
	}
	if len(counts) == 1 {
		return 0.9
	}

	matched, ok := sums[readingKey]
	if !ok {
		return 0.1
	}
	matched /= float64(counts[readingKey])

	min, max := matched, matched
	for key, sum := range sums {
		avg := sum / float64(counts[key])
		if avg < min {
			min = avg
		}
		if avg > max {
			max = avg
		}
	}
	if max == min {
		return 0.9
	}

	// Lower average rank means more common. Closeness 1.0 is the most
	// common reading for this term.
	closeness := (max - matched) / (max - min)
	return 0.1 + 0.8*closeness
}

// ScoreTerm rates a pipeline term by both its surface and lemma forms and
// takes the better score.
func (m *Matcher) ScoreTerm(t domain.Term) float64 {
	surface := m.Score(t.SurfaceForm, t.SurfaceReading, t.Category)
	if surface == 1.0 {
		return surface
	}
	lemma := m.Score(t.LemmaForm, t.LemmaReading, t.Category)
	if lemma > surface {
		return lemma
	}
	return surface
}

// IsKnown reports whether the term clears the confidence threshold.
func (m *Matcher) IsKnown(t domain.Term) bool {
	return m.ScoreTerm(t) >= m.weights.Threshold
}
