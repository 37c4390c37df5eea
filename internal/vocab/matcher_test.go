package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
	"github.com/heartmarshall/myjapanese-miner/internal/freqdict"
)

type fakeFreqs map[string][]freqdict.Entry

func (f fakeFreqs) EntriesByTerm(term string) []freqdict.Entry {
	return f[term]
}

func newTestMatcher(entries []Entry, freqs FrequencyProvider) *Matcher {
	return NewMatcher(NewSnapshot(entries), freqs, DefaultWeights())
}

func TestScoreExactMatch(t *testing.T) {
	t.Parallel()

	m := newTestMatcher([]Entry{{Term: "猫", Reading: "ねこ"}}, nil)
	assert.Equal(t, 1.0, m.Score("猫", "ねこ", domain.Noun))

	// Katakana reading normalizes to the same key.
	assert.Equal(t, 1.0, m.Score("猫", "ネコ", domain.Noun))
}

func TestScoreClosedClassAlwaysZero(t *testing.T) {
	t.Parallel()

	// The particle の collides with the noun の in the collection; the
	// closed-class cutoff must win over the exact-term tier.
	m := newTestMatcher([]Entry{{Term: "の", Reading: "のう"}}, nil)
	assert.Equal(t, 0.0, m.Score("の", "の", domain.Postposition))
}

func TestScoreExactMatchBeatsClosedClass(t *testing.T) {
	t.Parallel()

	// A full (term, reading) hit short-circuits before the category check.
	m := newTestMatcher([]Entry{{Term: "の", Reading: "の"}}, nil)
	assert.Equal(t, 1.0, m.Score("の", "の", domain.Postposition))
}

func TestScoreExactTermDifferentReading(t *testing.T) {
	t.Parallel()

	m := newTestMatcher([]Entry{{Term: "生", Reading: "なま"}}, nil)
	assert.Equal(t, 0.85, m.Score("生", "せい", domain.Noun))
}

func TestScoreKanjiKanaPair(t *testing.T) {
	t.Parallel()

	// Collection holds the kana spelling, candidate is the kanji form.
	// いただく is the dominant recorded reading of 頂く, so the pair is
	// highly plausible.
	freqs := fakeFreqs{
		"頂く": {
			{Reading: "いただく", Value: 100},
			{Reading: "ちょうだく", Value: 9000},
		},
	}
	m := newTestMatcher([]Entry{{Term: "いただく", Reading: "いただく"}}, freqs)

	score := m.Score("頂く", "いただく", domain.Verb)
	assert.InDelta(t, 0.85*0.9, score, 1e-9)
	assert.GreaterOrEqual(t, score, DefaultWeights().Threshold)
}

func TestScoreKanjiKanaPairRareReading(t *testing.T) {
	t.Parallel()

	freqs := fakeFreqs{
		"頂く": {
			{Reading: "いただく", Value: 100},
			{Reading: "ちょうだく", Value: 9000},
		},
	}
	m := newTestMatcher([]Entry{{Term: "ちょうだく", Reading: "ちょうだく"}}, freqs)

	score := m.Score("頂く", "ちょうだく", domain.Verb)
	assert.InDelta(t, 0.85*0.1, score, 1e-9)
	assert.Less(t, score, DefaultWeights().Threshold)
}

func TestScoreKanjiKanaPairSingleReading(t *testing.T) {
	t.Parallel()

	freqs := fakeFreqs{"頂く": {{Reading: "いただく", Value: 100}}}
	m := newTestMatcher([]Entry{{Term: "いただく", Reading: "いただく"}}, freqs)
	assert.InDelta(t, 0.85*0.9, m.Score("頂く", "いただく", domain.Verb), 1e-9)
}

func TestScoreKanjiKanaPairNoFrequencyData(t *testing.T) {
	t.Parallel()

	// With zero recorded readings for the kanji form there is no evidence
	// the two spellings are the same word. The structural tier must not
	// fire, keeping the candidate below the known threshold.
	entries := []Entry{{Term: "いただく", Reading: "いただく"}}

	m := newTestMatcher(entries, fakeFreqs{})
	score := m.Score("頂く", "いただく", domain.Verb)
	assert.Equal(t, 0.0, score)
	assert.Less(t, score, DefaultWeights().Threshold)

	// A nil provider is the same as having no records.
	m = newTestMatcher(entries, nil)
	assert.Equal(t, 0.0, m.Score("頂く", "いただく", domain.Verb))
}

func TestScoreNormalizedFormsMatch(t *testing.T) {
	t.Parallel()

	// Raw forms differ only in long-vowel spelling.
	m := newTestMatcher([]Entry{{Term: "とおり", Reading: "とおり"}}, nil)
	assert.Equal(t, 0.70, m.Score("とうり", "とうり", domain.Noun))
}

func TestScoreSameReadingDifferentKanji(t *testing.T) {
	t.Parallel()

	m := newTestMatcher([]Entry{{Term: "橋", Reading: "はし"}}, nil)
	assert.Equal(t, 0.55, m.Score("箸", "はし", domain.Noun))
}

func TestScoreNoCandidates(t *testing.T) {
	t.Parallel()

	m := newTestMatcher([]Entry{{Term: "猫", Reading: "ねこ"}}, nil)
	assert.Equal(t, 0.0, m.Score("犬", "いぬ", domain.Noun))
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Term: "猫", Reading: "ねこ"},
		{Term: "いただく", Reading: "いただく"},
		{Term: "橋", Reading: "はし"},
	}
	m := newTestMatcher(entries, fakeFreqs{})

	probes := []struct {
		term, reading string
		category      domain.Category
	}{
		{"猫", "ねこ", domain.Noun},
		{"頂く", "いただく", domain.Verb},
		{"箸", "はし", domain.Noun},
		{"の", "の", domain.Postposition},
		{"珈琲", "こーひー", domain.Noun},
	}
	for _, p := range probes {
		s := m.Score(p.term, p.reading, p.category)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestScoreTermTakesBestForm(t *testing.T) {
	t.Parallel()

	// Only the lemma form is in the collection; the conjugated surface
	// form alone would not match.
	m := newTestMatcher([]Entry{{Term: "食べる", Reading: "たべる"}}, nil)

	term := domain.Term{
		SurfaceForm:    "食べました",
		SurfaceReading: "たべました",
		LemmaForm:      "食べる",
		LemmaReading:   "たべる",
		Category:       domain.Verb,
	}
	assert.Equal(t, 1.0, m.ScoreTerm(term))
	assert.True(t, m.IsKnown(term))
}

func TestSnapshotLookup(t *testing.T) {
	t.Parallel()

	s := NewSnapshot([]Entry{
		{Term: "猫", Reading: "ねこ", IntervalDays: 30, HasInterval: true},
	})
	require.Equal(t, 1, s.Len())

	e, ok := s.Lookup("猫", "ネコ")
	require.True(t, ok)
	assert.Equal(t, 30.0, e.IntervalDays)

	_, ok = s.Lookup("犬", "いぬ")
	assert.False(t, ok)
}
