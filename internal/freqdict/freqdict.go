// Package freqdict loads Yomitan-format frequency dictionaries and serves
// per-term frequency statistics, combining values across enabled, weighted
// dictionaries with a weighted harmonic mean.
package freqdict

import (
	"math"
	"strings"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// UnknownFrequency is the sentinel for "no enabled dictionary knows this
// term". It sorts as rarer than any real value and is never zero.
const UnknownFrequency = math.MaxInt32

// kanaMarker is the display-string glyph frequency dictionaries use to flag
// an entry as belonging to the kana spelling of a headword.
const kanaMarker = "㋕"

// Entry is one frequency record for a term. Reading is empty for fallback
// entries that apply regardless of reading.
type Entry struct {
	Reading    string
	Value      int
	Display    string
	KanaMarker bool
}

// TermMeta is one parsed [term, "freq", data] row from a term meta bank.
type TermMeta struct {
	Term  string
	Entry Entry
}

// Dictionary is one loaded frequency dictionary. Terms preserves the
// source's per-term entry order. Keys and entry readings are long-vowel
// normalized at build time so lookups never re-normalize the stored side.
type Dictionary struct {
	Title    string
	Revision string
	Terms    map[string][]Entry
}

// New builds a Dictionary from parsed term meta rows.
func New(title, revision string, metas []TermMeta) *Dictionary {
	terms := make(map[string][]Entry, len(metas))
	for _, meta := range metas {
		e := meta.Entry
		if e.Reading != "" {
			e.Reading = domain.NormalizeLongVowel(e.Reading)
		}
		e.KanaMarker = strings.Contains(e.Display, kanaMarker)
		key := domain.NormalizeLongVowel(meta.Term)
		terms[key] = append(terms[key], e)
	}
	return &Dictionary{Title: title, Revision: revision, Terms: terms}
}

// Frequency looks up the value for a (lemma, reading) pair. isKana marks a
// lemma whose dictionary form is written in kana: those prefer entries
// carrying the kana-headword marker, falling back through unmarked
// reading-qualified entries to reading-free ones.
func (d *Dictionary) Frequency(lemma, reading string, isKana bool) (int, bool) {
	lemma = domain.NormalizeLongVowel(lemma)
	reading = domain.NormalizeLongVowel(reading)

	if isKana {
		if e, ok := d.kanaFrequency(lemma, reading); ok {
			return e, true
		}
	}
	return d.normalFrequency(lemma, reading)
}

func (d *Dictionary) kanaFrequency(lemma, reading string) (int, bool) {
	entries, ok := d.Terms[lemma]
	if !ok {
		return 0, false
	}
	for _, e := range entries {
		if e.Reading != "" && e.KanaMarker && e.Reading == reading {
			return e.Value, true
		}
	}
	for _, e := range entries {
		if e.Reading == "" {
			return e.Value, true
		}
	}
	return 0, false
}

func (d *Dictionary) normalFrequency(lemma, reading string) (int, bool) {
	entries, ok := d.Terms[lemma]
	if !ok {
		return 0, false
	}
	best, found := 0, false
	for _, e := range entries {
		if e.Reading != "" && !e.KanaMarker && e.Reading == reading {
			if !found || e.Value < best {
				best, found = e.Value, true
			}
		}
	}
	if found {
		return best, true
	}
	for _, e := range entries {
		if e.Reading == "" {
			return e.Value, true
		}
	}
	return 0, false
}

// EntriesByTerm returns every entry recorded under the exact term key,
// bypassing reading logic. Used by the vocabulary matcher's structural
// tiers.
func (d *Dictionary) EntriesByTerm(term string) []Entry {
	return d.Terms[domain.NormalizeLongVowel(term)]
}
