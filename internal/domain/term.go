package domain

import "github.com/google/uuid"

// Classification is the pipeline's verdict on a term.
type Classification string

const (
	ClassUnknown Classification = "unknown" // mining candidate
	ClassKnown   Classification = "known"   // matched against the vocabulary snapshot
	ClassIgnored Classification = "ignored" // lemma form is on the ignore list
)

// SentenceRef locates one occurrence of a term: the sentence it appeared in
// and the byte offset of its surface form within the sentence text.
type SentenceRef struct {
	SentenceID int
	Offset     int
}

// Source identifies one input (a text or subtitle file) a batch of
// sentences came from.
type Source struct {
	ID    uuid.UUID
	Title string
}

// Sentence is one unit of input text. Comprehension is filled in by the
// pipeline: the mean comprehension of all terms referencing the sentence,
// or 0 when none do.
type Sentence struct {
	ID            int
	SourceID      uuid.UUID
	Text          string
	Timestamp     string
	Comprehension float64
}

// Term is the pipeline's output unit: a composed word plus frequency
// statistics, occurrence references, and a classification.
type Term struct {
	LemmaForm      string
	LemmaReading   string
	SurfaceForm    string
	SurfaceReading string
	IsKana         bool
	Category       Category

	// Frequencies maps dictionary title to the term's frequency value in
	// that dictionary, plus the weighted-harmonic aggregate under the
	// "HARMONIC" key.
	Frequencies map[string]int

	SentenceRefs   []SentenceRef
	Comprehension  float64
	Classification Classification
}

// NewTerm builds a Term from a composed word. When the word has a main
// token, the term cites that token's forms; the full segment stays
// available through SurfaceForm of the word itself.
func NewTerm(w Word) Term {
	t := Term{
		LemmaForm:      w.LemmaForm,
		LemmaReading:   w.LemmaReading,
		SurfaceForm:    w.SurfaceForm,
		SurfaceReading: w.SurfaceReading,
		Category:       w.Category,
	}
	if w.Main != nil {
		t.LemmaForm = w.Main.LemmaForm
		t.LemmaReading = w.Main.LemmaReading
		t.SurfaceForm = w.Main.Surface
		t.SurfaceReading = w.Main.SurfaceReading
	}
	t.IsKana = IsKana(t.LemmaForm)
	return t
}

// Key returns the term's deduplication identity: lemma form plus the
// hiragana-folded lemma reading.
func (t Term) Key() (string, string) {
	return t.LemmaForm, ToHiragana(t.LemmaReading)
}

// AddRef appends a sentence reference unless an identical one is already
// recorded.
func (t *Term) AddRef(ref SentenceRef) {
	for _, r := range t.SentenceRefs {
		if r == ref {
			return
		}
	}
	t.SentenceRefs = append(t.SentenceRefs, ref)
}
