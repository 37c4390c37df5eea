package app

import (
	"fmt"
	"io"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
	"github.com/heartmarshall/myjapanese-miner/internal/freqdict"
	"github.com/heartmarshall/myjapanese-miner/internal/pipeline"
)

// WriteReport renders a mining result as a plain-text report: the unknown
// terms with their frequency and occurrence counts, then summary totals
// and the per-sentence comprehension table.
func WriteReport(w io.Writer, result pipeline.Result) error {
	var known, ignored, unknown int
	for _, t := range result.Terms {
		switch t.Classification {
		case domain.ClassKnown:
			known++
		case domain.ClassIgnored:
			ignored++
		default:
			unknown++
		}
	}

	if _, err := fmt.Fprintf(w, "mining candidates (%d):\n", unknown); err != nil {
		return err
	}
	for _, t := range result.Terms {
		if t.Classification != domain.ClassUnknown {
			continue
		}
		freq := "unknown"
		if v, ok := t.Frequencies[freqdict.HarmonicKey]; ok && v != freqdict.UnknownFrequency {
			freq = fmt.Sprintf("%d", v)
		}
		if _, err := fmt.Fprintf(w, "  %s (%s)\t%s\tfreq=%s\toccurrences=%d\n",
			t.LemmaForm, t.LemmaReading, t.Category, freq, len(t.SentenceRefs)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\ntotals: %d terms, %d known, %d ignored, %d unknown\n",
		len(result.Terms), known, ignored, unknown); err != nil {
		return err
	}
	if result.VocabUnavailable {
		if _, err := fmt.Fprintln(w, "note: vocabulary source was unavailable, known-term detection skipped"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nsentence comprehension:"); err != nil {
		return err
	}
	for _, s := range result.Sentences {
		if _, err := fmt.Fprintf(w, "  %3d  %.2f  %s\n", s.ID, s.Comprehension, s.Text); err != nil {
			return err
		}
	}
	return nil
}
