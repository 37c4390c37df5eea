package freqdict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// ExportYomitan writes a minimal Yomitan frequency dictionary to dir:
// an index.json manifest plus a single term_meta_bank_1.json whose values
// are 1-based ranks in ascending frequency order. Terms with no known
// frequency are omitted.
func ExportYomitan(dir, title, revision string, terms []domain.Term) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	type ranked struct {
		lemma   string
		reading string
		freq    int
	}
	rows := make([]ranked, 0, len(terms))
	for _, t := range terms {
		freq, ok := t.Frequencies[HarmonicKey]
		if !ok || freq == UnknownFrequency {
			continue
		}
		rows = append(rows, ranked{
			lemma:   t.LemmaForm,
			reading: domain.ToHiragana(t.LemmaReading),
			freq:    freq,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].freq != rows[j].freq {
			return rows[i].freq < rows[j].freq
		}
		return rows[i].lemma < rows[j].lemma
	})

	bank := make([][3]any, 0, len(rows))
	for rank, r := range rows {
		bank = append(bank, [3]any{
			r.lemma,
			"freq",
			map[string]any{
				"reading":   r.reading,
				"frequency": rank + 1,
			},
		})
	}

	index := map[string]any{
		"title":    title,
		"revision": revision,
		"format":   supportedFormat,
	}
	if err := writeJSON(filepath.Join(dir, "index.json"), index); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "term_meta_bank_1.json"), bank)
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
