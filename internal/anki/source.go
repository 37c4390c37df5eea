package anki

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
	"github.com/heartmarshall/myjapanese-miner/internal/vocab"
)

// FieldMapping names the note fields holding a model's term and reading.
type FieldMapping struct {
	TermField    string `yaml:"term_field" env:"TERM_FIELD"`
	ReadingField string `yaml:"reading_field" env:"READING_FIELD"`
}

// Source builds vocabulary snapshots from the user's Anki collection, one
// configured note model at a time.
type Source struct {
	client *Client
	models map[string]FieldMapping
	log    *slog.Logger
}

// NewSource wires a Source over a client and the model field mappings.
func NewSource(client *Client, models map[string]FieldMapping, logger *slog.Logger) *Source {
	return &Source{
		client: client,
		models: models,
		log:    logger.With("adapter", "anki"),
	}
}

// Fetch pulls every note of every configured model and returns them as
// snapshot entries. Notes missing their term field are skipped; a missing
// reading on a kana-written term is backfilled from the term itself.
func (s *Source) Fetch(ctx context.Context) ([]vocab.Entry, error) {
	var entries []vocab.Entry
	for model, mapping := range s.models {
		modelEntries, err := s.fetchModel(ctx, model, mapping)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", model, err)
		}
		entries = append(entries, modelEntries...)
	}
	s.log.InfoContext(ctx, "fetched vocabulary from anki", slog.Int("entries", len(entries)))
	return entries, nil
}

func (s *Source) fetchModel(ctx context.Context, model string, mapping FieldMapping) ([]vocab.Entry, error) {
	ids, err := s.client.FindNotes(ctx, fmt.Sprintf("note:%q", model))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	notes, err := s.client.NotesInfo(ctx, ids)
	if err != nil {
		return nil, err
	}

	// One interval request for every note's first card.
	cardIDs := make([]int64, 0, len(notes))
	cardOwner := make([]int, 0, len(notes))
	for i, note := range notes {
		if len(note.Cards) > 0 {
			cardIDs = append(cardIDs, note.Cards[0])
			cardOwner = append(cardOwner, i)
		}
	}
	intervals := make(map[int]float64, len(cardIDs))
	if len(cardIDs) > 0 {
		values, err := s.client.Intervals(ctx, cardIDs)
		if err != nil {
			return nil, err
		}
		for pos, v := range values {
			if pos < len(cardOwner) {
				intervals[cardOwner[pos]] = v
			}
		}
	}

	entries := make([]vocab.Entry, 0, len(notes))
	for i, note := range notes {
		term := fieldValue(note, mapping.TermField)
		if term == "" {
			continue
		}
		reading := fieldValue(note, mapping.ReadingField)
		if reading == "" && domain.IsKana(term) {
			reading = term
		}
		entry := vocab.Entry{Term: term, Reading: reading}
		if v, ok := intervals[i]; ok {
			entry.IntervalDays = v
			entry.HasInterval = true
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func fieldValue(note Note, field string) string {
	if field == "" {
		return ""
	}
	return strings.TrimSpace(note.Fields[field].Value)
}
