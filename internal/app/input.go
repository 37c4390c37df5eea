package app

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// sentenceEnders terminate a sentence; newlines always do.
const sentenceEnders = "。！？!?"

// SplitSentences breaks raw text into sentences for one source, assigning
// sequential ids starting at 1. Terminators stay attached to their
// sentence; blank segments are dropped.
func SplitSentences(sourceID uuid.UUID, text string) []domain.Sentence {
	var sentences []domain.Sentence
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s == "" {
			return
		}
		sentences = append(sentences, domain.Sentence{
			ID:       len(sentences) + 1,
			SourceID: sourceID,
			Text:     s,
		})
	}

	for _, r := range text {
		if r == '\n' || r == '\r' {
			flush()
			continue
		}
		b.WriteRune(r)
		if strings.ContainsRune(sentenceEnders, r) {
			flush()
		}
	}
	flush()
	return sentences
}
