// Package pipeline coordinates tokenization, word composition, frequency
// annotation, and known-vocabulary classification into a mining report.
package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
	"github.com/heartmarshall/myjapanese-miner/internal/freqdict"
	"github.com/heartmarshall/myjapanese-miner/internal/segment"
	"github.com/heartmarshall/myjapanese-miner/internal/vocab"
)

// Tokenizer produces morphological tokens for one sentence.
type Tokenizer interface {
	Tokenize(text string) ([]domain.Token, error)
}

// VocabSource fetches the user's known-vocabulary collection.
type VocabSource interface {
	Fetch(ctx context.Context) ([]vocab.Entry, error)
}

// Frequencies is the slice of the frequency engine the pipeline needs.
type Frequencies interface {
	FrequencyMap(lemma, reading string, isKana bool) map[string]int
	Combined(lemma, reading string, isKana bool) int
	EntriesByTerm(term string) []freqdict.Entry
}

// Pipeline runs the full mining flow for batches of sentences.
type Pipeline struct {
	tokenizer Tokenizer
	freqs     Frequencies
	source    VocabSource
	ignore    *IgnoreList
	scorer    Scorer
	weights   vocab.Weights
	rules     []segment.Rule
	workers   int
	log       *slog.Logger
}

// Options tunes a Pipeline beyond its required collaborators.
type Options struct {
	Weights vocab.Weights
	Scorer  Scorer
	Rules   []segment.Rule
	Workers int
}

// New assembles a Pipeline. Zero-value options fall back to the default
// matcher weights, the interval scorer with a 21-day known horizon, the
// default rule table, and 4 workers.
func New(tokenizer Tokenizer, freqs Frequencies, source VocabSource, ignore *IgnoreList, opts Options, logger *slog.Logger) *Pipeline {
	if opts.Weights == (vocab.Weights{}) {
		opts.Weights = vocab.DefaultWeights()
	}
	if opts.Scorer == nil {
		opts.Scorer = LogRatioScorer(21)
	}
	if opts.Rules == nil {
		opts.Rules = segment.DefaultRules()
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	return &Pipeline{
		tokenizer: tokenizer,
		freqs:     freqs,
		source:    source,
		ignore:    ignore,
		scorer:    opts.Scorer,
		weights:   opts.Weights,
		rules:     opts.Rules,
		workers:   opts.Workers,
		log:       logger.With("component", "pipeline"),
	}
}

// Result is one mining run's output. Sentences carry their computed
// comprehension; Terms are sorted by (lemma form, lemma reading).
type Result struct {
	Terms     []domain.Term
	Sentences []domain.Sentence

	// VocabUnavailable is set when the known-vocabulary fetch failed and
	// every non-ignored term was classified unknown.
	VocabUnavailable bool
}

// Run mines the given sentences. Sentences are processed concurrently;
// aggregation and classification are sequential so the output is
// deterministic.
func (p *Pipeline) Run(ctx context.Context, sentences []domain.Sentence) (Result, error) {
	var result Result

	snapshot := p.fetchSnapshot(ctx, &result)

	words := make([][]domain.Word, len(sentences))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range sentences {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tokens, err := p.tokenizer.Tokenize(sentences[i].Text)
			if err != nil {
				return err
			}
			composed, err := segment.Compose(tokens, p.rules)
			if err != nil {
				return err
			}
			if phrase, ok := p.detectPhrase(composed); ok {
				composed = append(composed, phrase)
			}
			words[i] = composed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	terms := p.collectTerms(sentences, words)
	p.classify(terms, snapshot, result.VocabUnavailable)
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].LemmaForm != terms[j].LemmaForm {
			return terms[i].LemmaForm < terms[j].LemmaForm
		}
		return terms[i].LemmaReading < terms[j].LemmaReading
	})

	result.Terms = terms
	result.Sentences = scoreSentences(sentences, terms)

	p.log.InfoContext(ctx, "mining run complete",
		slog.Int("sentences", len(sentences)),
		slog.Int("terms", len(terms)),
		slog.Bool("vocab_unavailable", result.VocabUnavailable),
	)
	return result, nil
}

// fetchSnapshot pulls the known-vocabulary collection, degrading to an
// empty snapshot when the source is down.
func (p *Pipeline) fetchSnapshot(ctx context.Context, result *Result) *vocab.Snapshot {
	if p.source == nil {
		result.VocabUnavailable = true
		return vocab.NewSnapshot(nil)
	}
	entries, err := p.source.Fetch(ctx)
	if err != nil {
		p.log.WarnContext(ctx, "vocabulary source unavailable, treating all terms as unknown",
			slog.String("error", err.Error()),
		)
		result.VocabUnavailable = true
		return vocab.NewSnapshot(nil)
	}
	return vocab.NewSnapshot(entries)
}

// collectTerms turns composed words into deduplicated terms with frequency
// maps and sentence references.
func (p *Pipeline) collectTerms(sentences []domain.Sentence, words [][]domain.Word) []domain.Term {
	type key struct{ lemma, reading string }
	index := make(map[key]int)
	var terms []domain.Term

	for i, sentenceWords := range words {
		for _, w := range sentenceWords {
			t := domain.NewTerm(w)
			lemma, reading := t.Key()
			ref := domain.SentenceRef{
				SentenceID: sentences[i].ID,
				Offset:     strings.Index(sentences[i].Text, w.SurfaceForm),
			}

			k := key{lemma, reading}
			if at, ok := index[k]; ok {
				terms[at].AddRef(ref)
				continue
			}
			t.Frequencies = p.freqs.FrequencyMap(t.LemmaForm, reading, t.IsKana)
			t.AddRef(ref)
			index[k] = len(terms)
			terms = append(terms, t)
		}
	}
	return terms
}

// classify partitions terms into ignored, known, and unknown, and assigns
// comprehension. With the vocabulary unavailable everything non-ignored is
// unknown with zero comprehension.
func (p *Pipeline) classify(terms []domain.Term, snapshot *vocab.Snapshot, degraded bool) {
	matcher := vocab.NewMatcher(snapshot, p.freqs, p.weights)

	for i := range terms {
		t := &terms[i]
		if p.ignore != nil && p.ignore.Contains(t.LemmaForm) {
			t.Classification = domain.ClassIgnored
			t.Comprehension = 1.0
			continue
		}
		if !degraded && matcher.IsKnown(*t) {
			t.Classification = domain.ClassKnown
			t.Comprehension = 1.0
			continue
		}
		t.Classification = domain.ClassUnknown
		t.Comprehension = p.unknownComprehension(snapshot, *t)
	}
}

// unknownComprehension applies the scorer to the review interval of the
// closest collection entry, when one exists.
func (p *Pipeline) unknownComprehension(snapshot *vocab.Snapshot, t domain.Term) float64 {
	if entry, ok := snapshot.Lookup(t.LemmaForm, t.LemmaReading); ok && entry.HasInterval {
		return p.scorer(entry.IntervalDays, true)
	}
	return p.scorer(0, false)
}

// scoreSentences computes each sentence's comprehension as the mean over
// the terms referencing it.
func scoreSentences(sentences []domain.Sentence, terms []domain.Term) []domain.Sentence {
	sums := make(map[int]float64, len(sentences))
	counts := make(map[int]int, len(sentences))
	for _, t := range terms {
		seen := make(map[int]struct{}, len(t.SentenceRefs))
		for _, ref := range t.SentenceRefs {
			if _, ok := seen[ref.SentenceID]; ok {
				continue
			}
			seen[ref.SentenceID] = struct{}{}
			sums[ref.SentenceID] += t.Comprehension
			counts[ref.SentenceID]++
		}
	}

	out := make([]domain.Sentence, len(sentences))
	copy(out, sentences)
	for i := range out {
		if n := counts[out[i].ID]; n > 0 {
			out[i].Comprehension = sums[out[i].ID] / float64(n)
		} else {
			out[i].Comprehension = 0
		}
	}
	return out
}
