package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/myjapanese-miner/internal/anki"
	"github.com/heartmarshall/myjapanese-miner/internal/config"
	"github.com/heartmarshall/myjapanese-miner/internal/freqdict"
	"github.com/heartmarshall/myjapanese-miner/internal/pipeline"
	"github.com/heartmarshall/myjapanese-miner/internal/tokenizer"
	"github.com/heartmarshall/myjapanese-miner/internal/vocab"
	"github.com/heartmarshall/myjapanese-miner/pkg/ctxutil"
)

// Options selects the input and output of one mining run.
type Options struct {
	// InputPath is the text file to mine.
	InputPath string
	// Title labels the source in the report.
	Title string
	// ExportDir, when set, receives the run's terms as a Yomitan
	// frequency dictionary.
	ExportDir string
}

// Run is the application entry point: it loads configuration, wires the
// frequency engine, tokenizer, Anki source, and pipeline, mines the input
// file, and writes the report to stdout.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	runID := uuid.NewString()
	ctx = ctxutil.WithRunID(ctx, runID)
	logger = logger.With(slog.String("run_id", runID))

	logger.Info("starting miner",
		slog.String("version", BuildVersion()),
		slog.String("input", opts.InputPath),
	)

	manager, err := freqdict.LoadDir(ctx, logger, cfg.Dictionary.Dir)
	if err != nil {
		return fmt.Errorf("load frequency dictionaries: %w", err)
	}

	tok, err := tokenizer.New()
	if err != nil {
		return err
	}

	ignore, err := pipeline.LoadIgnoreList(cfg.Pipeline.IgnoreListPath)
	if err != nil {
		return err
	}

	p := pipeline.New(tok, manager, vocabSource(cfg, logger), ignore, pipeline.Options{
		Weights: vocab.Weights{
			Threshold: cfg.Matcher.Threshold,
			High:      cfg.Matcher.High,
			Medium:    cfg.Matcher.Medium,
			Low:       cfg.Matcher.Low,
		},
		Scorer:  pipeline.LogRatioScorer(float64(cfg.Pipeline.KnownIntervalDays)),
		Workers: cfg.Pipeline.Workers,
	}, logger)

	text, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	sourceID := uuid.New()
	ctx = ctxutil.WithSourceID(ctx, sourceID)
	sentences := SplitSentences(sourceID, string(text))

	result, err := p.Run(ctx, sentences)
	if err != nil {
		return fmt.Errorf("mining run: %w", err)
	}

	if err := WriteReport(os.Stdout, result); err != nil {
		return err
	}

	if opts.ExportDir != "" {
		title := opts.Title
		if title == "" {
			title = "mined terms"
		}
		if err := freqdict.ExportYomitan(opts.ExportDir, title, runID, result.Terms); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		logger.Info("exported terms", slog.String("dir", opts.ExportDir))
	}
	return nil
}

// vocabSource builds the Anki-backed vocabulary source, or nil when no
// note models are configured.
func vocabSource(cfg *config.Config, logger *slog.Logger) pipeline.VocabSource {
	if len(cfg.Anki.Models) == 0 {
		logger.Info("no anki models configured, running without known-vocabulary source")
		return nil
	}
	models := make(map[string]anki.FieldMapping, len(cfg.Anki.Models))
	for name, m := range cfg.Anki.Models {
		models[name] = anki.FieldMapping{TermField: m.TermField, ReadingField: m.ReadingField}
	}
	client := anki.NewClientWithURL(cfg.Anki.URL, logger)
	if cfg.Anki.Timeout > 0 {
		client.SetTimeout(cfg.Anki.Timeout)
	}
	return anki.NewSource(client, models, logger)
}
