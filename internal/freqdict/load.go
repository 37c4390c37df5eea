package freqdict

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// supportedFormat is the only dictionary manifest version accepted.
const supportedFormat = 3

// cacheFileName is the binary snapshot stored next to a dictionary's
// source files, keyed by the manifest revision.
const cacheFileName = "cache.bin"

var bankFilePattern = regexp.MustCompile(`^term_meta_bank_\d+\.json$`)

// Index is a dictionary's index.json manifest. Either Format or Version
// carries the format number.
type Index struct {
	Title    string `json:"title"`
	Revision string `json:"revision"`
	Format   *int   `json:"format"`
	Version  *int   `json:"version"`
}

// formatVersion returns whichever of format/version is present.
func (ix Index) formatVersion() (int, error) {
	switch {
	case ix.Format != nil:
		return *ix.Format, nil
	case ix.Version != nil:
		return *ix.Version, nil
	}
	return 0, domain.ErrMissingVersion
}

// LoadDir loads every dictionary directory under root into a new Manager.
// Directories load in parallel; each is independent, and the only shared
// state is the Manager's own locked map. Unsupported or malformed
// manifests are skipped with a notice, never fatal.
func LoadDir(ctx context.Context, log *slog.Logger, root string) (*Manager, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read dictionary root %s: %w", root, err)
	}

	manager := NewManager()
	g, _ := errgroup.WithContext(ctx)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		g.Go(func() error {
			dict, err := loadDictionary(log, dir)
			if err != nil {
				log.Warn("skipping dictionary",
					slog.String("dir", dir),
					slog.String("error", err.Error()),
				)
				return nil
			}
			manager.Add(dict)
			log.Info("loaded frequency dictionary",
				slog.String("title", dict.Title),
				slog.String("revision", dict.Revision),
				slog.Int("terms", len(dict.Terms)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return manager, nil
}

// loadDictionary loads one dictionary directory, preferring the binary
// cache when its revision matches the manifest.
func loadDictionary(log *slog.Logger, dir string) (*Dictionary, error) {
	index, err := parseIndex(dir)
	if err != nil {
		return nil, err
	}
	version, err := index.formatVersion()
	if err != nil {
		return nil, err
	}
	if version != supportedFormat {
		return nil, fmt.Errorf("format version %d: %w", version, domain.ErrUnsupportedVersion)
	}

	cachePath := filepath.Join(dir, cacheFileName)
	if cached, err := readCache(cachePath); err == nil {
		if cached.Revision == index.Revision {
			return cached, nil
		}
		log.Info("dictionary cache revision mismatch, rebuilding",
			slog.String("title", index.Title),
			slog.String("cached", cached.Revision),
			slog.String("manifest", index.Revision),
		)
	} else if !errors.Is(err, os.ErrNotExist) {
		// Corrupt cache: rebuild from source, not an error.
		log.Warn("dictionary cache unreadable, rebuilding",
			slog.String("title", index.Title),
			slog.String("error", err.Error()),
		)
	}

	metas, err := parseTermMetaBanks(dir)
	if err != nil {
		return nil, err
	}
	dict := New(index.Title, index.Revision, metas)

	if err := writeCache(cachePath, dict); err != nil {
		log.Warn("failed to write dictionary cache",
			slog.String("title", dict.Title),
			slog.String("error", err.Error()),
		)
	}
	return dict, nil
}

func parseIndex(dir string) (Index, error) {
	data, err := os.ReadFile(filepath.Join(dir, "index.json"))
	if err != nil {
		return Index{}, fmt.Errorf("read index.json: %w", err)
	}
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return Index{}, fmt.Errorf("parse index.json: %w", err)
	}
	return index, nil
}

// parseTermMetaBanks reads every term_meta_bank_N.json in the directory, in
// file-name order, keeping only "freq" rows.
func parseTermMetaBanks(dir string) ([]TermMeta, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dictionary dir: %w", err)
	}

	var banks []string
	for _, entry := range entries {
		if !entry.IsDir() && bankFilePattern.MatchString(entry.Name()) {
			banks = append(banks, entry.Name())
		}
	}
	sort.Strings(banks)

	var metas []TermMeta
	for _, name := range banks {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var rows [][]json.RawMessage
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		for _, row := range rows {
			meta, ok := parseMetaRow(row)
			if ok {
				metas = append(metas, meta)
			}
		}
	}
	return metas, nil
}

// parseMetaRow decodes one [term, "freq", data] triple. Rows of other
// types (pitch, ipa) or with undecodable data are silently dropped.
func parseMetaRow(row []json.RawMessage) (TermMeta, bool) {
	if len(row) < 3 {
		return TermMeta{}, false
	}
	var term, dataType string
	if err := json.Unmarshal(row[0], &term); err != nil {
		return TermMeta{}, false
	}
	if err := json.Unmarshal(row[1], &dataType); err != nil || dataType != "freq" {
		return TermMeta{}, false
	}
	entry, ok := parseFrequencyData(row[2])
	if !ok {
		return TermMeta{}, false
	}
	return TermMeta{Term: term, Entry: entry}, true
}

// parseFrequencyData handles the three data shapes: a bare value, a
// {value, displayValue} object, or a reading-qualified {reading, frequency}
// object whose frequency is either of the first two.
func parseFrequencyData(raw json.RawMessage) (Entry, bool) {
	var nested struct {
		Reading   string          `json:"reading"`
		Frequency json.RawMessage `json:"frequency"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Reading != "" && len(nested.Frequency) > 0 {
		value, display, ok := parseFrequencyValue(nested.Frequency)
		if !ok {
			return Entry{}, false
		}
		return Entry{Reading: nested.Reading, Value: value, Display: display}, true
	}

	value, display, ok := parseFrequencyValue(raw)
	if !ok {
		return Entry{}, false
	}
	return Entry{Value: value, Display: display}, true
}

// parseFrequencyValue accepts a number, a numeric string, or a
// {value, displayValue} object.
func parseFrequencyValue(raw json.RawMessage) (int, string, bool) {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return int(number), "", true
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		n, err := strconv.Atoi(str)
		if err != nil {
			return 0, "", false
		}
		return n, "", true
	}

	var complex struct {
		Value        json.RawMessage `json:"value"`
		DisplayValue string          `json:"displayValue"`
	}
	if err := json.Unmarshal(raw, &complex); err == nil && len(complex.Value) > 0 {
		value, _, ok := parseFrequencyValue(complex.Value)
		if !ok {
			return 0, "", false
		}
		return value, complex.DisplayValue, true
	}

	return 0, "", false
}

func readCache(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var dict Dictionary
	if err := gob.NewDecoder(f).Decode(&dict); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}
	return &dict, nil
}

func writeCache(path string, dict *Dictionary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(dict); err != nil {
		f.Close()
		return fmt.Errorf("encode cache: %w", err)
	}
	return f.Close()
}
