package freqdict

import (
	"fmt"
	"sort"
	"sync"

	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// HarmonicKey is the frequency-map key holding the weighted-harmonic
// aggregate across enabled dictionaries.
const HarmonicKey = "HARMONIC"

// MinWeight is the floor a dictionary weight is clamped to. Weights are
// always strictly positive.
const MinWeight = 0.1

// State is the runtime toggle for one dictionary.
type State struct {
	Enabled bool
	Weight  float64
}

// Manager owns the loaded dictionaries plus their enabled/weight states.
// States are read on every lookup and written only when the user toggles a
// dictionary, so reads share an RLock and never block each other. The
// Manager is an explicitly constructed shared reference: every consumer
// receives the same *Manager, there is no package-level instance.
type Manager struct {
	mu     sync.RWMutex
	dicts  map[string]*Dictionary
	states map[string]State
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{
		dicts:  make(map[string]*Dictionary),
		states: make(map[string]State),
	}
}

// Add registers a dictionary under its title. A dictionary seen for the
// first time starts enabled at weight 1.0; re-adding (a rebuild) keeps the
// existing state.
func (m *Manager) Add(d *Dictionary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dicts[d.Title] = d
	if _, ok := m.states[d.Title]; !ok {
		m.states[d.Title] = State{Enabled: true, Weight: 1.0}
	}
}

// Names returns the titles of all loaded dictionaries, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.dicts))
	for name := range m.dicts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State returns the current state for a dictionary.
func (m *Manager) State(name string) (State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.states[name]
	return s, ok
}

// SetState updates a dictionary's enabled flag and weight, clamping the
// weight to MinWeight. It reports whether anything changed, so callers can
// skip recomputation on no-op toggles. Takes effect on the next lookup; no
// reload happens.
func (m *Manager) SetState(name string, enabled bool, weight float64) (bool, error) {
	if weight < MinWeight {
		weight = MinWeight
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.states[name]
	if !ok {
		return false, fmt.Errorf("dictionary %q: %w", name, domain.ErrNotFound)
	}
	next := State{Enabled: enabled, Weight: weight}
	if cur == next {
		return false, nil
	}
	m.states[name] = next
	return true, nil
}

// FrequencyMap collects the (lemma, reading) pair's value from every
// dictionary that has one, keyed by dictionary title, and adds the
// weighted-harmonic aggregate under HarmonicKey. Per-dictionary values are
// reported regardless of the enabled flag; only the aggregate respects it.
func (m *Manager) FrequencyMap(lemma, reading string, isKana bool) map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	freqs := make(map[string]int, len(m.dicts)+1)
	for name, d := range m.dicts {
		if v, ok := d.Frequency(lemma, reading, isKana); ok {
			freqs[name] = v
		}
	}
	freqs[HarmonicKey] = m.weightedHarmonicLocked(freqs)
	return freqs
}

// Combined returns the weighted harmonic mean of the pair's value across
// every enabled dictionary that has one, or UnknownFrequency when none do.
func (m *Manager) Combined(lemma, reading string, isKana bool) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	freqs := make(map[string]int, len(m.dicts))
	for name, d := range m.dicts {
		if v, ok := d.Frequency(lemma, reading, isKana); ok {
			freqs[name] = v
		}
	}
	return m.weightedHarmonicLocked(freqs)
}

// weightedHarmonicLocked computes (Σw) / (Σ w/v) over enabled dictionaries
// with a positive value. Callers hold at least an RLock.
func (m *Manager) weightedHarmonicLocked(freqs map[string]int) int {
	var weightSum, reciprocalSum float64
	for name, v := range freqs {
		if name == HarmonicKey || v <= 0 {
			continue
		}
		state, ok := m.states[name]
		if !ok || !state.Enabled {
			continue
		}
		weightSum += state.Weight
		reciprocalSum += state.Weight / float64(v)
	}
	if reciprocalSum == 0 {
		return UnknownFrequency
	}
	combined := int(weightSum/reciprocalSum + 0.5)
	if combined < 1 {
		combined = 1
	}
	return combined
}

// EntriesByTerm gathers every recorded entry for the exact term across all
// dictionaries, bypassing reading logic. For non-kana terms, kana-marked
// entries are filtered out; a kana key already matched on its kana spelling
// so nothing is filtered. Not affected by enabled flags or weights.
func (m *Manager) EntriesByTerm(term string) []Entry {
	isKana := domain.IsKana(term)

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Entry
	for _, d := range m.dicts {
		for _, e := range d.EntriesByTerm(term) {
			if !isKana && e.KanaMarker {
				continue
			}
			out = append(out, e)
		}
	}
	return out
}
