// Package vocab indexes a snapshot of the user's known vocabulary and
// scores candidate words against it with graded confidence.
package vocab

import (
	"github.com/heartmarshall/myjapanese-miner/internal/domain"
)

// Entry is one item of the user's known-vocabulary collection. Interval
// data comes from the review scheduler when available and feeds the
// comprehension heuristic, not the matcher itself.
type Entry struct {
	Term         string
	Reading      string
	IntervalDays float64
	HasInterval  bool
}

// Snapshot is an immutable point-in-time view of the collection with a
// normalized lookup index. Build once per fetch, share freely.
type Snapshot struct {
	entries []Entry
	index   map[string][]int
}

// NewSnapshot indexes every entry under its raw term, raw reading, and the
// normalized forms of both, so a probe by any spelling variant finds it.
func NewSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{
		entries: entries,
		index:   make(map[string][]int, len(entries)*2),
	}
	for i, e := range entries {
		s.addKey(e.Term, i)
		s.addKey(e.Reading, i)
		s.addKey(domain.NormalizeKey(e.Term), i)
		s.addKey(domain.NormalizeKey(e.Reading), i)
	}
	return s
}

func (s *Snapshot) addKey(key string, i int) {
	if key == "" {
		return
	}
	ids := s.index[key]
	if len(ids) > 0 && ids[len(ids)-1] == i {
		return
	}
	s.index[key] = append(s.index[key], i)
}

// Len reports the number of indexed entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns the underlying entry list.
func (s *Snapshot) Entries() []Entry {
	return s.entries
}

// Lookup returns the entry for an exact (term, normalized reading) pair.
func (s *Snapshot) Lookup(term, reading string) (Entry, bool) {
	want := domain.NormalizeKey(reading)
	for _, i := range s.index[term] {
		e := s.entries[i]
		if e.Term == term && domain.NormalizeKey(e.Reading) == want {
			return e, true
		}
	}
	return Entry{}, false
}

// candidates gathers the distinct entries reachable from any of the four
// probe keys, in index order.
func (s *Snapshot) candidates(term, reading string) []int {
	keys := [4]string{
		term,
		reading,
		domain.NormalizeKey(term),
		domain.NormalizeKey(reading),
	}
	seen := make(map[int]struct{}, 4)
	var out []int
	for _, key := range keys {
		if key == "" {
			continue
		}
		for _, i := range s.index[key] {
			if _, ok := seen[i]; ok {
				continue
			}
			seen[i] = struct{}{}
			out = append(out, i)
		}
	}
	return out
}
