package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

// defaultIgnored covers the grammar glue every learner already knows.
var defaultIgnored = []string{
	"の", "は", "に", "へ", "を", "て", "が", "だ", "た", "と",
	"から", "も", "で", "か", "です", "ね", "な",
}

// IgnoreList is the set of lemma forms excluded from mining, persisted as
// a JSON array so the user can edit it by hand.
type IgnoreList struct {
	mu    sync.RWMutex
	path  string
	items map[string]struct{}
}

// LoadIgnoreList reads the list from path. A missing file yields the
// default particle set; path may be empty for an in-memory default list.
func LoadIgnoreList(path string) (*IgnoreList, error) {
	l := &IgnoreList{path: path, items: make(map[string]struct{})}

	if path == "" {
		l.reset()
		return l, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		l.reset()
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ignore list: %w", err)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse ignore list: %w", err)
	}
	for _, item := range items {
		l.items[item] = struct{}{}
	}
	return l, nil
}

func (l *IgnoreList) reset() {
	for _, item := range defaultIgnored {
		l.items[item] = struct{}{}
	}
}

// Contains reports whether the lemma form is ignored.
func (l *IgnoreList) Contains(lemma string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.items[lemma]
	return ok
}

// Add puts a lemma form on the list.
func (l *IgnoreList) Add(lemma string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[lemma] = struct{}{}
}

// Remove takes a lemma form off the list.
func (l *IgnoreList) Remove(lemma string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.items, lemma)
}

// Items returns the ignored lemma forms, sorted.
func (l *IgnoreList) Items() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	items := make([]string, 0, len(l.items))
	for item := range l.items {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Save writes the list back to its file. No-op without a path.
func (l *IgnoreList) Save() error {
	if l.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(l.Items(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ignore list: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write ignore list: %w", err)
	}
	return nil
}
