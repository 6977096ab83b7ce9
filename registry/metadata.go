package registry

import (
	"sort"
	"strings"
	"sync"
)

// Metadata is a static name-to-note table. It replaces runtime annotation
// scanning: each tagged name is registered once, typically from an init
// function, and queried later.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Semantics: Annotate overwrites an existing note for the same name;
//   Lookup on an untagged name reports ok=false, never an error.
type Metadata struct {
	mu    sync.RWMutex
	notes map[string]string
}

// NewMetadata creates an empty metadata table.
func NewMetadata() *Metadata {
	return &Metadata{notes: make(map[string]string)}
}

// Annotate tags name with note. Empty names are ignored.
func (m *Metadata) Annotate(name, note string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	m.mu.Lock()
	m.notes[name] = note
	m.mu.Unlock()
}

// Lookup returns the note attached to name.
func (m *Metadata) Lookup(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	note, ok := m.notes[strings.TrimSpace(name)]
	return note, ok
}

// Scan returns, in input order, the subset of names that carry a note.
func (m *Metadata) Scan(names ...string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tagged []string
	for _, name := range names {
		if _, ok := m.notes[strings.TrimSpace(name)]; ok {
			tagged = append(tagged, name)
		}
	}
	return tagged
}

// All returns every tagged name in sorted order.
func (m *Metadata) All() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.notes))
	for name := range m.notes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
