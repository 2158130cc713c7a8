// Package knowledge holds the reference table of clinical markers: canonical
// names, aliases, units, categories, reference ranges and the explanatory
// texts shown to patients.
//
// A KnowledgeBase is immutable once built and safe for concurrent use.
package knowledge

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/pedroganco/sanum/internal/domain"
)

// Collision records a name or alias that more than one entry claims. The
// entry that was inserted first keeps the key.
type Collision struct {
	Key    string
	Winner string
	Loser  string
}

// KnowledgeBase indexes marker entries by case-folded canonical name and alias.
type KnowledgeBase struct {
	entries    []domain.MarkerInfo
	names      map[string]int
	aliases    map[string]int
	categories map[domain.Category][]int
	collisions []Collision
}

var (
	defaultOnce sync.Once
	defaultKB   *KnowledgeBase
)

// Default returns the process-wide knowledge base built from the curated
// marker table. It is constructed on first use.
func Default() *KnowledgeBase {
	defaultOnce.Do(func() {
		defaultKB = New(defaultEntries())
	})
	return defaultKB
}

// New builds a knowledge base over entries. Canonical names are indexed
// before aliases, so a canonical name always takes precedence over another
// entry's alias. Among keys of the same kind the first entry wins.
func New(entries []domain.MarkerInfo) *KnowledgeBase {
	kb := &KnowledgeBase{
		entries:    make([]domain.MarkerInfo, len(entries)),
		names:      make(map[string]int, len(entries)),
		aliases:    make(map[string]int, len(entries)*4),
		categories: make(map[domain.Category][]int),
	}
	copy(kb.entries, entries)

	for i, e := range kb.entries {
		kb.claim(kb.names, Key(e.Name), i)
		kb.categories[e.Category] = append(kb.categories[e.Category], i)
	}
	for i, e := range kb.entries {
		for _, alias := range e.Aliases {
			kb.claim(kb.aliases, Key(alias), i)
		}
	}

	return kb
}

func (kb *KnowledgeBase) claim(index map[string]int, key string, i int) {
	if key == "" {
		return
	}
	if owner, ok := index[key]; ok {
		if owner != i {
			kb.collisions = append(kb.collisions, Collision{
				Key:    key,
				Winner: kb.entries[owner].Name,
				Loser:  kb.entries[i].Name,
			})
		}
		return
	}
	index[key] = i
}

// Key normalizes a marker name for lookup: surrounding whitespace removed,
// Unicode NFC composed and case folded.
func Key(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(trimmed))
}

// Lookup resolves a raw marker name against canonical names first and then
// aliases. The returned entry must not be modified.
func (kb *KnowledgeBase) Lookup(name string) (*domain.MarkerInfo, bool) {
	key := Key(name)
	if key == "" {
		return nil, false
	}
	if i, ok := kb.names[key]; ok {
		return &kb.entries[i], true
	}
	if i, ok := kb.aliases[key]; ok {
		return &kb.entries[i], true
	}
	return nil, false
}

// Entries returns a copy of all entries in insertion order.
func (kb *KnowledgeBase) Entries() []domain.MarkerInfo {
	out := make([]domain.MarkerInfo, len(kb.entries))
	copy(out, kb.entries)
	return out
}

// ByCategory returns the entries of one category in insertion order.
func (kb *KnowledgeBase) ByCategory(c domain.Category) []domain.MarkerInfo {
	idx := kb.categories[c]
	out := make([]domain.MarkerInfo, 0, len(idx))
	for _, i := range idx {
		out = append(out, kb.entries[i])
	}
	return out
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Collisions lists keys claimed by more than one entry.
func (kb *KnowledgeBase) Collisions() []Collision {
	out := make([]Collision, len(kb.collisions))
	copy(out, kb.collisions)
	return out
}
