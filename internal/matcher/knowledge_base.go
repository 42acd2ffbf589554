// Package matcher recommends remedies by matching free-text symptoms against
// a fixed keyword table.
package matcher

import (
	"errors"
	"fmt"
	"strings"

	"ayurvignana/internal/models"
)

// Knowledge base construction errors.
var (
	ErrInvalidKeyword   = errors.New("keyword must not be empty")
	ErrDuplicateKeyword = errors.New("keyword already exists")
	ErrInvalidRemedy    = errors.New("remedy name must not be empty")
)

// Entry is one keyword bucket of a knowledge base.
type Entry struct {
	Keyword  string          `yaml:"keyword"`
	Aliases  []string        `yaml:"aliases,omitempty"` // extra terms that select the same bucket
	Remedies []models.Remedy `yaml:"remedies"`
}

// KnowledgeBase is an ordered, immutable keyword -> remedies table.
// It is safe for concurrent use.
type KnowledgeBase struct {
	entries []Entry
}

// NewKnowledgeBase validates entries and builds a knowledge base from a copy of them.
// Keywords and aliases are trimmed and lower-cased; entry order is preserved.
func NewKnowledgeBase(entries []Entry) (*KnowledgeBase, error) {
	seen := make(map[string]bool, len(entries))
	kb := &KnowledgeBase{entries: make([]Entry, 0, len(entries))}

	for i, e := range entries {
		keyword := Normalize(e.Keyword)
		if keyword == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidKeyword)
		}
		if seen[keyword] {
			return nil, fmt.Errorf("entry %d %q: %w", i, keyword, ErrDuplicateKeyword)
		}
		seen[keyword] = true

		var aliases []string
		for _, a := range e.Aliases {
			if a = Normalize(a); a != "" && a != keyword {
				aliases = append(aliases, a)
			}
		}

		remedies := make([]models.Remedy, len(e.Remedies))
		for j, r := range e.Remedies {
			if strings.TrimSpace(r.Name) == "" {
				return nil, fmt.Errorf("entry %q remedy %d: %w", keyword, j, ErrInvalidRemedy)
			}
			remedies[j] = r
		}

		kb.entries = append(kb.entries, Entry{
			Keyword:  keyword,
			Aliases:  aliases,
			Remedies: remedies,
		})
	}

	return kb, nil
}

// Len returns the number of keyword buckets.
func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Keywords returns the keywords in table order.
func (kb *KnowledgeBase) Keywords() []string {
	out := make([]string, len(kb.entries))
	for i, e := range kb.entries {
		out[i] = e.Keyword
	}
	return out
}

// Remedies returns a copy of the bucket for keyword, or nil if the keyword is unknown.
func (kb *KnowledgeBase) Remedies(keyword string) []models.Remedy {
	keyword = Normalize(keyword)
	for _, e := range kb.entries {
		if e.Keyword == keyword {
			out := make([]models.Remedy, len(e.Remedies))
			copy(out, e.Remedies)
			return out
		}
	}
	return nil
}

// Entries returns a deep copy of the table.
func (kb *KnowledgeBase) Entries() []Entry {
	out := make([]Entry, len(kb.entries))
	for i, e := range kb.entries {
		out[i] = Entry{
			Keyword:  e.Keyword,
			Aliases:  append([]string(nil), e.Aliases...),
			Remedies: append([]models.Remedy(nil), e.Remedies...),
		}
	}
	return out
}

func (e Entry) matches(normalized string) bool {
	if strings.Contains(normalized, e.Keyword) {
		return true
	}
	for _, a := range e.Aliases {
		if strings.Contains(normalized, a) {
			return true
		}
	}
	return false
}
