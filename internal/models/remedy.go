package models

import "strings"

// Remedy category constants. The set is open-ended; these are the values the
// compiled-in knowledge base uses.
const (
	CategoryPrimary   = "primary"
	CategorySecondary = "secondary"

	// CategoryAll is the filter value that keeps every remedy.
	CategoryAll = "all"
)

// Remedy is a single herb recommendation.
type Remedy struct {
	Name        string `json:"name" yaml:"name"`
	Dosage      string `json:"dosage" yaml:"dosage"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"type" yaml:"category"`
}

// IsPrimary returns true if the remedy is tagged as a primary recommendation.
func (r Remedy) IsPrimary() bool {
	return strings.EqualFold(r.Category, CategoryPrimary)
}

// FilterRemedies returns the remedies whose category equals category,
// ignoring case. An empty category or CategoryAll keeps everything.
// The input slice is never modified.
func FilterRemedies(remedies []Remedy, category string) []Remedy {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		out := make([]Remedy, len(remedies))
		copy(out, remedies)
		return out
	}

	out := make([]Remedy, 0, len(remedies))
	for _, r := range remedies {
		if strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories(remedies []Remedy) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range remedies {
		c := strings.ToLower(r.Category)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
