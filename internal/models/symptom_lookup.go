package models

import "time"

// Symptom lookup outcome constants
const (
	OutcomeMatched = "matched"
	OutcomeNoMatch = "no_match"
)

// NoMatchKeyword is the keyword recorded when a lookup matched nothing.
const NoMatchKeyword = "_none"

// SymptomLookup represents a per-keyword hit count by outcome.
type SymptomLookup struct {
	Keyword    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
