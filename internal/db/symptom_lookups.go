package db

import (
	"context"

	"ayurvignana/internal/models"
)

// IncrementSymptomLookup upserts a symptom lookup count by outcome.
func (d *DB) IncrementSymptomLookup(ctx context.Context, keyword, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO symptom_lookups (keyword, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword, outcome) DO UPDATE
		SET count = symptom_lookups.count + 1, last_seen_at = NOW()
	`, keyword, outcome)
	return err
}

// GetAllSymptomLookups returns all symptom lookup rows for metrics export.
func (d *DB) GetAllSymptomLookups(ctx context.Context) ([]models.SymptomLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword, outcome, count, last_seen_at FROM symptom_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.SymptomLookup
	for rows.Next() {
		var l models.SymptomLookup
		if err := rows.Scan(&l.Keyword, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
