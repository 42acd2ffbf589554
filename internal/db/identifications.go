package db

import (
	"context"
	"fmt"

	"ayurvignana/internal/models"
)

// RecordIdentification stores a prediction and fills in its ID and CreatedAt.
func (d *DB) RecordIdentification(ctx context.Context, ident *models.Identification) error {
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO identifications (filename, label, class_index, confidence, herb_found)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, ident.Filename, ident.Label, ident.ClassIndex, ident.Confidence, ident.HerbFound).
		Scan(&ident.ID, &ident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record identification: %w", err)
	}
	return nil
}

// ListRecentIdentifications returns the newest identifications first.
func (d *DB) ListRecentIdentifications(ctx context.Context, limit int) ([]models.Identification, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT id, filename, label, class_index, confidence, herb_found, created_at
		FROM identifications
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list identifications: %w", err)
	}
	defer rows.Close()

	var out []models.Identification
	for rows.Next() {
		var i models.Identification
		if err := rows.Scan(&i.ID, &i.Filename, &i.Label, &i.ClassIndex, &i.Confidence, &i.HerbFound, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan identification: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}
