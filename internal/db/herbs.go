package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"ayurvignana/internal/models"
)

const herbColumns = `id, name, scientific_name, nature, dosha_compatibility, description,
	benefits, contraindications, dosage, created_at`

func scanHerb(row pgx.Row) (*models.Herb, error) {
	var h models.Herb
	err := row.Scan(&h.ID, &h.Name, &h.ScientificName, &h.Nature, &h.DoshaCompatibility,
		&h.Description, &h.Benefits, &h.Contraindications, &h.Dosage, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetHerbByName returns the herb whose name equals name, ignoring case.
func (d *DB) GetHerbByName(ctx context.Context, name string) (*models.Herb, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrHerbNotFound
	}

	h, err := scanHerb(d.Pool.QueryRow(ctx, `
		SELECT `+herbColumns+`
		FROM herbs
		WHERE LOWER(name) = LOWER($1)
	`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHerbNotFound
		}
		return nil, fmt.Errorf("failed to get herb: %w", err)
	}
	return h, nil
}

// ListHerbs returns every herb ordered by name.
func (d *DB) ListHerbs(ctx context.Context) ([]models.Herb, error) {
	rows, err := d.Pool.Query(ctx, `SELECT `+herbColumns+` FROM herbs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list herbs: %w", err)
	}
	defer rows.Close()

	var herbs []models.Herb
	for rows.Next() {
		h, err := scanHerb(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan herb: %w", err)
		}
		herbs = append(herbs, *h)
	}
	return herbs, rows.Err()
}

// InsertHerb adds a herb to the catalog. Returns false if a herb with the
// same name (ignoring case) already exists.
func (d *DB) InsertHerb(ctx context.Context, h *models.Herb) (bool, error) {
	if strings.TrimSpace(h.Name) == "" {
		return false, ErrInvalidHerb
	}

	benefits := h.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	contraindications := h.Contraindications
	if contraindications == nil {
		contraindications = []string{}
	}

	tag, err := d.Pool.Exec(ctx, `
		INSERT INTO herbs (name, scientific_name, nature, dosha_compatibility, description,
			benefits, contraindications, dosage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT ((LOWER(name))) DO NOTHING
	`, h.Name, h.ScientificName, h.Nature, h.DoshaCompatibility, h.Description,
		benefits, contraindications, h.Dosage)
	if err != nil {
		return false, fmt.Errorf("failed to insert herb %s: %w", h.Name, err)
	}
	return tag.RowsAffected() == 1, nil
}
