package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// UpsertPersonalRecord records a user's best load for a canonical movement,
// keeping the heavier of the stored and the new value.
func (db *DB) UpsertPersonalRecord(ctx context.Context, userID int, canonicalID string, weightKg float64) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO personal_records (user_id, canonical_id, best_weight_kg)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, canonical_id) DO UPDATE SET
		   best_weight_kg = GREATEST(personal_records.best_weight_kg, EXCLUDED.best_weight_kg),
		   recorded_at = now()`,
		userID, canonicalID, weightKg)
	if err != nil {
		return fmt.Errorf("upserting personal record: %w", err)
	}
	return nil
}

// SuggestedLoad returns the user's recorded best load for a movement, or nil
// when none exists. Implements the extractor's load lookup.
func (db *DB) SuggestedLoad(ctx context.Context, userID int, canonicalID string) (*float64, error) {
	var weight float64
	err := db.Pool.QueryRow(ctx,
		`SELECT best_weight_kg FROM personal_records
		 WHERE user_id = $1 AND canonical_id = $2`,
		userID, canonicalID,
	).Scan(&weight)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying personal record: %w", err)
	}
	return &weight, nil
}
