package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/claude/wodsmith/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveWorkout persists a parsed workout. Re-parsing replaces the previous
// block sequence wholesale: the workout row is upserted on
// (program_id, week, day) and its old blocks are deleted before the fresh
// parse is inserted, so storage always reflects the latest parser output.
func (db *DB) SaveWorkout(ctx context.Context, w *models.ParsedWorkout) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO workouts (id, program_id, week, day, raw_text, duration_min)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (program_id, week, day) DO UPDATE SET
		   raw_text = EXCLUDED.raw_text,
		   duration_min = EXCLUDED.duration_min,
		   parsed_at = now()
		 RETURNING id, parsed_at`,
		w.ID, w.ProgramID, w.Week, w.Day, w.RawText, w.DurationMin,
	).Scan(&w.ID, &w.ParsedAt)
	if err != nil {
		return fmt.Errorf("upserting workout: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM workout_blocks WHERE workout_id = $1`, w.ID); err != nil {
		return fmt.Errorf("deleting old blocks: %w", err)
	}

	for pos, block := range w.Blocks {
		var blockID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO workout_blocks (workout_id, position, label, block_type, raw_text, sets_header)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			w.ID, pos, string(block.Label), string(block.Type), block.RawText, block.SetsHeader,
		).Scan(&blockID)
		if err != nil {
			return fmt.Errorf("inserting block %d: %w", pos, err)
		}
		if err := insertBlockMovements(ctx, tx, blockID, block.Movements); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// insertBlockMovements batch-inserts a block's movements with numbered
// placeholders.
func insertBlockMovements(ctx context.Context, tx pgx.Tx, blockID int64, mvs []models.BlockMovement) error {
	if len(mvs) == 0 {
		return nil
	}

	query := `INSERT INTO workout_movements (block_id, position, canonical_id, modality,
		hint_sets, hint_reps, suggested_weight_kg) VALUES `
	args := make([]any, 0, len(mvs)*7)
	valueStrings := make([]string, 0, len(mvs))

	for i, mv := range mvs {
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		args = append(args, blockID, i, mv.CanonicalID, string(mv.Modality),
			mv.Hint.Sets, mv.Hint.Reps, mv.Hint.SuggestedWeightKg)
	}

	if _, err := tx.Exec(ctx, query+strings.Join(valueStrings, ","), args...); err != nil {
		return fmt.Errorf("inserting movements: %w", err)
	}
	return nil
}

// GetWorkout retrieves one workout with its full block sequence, or
// ErrNotFound.
func (db *DB) GetWorkout(ctx context.Context, id uuid.UUID) (*models.ParsedWorkout, error) {
	w := &models.ParsedWorkout{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, program_id, week, day, raw_text, duration_min, parsed_at
		 FROM workouts WHERE id = $1`, id,
	).Scan(&w.ID, &w.ProgramID, &w.Week, &w.Day, &w.RawText, &w.DurationMin, &w.ParsedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}

	blocks, err := db.loadBlocks(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Blocks = blocks
	return w, nil
}

// ListProgramWorkouts returns a program's workouts ordered by week and day,
// without block details.
func (db *DB) ListProgramWorkouts(ctx context.Context, programID uuid.UUID) ([]models.ParsedWorkout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, program_id, week, day, raw_text, duration_min, parsed_at
		 FROM workouts WHERE program_id = $1 ORDER BY week, day`, programID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.ParsedWorkout
	for rows.Next() {
		var w models.ParsedWorkout
		if err := rows.Scan(&w.ID, &w.ProgramID, &w.Week, &w.Day, &w.RawText, &w.DurationMin, &w.ParsedAt); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// LoadProgramDays returns the aggregator's input for a whole program: every
// training day with its parsed blocks and movements, ordered by week and day.
func (db *DB) LoadProgramDays(ctx context.Context, programID uuid.UUID) ([]models.ProgramDay, error) {
	workouts, err := db.ListProgramWorkouts(ctx, programID)
	if err != nil {
		return nil, err
	}

	days := make([]models.ProgramDay, 0, len(workouts))
	for _, w := range workouts {
		blocks, err := db.loadBlocks(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		days = append(days, models.ProgramDay{
			Week:        w.Week,
			Day:         w.Day,
			DurationMin: w.DurationMin,
			Blocks:      blocks,
		})
	}
	return days, nil
}

func (db *DB) loadBlocks(ctx context.Context, workoutID uuid.UUID) ([]models.WorkoutBlock, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, label, block_type, raw_text, sets_header
		 FROM workout_blocks WHERE workout_id = $1 ORDER BY position`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.WorkoutBlock
	var blockIDs []int64
	for rows.Next() {
		var id int64
		var b models.WorkoutBlock
		var label, blockType string
		if err := rows.Scan(&id, &label, &blockType, &b.RawText, &b.SetsHeader); err != nil {
			return nil, fmt.Errorf("scanning block: %w", err)
		}
		b.Label = models.BlockLabel(label)
		b.Type = models.BlockType(blockType)
		blocks = append(blocks, b)
		blockIDs = append(blockIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, blockID := range blockIDs {
		mvs, err := db.loadMovements(ctx, blockID)
		if err != nil {
			return nil, err
		}
		blocks[i].Movements = mvs
	}
	return blocks, nil
}

func (db *DB) loadMovements(ctx context.Context, blockID int64) ([]models.BlockMovement, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT canonical_id, modality, hint_sets, hint_reps, suggested_weight_kg
		 FROM workout_movements WHERE block_id = $1 ORDER BY position`, blockID)
	if err != nil {
		return nil, fmt.Errorf("querying movements: %w", err)
	}
	defer rows.Close()

	var mvs []models.BlockMovement
	for rows.Next() {
		var mv models.BlockMovement
		var modality string
		if err := rows.Scan(&mv.CanonicalID, &modality, &mv.Hint.Sets, &mv.Hint.Reps, &mv.Hint.SuggestedWeightKg); err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}
		mv.Modality = models.Modality(modality)
		mvs = append(mvs, mv)
	}
	return mvs, rows.Err()
}
