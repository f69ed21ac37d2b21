package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/wodsmith/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateProgram inserts a new program and returns it.
func (db *DB) CreateProgram(ctx context.Context, name string) (*models.Program, error) {
	p := &models.Program{ID: uuid.New(), Name: name}
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO programs (id, name) VALUES ($1, $2) RETURNING created_at`,
		p.ID, p.Name,
	).Scan(&p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting program: %w", err)
	}
	return p, nil
}

// GetProgram retrieves a program by id, or ErrNotFound.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	p := &models.Program{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM programs WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}
	return p, nil
}

// ListPrograms returns all programs, newest first.
func (db *DB) ListPrograms(ctx context.Context) ([]models.Program, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, created_at FROM programs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}
