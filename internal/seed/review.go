package seed

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claude/wodsmith/internal/models"
	_ "modernc.org/sqlite"
)

// ReviewQueue is a local SQLite store of canonical ids whose modality had to
// be inferred. A human reviewer works through it and promotes entries into
// the curated override map; runs are idempotent.
type ReviewQueue struct {
	db *sql.DB
}

// ReviewItem is one queued canonical id awaiting modality review.
type ReviewItem struct {
	CanonicalID string          `json:"canonical_id"`
	Modality    models.Modality `json:"modality"`
	SampleAlias string          `json:"sample_alias"`
	Occurrences int             `json:"occurrences"`
	FirstSeen   time.Time       `json:"first_seen"`
}

// OpenReviewQueue opens (or creates) the review database at dir/review.db.
func OpenReviewQueue(dir string) (*ReviewQueue, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating review dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "review.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening review db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS inferred_movements (
		canonical_id TEXT PRIMARY KEY,
		modality     TEXT NOT NULL,
		sample_alias TEXT NOT NULL,
		occurrences  INTEGER NOT NULL,
		first_seen   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating review table: %w", err)
	}

	return &ReviewQueue{db: db}, nil
}

// Record queues an inferred canonical id, accumulating occurrence counts
// across runs.
func (q *ReviewQueue) Record(canonicalID string, modality models.Modality, sampleAlias string, occurrences int) error {
	_, err := q.db.Exec(
		`INSERT INTO inferred_movements (canonical_id, modality, sample_alias, occurrences)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (canonical_id) DO UPDATE SET
		   modality = excluded.modality,
		   occurrences = inferred_movements.occurrences + excluded.occurrences`,
		canonicalID, string(modality), sampleAlias, occurrences,
	)
	return err
}

// Pending returns all queued items, ordered by canonical id.
func (q *ReviewQueue) Pending() ([]ReviewItem, error) {
	rows, err := q.db.Query(
		`SELECT canonical_id, modality, sample_alias, occurrences, first_seen
		 FROM inferred_movements ORDER BY canonical_id`)
	if err != nil {
		return nil, fmt.Errorf("querying review queue: %w", err)
	}
	defer rows.Close()

	var items []ReviewItem
	for rows.Next() {
		var it ReviewItem
		var modality string
		if err := rows.Scan(&it.CanonicalID, &modality, &it.SampleAlias, &it.Occurrences, &it.FirstSeen); err != nil {
			return nil, fmt.Errorf("scanning review item: %w", err)
		}
		it.Modality = models.Modality(modality)
		items = append(items, it)
	}
	return items, rows.Err()
}

// Close closes the review database.
func (q *ReviewQueue) Close() error {
	return q.db.Close()
}
