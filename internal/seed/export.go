// Package seed aggregates an exercise-name corpus into movement seed rows and
// emits them as upsert statements against the movements table. Downstream
// seed tooling parses the emitted format, so its shape is load-bearing.
package seed

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/movements"
)

// CorpusEntry is one raw exercise occurrence from a source dataset.
type CorpusEntry struct {
	ExerciseName string
	SourceID     string
}

// Row is one aggregated seed row: a resolved canonical movement with the
// merged set of raw spellings seen for it and how often it occurred.
type Row struct {
	CanonicalName   string          `json:"canonical_name"`
	DisplayName     string          `json:"display_name"`
	Modality        models.Modality `json:"modality"`
	Category        string          `json:"category"`
	Aliases         []string        `json:"aliases"`
	OccurrenceCount int             `json:"occurrence_count"`

	// Inferred marks rows whose modality came from the heuristic fallback
	// rather than curated data; these go to the review queue.
	Inferred bool `json:"inferred,omitempty"`
}

// BuildRows resolves every corpus entry through the catalog and aggregates
// one row per canonical movement. Rest entries are dropped; empty names
// collapse into the unknown sentinel like any other unresolvable spelling.
// Rows are sorted by canonical name, alias sets by spelling, so output is
// deterministic.
func BuildRows(entries []CorpusEntry, cat *movements.Catalog) []Row {
	type agg struct {
		res     movements.Resolution
		aliases map[string]bool
		count   int
	}
	byID := make(map[string]*agg)

	for _, e := range entries {
		res := cat.Resolve(e.ExerciseName)
		if res.Rest {
			continue
		}
		a, ok := byID[res.CanonicalID]
		if !ok {
			a = &agg{res: res, aliases: make(map[string]bool)}
			byID[res.CanonicalID] = a
		}
		if name := strings.TrimSpace(e.ExerciseName); name != "" {
			a.aliases[name] = true
		}
		a.count++
	}

	rows := make([]Row, 0, len(byID))
	for id, a := range byID {
		aliases := make([]string, 0, len(a.aliases))
		for name := range a.aliases {
			aliases = append(aliases, name)
		}
		sort.Strings(aliases)

		rows = append(rows, Row{
			CanonicalName:   id,
			DisplayName:     cat.DisplayName(id),
			Modality:        a.res.Modality,
			Category:        a.res.Category,
			Aliases:         aliases,
			OccurrenceCount: a.count,
			Inferred:        a.res.Inferred,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CanonicalName < rows[j].CanonicalName })
	return rows
}

// WriteUpserts emits one upsert statement per row against the movements
// table, keyed by canonical_name. The column set and statement shape are
// consumed by downstream seed tooling and must not change.
func WriteUpserts(w io.Writer, rows []Row) error {
	for i, r := range rows {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		quoted := make([]string, len(r.Aliases))
		for j, a := range r.Aliases {
			quoted[j] = quoteLiteral(a)
		}

		_, err := fmt.Fprintf(w,
			"INSERT INTO movements (canonical_name, display_name, modality, category, aliases, occurrence_count)\n"+
				"VALUES (%s, %s, %s, %s, ARRAY[%s]::text[], %d)\n"+
				"ON CONFLICT (canonical_name) DO UPDATE SET\n"+
				"  display_name = EXCLUDED.display_name,\n"+
				"  modality = EXCLUDED.modality,\n"+
				"  category = EXCLUDED.category,\n"+
				"  aliases = EXCLUDED.aliases,\n"+
				"  occurrence_count = movements.occurrence_count + EXCLUDED.occurrence_count;\n",
			quoteLiteral(r.CanonicalName),
			quoteLiteral(r.DisplayName),
			quoteLiteral(string(r.Modality)),
			quoteLiteral(r.Category),
			strings.Join(quoted, ", "),
			r.OccurrenceCount,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// quoteLiteral renders a single-quoted SQL string literal with embedded
// quotes doubled.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
