package seed

import (
	"strings"
	"testing"

	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/movements"
)

func testCatalog(t *testing.T) *movements.Catalog {
	t.Helper()
	cat, err := movements.DefaultCatalog(nil)
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	return cat
}

// TestBuildRowsMergesSpellings verifies that different raw spellings of the
// same movement aggregate into one row with merged aliases and an accumulated
// occurrence count.
func TestBuildRowsMergesSpellings(t *testing.T) {
	entries := []CorpusEntry{
		{ExerciseName: "Double Unders", SourceID: "w1"},
		{ExerciseName: "double-under", SourceID: "w2"},
	}

	rows := BuildRows(entries, testCatalog(t))
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}

	r := rows[0]
	if r.CanonicalName != "double_under" {
		t.Errorf("CanonicalName = %q, want %q", r.CanonicalName, "double_under")
	}
	if r.OccurrenceCount != 2 {
		t.Errorf("OccurrenceCount = %d, want 2", r.OccurrenceCount)
	}
	if r.Modality != models.Gymnastics {
		t.Errorf("Modality = %q, want %q", r.Modality, models.Gymnastics)
	}
	wantAliases := []string{"Double Unders", "double-under"}
	if len(r.Aliases) != 2 || r.Aliases[0] != wantAliases[0] || r.Aliases[1] != wantAliases[1] {
		t.Errorf("Aliases = %v, want %v", r.Aliases, wantAliases)
	}
	if r.Inferred {
		t.Error("Inferred = true, want false for a curated movement")
	}
}

// TestBuildRowsDropsRest verifies that rest entries never produce seed rows.
func TestBuildRowsDropsRest(t *testing.T) {
	entries := []CorpusEntry{
		{ExerciseName: "Rest"},
		{ExerciseName: "rest"},
		{ExerciseName: "Back Squats"},
	}

	rows := BuildRows(entries, testCatalog(t))
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1: %+v", len(rows), rows)
	}
	if rows[0].CanonicalName != "back_squat" {
		t.Errorf("CanonicalName = %q, want %q", rows[0].CanonicalName, "back_squat")
	}
}

// TestBuildRowsInferredFlag verifies that rows outside the curated
// vocabulary carry the inferred flag for review queueing.
func TestBuildRowsInferredFlag(t *testing.T) {
	entries := []CorpusEntry{
		{ExerciseName: "Seal Walks"},
		{ExerciseName: "Back Squat"},
	}

	rows := BuildRows(entries, testCatalog(t))
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	// Sorted by canonical name: back_squat before seal_walks.
	if rows[0].Inferred {
		t.Error("back_squat marked inferred")
	}
	if !rows[1].Inferred {
		t.Errorf("%s not marked inferred", rows[1].CanonicalName)
	}
}

// TestBuildRowsSorted verifies deterministic row ordering by canonical name.
func TestBuildRowsSorted(t *testing.T) {
	entries := []CorpusEntry{
		{ExerciseName: "Thrusters"},
		{ExerciseName: "Burpees"},
		{ExerciseName: "Row"},
	}

	rows := BuildRows(entries, testCatalog(t))
	want := []string{"burpee", "row", "thruster"}
	if len(rows) != len(want) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(want))
	}
	for i, name := range want {
		if rows[i].CanonicalName != name {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].CanonicalName, name)
		}
	}
}

// TestWriteUpsertsFormat verifies the exact emitted statement shape, since
// downstream seed tooling parses it.
func TestWriteUpsertsFormat(t *testing.T) {
	rows := []Row{{
		CanonicalName:   "double_under",
		DisplayName:     "Double Under",
		Modality:        models.Gymnastics,
		Category:        "Gymnastics",
		Aliases:         []string{"Double Unders", "double-under"},
		OccurrenceCount: 2,
	}}

	var b strings.Builder
	if err := WriteUpserts(&b, rows); err != nil {
		t.Fatalf("WriteUpserts: %v", err)
	}

	want := "INSERT INTO movements (canonical_name, display_name, modality, category, aliases, occurrence_count)\n" +
		"VALUES ('double_under', 'Double Under', 'Gymnastics', 'Gymnastics', ARRAY['Double Unders', 'double-under']::text[], 2)\n" +
		"ON CONFLICT (canonical_name) DO UPDATE SET\n" +
		"  display_name = EXCLUDED.display_name,\n" +
		"  modality = EXCLUDED.modality,\n" +
		"  category = EXCLUDED.category,\n" +
		"  aliases = EXCLUDED.aliases,\n" +
		"  occurrence_count = movements.occurrence_count + EXCLUDED.occurrence_count;\n"
	if got := b.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// TestWriteUpsertsQuoting verifies single-quote doubling in literals.
func TestWriteUpsertsQuoting(t *testing.T) {
	rows := []Row{{
		CanonicalName:   "devils_press",
		DisplayName:     "Devil's Press",
		Modality:        models.Weightlifting,
		Category:        "Weightlifting",
		Aliases:         []string{"Devil's Press"},
		OccurrenceCount: 1,
	}}

	var b strings.Builder
	if err := WriteUpserts(&b, rows); err != nil {
		t.Fatalf("WriteUpserts: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "'Devil''s Press'") {
		t.Errorf("output does not double embedded quotes:\n%s", out)
	}
}

// TestWriteUpsertsBlankLineBetween verifies statements are separated by a
// single blank line.
func TestWriteUpsertsBlankLineBetween(t *testing.T) {
	rows := []Row{
		{CanonicalName: "burpee", DisplayName: "Burpee", Modality: models.Gymnastics, Category: "Gymnastics", Aliases: []string{"burpees"}, OccurrenceCount: 1},
		{CanonicalName: "row", DisplayName: "Row", Modality: models.Monostructural, Category: "Monostructural", Aliases: []string{"row"}, OccurrenceCount: 3},
	}

	var b strings.Builder
	if err := WriteUpserts(&b, rows); err != nil {
		t.Fatalf("WriteUpserts: %v", err)
	}
	if !strings.Contains(b.String(), "EXCLUDED.occurrence_count;\n\nINSERT INTO movements") {
		t.Errorf("statements not separated by a blank line:\n%s", b.String())
	}
}

// TestWriteUpsertsStable verifies byte-for-byte stable output across runs.
func TestWriteUpsertsStable(t *testing.T) {
	entries := []CorpusEntry{
		{ExerciseName: "Thrusters"},
		{ExerciseName: "thruster"},
		{ExerciseName: "Pull-ups"},
	}
	cat := testCatalog(t)

	var first strings.Builder
	if err := WriteUpserts(&first, BuildRows(entries, cat)); err != nil {
		t.Fatalf("WriteUpserts: %v", err)
	}
	for i := 0; i < 3; i++ {
		var again strings.Builder
		if err := WriteUpserts(&again, BuildRows(entries, cat)); err != nil {
			t.Fatalf("WriteUpserts: %v", err)
		}
		if again.String() != first.String() {
			t.Fatalf("run %d output differs from first run", i+2)
		}
	}
}
