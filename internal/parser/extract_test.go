package parser

import (
	"context"
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

// fakeLoads serves suggested weights from a fixture map.
type fakeLoads struct {
	weights map[string]float64
}

func (f *fakeLoads) SuggestedLoad(_ context.Context, _ int, canonicalID string) (*float64, error) {
	if w, ok := f.weights[canonicalID]; ok {
		return &w, nil
	}
	return nil, nil
}

// TestBlockTypeMetconRefinement verifies the metcon format detection.
func TestBlockTypeMetconRefinement(t *testing.T) {
	cases := []struct {
		text string
		want models.BlockType
	}{
		{"AMRAP 12: 10 burpees", models.BlockAMRAP},
		{"10:00 amrap of wall balls", models.BlockAMRAP},
		{"As many rounds as possible in 8 minutes", models.BlockAMRAP},
		{"EMOM 10: 5 power cleans", models.BlockEMOM},
		{"E2MOM 16: 3 deadlifts", models.BlockEMOM},
		{"21-15-9 thrusters and pull-ups", models.BlockForTime},
		{"5 rounds for time", models.BlockForTime},
	}
	for _, tc := range cases {
		if got := BlockType(models.LabelMetcon, tc.text); got != tc.want {
			t.Errorf("BlockType(Metcon, %q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

// TestBlockTypeByLabel verifies the direct label-to-type mapping, including
// the unlabeled fallback.
func TestBlockTypeByLabel(t *testing.T) {
	cases := []struct {
		label models.BlockLabel
		want  models.BlockType
	}{
		{models.LabelWarmUp, models.BlockWarmUp},
		{models.LabelSkills, models.BlockSkills},
		{models.LabelStrength, models.BlockStrength},
		{models.LabelCoolDown, models.BlockCoolDown},
		{"", models.BlockOther},
	}
	for _, tc := range cases {
		if got := BlockType(tc.label, "whatever"); got != tc.want {
			t.Errorf("BlockType(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

// TestExtractMovementsSchemes verifies block-level scheme defaults and
// per-segment overrides.
func TestExtractMovementsSchemes(t *testing.T) {
	cat := testCatalog(t)
	block := models.WorkoutBlock{
		Label:   models.LabelStrength,
		RawText: "5x5 Deadlift, 3x10 hip extensions",
	}

	got := ExtractMovements(context.Background(), block, cat, nil, 1)
	if got.Type != models.BlockStrength {
		t.Errorf("Type = %q, want %q", got.Type, models.BlockStrength)
	}
	if len(got.Movements) != 2 {
		t.Fatalf("len(Movements) = %d, want 2", len(got.Movements))
	}

	dl := got.Movements[0]
	if dl.CanonicalID != "deadlift" || dl.Hint.Sets != 5 || dl.Hint.Reps != 5 {
		t.Errorf("movement[0] = %s %dx%d, want deadlift 5x5", dl.CanonicalID, dl.Hint.Sets, dl.Hint.Reps)
	}
	he := got.Movements[1]
	if he.CanonicalID != "hip_extension" || he.Hint.Sets != 3 || he.Hint.Reps != 10 {
		t.Errorf("movement[1] = %s %dx%d, want hip_extension 3x10", he.CanonicalID, he.Hint.Sets, he.Hint.Reps)
	}
}

// TestExtractMovementsSetsHeader verifies that a "N sets" header is captured
// on the block and its scaffolding lines do not become movements.
func TestExtractMovementsSetsHeader(t *testing.T) {
	cat := testCatalog(t)
	block := models.WorkoutBlock{
		Label:   models.LabelWarmUp,
		RawText: "3 sets:\n10 cal row\n10 push-ups",
	}

	got := ExtractMovements(context.Background(), block, cat, nil, 1)
	if got.SetsHeader != 3 {
		t.Errorf("SetsHeader = %d, want 3", got.SetsHeader)
	}
	if len(got.Movements) != 2 {
		t.Fatalf("len(Movements) = %d, want 2", len(got.Movements))
	}
	if got.Movements[0].CanonicalID != "row" {
		t.Errorf("movement[0] = %q, want row", got.Movements[0].CanonicalID)
	}
	if got.Movements[1].CanonicalID != "push_up" {
		t.Errorf("movement[1] = %q, want push_up", got.Movements[1].CanonicalID)
	}
}

// TestExtractMovementsParenQualifiers verifies that commas inside
// parenthetical qualifiers do not split a movement phrase.
func TestExtractMovementsParenQualifiers(t *testing.T) {
	cat := testCatalog(t)
	block := models.WorkoutBlock{
		Label:   models.LabelMetcon,
		RawText: "10 burpees (bar-facing, lateral), 20 wall balls",
	}

	got := ExtractMovements(context.Background(), block, cat, nil, 1)
	if len(got.Movements) != 2 {
		t.Fatalf("len(Movements) = %d, want 2", len(got.Movements))
	}
	if got.Movements[0].CanonicalID != "burpee" {
		t.Errorf("movement[0] = %q, want burpee", got.Movements[0].CanonicalID)
	}
	if got.Movements[1].CanonicalID != "wall_ball_shot" {
		t.Errorf("movement[1] = %q, want wall_ball_shot", got.Movements[1].CanonicalID)
	}
}

// TestExtractMovementsDropsRest verifies that rest entries never become
// movements.
func TestExtractMovementsDropsRest(t *testing.T) {
	cat := testCatalog(t)
	block := models.WorkoutBlock{
		Label:   models.LabelMetcon,
		RawText: "400m run, rest 2 min, 400m run",
	}

	got := ExtractMovements(context.Background(), block, cat, nil, 1)
	if len(got.Movements) != 2 {
		t.Fatalf("len(Movements) = %d, want 2", len(got.Movements))
	}
	for i, mv := range got.Movements {
		if mv.CanonicalID != "run" {
			t.Errorf("movement[%d] = %q, want run", i, mv.CanonicalID)
		}
	}
}

// TestExtractMovementsKeepsUnknown verifies that novel movement names are
// kept with their slugified id rather than dropped.
func TestExtractMovementsKeepsUnknown(t *testing.T) {
	cat := testCatalog(t)
	block := models.WorkoutBlock{
		Label:   models.LabelSkills,
		RawText: "10 seal walks",
	}

	got := ExtractMovements(context.Background(), block, cat, nil, 1)
	if len(got.Movements) != 1 {
		t.Fatalf("len(Movements) = %d, want 1", len(got.Movements))
	}
	if got.Movements[0].CanonicalID != "seal_walk" && got.Movements[0].CanonicalID != "seal_walks" {
		t.Errorf("movement[0] = %q, want a slugified novel id", got.Movements[0].CanonicalID)
	}
}

// TestExtractMovementsSuggestedLoad verifies that a personal-record lookup
// attaches a suggested weight to the movement's hint.
func TestExtractMovementsSuggestedLoad(t *testing.T) {
	cat := testCatalog(t)
	loads := &fakeLoads{weights: map[string]float64{"back_squat": 102.5}}
	block := models.WorkoutBlock{
		Label:   models.LabelStrength,
		RawText: "5x3 back squat",
	}

	got := ExtractMovements(context.Background(), block, cat, loads, 7)
	if len(got.Movements) != 1 {
		t.Fatalf("len(Movements) = %d, want 1", len(got.Movements))
	}
	w := got.Movements[0].Hint.SuggestedWeightKg
	if w == nil || *w != 102.5 {
		t.Fatalf("SuggestedWeightKg = %v, want 102.5", w)
	}
}

// TestParseWorkoutEndToEnd verifies the full pipeline on a typical
// three-section day.
func TestParseWorkoutEndToEnd(t *testing.T) {
	cat := testCatalog(t)
	text := "Warm-up: 400m row Strength: 5x3 Back Squat Metcon: 21-15-9 Thrusters, Pull-ups"

	blocks := ParseWorkout(context.Background(), text, cat, nil, 1)
	if len(blocks) != 3 {
		t.Fatalf("len(blocks) = %d, want 3", len(blocks))
	}

	warmup := blocks[0]
	if warmup.Type != models.BlockWarmUp {
		t.Errorf("warm-up type = %q, want %q", warmup.Type, models.BlockWarmUp)
	}
	if len(warmup.Movements) != 1 || warmup.Movements[0].CanonicalID != "row" {
		t.Errorf("warm-up movements = %+v, want [row]", warmup.Movements)
	}

	strength := blocks[1]
	if strength.Type != models.BlockStrength {
		t.Errorf("strength type = %q, want %q", strength.Type, models.BlockStrength)
	}
	if len(strength.Movements) != 1 {
		t.Fatalf("strength movements = %+v, want one", strength.Movements)
	}
	bs := strength.Movements[0]
	if bs.CanonicalID != "back_squat" || bs.Hint.Sets != 5 || bs.Hint.Reps != 3 {
		t.Errorf("strength movement = %s %dx%d, want back_squat 5x3", bs.CanonicalID, bs.Hint.Sets, bs.Hint.Reps)
	}

	metcon := blocks[2]
	if metcon.Type != models.BlockForTime {
		t.Errorf("metcon type = %q, want %q", metcon.Type, models.BlockForTime)
	}
	if len(metcon.Movements) != 2 {
		t.Fatalf("metcon movements = %+v, want two", metcon.Movements)
	}
	if metcon.Movements[0].CanonicalID != "thruster" {
		t.Errorf("metcon movement[0] = %q, want thruster", metcon.Movements[0].CanonicalID)
	}
	if metcon.Movements[1].CanonicalID != "pull_up" {
		t.Errorf("metcon movement[1] = %q, want pull_up", metcon.Movements[1].CanonicalID)
	}
}

// TestParseWorkoutUnlabeledFallback verifies that text with no labels comes
// back as a single unlabeled block of type other.
func TestParseWorkoutUnlabeledFallback(t *testing.T) {
	cat := testCatalog(t)
	blocks := ParseWorkout(context.Background(), "Easy 30 min bike", cat, nil, 1)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Label != "" {
		t.Errorf("Label = %q, want empty", b.Label)
	}
	if b.Type != models.BlockOther {
		t.Errorf("Type = %q, want %q", b.Type, models.BlockOther)
	}
	if b.RawText != "Easy 30 min bike" {
		t.Errorf("RawText = %q, want original text", b.RawText)
	}
}

// TestParseWorkoutEmpty verifies that blank text parses to nothing.
func TestParseWorkoutEmpty(t *testing.T) {
	cat := testCatalog(t)
	if blocks := ParseWorkout(context.Background(), "  \n ", cat, nil, 1); blocks != nil {
		t.Errorf("blocks = %v, want nil", blocks)
	}
}

func TestSplitSegments(t *testing.T) {
	got := splitSegments("a, b (c, d), e\nf")
	want := []string{"a", "b (c, d)", "e", "f"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
