package movements

import (
	"testing"

	"github.com/claude/wodsmith/internal/models"
)

// TestInferModality verifies the keyword heuristic, including the
// monostructural-before-gymnastics precedence and the lunge special case.
func TestInferModality(t *testing.T) {
	cases := []struct {
		id   string
		want models.Modality
	}{
		{"bike_erg", models.Monostructural},
		{"shuttle_run", models.Monostructural},
		{"crossover", models.Monostructural},
		{"burpee_box_jump_over", models.Gymnastics},
		{"strict_handstand_push_up", models.Gymnastics},
		{"weighted_pull_up", models.Gymnastics},
		{"reverse_lunge", models.Gymnastics},
		{"overhead_lunge", models.Weightlifting},
		{"walking_lunge", models.Weightlifting},
		{"sandbag_over_shoulder", models.Weightlifting},
		{"yoke_carry", models.Weightlifting},
	}
	for _, tc := range cases {
		if got := InferModality(tc.id); got != tc.want {
			t.Errorf("InferModality(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

// TestInferModalityCardioWins verifies that a slug matching both keyword
// lists classifies as monostructural, since the cardio pass runs first.
func TestInferModalityCardioWins(t *testing.T) {
	if got := InferModality("burpee_to_sprint"); got != models.Monostructural {
		t.Errorf("InferModality(burpee_to_sprint) = %q, want %q", got, models.Monostructural)
	}
}
