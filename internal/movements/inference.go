package movements

import (
	"strings"

	"github.com/claude/wodsmith/internal/models"
)

// Keyword lists for modality inference over slugified ids. Order matters:
// monostructural keywords are checked before gymnastics because cardio
// classification is the stronger, less ambiguous signal in this vocabulary.
var (
	monostructuralKeywords = []string{
		"row", "run", "bike", "swim", "ski", "shuttle", "sprint", "crossover",
	}

	gymnasticsKeywords = []string{
		"burpee", "push_up", "pushup", "pull_up", "pullup", "muscle_up",
		"toes_to_bar", "chest_to_bar", "box_jump", "wall_ball", "double_under",
		"rope_climb", "handstand", "pistol", "dip", "ghd", "v_up", "wall_walk",
		"l_sit", "knee_raise", "jumping_jack",
	}
)

// InferModality guesses the modality of a canonical id that missed the alias
// table. Anything not matched by a keyword pass defaults to Weightlifting.
// A curated override, when present, takes precedence over this heuristic.
func InferModality(canonicalID string) models.Modality {
	for _, kw := range monostructuralKeywords {
		if strings.Contains(canonicalID, kw) {
			return models.Monostructural
		}
	}
	for _, kw := range gymnasticsKeywords {
		if strings.Contains(canonicalID, kw) {
			return models.Gymnastics
		}
	}
	// Lunges are bodyweight unless qualified as loaded overhead or walking
	// variants.
	if strings.Contains(canonicalID, "lunge") &&
		!strings.Contains(canonicalID, "overhead") &&
		!strings.Contains(canonicalID, "walking") {
		return models.Gymnastics
	}
	return models.Weightlifting
}
