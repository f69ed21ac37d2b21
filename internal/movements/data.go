package movements

import "github.com/claude/wodsmith/internal/models"

// defaultDefinitions is the built-in curated vocabulary. Canonical ids are
// stable and immutable once introduced; modalities here were set at creation
// and are only ever corrected through the override map, never by inference.
var defaultDefinitions = []Definition{
	// Weightlifting
	{CanonicalID: "back_squat", Modality: models.Weightlifting, Aliases: []string{"back squats", "bb back squat"}},
	{CanonicalID: "front_squat", Modality: models.Weightlifting, Aliases: []string{"front squats"}},
	{CanonicalID: "overhead_squat", Modality: models.Weightlifting, Aliases: []string{"overhead squats", "ohs"}},
	{CanonicalID: "goblet_squat", Modality: models.Weightlifting, Aliases: []string{"goblet squats", "kb goblet squat"}},
	{CanonicalID: "deadlift", Modality: models.Weightlifting, Aliases: []string{"deadlifts", "conventional deadlift"}},
	{CanonicalID: "sumo_deadlift", Modality: models.Weightlifting, Aliases: []string{"sumo deadlifts"}},
	{CanonicalID: "sumo_deadlift_high_pull", Modality: models.Weightlifting, Aliases: []string{"sdhp", "sumo deadlift high pulls"}},
	{CanonicalID: "romanian_deadlift", Modality: models.Weightlifting, Aliases: []string{"rdl", "rdls", "romanian deadlifts"}},
	{CanonicalID: "thruster", Modality: models.Weightlifting, Aliases: []string{"thrusters", "barbell thrusters"}},
	{CanonicalID: "dumbbell_thruster", Modality: models.Weightlifting, Aliases: []string{"db thrusters", "dumbbell thrusters"}},
	{CanonicalID: "clean", Modality: models.Weightlifting, Aliases: []string{"cleans", "full clean"}},
	{CanonicalID: "power_clean", Modality: models.Weightlifting, Aliases: []string{"power cleans"}},
	{CanonicalID: "squat_clean", Modality: models.Weightlifting, Aliases: []string{"squat cleans"}},
	{CanonicalID: "hang_power_clean", Modality: models.Weightlifting, Aliases: []string{"hang power cleans", "hpc"}},
	{CanonicalID: "clean_and_jerk", Modality: models.Weightlifting, Aliases: []string{"clean & jerk", "clean and jerks", "c&j"}},
	{CanonicalID: "snatch", Modality: models.Weightlifting, Aliases: []string{"snatches", "full snatch"}},
	{CanonicalID: "power_snatch", Modality: models.Weightlifting, Aliases: []string{"power snatches"}},
	{CanonicalID: "hang_power_snatch", Modality: models.Weightlifting, Aliases: []string{"hang power snatches"}},
	{CanonicalID: "dumbbell_snatch", Modality: models.Weightlifting, Aliases: []string{"db snatch", "db snatches", "alternating dumbbell snatch"}},
	{CanonicalID: "push_press", Modality: models.Weightlifting, Aliases: []string{"push presses"}},
	{CanonicalID: "push_jerk", Modality: models.Weightlifting, Aliases: []string{"push jerks"}},
	{CanonicalID: "split_jerk", Modality: models.Weightlifting, Aliases: []string{"split jerks"}},
	{CanonicalID: "strict_press", Modality: models.Weightlifting, Aliases: []string{"shoulder press", "strict presses", "military press"}},
	{CanonicalID: "bench_press", Modality: models.Weightlifting, Aliases: []string{"bench", "bench presses"}},
	{CanonicalID: "bent_over_row", Modality: models.Weightlifting, Aliases: []string{"barbell row", "barbell rows", "bent over rows"}},
	{CanonicalID: "kettlebell_swing", Modality: models.Weightlifting, Aliases: []string{"kb swing", "kb swings", "kettlebell swings", "american kettlebell swing", "russian kettlebell swing"}},
	{CanonicalID: "turkish_get_up", Modality: models.Weightlifting, Aliases: []string{"turkish get-up", "turkish get ups", "tgu"}},
	{CanonicalID: "medicine_ball_clean", Modality: models.Weightlifting, Aliases: []string{"med ball clean", "med ball cleans"}},
	{CanonicalID: "devils_press", Modality: models.Weightlifting, DisplayName: "Devil's Press", Aliases: []string{"devil press", "devil's press", "devils presses"}},
	{CanonicalID: "farmers_carry", Modality: models.Weightlifting, DisplayName: "Farmer's Carry", Aliases: []string{"farmer's carry", "farmer carry", "farmers walk"}},
	{CanonicalID: "overhead_walking_lunge", Modality: models.Weightlifting, Aliases: []string{"overhead walking lunges", "oh walking lunge"}},
	{CanonicalID: "back_rack_lunge", Modality: models.Weightlifting, Aliases: []string{"back rack lunges", "barbell lunge"}},
	{CanonicalID: "good_morning", Modality: models.Weightlifting, Aliases: []string{"good mornings"}},
	{CanonicalID: "hip_extension", Modality: models.Weightlifting, Aliases: []string{"hip extensions"}},

	// Gymnastics
	{CanonicalID: "pull_up", Modality: models.Gymnastics, Aliases: []string{"pull-up", "pull-ups", "pull ups", "pullups", "kipping pull-ups", "strict pull-ups", "butterfly pull-ups"}},
	{CanonicalID: "chest_to_bar_pull_up", Modality: models.Gymnastics, DisplayName: "Chest-to-Bar Pull-Up", Aliases: []string{"chest-to-bar", "chest to bar", "c2b", "chest-to-bar pull-ups"}},
	{CanonicalID: "push_up", Modality: models.Gymnastics, DisplayName: "Push-Up", Aliases: []string{"push-up", "push-ups", "push ups", "pushups", "hand release push-ups"}},
	{CanonicalID: "burpee", Modality: models.Gymnastics, Aliases: []string{"burpees", "bar-facing burpees", "burpees over the bar", "lateral burpees"}},
	{CanonicalID: "burpee_box_jump_over", Modality: models.Gymnastics, Aliases: []string{"burpee box jump overs", "bbjo"}},
	{CanonicalID: "sit_up", Modality: models.Gymnastics, DisplayName: "Sit-Up", Aliases: []string{"sit-up", "sit-ups", "sit ups", "abmat sit-ups"}},
	{CanonicalID: "toes_to_bar", Modality: models.Gymnastics, DisplayName: "Toes-to-Bar", Aliases: []string{"toes-to-bar", "t2b", "ttb"}},
	{CanonicalID: "knees_to_elbows", Modality: models.Gymnastics, Aliases: []string{"knees-to-elbows", "k2e"}},
	{CanonicalID: "ring_muscle_up", Modality: models.Gymnastics, DisplayName: "Ring Muscle-Up", Aliases: []string{"ring muscle-up", "ring muscle-ups", "ring mu"}},
	{CanonicalID: "bar_muscle_up", Modality: models.Gymnastics, DisplayName: "Bar Muscle-Up", Aliases: []string{"bar muscle-up", "bar muscle-ups", "bmu"}},
	{CanonicalID: "handstand_push_up", Modality: models.Gymnastics, DisplayName: "Handstand Push-Up", Aliases: []string{"handstand push-up", "handstand push-ups", "hspu", "strict hspu", "kipping hspu"}},
	{CanonicalID: "handstand_walk", Modality: models.Gymnastics, Aliases: []string{"handstand walks", "hs walk"}},
	{CanonicalID: "handstand_hold", Modality: models.Gymnastics, Aliases: []string{"handstand holds"}},
	{CanonicalID: "wall_walk", Modality: models.Gymnastics, Aliases: []string{"wall walks", "wall-walks"}},
	{CanonicalID: "box_jump", Modality: models.Gymnastics, Aliases: []string{"box jumps"}},
	{CanonicalID: "box_jump_over", Modality: models.Gymnastics, Aliases: []string{"box jump overs", "bjo"}},
	{CanonicalID: "box_step_up", Modality: models.Gymnastics, Aliases: []string{"box step-ups", "step ups", "weighted step-ups"}},
	{CanonicalID: "double_under", Modality: models.Gymnastics, Aliases: []string{"double unders", "double-unders", "dus", "dubs"}},
	{CanonicalID: "single_under", Modality: models.Gymnastics, Aliases: []string{"single unders", "singles"}},
	{CanonicalID: "air_squat", Modality: models.Gymnastics, Aliases: []string{"air squats", "bodyweight squats"}},
	{CanonicalID: "pistol", Modality: models.Gymnastics, Aliases: []string{"pistols", "pistol squats", "single leg squats"}},
	{CanonicalID: "lunge", Modality: models.Gymnastics, Aliases: []string{"lunges", "alternating lunges"}},
	{CanonicalID: "walking_lunge", Modality: models.Gymnastics, Aliases: []string{"walking lunges"}},
	{CanonicalID: "rope_climb", Modality: models.Gymnastics, Aliases: []string{"rope climbs", "legless rope climb"}},
	{CanonicalID: "ring_dip", Modality: models.Gymnastics, Aliases: []string{"ring dips"}},
	{CanonicalID: "ring_row", Modality: models.Gymnastics, Aliases: []string{"ring rows"}},
	{CanonicalID: "dip", Modality: models.Gymnastics, Aliases: []string{"dips", "bar dips", "matador dips"}},
	{CanonicalID: "ghd_sit_up", Modality: models.Gymnastics, DisplayName: "GHD Sit-Up", Aliases: []string{"ghd sit-ups", "ghd situps", "ghdsu"}},
	{CanonicalID: "v_up", Modality: models.Gymnastics, DisplayName: "V-Up", Aliases: []string{"v-up", "v-ups", "v ups"}},
	{CanonicalID: "l_sit", Modality: models.Gymnastics, DisplayName: "L-Sit", Aliases: []string{"l-sit", "l-sits", "l sit hold"}},
	{CanonicalID: "hanging_knee_raise", Modality: models.Gymnastics, Aliases: []string{"hanging knee raises", "knee raises"}},
	{CanonicalID: "jumping_jack", Modality: models.Gymnastics, Aliases: []string{"jumping jacks"}},
	{CanonicalID: "wall_ball_shot", Modality: models.Gymnastics, Aliases: []string{"wall ball", "wall balls", "wallballs", "wall ball shots"}},
	{CanonicalID: "bear_crawl", Modality: models.Gymnastics, Aliases: []string{"bear crawls"}},
	{CanonicalID: "hollow_rock", Modality: models.Gymnastics, Aliases: []string{"hollow rocks", "hollow hold"}},
	{CanonicalID: "plank", Modality: models.Gymnastics, Aliases: []string{"plank hold", "front plank"}},

	// Monostructural
	{CanonicalID: "row", Modality: models.Monostructural, Aliases: []string{"rowing", "erg row", "calorie row", "cal row"}},
	{CanonicalID: "run", Modality: models.Monostructural, Aliases: []string{"running", "jog"}},
	{CanonicalID: "bike", Modality: models.Monostructural, Aliases: []string{"biking", "cycling"}},
	{CanonicalID: "assault_bike", Modality: models.Monostructural, Aliases: []string{"assault bike", "echo bike", "air bike", "cal bike"}},
	{CanonicalID: "bike_erg", Modality: models.Monostructural, Aliases: []string{"bikeerg"}},
	{CanonicalID: "ski_erg", Modality: models.Monostructural, Aliases: []string{"ski", "skierg", "cal ski"}},
	{CanonicalID: "swim", Modality: models.Monostructural, Aliases: []string{"swimming"}},
	{CanonicalID: "shuttle_run", Modality: models.Monostructural, Aliases: []string{"shuttle runs", "shuttle sprints"}},
	{CanonicalID: "sprint", Modality: models.Monostructural, Aliases: []string{"sprints"}},
	{CanonicalID: "crossover", Modality: models.Monostructural, Aliases: []string{"crossovers", "crossover single unders"}},
	{CanonicalID: "sled_push", Modality: models.Monostructural, Aliases: []string{"sled pushes", "prowler push"}},
	{CanonicalID: "sled_pull", Modality: models.Monostructural, Aliases: []string{"sled pulls", "sled drag"}},
}

// DefaultCatalog builds a Catalog from the built-in vocabulary and an optional
// override map. The built-in table is validated at startup rather than at
// package init so a bad edit fails loudly with context.
func DefaultCatalog(overrides map[string]models.Modality) (*Catalog, error) {
	return New(defaultDefinitions, overrides)
}
