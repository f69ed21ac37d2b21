package models

// MovementCount is one entry of the program-wide frequency ranking.
type MovementCount struct {
	CanonicalID string   `json:"canonical_id"`
	Count       int      `json:"count"`
	Modality    Modality `json:"modality"`
}

// OverlapWarning flags the same movement programmed on two adjacent training
// days of the same week.
type OverlapWarning struct {
	Week      int      `json:"week"`
	DayPair   [2]int   `json:"day_pair"`
	SharedIDs []string `json:"shared_canonical_ids"`
}

// ProgramAnalytics is the full coaching report for a program. It is derived
// data, recomputed on demand, and never hand-edited.
type ProgramAnalytics struct {
	ModalBalance        map[Modality]int      `json:"modal_balance"`
	TimeDomains         map[string]int        `json:"time_domains"`
	WorkoutStructure    map[string]int        `json:"workout_structure"`
	WorkoutFormats      map[string]int        `json:"workout_formats"`
	MovementFrequency   []MovementCount       `json:"movement_frequency"`
	NotProgrammed       map[Modality][]string `json:"not_programmed"`
	ConsecutiveOverlaps []OverlapWarning      `json:"consecutive_overlaps"`
	Notices             []string              `json:"notices"`
}
