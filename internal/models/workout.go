package models

import (
	"time"

	"github.com/google/uuid"
)

// BlockLabel is one of the fixed section labels a coach writes in workout text.
// The empty string marks the unlabeled whole-text fallback.
type BlockLabel string

const (
	LabelWarmUp   BlockLabel = "Warm-up"
	LabelSkills   BlockLabel = "Skills"
	LabelStrength BlockLabel = "Strength"
	LabelMetcon   BlockLabel = "Metcon"
	LabelCoolDown BlockLabel = "Cool-down"
)

// BlockLabelOrder is the canonical training-day order. SplitBlocks emits
// blocks in this order regardless of how the author ordered them.
var BlockLabelOrder = []BlockLabel{
	LabelWarmUp,
	LabelSkills,
	LabelStrength,
	LabelMetcon,
	LabelCoolDown,
}

// BlockType is the parsed type of a block. Metcon blocks refine into
// for_time/amrap/emom based on the text.
type BlockType string

const (
	BlockWarmUp   BlockType = "warm_up"
	BlockSkills   BlockType = "skills"
	BlockStrength BlockType = "strength"
	BlockForTime  BlockType = "for_time"
	BlockAMRAP    BlockType = "amrap"
	BlockEMOM     BlockType = "emom"
	BlockCoolDown BlockType = "cool_down"
	BlockOther    BlockType = "other"
)

// StructuralHint carries the set/rep scheme and suggested load extracted for a
// single movement. Zero sets/reps means no scheme was found.
type StructuralHint struct {
	Sets              int      `json:"sets,omitempty"`
	Reps              int      `json:"reps,omitempty"`
	SuggestedWeightKg *float64 `json:"suggested_weight,omitempty"`
}

// BlockMovement is one movement occurrence inside a block, in text order.
type BlockMovement struct {
	CanonicalID string         `json:"canonical_id"`
	Modality    Modality       `json:"modality"`
	Hint        StructuralHint `json:"hint"`
}

// WorkoutBlock is one labeled section of a workout's text. Blocks are created
// fresh each time a workout is (re)parsed and never mutated in place.
type WorkoutBlock struct {
	Label      BlockLabel      `json:"label,omitempty"`
	Type       BlockType       `json:"type"`
	RawText    string          `json:"raw_text"`
	SetsHeader int             `json:"sets_header,omitempty"`
	Movements  []BlockMovement `json:"movements,omitempty"`
}

// ParsedWorkout is a workout's text together with its parsed blocks, as
// persisted and served back to logging clients.
type ParsedWorkout struct {
	ID          uuid.UUID      `json:"id"`
	ProgramID   uuid.UUID      `json:"program_id"`
	Week        int            `json:"week"`
	Day         int            `json:"day"`
	RawText     string         `json:"raw_text"`
	DurationMin *float64       `json:"duration_min,omitempty"`
	Blocks      []WorkoutBlock `json:"blocks"`
	ParsedAt    time.Time      `json:"parsed_at"`
}

// Program is a named collection of training days.
type Program struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProgramDay is the aggregator's view of one training day: its position in
// the program, caller-supplied duration, and parsed blocks.
type ProgramDay struct {
	Week        int            `json:"week"`
	Day         int            `json:"day"`
	DurationMin *float64       `json:"duration_min,omitempty"`
	Blocks      []WorkoutBlock `json:"blocks"`
}
