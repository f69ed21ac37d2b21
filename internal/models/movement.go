package models

// Modality is CrossFit's three-way movement classification.
type Modality string

const (
	Weightlifting  Modality = "Weightlifting"
	Gymnastics     Modality = "Gymnastics"
	Monostructural Modality = "Monostructural"
)

// Category returns the display category for a modality. The two are the same
// string today; the indirection keeps the seed-export column independent of
// the enum value.
func (m Modality) Category() string {
	return string(m)
}

// ShortCode returns the single-letter code used by curated override files.
func (m Modality) ShortCode() string {
	switch m {
	case Weightlifting:
		return "W"
	case Gymnastics:
		return "G"
	case Monostructural:
		return "M"
	}
	return ""
}

// ModalityFromShortCode parses the W/G/M codes used by curated override files.
func ModalityFromShortCode(code string) (Modality, bool) {
	switch code {
	case "W":
		return Weightlifting, true
	case "G":
		return Gymnastics, true
	case "M":
		return Monostructural, true
	}
	return "", false
}

// CanonicalMovement is one entry of the canonical vocabulary: a stable
// lowercase snake_case id, its modality, and the raw spellings known to
// resolve to it.
type CanonicalMovement struct {
	CanonicalID string   `json:"canonical_id"`
	DisplayName string   `json:"display_name"`
	Modality    Modality `json:"modality"`
	Aliases     []string `json:"aliases,omitempty"`
}
