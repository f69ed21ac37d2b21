// Package movements implements the canonicalization table: the mapping from
// free-form exercise name spellings to a small stable vocabulary of canonical
// movement ids, each tagged with a modality.
//
// A Catalog is immutable after construction and safe for concurrent use.
// Callers inject it rather than relying on a package-level singleton, so tests
// can run against fixture tables.
package movements

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/claude/wodsmith/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// CanonicalUnknown is the sentinel id for names the table cannot resolve
	// to anything meaningful. Unknowns are kept in parsed blocks but excluded
	// from vocabulary gap analysis.
	CanonicalUnknown = "unknown"

	// CanonicalRest is the sentinel for the literal "rest". Extractors drop
	// it so that a rest entry can never mint a spurious canonical movement.
	CanonicalRest = "rest"
)

// Definition is one curated vocabulary entry: a canonical id, its modality,
// and the raw spellings that resolve to it. The canonical id itself is always
// treated as one of its own aliases.
type Definition struct {
	CanonicalID string          `yaml:"canonical_id"`
	Modality    models.Modality `yaml:"modality"`
	DisplayName string          `yaml:"display_name,omitempty"`
	Aliases     []string        `yaml:"aliases,omitempty"`
}

// Resolution is the result of resolving one raw name.
type Resolution struct {
	CanonicalID string          `json:"canonical_id"`
	Modality    models.Modality `json:"modality"`
	Category    string          `json:"category"`

	// Inferred is true when the name missed the alias table and both the id
	// and the modality came from the slugify/inference fallback. Inferred
	// resolutions are what the seed tool queues for human review.
	Inferred bool `json:"inferred,omitempty"`

	// Rest is true for the literal "rest"; callers drop these.
	Rest bool `json:"rest,omitempty"`
}

type aliasEntry struct {
	canonicalID string
	modality    models.Modality
}

// Catalog is the immutable alias table plus the curated modality-override map.
type Catalog struct {
	aliases   map[string]aliasEntry
	display   map[string]string
	overrides map[string]models.Modality
	defs      []Definition
}

// New builds a Catalog from curated definitions and an optional modality
// override map. It fails when two definitions claim the same alias, since
// every alias must map to exactly one canonical id.
func New(defs []Definition, overrides map[string]models.Modality) (*Catalog, error) {
	c := &Catalog{
		aliases:   make(map[string]aliasEntry),
		display:   make(map[string]string),
		overrides: overrides,
		defs:      defs,
	}

	for _, d := range defs {
		if d.CanonicalID == "" {
			return nil, fmt.Errorf("definition with empty canonical_id")
		}
		switch d.Modality {
		case models.Weightlifting, models.Gymnastics, models.Monostructural:
		default:
			return nil, fmt.Errorf("definition %q: invalid modality %q", d.CanonicalID, d.Modality)
		}
		if d.DisplayName != "" {
			c.display[d.CanonicalID] = d.DisplayName
		}

		names := append([]string{d.CanonicalID}, d.Aliases...)
		for _, raw := range names {
			key := normalize(raw)
			if key == "" {
				continue
			}
			if prev, ok := c.aliases[key]; ok && prev.canonicalID != d.CanonicalID {
				return nil, fmt.Errorf("alias %q maps to both %q and %q", key, prev.canonicalID, d.CanonicalID)
			}
			c.aliases[key] = aliasEntry{canonicalID: d.CanonicalID, modality: d.Modality}
		}
	}
	return c, nil
}

// normalize lowercases, collapses internal whitespace, and trims.
func normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// Resolve maps a raw exercise name to its canonical movement. It never fails:
// unknown names fall back to a slugified id with an inferred modality, and
// empty input resolves to the unknown sentinel with Weightlifting as the
// last-resort default.
func (c *Catalog) Resolve(rawName string) Resolution {
	key := normalize(rawName)

	if key == CanonicalRest {
		return Resolution{CanonicalID: CanonicalRest, Rest: true}
	}

	if e, ok := c.aliases[key]; ok {
		return Resolution{
			CanonicalID: e.canonicalID,
			Modality:    e.modality,
			Category:    e.modality.Category(),
		}
	}

	id := Slugify(key)

	// A slugified hit on the alias table is still a curated resolution; this
	// catches spellings like "double-under" against the canonical id
	// "double_under" or the alias "double under".
	for _, k := range []string{id, strings.ReplaceAll(id, "_", " ")} {
		if e, ok := c.aliases[k]; ok {
			return Resolution{
				CanonicalID: e.canonicalID,
				Modality:    e.modality,
				Category:    e.modality.Category(),
			}
		}
	}

	modality, curated := c.overrides[id]
	if !curated {
		modality = InferModality(id)
	}
	return Resolution{
		CanonicalID: id,
		Modality:    modality,
		Category:    modality.Category(),
		Inferred:    !curated,
	}
}

// DisplayName returns the display name for a canonical id, honoring explicit
// overrides from the curated table.
func (c *Catalog) DisplayName(canonicalID string) string {
	if name, ok := c.display[canonicalID]; ok {
		return name
	}
	return DisplayName(canonicalID)
}

// Contains reports whether the canonical id is part of the curated vocabulary.
func (c *Catalog) Contains(canonicalID string) bool {
	for _, d := range c.defs {
		if d.CanonicalID == canonicalID {
			return true
		}
	}
	return false
}

// Vocabulary returns the full curated vocabulary grouped by modality, each
// group sorted by canonical id. This is the reference set for the
// not-programmed report.
func (c *Catalog) Vocabulary() map[models.Modality][]string {
	vocab := make(map[models.Modality][]string)
	for _, d := range c.defs {
		vocab[d.Modality] = append(vocab[d.Modality], d.CanonicalID)
	}
	for m := range vocab {
		sort.Strings(vocab[m])
	}
	return vocab
}

// Definitions returns a copy of the curated definitions, sorted by canonical
// id. Used by the seed exporter.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, len(c.defs))
	copy(defs, c.defs)
	sort.Slice(defs, func(i, j int) bool { return defs[i].CanonicalID < defs[j].CanonicalID })
	return defs
}

// LoadDefinitions reads curated vocabulary definitions from a YAML file.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file: %w", err)
	}
	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing alias file: %w", err)
	}
	return defs, nil
}

// LoadOverrides reads a curated modality-override map from a YAML file of the
// form "canonical_id: W|G|M". Invalid entries are skipped rather than fatal;
// a missing or unreadable file degrades to inference.
func LoadOverrides(path string) (map[string]models.Modality, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}
	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing override file: %w", err)
	}

	overrides := make(map[string]models.Modality, len(raw))
	for id, code := range raw {
		if m, ok := models.ModalityFromShortCode(code); ok {
			overrides[id] = m
		}
	}
	return overrides, nil
}
