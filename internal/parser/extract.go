package parser

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/movements"
)

var (
	// amrapRe matches: AMRAP 12, 10:00 AMRAP, "as many rounds as possible"
	amrapRe = regexp.MustCompile(`(?i)\bAMRAP\b|\bAS MANY ROUNDS\b`)

	// emomRe matches: EMOM 10, E2MOM, e3mom
	emomRe = regexp.MustCompile(`(?i)\bE\d*MOM\b`)

	// setsHeaderRe matches a block-level repetition header: "5 sets", "3 Sets of"
	setsHeaderRe = regexp.MustCompile(`(?i)\b(\d+)\s+sets?\b`)

	// setsRepsRe matches a per-movement scheme: 5x3, 4 x 8
	setsRepsRe = regexp.MustCompile(`\b(\d+)\s*[xX]\s*(\d+)\b`)

	// repLadderRe matches rep ladders: 21-15-9, 10-8-6-4-2
	repLadderRe = regexp.MustCompile(`\b\d+(?:-\d+)+\b`)

	// quantityRe matches a count/distance/duration token: 400m, 21, 50 cal, 2 min
	quantityRe = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s*(?:m|km|cal|cals|calories?|meters?|reps?|secs?|seconds?|mins?|minutes?)?\b`)

	parenRe = regexp.MustCompile(`\([^)]*\)`)
)

// noiseSegments are cleaned segment texts that describe workout scaffolding
// rather than movements.
var noiseSegments = map[string]bool{
	"round": true, "rounds": true, "set": true, "sets": true, "sets of": true,
	"rep": true, "reps": true, "for time": true, "amrap": true, "emom": true,
	"then": true, "buy-in": true, "cash-out": true, "time cap": true, "cap": true,
	"of": true, "each": true,
}

// LoadLookup supplies a per-user suggested load for a canonical movement,
// typically from a personal record store. Implementations return nil with no
// error when no suggestion exists.
type LoadLookup interface {
	SuggestedLoad(ctx context.Context, userID int, canonicalID string) (*float64, error)
}

// BlockType derives a block's parsed type from its label, refining Metcon
// blocks into amrap/emom/for_time by inspecting the text. An absent label
// (the whole-text fallback) maps to other.
func BlockType(label models.BlockLabel, text string) models.BlockType {
	switch label {
	case models.LabelWarmUp:
		return models.BlockWarmUp
	case models.LabelSkills:
		return models.BlockSkills
	case models.LabelStrength:
		return models.BlockStrength
	case models.LabelCoolDown:
		return models.BlockCoolDown
	case models.LabelMetcon:
		switch {
		case amrapRe.MatchString(text):
			return models.BlockAMRAP
		case emomRe.MatchString(text):
			return models.BlockEMOM
		default:
			return models.BlockForTime
		}
	}
	return models.BlockOther
}

// ExtractMovements fills in a block's type, structural hints, and resolved
// movements from its raw text. Segments that resolve to the unknown sentinel
// are kept (coaches log novel movements); the literal "rest" is dropped.
// loads may be nil, in which case no suggested weights are attached.
func ExtractMovements(ctx context.Context, block models.WorkoutBlock, cat *movements.Catalog, loads LoadLookup, userID int) models.WorkoutBlock {
	out := block
	out.Type = BlockType(block.Label, block.RawText)
	out.Movements = nil

	if m := setsHeaderRe.FindStringSubmatch(block.RawText); m != nil {
		out.SetsHeader, _ = strconv.Atoi(m[1])
	}

	// A set×rep scheme anywhere in the block is the default hint for every
	// movement; a scheme inside a movement's own segment wins for that row.
	var blockHint models.StructuralHint
	if m := setsRepsRe.FindStringSubmatch(block.RawText); m != nil {
		blockHint.Sets, _ = strconv.Atoi(m[1])
		blockHint.Reps, _ = strconv.Atoi(m[2])
	}

	for _, seg := range splitSegments(block.RawText) {
		hint := blockHint
		if m := setsRepsRe.FindStringSubmatch(seg); m != nil {
			hint.Sets, _ = strconv.Atoi(m[1])
			hint.Reps, _ = strconv.Atoi(m[2])
		}

		name := cleanSegment(seg)
		if name == "" || noiseSegments[strings.ToLower(name)] {
			continue
		}

		res := cat.Resolve(name)
		if res.Rest {
			continue
		}

		if loads != nil && res.CanonicalID != movements.CanonicalUnknown {
			if w, err := loads.SuggestedLoad(ctx, userID, res.CanonicalID); err == nil && w != nil {
				hint.SuggestedWeightKg = w
			}
		}

		out.Movements = append(out.Movements, models.BlockMovement{
			CanonicalID: res.CanonicalID,
			Modality:    res.Modality,
			Hint:        hint,
		})
	}
	return out
}

// ParseWorkout runs the full text pipeline: block splitting, then movement
// and structure extraction per block. Text without any recognizable label is
// treated as a single unlabeled block parsed verbatim.
func ParseWorkout(ctx context.Context, text string, cat *movements.Catalog, loads LoadLookup, userID int) []models.WorkoutBlock {
	blocks := SplitBlocks(text)
	if blocks == nil {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		blocks = []models.WorkoutBlock{{RawText: trimmed}}
	}

	out := make([]models.WorkoutBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, ExtractMovements(ctx, b, cat, loads, userID))
	}
	return out
}

// splitSegments breaks block text into candidate movement phrases at
// top-level commas and newlines. Commas nested inside parentheses do not
// split, so qualifiers like "burpees (bar-facing, lateral)" stay whole.
func splitSegments(text string) []string {
	var segments []string
	var b strings.Builder
	depth := 0

	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			segments = append(segments, s)
		}
		b.Reset()
	}

	for _, r := range text {
		switch r {
		case '(':
			depth++
			b.WriteRune(r)
		case ')':
			if depth > 0 {
				depth--
			}
			b.WriteRune(r)
		case ',', '\n':
			if depth == 0 {
				flush()
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return segments
}

// cleanSegment strips structural noise from a candidate movement phrase: the
// parenthetical qualifiers, set×rep schemes, rep ladders, and count/distance/
// duration tokens that surround the movement name.
func cleanSegment(seg string) string {
	s := parenRe.ReplaceAllString(seg, " ")
	s = setsRepsRe.ReplaceAllString(s, " ")
	s = repLadderRe.ReplaceAllString(s, " ")
	s = quantityRe.ReplaceAllString(s, " ")
	s = strings.Trim(s, " \t-–*•:.")
	return strings.Join(strings.Fields(s), " ")
}
