// Package parser turns free-form workout text into labeled blocks with
// resolved movements and structural hints. Everything here is pure string
// processing over the injected movement catalog; no I/O.
package parser

import (
	"strings"

	"github.com/claude/wodsmith/internal/models"
)

// SplitBlocks splits workout text into labeled blocks using the fixed label
// vocabulary. Labels are matched as the case-insensitive substring "<label>:";
// a block's content runs from just after its label to the start of the next
// label found when searching forward from the content start, or to
// end-of-text. Blocks are emitted in canonical training-day order, not
// authoring order, so the logging UI always renders a day the same way.
//
// Returns nil when the text is empty or contains no recognizable label; the
// caller is expected to treat no-label text as a single unlabeled block.
// Blocks whose content trims to empty are still included.
func SplitBlocks(text string) []models.WorkoutBlock {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)

	type match struct {
		label        models.BlockLabel
		contentStart int
	}
	var found []match

	for _, label := range models.BlockLabelOrder {
		token := strings.ToLower(string(label)) + ":"
		idx := strings.Index(lower, token)
		if idx < 0 {
			continue
		}
		found = append(found, match{label: label, contentStart: idx + len(token)})
	}
	if len(found) == 0 {
		return nil
	}

	blocks := make([]models.WorkoutBlock, 0, len(found))
	for _, m := range found {
		end := len(text)
		// Search for the other found labels only forward from this block's
		// content start, so a label occurrence already consumed by an earlier
		// block cannot truncate this one.
		for _, other := range found {
			if other.label == m.label {
				continue
			}
			token := strings.ToLower(string(other.label)) + ":"
			if idx := strings.Index(lower[m.contentStart:], token); idx >= 0 {
				if abs := m.contentStart + idx; abs < end {
					end = abs
				}
			}
		}
		blocks = append(blocks, models.WorkoutBlock{
			Label:   m.label,
			RawText: strings.TrimSpace(text[m.contentStart:end]),
		})
	}
	return blocks
}
