// Package analytics computes program-level coaching reports from parsed
// workouts: modal balance, time-domain and format distributions, movement
// frequency rankings, consecutive-day overlap warnings, and the
// not-programmed vocabulary diff.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/movements"
)

// Time-domain buckets for caller-supplied workout durations, in minutes.
const (
	bucketShort    = "0-10 min"
	bucketMedium   = "10-20 min"
	bucketLong     = "20-30 min"
	bucketVeryLong = "30+ min"
)

// Analyze computes the full analytics report for a program. It is a pure
// function of its input: no state survives between calls, and repeated calls
// on the same input produce identical reports, including ordering. vocab is
// the full canonical vocabulary grouped by modality (Catalog.Vocabulary);
// movements resolved to the unknown sentinel never count as programmed.
func Analyze(days []models.ProgramDay, vocab map[models.Modality][]string) *models.ProgramAnalytics {
	report := &models.ProgramAnalytics{
		ModalBalance: map[models.Modality]int{
			models.Weightlifting:  0,
			models.Gymnastics:     0,
			models.Monostructural: 0,
		},
		TimeDomains:      make(map[string]int),
		WorkoutStructure: make(map[string]int),
		WorkoutFormats:   make(map[string]int),
		NotProgrammed:    make(map[models.Modality][]string),
	}

	counts := make(map[string]int)
	modalities := make(map[string]models.Modality)
	programmed := make(map[string]bool)

	for _, day := range days {
		if unstructured(day.Blocks) {
			report.Notices = append(report.Notices,
				fmt.Sprintf("week %d day %d: no recognizable block labels; logged as unstructured text", day.Week, day.Day))
		}

		for _, block := range day.Blocks {
			if block.Label != "" && block.RawText == "" {
				report.Notices = append(report.Notices,
					fmt.Sprintf("week %d day %d: empty %s block", day.Week, day.Day, block.Label))
			}
			for _, mv := range block.Movements {
				report.ModalBalance[mv.Modality]++
				counts[mv.CanonicalID]++
				if _, seen := modalities[mv.CanonicalID]; !seen {
					modalities[mv.CanonicalID] = mv.Modality
				}
				if mv.CanonicalID != movements.CanonicalUnknown {
					programmed[mv.CanonicalID] = true
				}
			}
		}

		if label := structureLabel(day.Blocks); label != "" {
			report.WorkoutStructure[label]++
		}
		if format := metconFormat(day.Blocks); format != "" {
			report.WorkoutFormats[format]++
		}

		if day.DurationMin != nil {
			if *day.DurationMin <= 0 {
				report.Notices = append(report.Notices,
					fmt.Sprintf("week %d day %d: invalid duration; excluded from time domains", day.Week, day.Day))
			} else {
				report.TimeDomains[timeDomain(*day.DurationMin)]++
			}
		}
	}

	report.MovementFrequency = rankFrequency(counts, modalities)
	report.NotProgrammed = notProgrammed(vocab, programmed)
	report.ConsecutiveOverlaps = consecutiveOverlaps(days)
	return report
}

// unstructured reports whether a day's blocks are the no-label fallback:
// either no blocks at all or a single unlabeled one.
func unstructured(blocks []models.WorkoutBlock) bool {
	if len(blocks) == 0 {
		return true
	}
	return len(blocks) == 1 && blocks[0].Label == ""
}

func timeDomain(minutes float64) string {
	switch {
	case minutes < 10:
		return bucketShort
	case minutes < 20:
		return bucketMedium
	case minutes < 30:
		return bucketLong
	default:
		return bucketVeryLong
	}
}

// structureLabel summarizes a day's block composition, e.g.
// "warm_up+strength+metcon". Unlabeled fallback days report "unstructured".
func structureLabel(blocks []models.WorkoutBlock) string {
	if len(blocks) == 0 {
		return ""
	}
	if unstructured(blocks) {
		return "unstructured"
	}
	var parts []string
	for _, b := range blocks {
		parts = append(parts, movements.Slugify(string(b.Label)))
	}
	return strings.Join(parts, "+")
}

// metconFormat returns the day's format label (for_time/amrap/emom) from its
// Metcon block, or "" when the day has none.
func metconFormat(blocks []models.WorkoutBlock) string {
	for _, b := range blocks {
		if b.Label == models.LabelMetcon {
			return string(b.Type)
		}
	}
	return ""
}

// rankFrequency sorts movement occurrence counts descending, ties broken by
// canonical id ascending. The tie-break keeps the ranking stable across runs.
func rankFrequency(counts map[string]int, modalities map[string]models.Modality) []models.MovementCount {
	ranked := make([]models.MovementCount, 0, len(counts))
	for id, n := range counts {
		ranked = append(ranked, models.MovementCount{
			CanonicalID: id,
			Count:       n,
			Modality:    modalities[id],
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].CanonicalID < ranked[j].CanonicalID
	})
	return ranked
}

// notProgrammed diffs the full vocabulary against the programmed set,
// per modality.
func notProgrammed(vocab map[models.Modality][]string, programmed map[string]bool) map[models.Modality][]string {
	missing := make(map[models.Modality][]string)
	for modality, ids := range vocab {
		gaps := []string{}
		for _, id := range ids {
			if !programmed[id] {
				gaps = append(gaps, id)
			}
		}
		sort.Strings(gaps)
		missing[modality] = gaps
	}
	return missing
}

// consecutiveOverlaps flags movements shared between adjacent logged days of
// the same week. Adjacency is over logged days, not day numbers: an unlogged
// day number is a rest day, so sessions on days 1 and 3 with no day 2 are
// still back to back. Cross-week adjacency is not checked; a rest day
// typically separates week boundaries.
func consecutiveOverlaps(days []models.ProgramDay) []models.OverlapWarning {
	byWeek := make(map[int][]models.ProgramDay)
	for _, d := range days {
		byWeek[d.Week] = append(byWeek[d.Week], d)
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	var warnings []models.OverlapWarning
	for _, w := range weeks {
		week := byWeek[w]
		sort.Slice(week, func(i, j int) bool { return week[i].Day < week[j].Day })

		for i := 0; i+1 < len(week); i++ {
			shared := sharedMovements(week[i].Blocks, week[i+1].Blocks)
			if len(shared) == 0 {
				continue
			}
			warnings = append(warnings, models.OverlapWarning{
				Week:      w,
				DayPair:   [2]int{week[i].Day, week[i+1].Day},
				SharedIDs: shared,
			})
		}
	}
	return warnings
}

func sharedMovements(a, b []models.WorkoutBlock) []string {
	inA := make(map[string]bool)
	for _, block := range a {
		for _, mv := range block.Movements {
			if mv.CanonicalID != movements.CanonicalUnknown {
				inA[mv.CanonicalID] = true
			}
		}
	}

	sharedSet := make(map[string]bool)
	for _, block := range b {
		for _, mv := range block.Movements {
			if inA[mv.CanonicalID] {
				sharedSet[mv.CanonicalID] = true
			}
		}
	}

	shared := make([]string, 0, len(sharedSet))
	for id := range sharedSet {
		shared = append(shared, id)
	}
	sort.Strings(shared)
	return shared
}
