// wodsmith-seed aggregates an exercise-name corpus into movement seed rows
// and emits upsert statements for the movements table. Canonical ids whose
// modality had to be inferred are queued in a local review database for a
// human to promote into the curated override map.
package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/movements"
	"github.com/claude/wodsmith/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	inPath := flag.String("in", "", "corpus CSV path (exercise_name,source_id); - for stdin")
	outPath := flag.String("out", "", "output SQL path; empty for stdout")
	reviewDir := flag.String("review-dir", ".wodsmith", "directory for the review queue database")
	aliasesPath := flag.String("aliases", "", "curated aliases YAML (default: built-in vocabulary)")
	overridesPath := flag.String("overrides", "", "curated modality overrides YAML")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// .env is optional; flags and the environment win
	_ = godotenv.Load()
	if v := os.Getenv("WODSMITH_CATALOG_ALIASES"); v != "" && *aliasesPath == "" {
		*aliasesPath = v
	}
	if v := os.Getenv("WODSMITH_CATALOG_OVERRIDES"); v != "" && *overridesPath == "" {
		*overridesPath = v
	}

	if *inPath == "" {
		log.Error("-in is required")
		os.Exit(1)
	}

	catalog, err := buildCatalog(*aliasesPath, *overridesPath, log)
	if err != nil {
		log.Error("failed to build movement catalog", "error", err)
		os.Exit(1)
	}

	entries, err := readCorpus(*inPath)
	if err != nil {
		log.Error("failed to read corpus", "error", err)
		os.Exit(1)
	}
	log.Info("corpus loaded", "entries", len(entries))

	rows := seed.BuildRows(entries, catalog)

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Error("failed to create output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if err := seed.WriteUpserts(out, rows); err != nil {
		log.Error("failed to write upserts", "error", err)
		os.Exit(1)
	}

	// Queue inferred-modality rows for human review
	queue, err := seed.OpenReviewQueue(*reviewDir)
	if err != nil {
		log.Error("failed to open review queue", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	inferred := 0
	for _, r := range rows {
		if !r.Inferred {
			continue
		}
		sample := r.CanonicalName
		if len(r.Aliases) > 0 {
			sample = r.Aliases[0]
		}
		if err := queue.Record(r.CanonicalName, r.Modality, sample, r.OccurrenceCount); err != nil {
			log.Error("failed to record review item", "canonical_id", r.CanonicalName, "error", err)
			os.Exit(1)
		}
		inferred++
	}

	log.Info("seed export complete",
		"movements", len(rows),
		"inferred", inferred,
		"review_dir", *reviewDir,
	)
	if inferred > 0 {
		log.Warn("inferred modalities need review; promote them into the curated override map", "count", inferred)
	}
}

func buildCatalog(aliasesPath, overridesPath string, log *slog.Logger) (*movements.Catalog, error) {
	var overrides map[string]models.Modality
	if overridesPath != "" {
		loaded, err := movements.LoadOverrides(overridesPath)
		if err != nil {
			log.Warn("modality overrides unavailable; falling back to inference", "path", overridesPath, "error", err)
		} else {
			overrides = loaded
		}
	}

	if aliasesPath == "" {
		return movements.DefaultCatalog(overrides)
	}
	defs, err := movements.LoadDefinitions(aliasesPath)
	if err != nil {
		log.Warn("curated aliases unavailable; using built-in vocabulary", "path", aliasesPath, "error", err)
		return movements.DefaultCatalog(overrides)
	}
	return movements.New(defs, overrides)
}

// readCorpus parses a two-column CSV of (exercise_name, source_id). A header
// row named exercise_name is skipped.
func readCorpus(path string) ([]seed.CorpusEntry, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var entries []seed.CorpusEntry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" || strings.EqualFold(name, "exercise_name") {
			continue
		}
		entry := seed.CorpusEntry{ExerciseName: name}
		if len(record) > 1 {
			entry.SourceID = strings.TrimSpace(record[1])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
