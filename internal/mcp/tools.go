package mcp

import (
	"context"
	"errors"

	"github.com/claude/wodsmith/internal/analytics"
	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/parser"
	"github.com/claude/wodsmith/internal/storage"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolResolveMovement = mcp.NewTool("resolve_movement",
	mcp.WithDescription("Resolve a free-form exercise name to its canonical movement id, modality (Weightlifting/Gymnastics/Monostructural), and category. Unknown names never fail; they resolve to a slugified id with an inferred modality."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name as written, e.g. 'Pull-ups', 'db snatch', '400m row'")),
)

var toolParseWorkout = mcp.NewTool("parse_workout",
	mcp.WithDescription("Parse free-form workout text into labeled blocks (Warm-up, Skills, Strength, Metcon, Cool-down) with resolved movements and set/rep hints. Does not store anything; useful for previewing how a workout will be logged."),
	mcp.WithString("text", mcp.Required(), mcp.Description("Raw workout description")),
)

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List all training programs with their ids."),
)

var toolGetProgramAnalytics = mcp.NewTool("get_program_analytics",
	mcp.WithDescription("Full analytics report for a program: modal balance, time-domain and format distributions, movement frequency ranking, consecutive-day overlap warnings, not-programmed movements, and advisory notices."),
	mcp.WithString("program_id", mcp.Required(), mcp.Description("Program UUID")),
)

var toolGetMovementFrequency = mcp.NewTool("get_movement_frequency",
	mcp.WithDescription("Movement occurrence ranking for a program, sorted by count descending with canonical id as tie-break."),
	mcp.WithString("program_id", mcp.Required(), mcp.Description("Program UUID")),
)

var toolGetNotProgrammed = mcp.NewTool("get_not_programmed",
	mcp.WithDescription("Canonical movements the program never uses, grouped by modality. These are candidates for incorporation into future programming."),
	mcp.WithString("program_id", mcp.Required(), mcp.Description("Program UUID")),
	mcp.WithString("modality", mcp.Description("Filter to one modality: Weightlifting, Gymnastics, or Monostructural")),
)

var toolGetSuggestedLoad = mcp.NewTool("get_suggested_load",
	mcp.WithDescription("Suggested load for a canonical movement from the user's personal records, in kg. Returns null when no record exists."),
	mcp.WithString("canonical_id", mcp.Required(), mcp.Description("Canonical movement id, e.g. back_squat")),
)

// --- Tool handlers ---

func (h *handlers) resolveMovement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	result, err := mcp.NewToolResultJSON(h.catalog.Resolve(name))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) parseWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	blocks := parser.ParseWorkout(ctx, text, h.catalog, loadLookup{h.ds}, uid)

	result, err := mcp.NewToolResultJSON(blocks)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.ds.ListPrograms(ctx)
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgramAnalytics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := h.analyzeProgram(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := mcp.NewToolResultJSON(report)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getMovementFrequency(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := h.analyzeProgram(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	result, err := mcp.NewToolResultJSON(report.MovementFrequency)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getNotProgrammed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, errResult := h.analyzeProgram(ctx, req)
	if errResult != nil {
		return errResult, nil
	}

	var payload any = report.NotProgrammed
	if m := req.GetString("modality", ""); m != "" {
		payload = report.NotProgrammed[models.Modality(m)]
	}

	result, err := mcp.NewToolResultJSON(payload)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSuggestedLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	canonicalID, err := req.RequireString("canonical_id")
	if err != nil {
		return mcp.NewToolResultError("canonical_id parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	weight, err := h.ds.SuggestedLoad(ctx, uid, canonicalID)
	if err != nil {
		h.log.Error("mcp get_suggested_load", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"canonical_id":        canonicalID,
		"suggested_weight_kg": weight,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// analyzeProgram loads a program's days and runs the aggregator; shared by
// the analytics tools.
func (h *handlers) analyzeProgram(ctx context.Context, req mcp.CallToolRequest) (*models.ProgramAnalytics, *mcp.CallToolResult) {
	idStr, err := req.RequireString("program_id")
	if err != nil {
		return nil, mcp.NewToolResultError("program_id parameter is required")
	}
	programID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, mcp.NewToolResultError("invalid program_id")
	}

	if _, err := h.ds.GetProgram(ctx, programID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, mcp.NewToolResultError("program not found")
		}
		h.log.Error("mcp program analytics", "error", err)
		return nil, mcp.NewToolResultError("query failed: " + err.Error())
	}

	days, err := h.ds.LoadProgramDays(ctx, programID)
	if err != nil {
		h.log.Error("mcp program analytics", "error", err)
		return nil, mcp.NewToolResultError("query failed: " + err.Error())
	}

	return analytics.Analyze(days, h.catalog.Vocabulary()), nil
}

// loadLookup adapts the DataSource to the parser's load lookup.
type loadLookup struct {
	ds DataSource
}

func (l loadLookup) SuggestedLoad(ctx context.Context, userID int, canonicalID string) (*float64, error) {
	return l.ds.SuggestedLoad(ctx, userID, canonicalID)
}
