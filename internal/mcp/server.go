// Package mcp exposes the workout-text pipeline to AI coaching clients over
// the Model Context Protocol: movement resolution, workout parsing, and
// program analytics queries.
package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/movements"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// DataSource abstracts the storage layer for MCP tools.
type DataSource interface {
	ListPrograms(ctx context.Context) ([]models.Program, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*models.Program, error)
	LoadProgramDays(ctx context.Context, programID uuid.UUID) ([]models.ProgramDay, error)
	SuggestedLoad(ctx context.Context, userID int, canonicalID string) (*float64, error)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, catalog *movements.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("WodSmith", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("WodSmith CrossFit programming server. Resolve movement names to the canonical vocabulary, parse workout text into labeled blocks, and query program analytics: modal balance, time domains, movement frequency, and coverage gaps."),
	)

	h := &handlers{ds: ds, catalog: catalog, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolResolveMovement, Handler: h.resolveMovement},
		server.ServerTool{Tool: toolParseWorkout, Handler: h.parseWorkout},
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
		server.ServerTool{Tool: toolGetProgramAnalytics, Handler: h.getProgramAnalytics},
		server.ServerTool{Tool: toolGetMovementFrequency, Handler: h.getMovementFrequency},
		server.ServerTool{Tool: toolGetNotProgrammed, Handler: h.getNotProgrammed},
		server.ServerTool{Tool: toolGetSuggestedLoad, Handler: h.getSuggestedLoad},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resMovementCatalog, Handler: h.movementCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds      DataSource
	catalog *movements.Catalog
	log     *slog.Logger
}

// --- Resource definitions ---

var resMovementCatalog = mcp.NewResource(
	"wodsmith://movement_catalog",
	"Movement Catalog",
	mcp.WithResourceDescription("The full canonical movement vocabulary with modalities, display names, and known aliases"),
	mcp.WithMIMEType("application/json"),
)
