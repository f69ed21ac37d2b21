package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/wodsmith/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) movementCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	defs := h.catalog.Definitions()
	catalog := make([]models.CanonicalMovement, 0, len(defs))
	for _, d := range defs {
		catalog = append(catalog, models.CanonicalMovement{
			CanonicalID: d.CanonicalID,
			DisplayName: h.catalog.DisplayName(d.CanonicalID),
			Modality:    d.Modality,
			Aliases:     d.Aliases,
		})
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
