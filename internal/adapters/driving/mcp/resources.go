package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/drills/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for drills resources.
	uriScheme = "drills://"

	// historyResourceLimit caps the evaluations listed by the history resource.
	historyResourceLimit = 100
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent calculator evaluations, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{evaluationId}",
		Name:        "evaluation",
		Description: "A single recorded evaluation",
		MIMEType:    "application/json",
	}, s.handleEvaluationResource)
}

// handleHistoryResource returns the most recent evaluations.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, []domain.Evaluation{})
	}

	evaluations, err := s.ports.History.List(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	if evaluations == nil {
		evaluations = []domain.Evaluation{}
	}

	return jsonResult(req.Params.URI, evaluations)
}

// handleEvaluationResource returns one evaluation by ID.
func (s *Server) handleEvaluationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractEvaluationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	evaluation, err := s.ports.History.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting evaluation: %w", err)
	}

	return jsonResult(req.Params.URI, evaluation)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractEvaluationID extracts the ID from a URI like drills://history/{evaluationId}.
func extractEvaluationID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
