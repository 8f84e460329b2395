package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/calendlam/calendlam/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for calendlam resources.
	uriScheme = "calendlam://"

	// historyLimit caps the layouts listed by the history resource.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current booklet settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "layouts",
		Name:        "layouts",
		Description: "Recently generated booklet layouts",
		MIMEType:    "application/json",
	}, s.handleLayoutsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "layouts/{layoutId}",
		Name:        "layout",
		Description: "A stored booklet layout with its print order",
		MIMEType:    "application/json",
	}, s.handleLayoutResource)
}

type settingsInfo struct {
	Year              int    `json:"year"`
	PagesPerSignature int    `json:"pages_per_signature"`
	FirstWeekday      string `json:"first_weekday"`
	WeekMode          string `json:"week_mode"`
	Labels            string `json:"labels"`
	PrimaryLocale     string `json:"primary_locale"`
	SecondaryLocale   string `json:"secondary_locale"`
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.settings()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	return jsonResult(req.Params.URI, settingsInfo{
		Year:              settings.Year,
		PagesPerSignature: settings.PagesPerSignature,
		FirstWeekday:      strings.ToLower(settings.FirstWeekday.String()),
		WeekMode:          settings.WeekMode.String(),
		Labels:            settings.Labels.String(),
		PrimaryLocale:     settings.PrimaryLocale,
		SecondaryLocale:   settings.SecondaryLocale,
	})
}

type layoutInfo struct {
	ID                string `json:"id"`
	Year              int    `json:"year"`
	PagesPerSignature int    `json:"pages_per_signature"`
	ContentPages      int    `json:"content_pages"`
	BlankPages        int    `json:"blank_pages"`
	Signatures        int    `json:"signatures"`
	Sheets            int    `json:"sheets"`
	CreatedAt         string `json:"created_at"`
	PrintOrder        []int  `json:"print_order,omitempty"`
}

func newLayoutInfo(l domain.Layout, withOrder bool) layoutInfo {
	info := layoutInfo{
		ID:                l.ID,
		Year:              l.Year,
		PagesPerSignature: l.PagesPerSignature,
		ContentPages:      l.ContentPages,
		BlankPages:        l.BlankPages,
		Signatures:        l.Signatures,
		Sheets:            l.Sheets,
		CreatedAt:         l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if withOrder {
		info.PrintOrder = l.PrintOrder
	}
	return info
}

// handleLayoutsResource returns recently stored layouts without print order.
func (s *Server) handleLayoutsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	layouts, err := s.ports.Booklet.History(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}

	infos := make([]layoutInfo, len(layouts))
	for i, l := range layouts {
		infos[i] = newLayoutInfo(l, false)
	}
	return jsonResult(req.Params.URI, infos)
}

// handleLayoutResource returns one stored layout.
func (s *Server) handleLayoutResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractLayoutID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	layout, err := s.ports.Booklet.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting layout: %w", err)
	}
	return jsonResult(req.Params.URI, newLayoutInfo(*layout, true))
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

// extractLayoutID extracts the layout ID from a URI like calendlam://layouts/{layoutId}.
func extractLayoutID(uri string) string {
	const prefix = uriScheme + "layouts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
