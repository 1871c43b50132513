package engine

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// ExportVersion is written into every exported layout document.
const ExportVersion = "1.0.0"

// ExportMetadata describes an exported layout document.
type ExportMetadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	PanelCount  int      `json:"panelCount"`
}

// ExportedPanel is one panel entry in a layout document. Fields are carried
// verbatim from the PanelLayout so downstream storage round-trips them
// byte-for-byte.
type ExportedPanel struct {
	ID          string               `json:"id"`
	Component   string               `json:"component"`
	Position    model.Position       `json:"position"`
	Size        model.Size           `json:"size"`
	ZIndex      int                  `json:"zIndex"`
	Visible     bool                 `json:"visible"`
	Constraints model.Constraints    `json:"constraints"`
	Metadata    *model.PanelMetadata `json:"metadata,omitempty"`
}

// LayoutExport is the versioned portable layout document.
type LayoutExport struct {
	Version   string          `json:"version"`
	Timestamp string          `json:"timestamp"`
	Metadata  ExportMetadata  `json:"metadata"`
	Panels    []ExportedPanel `json:"panels"`
}

// ImportResult is the discriminated outcome of ImportLayout. A failed import
// sets Error and leaves Panels nil; it never panics or throws.
type ImportResult struct {
	Success  bool                `json:"success"`
	Panels   []model.PanelLayout `json:"panels,omitempty"`
	Skipped  int                 `json:"skipped"` // malformed entries dropped during lenient recovery
	Metadata *ExportMetadata     `json:"metadata,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// ExportLayout builds a portable layout document from a panel set. Panel
// fields are preserved verbatim; meta may be nil.
func ExportLayout(panels []model.PanelLayout, meta *ExportMetadata) LayoutExport {
	doc := LayoutExport{
		Version:   ExportVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Panels:    make([]ExportedPanel, 0, len(panels)),
	}
	if meta != nil {
		doc.Metadata = *meta
	}
	if doc.Metadata.Name == "" {
		doc.Metadata.Name = "Untitled layout"
	}
	if doc.Metadata.Tags == nil {
		doc.Metadata.Tags = []string{}
	}
	doc.Metadata.PanelCount = len(panels)

	for _, p := range panels {
		doc.Panels = append(doc.Panels, ExportedPanel{
			ID:          p.ID,
			Component:   p.Component,
			Position:    p.Position,
			Size:        p.Size,
			ZIndex:      p.ZIndex,
			Visible:     p.Visible,
			Constraints: p.Constraints,
			Metadata:    p.Metadata,
		})
	}
	return doc
}

// importedPanel mirrors ExportedPanel with pointer fields so missing keys can
// be told apart from zero values.
type importedPanel struct {
	ID          *string              `json:"id"`
	Component   *string              `json:"component"`
	Position    *model.Position      `json:"position"`
	Size        *model.Size          `json:"size"`
	ZIndex      *int                 `json:"zIndex"`
	Visible     *bool                `json:"visible"`
	Constraints *model.Constraints   `json:"constraints"`
	Metadata    *model.PanelMetadata `json:"metadata"`
}

// ImportLayout parses a layout document. A missing or non-list panels field
// fails the whole import. Individual entries missing component, position, or
// size are silently discarded (lenient recovery for partially corrupt
// documents); the Skipped count is the only signal that data was dropped.
// Omitted optional fields get defaults: a generated id, zIndex 100, visible
// true, and a 200x150 minimum size.
func ImportLayout(data []byte) ImportResult {
	var raw struct {
		Version  string          `json:"version"`
		Metadata *ExportMetadata `json:"metadata"`
		Panels   json.RawMessage `json:"panels"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{Error: "invalid layout data: " + err.Error()}
	}
	if len(raw.Panels) == 0 {
		return ImportResult{Error: "layout data has no panels field"}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw.Panels, &entries); err != nil {
		return ImportResult{Error: "panels field is not a list"}
	}

	result := ImportResult{
		Success:  true,
		Panels:   []model.PanelLayout{},
		Metadata: raw.Metadata,
	}
	for _, entry := range entries {
		var ip importedPanel
		if err := json.Unmarshal(entry, &ip); err != nil {
			result.Skipped++
			continue
		}
		if ip.Component == nil || ip.Position == nil || ip.Size == nil {
			result.Skipped++
			continue
		}

		panel := model.PanelLayout{
			Component: *ip.Component,
			Position:  *ip.Position,
			Size:      *ip.Size,
			ZIndex:    model.DefaultZIndex,
			Visible:   true,
			Constraints: model.Constraints{
				MinSize: model.Size{Width: model.DefaultMinWidth, Height: model.DefaultMinHeight},
			},
			Metadata: ip.Metadata,
		}
		if ip.ID != nil && *ip.ID != "" {
			panel.ID = *ip.ID
		} else {
			panel.ID = uuid.New().String()[:8]
		}
		if ip.ZIndex != nil {
			panel.ZIndex = *ip.ZIndex
		}
		if ip.Visible != nil {
			panel.Visible = *ip.Visible
		}
		if ip.Constraints != nil {
			panel.Constraints = *ip.Constraints
			if panel.Constraints.MinSize.IsZero() {
				panel.Constraints.MinSize = model.Size{Width: model.DefaultMinWidth, Height: model.DefaultMinHeight}
			}
		}
		result.Panels = append(result.Panels, panel)
	}
	return result
}
