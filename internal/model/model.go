package model

import "github.com/google/uuid"

// Position is the top-left corner of a panel in viewport units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size holds panel dimensions in viewport units. Zero width or height denotes
// a degenerate panel and is never produced by an engine operation.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width times height.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// IsZero reports whether either dimension is missing.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Bounds is an axis-aligned rectangle. It doubles as the usable viewport
// rectangle after padding and as the rectangle occupied by a panel.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x-coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.Height
}

// Constraints restricts how a panel may be sized and positioned. The engine
// never mutates a panel's own constraints; it only adjusts position and size
// when explicitly asked to.
type Constraints struct {
	MinSize        Size    `json:"minSize"`
	MaxSize        *Size   `json:"maxSize,omitempty"`
	PositionBounds *Bounds `json:"positionBounds,omitempty"`
}

// PanelMetadata carries display information the engine passes through verbatim.
type PanelMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// PanelLayout describes one panel: where it sits, how big it is, and what may
// be done to it. The ID is the only identity a panel has; the engine owns no
// state beyond the records a caller passes in.
type PanelLayout struct {
	ID          string         `json:"id"`
	Component   string         `json:"component"` // panel kind: "bookmarks", "chat", "tasks", "timer", ...
	Position    Position       `json:"position"`
	Size        Size           `json:"size"`
	ZIndex      int            `json:"zIndex"`
	Visible     bool           `json:"visible"`
	Constraints Constraints    `json:"constraints"`
	Metadata    *PanelMetadata `json:"metadata,omitempty"`
}

// Default values applied to new and imported panels.
const (
	DefaultZIndex    = 100
	DefaultMinWidth  = 200.0
	DefaultMinHeight = 150.0
)

// NewPanel creates a visible panel of the given component kind at the origin.
func NewPanel(component, title string, w, h float64) PanelLayout {
	return PanelLayout{
		ID:        uuid.New().String()[:8],
		Component: component,
		Size:      Size{Width: w, Height: h},
		ZIndex:    DefaultZIndex,
		Visible:   true,
		Constraints: Constraints{
			MinSize: Size{Width: DefaultMinWidth, Height: DefaultMinHeight},
		},
		Metadata: &PanelMetadata{Title: title},
	}
}

// Bounds returns the rectangle the panel occupies.
func (p PanelLayout) Bounds() Bounds {
	return Bounds{X: p.Position.X, Y: p.Position.Y, Width: p.Size.Width, Height: p.Size.Height}
}

// Center returns the midpoint of the panel rectangle.
func (p PanelLayout) Center() Position {
	return Position{X: p.Position.X + p.Size.Width/2, Y: p.Position.Y + p.Size.Height/2}
}

// Title returns the metadata title, falling back to the component kind.
func (p PanelLayout) Title() string {
	if p.Metadata != nil && p.Metadata.Title != "" {
		return p.Metadata.Title
	}
	return p.Component
}

// Region is a free rectangle found by the gap finder.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`
}

// AvailableSpace is a decomposition of free viewport space into disjoint
// rectangles at a given grid resolution. The decomposition is a greedy
// heuristic and depends on scan order; callers rely only on the regions being
// disjoint and reasonably large, not on optimality.
type AvailableSpace struct {
	Regions       []Region `json:"regions"`
	TotalArea     float64  `json:"totalArea"`
	LargestRegion *Region  `json:"largestRegion,omitempty"`
}

// LayoutMetrics is a read-only snapshot recomputed on demand from a panel set.
type LayoutMetrics struct {
	TotalArea    float64  `json:"totalArea"`
	UsedArea     float64  `json:"usedArea"`
	FreeArea     float64  `json:"freeArea"`
	Utilization  float64  `json:"utilization"` // percent of viewport covered by panels
	PanelCount   int      `json:"panelCount"`
	AverageSize  Size     `json:"averageSize"`
	Density      float64  `json:"density"` // panels per 10,000 area units
	OverlapCount int      `json:"overlapCount"`
	BoundingBox  Bounds   `json:"boundingBox"`
	Centroid     Position `json:"centroid"`
	Gaps         []Region `json:"gaps"`
}

// Alignment selects one of the five deterministic placement formulas.
type Alignment string

const (
	AlignTopLeft     Alignment = "top-left"
	AlignTopRight    Alignment = "top-right"
	AlignBottomLeft  Alignment = "bottom-left"
	AlignBottomRight Alignment = "bottom-right"
	AlignCenter      Alignment = "center"
)

// PlacementOptions steers a single placement query.
type PlacementOptions struct {
	Alignment          Alignment `json:"alignment"`
	AvoidOverlap       bool      `json:"avoidOverlap"`
	PreferLargestSpace bool      `json:"preferLargestSpace"`
}

// SortKey selects the panel ordering used before repositioning.
type SortKey string

const (
	SortNone  SortKey = ""
	SortArea  SortKey = "area"  // descending area, largest first
	SortTitle SortKey = "title" // lexicographic by title
)

// OptimizationOptions configures a single OptimizeLayout call. The record is
// never mutated by the engine.
type OptimizationOptions struct {
	ContainerSize             Size    `json:"containerSize"`
	GridSize                  float64 `json:"gridSize"`
	Padding                   float64 `json:"padding"`
	PreserveRelativePositions bool    `json:"preserveRelativePositions"`
	MinimizeOverlaps          bool    `json:"minimizeOverlaps"`
	Compact                   bool    `json:"compact"`
	SnapToGrid                bool    `json:"snapToGrid"`
	SortBy                    SortKey `json:"sortBy"`
}

// DefaultOptions returns the optimization settings the shell uses when the
// user asks for an automatic cleanup.
func DefaultOptions(container Size) OptimizationOptions {
	return OptimizationOptions{
		ContainerSize:    container,
		GridSize:         20,
		Padding:          20,
		MinimizeOverlaps: true,
		Compact:          true,
		SortBy:           SortArea,
	}
}
