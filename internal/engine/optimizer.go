package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// OptimizeLayout repositions, sorts, and compacts a whole panel set according
// to the given options. The input slice is never mutated; a new slice of
// adjusted copies is returned.
//
// Repositioning feeds previously placed panels back in as obstacles, so the
// obstacle set grows incrementally in sort order. Compaction likewise judges
// each candidate move against the current state of all other panels, some of
// which may already have moved in the same pass. Both passes are
// order-dependent heuristics, not global optimizers.
//
// When MinimizeOverlaps is set the result is guaranteed not to have more
// overlapping pairs than the input: if the rearrangement would make things
// worse (the cascade fallback can stack panels), the input arrangement is
// returned unchanged.
func OptimizeLayout(panels []model.PanelLayout, opts model.OptimizationOptions) []model.PanelLayout {
	result := make([]model.PanelLayout, len(panels))
	copy(result, panels)
	if len(result) == 0 {
		return result
	}

	sortPanels(result, opts.SortBy)

	if !opts.PreserveRelativePositions {
		placed := make([]model.PanelLayout, 0, len(result))
		for i := range result {
			pos := FindOptimalPosition(result[i].Size, placed, opts.ContainerSize, opts.Padding, model.PlacementOptions{
				Alignment:          model.AlignTopLeft,
				AvoidOverlap:       opts.MinimizeOverlaps,
				PreferLargestSpace: true,
			})
			result[i].Position = pos
			placed = append(placed, result[i])
		}
	}

	if opts.SnapToGrid && opts.GridSize > 0 {
		for i := range result {
			result[i].Position = snapToGrid(result[i].Position, opts.GridSize)
		}
	}

	if opts.Compact {
		compactPanels(result, opts)
	}

	if opts.MinimizeOverlaps && countOverlaps(result) > countOverlaps(panels) {
		original := make([]model.PanelLayout, len(panels))
		copy(original, panels)
		return original
	}
	return result
}

// sortPanels orders panels in place: by descending area or by title.
func sortPanels(panels []model.PanelLayout, key model.SortKey) {
	switch key {
	case model.SortArea:
		sort.SliceStable(panels, func(i, j int) bool {
			return panels[i].Size.Area() > panels[j].Size.Area()
		})
	case model.SortTitle:
		sort.SliceStable(panels, func(i, j int) bool {
			return panels[i].Title() < panels[j].Title()
		})
	}
}

func snapToGrid(pos model.Position, grid float64) model.Position {
	return model.Position{
		X: math.Round(pos.X/grid) * grid,
		Y: math.Round(pos.Y/grid) * grid,
	}
}

// compactPanels nudges each panel toward the viewport origin. For every panel
// it sweeps a coarse grid of candidates between the padding origin and the
// panel's current position, keeps the candidate closest to the origin in
// Euclidean distance, and accepts a move only if it overlaps no other panel
// in the current state. Later panels see earlier panels' already-moved
// positions.
func compactPanels(panels []model.PanelLayout, opts model.OptimizationOptions) {
	step := opts.GridSize
	if step < 10 {
		step = 10
	}
	origin := model.Position{X: opts.Padding, Y: opts.Padding}

	for i := range panels {
		if !panels[i].Visible {
			continue
		}
		best := panels[i].Position
		bestDist := distance(best, origin)

		for y := opts.Padding; y <= panels[i].Position.Y; y += step {
			for x := opts.Padding; x <= panels[i].Position.X; x += step {
				cand := model.Bounds{X: x, Y: y, Width: panels[i].Size.Width, Height: panels[i].Size.Height}
				if cand.Right() > opts.ContainerSize.Width-opts.Padding ||
					cand.Bottom() > opts.ContainerSize.Height-opts.Padding {
					continue
				}
				if overlapsOther(cand, panels, i) {
					continue
				}
				d := distance(model.Position{X: x, Y: y}, origin)
				if d < bestDist {
					bestDist = d
					best = model.Position{X: x, Y: y}
				}
			}
		}
		panels[i].Position = best
	}
}

func overlapsOther(rect model.Bounds, panels []model.PanelLayout, skip int) bool {
	for j := range panels {
		if j == skip || !panels[j].Visible {
			continue
		}
		if Overlaps(rect, panels[j].Bounds()) {
			return true
		}
	}
	return false
}

func distance(a, b model.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
