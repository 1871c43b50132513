package engine

import (
	"math"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// Grid resolutions used by the standard callers. The cell size is a tunable
// parameter of CalculateAvailableSpace, not a constant of the algorithm:
// placement queries want fine cells, metrics gap reporting wants coarse ones.
const (
	PlacementGridSize = 20.0
	MetricsGridSize   = 50.0
)

// CalculateAvailableSpace quantizes the container onto a cell grid, marks
// every cell touched by a visible panel as occupied, and enumerates free
// regions with a single-pass greedy maximal-rectangle search.
//
// The search scans cells in row-major order. Each unvisited free cell seeds a
// candidate rectangle grown by trying increasing heights and, per height,
// greedily extending the width while the whole block stays free and
// unvisited; the height/width pair with the greatest area wins and its cells
// are marked visited. The result therefore depends on scan order and is not
// a globally optimal decomposition. Callers rely only on getting a set of
// disjoint, reasonably large free rectangles.
func CalculateAvailableSpace(panels []model.PanelLayout, container model.Size, cellSize float64) model.AvailableSpace {
	space := model.AvailableSpace{Regions: []model.Region{}}
	if cellSize <= 0 || container.Width <= 0 || container.Height <= 0 {
		return space
	}

	cols := int(math.Ceil(container.Width / cellSize))
	rows := int(math.Ceil(container.Height / cellSize))
	if cols <= 0 || rows <= 0 {
		return space
	}

	occupied := make([][]bool, rows)
	visited := make([][]bool, rows)
	for r := range occupied {
		occupied[r] = make([]bool, cols)
		visited[r] = make([]bool, cols)
	}

	// Conservative marking: a cell is occupied if any part of a panel
	// overlaps it.
	for _, p := range panels {
		if !p.Visible {
			continue
		}
		startCol := int(math.Floor(p.Position.X / cellSize))
		endCol := int(math.Ceil((p.Position.X + p.Size.Width) / cellSize))
		startRow := int(math.Floor(p.Position.Y / cellSize))
		endRow := int(math.Ceil((p.Position.Y + p.Size.Height) / cellSize))

		startCol = clampIndex(startCol, 0, cols)
		endCol = clampIndex(endCol, 0, cols)
		startRow = clampIndex(startRow, 0, rows)
		endRow = clampIndex(endRow, 0, rows)

		for r := startRow; r < endRow; r++ {
			for c := startCol; c < endCol; c++ {
				occupied[r][c] = true
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if occupied[r][c] || visited[r][c] {
				continue
			}

			bestW, bestH := 0, 0
			bestArea := 0
			for h := 1; r+h <= rows; h++ {
				w := 0
				for c+w < cols && blockFree(occupied, visited, r, c+w, h) {
					w++
				}
				if w == 0 {
					break
				}
				if w*h > bestArea {
					bestArea = w * h
					bestW, bestH = w, h
				}
			}
			if bestArea == 0 {
				continue
			}

			for dr := 0; dr < bestH; dr++ {
				for dc := 0; dc < bestW; dc++ {
					visited[r+dr][c+dc] = true
				}
			}

			region := model.Region{
				X:      float64(c) * cellSize,
				Y:      float64(r) * cellSize,
				Width:  float64(bestW) * cellSize,
				Height: float64(bestH) * cellSize,
			}
			region.Area = region.Width * region.Height
			space.Regions = append(space.Regions, region)
			space.TotalArea += region.Area
		}
	}

	for i := range space.Regions {
		if space.LargestRegion == nil || space.Regions[i].Area > space.LargestRegion.Area {
			space.LargestRegion = &space.Regions[i]
		}
	}
	return space
}

// blockFree reports whether the column of cells at col spanning rows
// row..row+height-1 is entirely unoccupied and unvisited.
func blockFree(occupied, visited [][]bool, row, col, height int) bool {
	for r := row; r < row+height; r++ {
		if occupied[r][col] || visited[r][col] {
			return false
		}
	}
	return true
}

func clampIndex(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
