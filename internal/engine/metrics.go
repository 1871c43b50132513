package engine

import (
	"math"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// Gaps smaller than this many grid cells of area are noise, not usable space.
const gapCellThreshold = 4

// CalculateLayoutMetrics computes an aggregate snapshot of a panel set inside
// the given container: area accounting, utilization, density, the exhaustive
// pairwise overlap count (panel counts are tens, not thousands), bounding
// box, centroid, and a coarse gap list. Hidden panels are excluded; metrics
// describe what is on screen.
func CalculateLayoutMetrics(panels []model.PanelLayout, container model.Size) model.LayoutMetrics {
	m := model.LayoutMetrics{
		TotalArea: container.Area(),
		Gaps:      []model.Region{},
	}

	visible := make([]model.PanelLayout, 0, len(panels))
	for _, p := range panels {
		if p.Visible {
			visible = append(visible, p)
		}
	}
	m.PanelCount = len(visible)
	if m.TotalArea > 0 {
		m.Density = float64(m.PanelCount) / m.TotalArea * 10000
	}

	if len(visible) == 0 {
		m.FreeArea = m.TotalArea
		return m
	}

	var sumW, sumH, sumCX, sumCY float64
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range visible {
		m.UsedArea += p.Size.Area()
		sumW += p.Size.Width
		sumH += p.Size.Height
		c := p.Center()
		sumCX += c.X
		sumCY += c.Y
		b := p.Bounds()
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Bottom())
	}

	n := float64(len(visible))
	m.FreeArea = m.TotalArea - m.UsedArea
	if m.TotalArea > 0 {
		m.Utilization = m.UsedArea / m.TotalArea * 100
	}
	m.AverageSize = model.Size{Width: sumW / n, Height: sumH / n}
	m.Centroid = model.Position{X: sumCX / n, Y: sumCY / n}
	m.BoundingBox = model.Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	m.OverlapCount = countOverlaps(visible)

	minGapArea := float64(gapCellThreshold) * MetricsGridSize * MetricsGridSize
	space := CalculateAvailableSpace(visible, container, MetricsGridSize)
	for _, region := range space.Regions {
		if region.Area > minGapArea {
			m.Gaps = append(m.Gaps, region)
		}
	}
	return m
}
