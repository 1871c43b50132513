package engine

import "github.com/piwi3910/PanelGrid/internal/model"

// Cascade fallback tuning. The attempt budget grows with the number of
// existing panels so a crowded layout gets a longer diagonal probe, but the
// search always terminates; the terminal fallback may overlap.
const (
	cascadeBaseOffset = 40.0
	cascadeStep       = 40.0
)

// FindOptimalPosition picks a position for a panel of the given size inside
// the padded container.
//
// Without AvoidOverlap the result is one of the five deterministic alignments
// relative to the padded bounds. With AvoidOverlap the solver consults the
// gap finder: the largest free region when PreferLargestSpace is set and it
// fits, otherwise the greatest-area region that fits, otherwise a diagonal
// cascade of candidate positions. If no candidate is collision-free within
// the attempt budget, the base position clamped into bounds is returned as a
// best effort; overlap is not guaranteed avoided in that terminal case.
func FindOptimalPosition(size model.Size, existing []model.PanelLayout, container model.Size, padding float64, opts model.PlacementOptions) model.Position {
	bounds := PaddedBounds(container, padding)

	if !opts.AvoidOverlap {
		return alignPosition(size, bounds, opts.Alignment)
	}

	space := CalculateAvailableSpace(existing, container, PlacementGridSize)

	if opts.PreferLargestSpace && space.LargestRegion != nil && regionFits(*space.LargestRegion, size) {
		return alignInRegion(size, *space.LargestRegion, opts.Alignment)
	}

	var best *model.Region
	for i := range space.Regions {
		if !regionFits(space.Regions[i], size) {
			continue
		}
		if best == nil || space.Regions[i].Area > best.Area {
			best = &space.Regions[i]
		}
	}
	if best != nil {
		return alignInRegion(size, *best, opts.Alignment)
	}

	return cascadePosition(size, existing, bounds)
}

// alignPosition places the requested rectangle flush with the corresponding
// edge(s) of bounds, or centered within them.
func alignPosition(size model.Size, bounds model.Bounds, alignment model.Alignment) model.Position {
	switch alignment {
	case model.AlignTopRight:
		return model.Position{X: bounds.X + bounds.Width - size.Width, Y: bounds.Y}
	case model.AlignBottomLeft:
		return model.Position{X: bounds.X, Y: bounds.Y + bounds.Height - size.Height}
	case model.AlignBottomRight:
		return model.Position{
			X: bounds.X + bounds.Width - size.Width,
			Y: bounds.Y + bounds.Height - size.Height,
		}
	case model.AlignCenter:
		return model.Position{
			X: bounds.X + (bounds.Width-size.Width)/2,
			Y: bounds.Y + (bounds.Height-size.Height)/2,
		}
	default: // top-left
		return model.Position{X: bounds.X, Y: bounds.Y}
	}
}

func alignInRegion(size model.Size, region model.Region, alignment model.Alignment) model.Position {
	bounds := model.Bounds{X: region.X, Y: region.Y, Width: region.Width, Height: region.Height}
	return alignPosition(size, bounds, alignment)
}

func regionFits(region model.Region, size model.Size) bool {
	return region.Width >= size.Width && region.Height >= size.Height
}

// cascadePosition probes diagonally stepped candidates from a fixed base
// offset, accepting the first one that stays inside bounds and overlaps no
// existing panel.
func cascadePosition(size model.Size, existing []model.PanelLayout, bounds model.Bounds) model.Position {
	base := model.Position{X: bounds.X + cascadeBaseOffset, Y: bounds.Y + cascadeBaseOffset}
	attempts := 2*len(existing) + 5

	for i := 0; i < attempts; i++ {
		cand := model.Position{
			X: base.X + float64(i)*cascadeStep,
			Y: base.Y + float64(i)*cascadeStep,
		}
		rect := model.Bounds{X: cand.X, Y: cand.Y, Width: size.Width, Height: size.Height}
		if rect.X < bounds.X || rect.Y < bounds.Y ||
			rect.Right() > bounds.Right() || rect.Bottom() > bounds.Bottom() {
			break
		}
		if !overlapsAny(rect, existing) {
			return cand
		}
	}
	return ConstrainPosition(base, size, bounds)
}

func overlapsAny(rect model.Bounds, panels []model.PanelLayout) bool {
	for _, p := range panels {
		if !p.Visible {
			continue
		}
		if Overlaps(rect, p.Bounds()) {
			return true
		}
	}
	return false
}
