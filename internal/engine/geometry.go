// Package engine implements the panel layout and space-allocation engine:
// geometry primitives, the occupancy-grid gap finder, the placement solver,
// the whole-layout optimizer, metrics, validation, and the portable layout
// serializer. Every operation is a pure function over the records it is
// given; the engine owns no state between calls.
package engine

import (
	"math"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// Overlaps reports whether two rectangles overlap with non-zero area.
// Rectangles that only touch at an edge or corner do not overlap.
func Overlaps(a, b model.Bounds) bool {
	return a.X < b.X+b.Width && a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
}

// PaddedBounds returns the usable rectangle of a container after subtracting
// a uniform inset on each of the four sides.
func PaddedBounds(container model.Size, padding float64) model.Bounds {
	return model.Bounds{
		X:      padding,
		Y:      padding,
		Width:  container.Width - 2*padding,
		Height: container.Height - 2*padding,
	}
}

// ConstrainPosition clamps pos so the rectangle [pos, pos+size] lies fully
// inside bounds. When size exceeds bounds the result sticks to the bounds
// origin; correcting the size is ConstrainSize's job.
func ConstrainPosition(pos model.Position, size model.Size, bounds model.Bounds) model.Position {
	maxX := bounds.X + bounds.Width - size.Width
	maxY := bounds.Y + bounds.Height - size.Height
	return model.Position{
		X: math.Max(bounds.X, math.Min(pos.X, maxX)),
		Y: math.Max(bounds.Y, math.Min(pos.Y, maxY)),
	}
}

// ConstrainSize raises size to at least minSize, caps it at maxSize when
// present, and further caps it so the rectangle anchored at pos stays inside
// bounds. Minimums always win over the bounds cap: a panel whose minimum
// exceeds the available room is allowed to extend past the viewport.
func ConstrainSize(size, minSize model.Size, maxSize *model.Size, bounds model.Bounds, pos *model.Position) model.Size {
	w := math.Max(size.Width, minSize.Width)
	h := math.Max(size.Height, minSize.Height)

	if maxSize != nil {
		w = math.Min(w, maxSize.Width)
		h = math.Min(h, maxSize.Height)
	}

	availW := bounds.Width
	availH := bounds.Height
	if pos != nil {
		availW = bounds.X + bounds.Width - pos.X
		availH = bounds.Y + bounds.Height - pos.Y
	}
	w = math.Min(w, availW)
	h = math.Min(h, availH)

	// Minimum wins over the bounds cap
	w = math.Max(w, minSize.Width)
	h = math.Max(h, minSize.Height)

	return model.Size{Width: w, Height: h}
}

// countOverlaps returns the number of overlapping pairs among visible panels.
func countOverlaps(panels []model.PanelLayout) int {
	count := 0
	for i := 0; i < len(panels); i++ {
		if !panels[i].Visible {
			continue
		}
		for j := i + 1; j < len(panels); j++ {
			if !panels[j].Visible {
				continue
			}
			if Overlaps(panels[i].Bounds(), panels[j].Bounds()) {
				count++
			}
		}
	}
	return count
}
