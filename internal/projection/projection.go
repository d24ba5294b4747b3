// Package projection maps geographic coordinates onto a fixed pixel
// viewport with an affine per-axis transform. The covered area is small
// enough that a real map projection would add nothing visible; the
// calibration only has to agree with the artwork drawn underneath.
package projection

import (
	"fmt"

	"skireis/internal/types"
)

// Bounds is the geographic rectangle the viewport covers, in decimal
// degrees.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Viewport is the output rectangle in pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Projector transforms coordinates within Bounds onto Viewport. Bounds and
// Viewport are calibrated together against the displayed artwork; changing
// one without the other desyncs markers from the drawn coastline.
type Projector struct {
	bounds   Bounds
	viewport Viewport
}

// NewProjector validates the calibration pair and returns a projector.
func NewProjector(bounds Bounds, viewport Viewport) (Projector, error) {
	if bounds.North <= bounds.South {
		return Projector{}, fmt.Errorf("invalid bounds: north (%v) must exceed south (%v)", bounds.North, bounds.South)
	}
	if bounds.East <= bounds.West {
		return Projector{}, fmt.Errorf("invalid bounds: east (%v) must exceed west (%v)", bounds.East, bounds.West)
	}
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return Projector{}, fmt.Errorf("invalid viewport: %vx%v", viewport.Width, viewport.Height)
	}
	return Projector{bounds: bounds, viewport: viewport}, nil
}

// Viewport returns the configured output rectangle.
func (p Projector) Viewport() Viewport {
	return p.viewport
}

// Project maps a coordinate to pixel x/y. Longitude grows to the right,
// latitude grows upward so y is inverted. Coordinates outside the bounds
// project outside the viewport; they are not clamped, since places near
// the edges should still render even if they fall off the artwork.
func (p Projector) Project(c types.Coords) (x, y float64) {
	x = (c.Longitude - p.bounds.West) / (p.bounds.East - p.bounds.West) * p.viewport.Width
	y = (p.bounds.North - c.Latitude) / (p.bounds.North - p.bounds.South) * p.viewport.Height
	return x, y
}
