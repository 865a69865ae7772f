package model

import "math"

// Point represents a 2D point in page-pixel space (top-left origin)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Region represents a rectangle in page-pixel space (top-left origin)
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRegion creates a region from coordinates
func NewRegion(x, y, width, height float64) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r Region) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Region) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Region) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Region) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point
func (r Region) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point lies inside the region. Edges are
// inclusive, so a point exactly on the boundary is inside.
func (r Region) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects checks if two regions overlap
func (r Region) Intersects(other Region) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Bottom() < other.Top() ||
		r.Top() > other.Bottom())
}

// Intersection returns the overlapping rectangle of two regions,
// or the zero Region if they do not overlap
func (r Region) Intersection(other Region) Region {
	if !r.Intersects(other) {
		return Region{}
	}

	x := math.Max(r.Left(), other.Left())
	y := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	return Region{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the smallest region covering both regions
func (r Region) Union(other Region) Region {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Region{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Area returns the area of the region
func (r Region) Area() float64 {
	return r.Width * r.Height
}

// IsValid returns true if the region has positive dimensions
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}
