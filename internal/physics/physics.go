// Package physics provides the coordinate, grid and collision utilities the
// entities are built on.
package physics

// Position is a point in canvas pixels.
type Position struct {
	X, Y float64
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// IsColliding reports whether a and b are closer than the hit distance for
// radius. The threshold is 2*radius², a deliberately tighter hit box than the
// circle overlap test (2*radius)²; gameplay is tuned around it.
func IsColliding(a, b Position, radius float64) bool {
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < 2*radius*radius
}
