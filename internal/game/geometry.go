package game

import "math"

// Search map cells are the granularity used by line of sight checks.
const (
	SearchMapCellWidth  = 16
	SearchMapCellHeight = 12
)

// Point is a position in area pixel coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SearchMapPoint returns the search map cell containing p.
func (p Point) SearchMapPoint() Point {
	return Point{X: p.X / SearchMapCellWidth, Y: p.Y / SearchMapCellHeight}
}

// Rect is an axis aligned rectangle in area pixel coordinates.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Valid reports whether the rectangle has a positive area.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// IsInObjectRect reports whether pos is inside rect. An invalid rect does not
// constrain anything.
func IsInObjectRect(pos Point, rect Rect) bool {
	if !rect.Valid() {
		return true
	}
	return rect.Contains(pos)
}

// SquaredDistance is the squared euclidean distance between a and b.
func SquaredDistance(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance is the euclidean distance between a and b, truncated.
func Distance(a, b Point) int {
	return int(math.Sqrt(float64(SquaredDistance(a, b))))
}

// WithinRange reports whether pos is at most rng pixels away from s.
func WithinRange(s Scriptable, pos Point, rng int) bool {
	return SquaredDistance(s.Position(), pos) <= rng*rng
}
