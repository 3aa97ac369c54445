package model

import "math"

// Location represents grid coordinates (row, col).
// Value type, passed by value (immutable). Equality is structural.
type Location struct {
	Row int
	Col int
}

// NewLocation creates a Location with the given coordinates.
func NewLocation(row, col int) Location {
	return Location{Row: row, Col: col}
}

// Offset returns a new Location shifted by (dRow, dCol).
func (l Location) Offset(dRow, dCol int) Location {
	return Location{Row: l.Row + dRow, Col: l.Col + dCol}
}

// Distance returns the euclidean distance to another location.
func (l Location) Distance(other Location) float64 {
	dr := float64(l.Row - other.Row)
	dc := float64(l.Col - other.Col)
	return math.Sqrt(dr*dr + dc*dc)
}
