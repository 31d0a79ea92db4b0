package domain

import "sort"

// VisibleSet is the result of one FOV computation. Each call allocates a fresh set
// owned by the caller.
type VisibleSet map[Position]struct{}

// NewVisibleSet preallocates for roughly capacity cells.
func NewVisibleSet(capacity int) VisibleSet {
	return make(VisibleSet, capacity)
}

func (s VisibleSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s VisibleSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s VisibleSet) Len() int {
	return len(s)
}

// Positions returns the members sorted row-major (y, then x).
func (s VisibleSet) Positions() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Equal reports whether both sets hold the same positions.
func (s VisibleSet) Equal(other VisibleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
