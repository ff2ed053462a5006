package grid

import "iter"

// Grid is a fixed-size board holding one T per position.
// Cells are stored in row-major order: index = y*W + x.
type Grid[T any] struct {
	size  Size
	cells []T
}

// New creates a grid of the given size with every cell set to def.
func New[T any](size Size, def T) (*Grid[T], error) {
	if _, err := NewSize(size.W, size.H); err != nil {
		return nil, err
	}
	cells := make([]T, size.Cells())
	for i := range cells {
		cells[i] = def
	}
	return &Grid[T]{size: size, cells: cells}, nil
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size {
	return g.size
}

// Len returns the number of cells, always W*H.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Contains reports whether p lies on the grid.
func (g *Grid[T]) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.size.W && p.Y >= 0 && p.Y < g.size.H
}

// Index converts p to its flat index.
func (g *Grid[T]) Index(p Position) (int, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return p.Y*g.size.W + p.X, true
}

// PositionOf converts a flat index back to a position.
func (g *Grid[T]) PositionOf(i int) Position {
	return Position{X: i % g.size.W, Y: i / g.size.W}
}

// Get returns the cell at p. Out-of-range positions yield the zero value and false.
func (g *Grid[T]) Get(p Position) (T, bool) {
	i, ok := g.Index(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// Ref returns a pointer to the cell at p, or nil if p is off the grid.
func (g *Grid[T]) Ref(p Position) *T {
	i, ok := g.Index(p)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// Set stores v at p. Returns false if p is off the grid.
func (g *Grid[T]) Set(p Position, v T) bool {
	i, ok := g.Index(p)
	if !ok {
		return false
	}
	g.cells[i] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// All yields every position with its cell. Callers must not rely on the order.
func (g *Grid[T]) All() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for i, c := range g.cells {
			if !yield(g.PositionOf(i), c) {
				return
			}
		}
	}
}

// Count returns how many cells satisfy match.
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, c := range g.cells {
		if match(c) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and equal cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.size != b.size {
		return false
	}
	for i, c := range a.cells {
		if c != b.cells[i] {
			return false
		}
	}
	return true
}
