package grid

import "iter"

// Ray walks a grid from a start position along one direction.
// It is single-pass: once it steps off the grid it stays exhausted.
type Ray[T any] struct {
	grid *Grid[T]
	pos  Position
	dir  Direction
	step int
	done bool
}

// Ray starts a one-cell-per-step scan from (but not including) from.
func (g *Grid[T]) Ray(from Position, dir Direction) *Ray[T] {
	return g.RayStep(from, dir, 1)
}

// RayStep starts a scan advancing step cells at a time. Steps below 1 are treated as 1.
func (g *Grid[T]) RayStep(from Position, dir Direction, step int) *Ray[T] {
	if step < 1 {
		step = 1
	}
	return &Ray[T]{grid: g, pos: from, dir: dir, step: step}
}

// advance moves the cursor and returns the new cell index.
func (r *Ray[T]) advance() (int, bool) {
	if r.done {
		return 0, false
	}
	r.pos = r.pos.Step(r.dir, r.step)
	i, ok := r.grid.Index(r.pos)
	if !ok {
		r.done = true
		return 0, false
	}
	return i, true
}

// Next returns the next position and a copy of its cell.
func (r *Ray[T]) Next() (Position, T, bool) {
	i, ok := r.advance()
	if !ok {
		var zero T
		return r.pos, zero, false
	}
	return r.pos, r.grid.cells[i], true
}

// NextRef returns the next position and a pointer to its cell for writing.
// Each call yields a distinct cell since a straight ray never revisits one.
func (r *Ray[T]) NextRef() (Position, *T, bool) {
	i, ok := r.advance()
	if !ok {
		return r.pos, nil, false
	}
	return r.pos, &r.grid.cells[i], true
}

// Seq exposes the remaining read-only scan as an iterator.
func (r *Ray[T]) Seq() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		for {
			p, c, ok := r.Next()
			if !ok || !yield(p, c) {
				return
			}
		}
	}
}
