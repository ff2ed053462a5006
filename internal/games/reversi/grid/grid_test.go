package grid

import (
	"errors"
	"testing"
)

func TestNewSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
		axis    Axis
	}{
		{"square", 8, 8, false, 0},
		{"wide", 10, 1, false, 0},
		{"zero width", 0, 8, true, AxisX},
		{"zero height", 8, 0, true, AxisY},
		{"both zero", 0, 0, true, AxisX},
		{"negative", -2, 4, true, AxisX},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSize(tc.w, tc.h)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("NewSize(%d, %d) failed: %v", tc.w, tc.h, err)
				}
				if s.Cells() != tc.w*tc.h {
					t.Errorf("Cells() = %d, expected %d", s.Cells(), tc.w*tc.h)
				}
				return
			}
			if !errors.Is(err, ErrZeroSize) {
				t.Fatalf("NewSize(%d, %d) error = %v, expected ErrZeroSize", tc.w, tc.h, err)
			}
			var se *SizeError
			if !errors.As(err, &se) || se.Axis != tc.axis {
				t.Errorf("expected SizeError on axis %v, got %v", tc.axis, err)
			}
		})
	}
}

func TestNewGridPopulated(t *testing.T) {
	sizes := []Size{{1, 1}, {3, 5}, {8, 8}, {7, 2}}

	for _, s := range sizes {
		g, err := New(s, 7)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", s, err)
		}
		if g.Len() != s.W*s.H {
			t.Errorf("New(%v) has %d cells, expected %d", s, g.Len(), s.W*s.H)
		}

		seen := make(map[Position]bool)
		for p, c := range g.All() {
			if c != 7 {
				t.Errorf("cell %v = %d, expected default 7", p, c)
			}
			if seen[p] {
				t.Errorf("position %v yielded twice", p)
			}
			seen[p] = true
		}
		if len(seen) != s.Cells() {
			t.Errorf("All() yielded %d positions, expected %d", len(seen), s.Cells())
		}
	}
}

func TestNewGridZeroSize(t *testing.T) {
	for _, s := range []Size{{0, 4}, {4, 0}, {0, 0}} {
		if _, err := New(s, false); !errors.Is(err, ErrZeroSize) {
			t.Errorf("New(%v) error = %v, expected ErrZeroSize", s, err)
		}
	}
}

func TestGridGetSet(t *testing.T) {
	g, err := New(MustSize(4, 3), "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !g.Set(P(3, 2), "x") {
		t.Fatal("Set on the last cell should succeed")
	}
	if v, ok := g.Get(P(3, 2)); !ok || v != "x" {
		t.Errorf("Get(3,2) = %q, %v, expected \"x\", true", v, ok)
	}

	outside := []Position{P(-1, 0), P(0, -1), P(4, 0), P(0, 3), P(100, 100)}
	for _, p := range outside {
		if v, ok := g.Get(p); ok || v != "" {
			t.Errorf("Get(%v) = %q, %v, expected miss", p, v, ok)
		}
		if g.Ref(p) != nil {
			t.Errorf("Ref(%v) should be nil", p)
		}
		if g.Set(p, "y") {
			t.Errorf("Set(%v) should fail", p)
		}
	}
	if g.Count(func(s string) bool { return s != "" }) != 1 {
		t.Error("out-of-range writes must not touch the grid")
	}
}

func TestGridRef(t *testing.T) {
	g, _ := New(MustSize(2, 2), 0)

	ref := g.Ref(P(1, 0))
	*ref = 5

	if v, _ := g.Get(P(1, 0)); v != 5 {
		t.Errorf("write through Ref not visible, got %d", v)
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g, _ := New(MustSize(3, 3), 0)
	g.Set(P(1, 1), 1)

	c := g.Clone()
	if !Equal(g, c) {
		t.Fatal("clone should equal original")
	}

	c.Set(P(0, 0), 9)
	if Equal(g, c) {
		t.Error("modifying the clone must not affect the original")
	}
	if v, _ := g.Get(P(0, 0)); v != 0 {
		t.Errorf("original changed to %d", v)
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g, _ := New(MustSize(5, 4), 0)
	for y := range 4 {
		for x := range 5 {
			i, ok := g.Index(P(x, y))
			if !ok {
				t.Fatalf("Index(%d,%d) failed", x, y)
			}
			if got := g.PositionOf(i); got != P(x, y) {
				t.Errorf("PositionOf(%d) = %v, expected (%d,%d)", i, got, x, y)
			}
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		if dx == 0 && dy == 0 {
			t.Errorf("%v has zero delta", d)
		}
		ox, oy := d.Opposite().Delta()
		if ox != -dx || oy != -dy {
			t.Errorf("%v opposite delta = (%d,%d), expected (%d,%d)", d, ox, oy, -dx, -dy)
		}
	}

	if got := P(1, 1).Step(Up, 1); got != P(1, 0) {
		t.Errorf("Up from (1,1) = %v, expected (1,0)", got)
	}
	if got := P(1, 1).Step(DownLeft, 1); got != P(0, 2) {
		t.Errorf("DownLeft from (1,1) = %v, expected (0,2)", got)
	}
}
