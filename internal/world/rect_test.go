package world

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), false},
		{"shared vertical edge", NewRect(10, 10, 6, 6), NewRect(16, 10, 6, 6), true},
		{"shared corner", NewRect(0, 0, 6, 6), NewRect(6, 6, 6, 6), true},
		{"one column apart", NewRect(10, 10, 6, 6), NewRect(17, 10, 6, 6), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 2, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%+v.Intersects(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("intersection is not symmetric for %+v and %+v", tt.a, tt.b)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(10, 20, 7, 6)
	if r != (Rect{X1: 10, Y1: 20, X2: 17, Y2: 26}) {
		t.Fatalf("NewRect = %+v", r)
	}
	x, y := r.Center()
	if x != 13 || y != 23 {
		t.Errorf("Center() = (%d,%d), want (13,23)", x, y)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 6, 6)
	if r.Contains(0, 3) || r.Contains(3, 0) {
		t.Error("top/left margin should not count as room interior")
	}
	if !r.Contains(1, 1) || !r.Contains(6, 6) {
		t.Error("interior bounds should be inclusive of x2/y2")
	}
	if r.Contains(7, 3) {
		t.Error("point past x2 should be outside")
	}
}
