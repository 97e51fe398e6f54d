package gamemath

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"inside", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, true},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touch right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touch left edge", Rect{10, 0, 10, 10}, Rect{0, 0, 10, 10}, false},
		{"touch bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"touch top edge", Rect{0, 10, 10, 10}, Rect{0, 0, 10, 10}, false},
		{"touch corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"zero size strictly inside", Rect{5, 5, 0, 0}, Rect{0, 0, 10, 10}, true},
		{"zero size on edge", Rect{10, 5, 0, 0}, Rect{0, 0, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Fatalf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestNewRectPanicsOnNegativeSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative width")
		}
	}()
	NewRect(0, 0, -1, 5)
}

func TestNewRectAllowsZeroSize(t *testing.T) {
	r := NewRect(3, 4, 0, 0)
	if r.Width != 0 || r.Height != 0 || r.X != 3 || r.Y != 4 {
		t.Fatalf("unexpected rect %v", r)
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 50, Y: 40}, true},
		{Point{X: 10, Y: 20}, true},
		{Point{X: 110, Y: 70}, true},
		{Point{X: 9.5, Y: 40}, false},
		{Point{X: 50, Y: 70.5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Fatalf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
