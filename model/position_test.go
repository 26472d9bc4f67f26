package model

import "testing"

func TestPositionAccessors(t *testing.T) {
	p := Position{X: 1, Y: 2}

	tests := []struct {
		name string
		got  Position
		want Position
	}{
		{"right", p.Right(), Position{2, 2}},
		{"left", p.Left(), Position{0, 2}},
		{"top", p.Top(), Position{1, 3}},
		{"bottom", p.Bottom(), Position{1, 1}},
		{"right top", p.RightTop(), Position{2, 3}},
		{"right bottom", p.RightBottom(), Position{2, 1}},
		{"left top", p.LeftTop(), Position{0, 3}},
		{"left bottom", p.LeftBottom(), Position{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestPositionNeighboursAreDistinct(t *testing.T) {
	p := Position{X: -4, Y: 7}
	seen := make(map[Position]bool)
	for _, n := range p.Neighbours() {
		if n == p {
			t.Fatalf("neighbours of %s include itself", p)
		}
		if seen[n] {
			t.Fatalf("duplicate neighbour %s", n)
		}
		dx, dy := n.X-p.X, n.Y-p.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("neighbour %s is not adjacent to %s", n, p)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d neighbours, want 8", len(seen))
	}
}

func TestPositionAsMapKey(t *testing.T) {
	m := map[Position]int{{X: 3, Y: 4}: 1}
	if m[Position{3, 2}.Top().Top()] != 1 {
		t.Error("structurally equal positions should address the same key")
	}
	if got := (Position{X: -1, Y: 5}).String(); got != "(-1,5)" {
		t.Errorf("String() = %q", got)
	}
}
