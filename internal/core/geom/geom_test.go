package geom

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 8, 8)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Identical", NewRect(10, 10, 8, 8), true},
		{"Overlap corner", NewRect(17, 17, 4, 4), true},
		{"Touching right edge", NewRect(18, 10, 4, 4), false},
		{"Touching bottom edge", NewRect(10, 18, 4, 4), false},
		{"Inside", NewRect(12, 12, 1, 1), true},
		{"Far away", NewRect(100, 100, 8, 8), false},
		{"Zero width", NewRect(12, 12, 0, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", base, tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("intersection is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestClampAndSign(t *testing.T) {
	if got := Clamp(-10, -5, 1019); got != -5 {
		t.Errorf("Clamp low = %v, want -5", got)
	}
	if got := Clamp(2000, -5, 1019); got != 1019 {
		t.Errorf("Clamp high = %v, want 1019", got)
	}
	if got := Clamp(3.5, 0, 10); got != 3.5 {
		t.Errorf("Clamp inside = %v, want 3.5", got)
	}

	if Sign(-0.2) != -1 || Sign(0) != 0 || Sign(7) != 1 {
		t.Error("Sign returned an unexpected value")
	}
}
