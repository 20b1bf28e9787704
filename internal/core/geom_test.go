package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Intersection is symmetric
			if tc.b.Intersects(tc.a) != tc.expected {
				t.Errorf("Intersects() not symmetric for %s", tc.name)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 25 || cy != 40 {
		t.Errorf("Center() = (%v, %v), want (25, 40)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(5, 5) {
		t.Error("Contains(5, 5) = false, want true")
	}
	if !r.Contains(0, 0) {
		t.Error("Contains(0, 0) = false, want true")
	}
	if r.Contains(10, 10) {
		t.Error("Contains(10, 10) = true, want false (exclusive edge)")
	}
	if r.Contains(-1, 5) {
		t.Error("Contains(-1, 5) = true, want false")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0.5, 0, 1, 0.5},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 {
		t.Error("Clamp misbehaves")
	}
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs misbehaves")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max misbehave")
	}
}
