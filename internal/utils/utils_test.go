package utils

import "testing"

func TestBetweenStaysInRange(t *testing.T) {
	rng := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rng.Between(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Between(3, 6) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all of 3..6 to appear, saw %v", seen)
	}
	if v := rng.Between(10, 4); v != 10 {
		t.Errorf("Between(10, 4) = %d, want 10", v)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 20; i++ {
		if x, y := a.Between(0, 1000), b.Between(0, 1000); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp = %v, want 12.5", got)
	}
	tests := []struct{ v, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
