package purchase

import (
	"math"
	"testing"
)

func TestDistanceFactorAtFront(t *testing.T) {
	for movement := 0; movement <= 10; movement++ {
		for _, d := range []int{-3, 0, 1} {
			if got := DistanceFactor(d, movement, false); got != 1 {
				t.Errorf("DistanceFactor(%d, %d) = %g, want 1", d, movement, got)
			}
			if got := DistanceFactor(d, movement, true); got != 1 {
				t.Errorf("DistanceFactor(%d, %d, land transport) = %g, want 1", d, movement, got)
			}
		}
	}
}

func TestDistanceFactorMoveCurve(t *testing.T) {
	// Distance 4 leaves 2.5 effective, so the result is sqrt(moveFactor)
	tests := []struct {
		movement      int
		landTransport bool
		moveFactor    float64
	}{
		{1, false, 1},
		{2, false, 2},
		{3, false, 2.5},
		{4, false, 2.75},
		{1, true, 2},
		{2, true, 2.5},
	}

	for _, tt := range tests {
		got := DistanceFactor(4, tt.movement, tt.landTransport)
		want := math.Sqrt(tt.moveFactor)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("DistanceFactor(4, %d, %t) = %g, want %g", tt.movement, tt.landTransport, got, want)
		}
	}
}

func TestDistanceFactorSaturates(t *testing.T) {
	prev := 0.0
	for movement := 1; movement <= 40; movement++ {
		got := DistanceFactor(4, movement, false)
		if got < prev {
			t.Errorf("movement %d: factor %g decreased from %g", movement, got, prev)
		}
		if got >= math.Sqrt(3) {
			t.Errorf("movement %d: factor %g reached the asymptote", movement, got)
		}
		if got < 1 {
			t.Errorf("movement %d: factor %g below 1", movement, got)
		}
		prev = got
	}
}

func TestDistanceFactorGrowsWithDistance(t *testing.T) {
	near := DistanceFactor(3, 2, false)
	far := DistanceFactor(10, 2, false)
	if far <= near {
		t.Errorf("far %g should exceed near %g", far, near)
	}
	// 11 - 1.5 = 9.5 effective, two moves give 2^(9.5/5)
	if got := DistanceFactor(11, 2, false); math.Abs(got-math.Pow(2, 1.9)) > 1e-12 {
		t.Errorf("DistanceFactor(11, 2) = %g", got)
	}
}
