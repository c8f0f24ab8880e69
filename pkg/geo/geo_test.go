package geo

import (
	"math"
	"testing"
)

func TestDist(t *testing.T) {
	if d := Pt(0, 0).Dist(Pt(3, 4)); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
	if d := Pt(1.5, 2.5).Dist(Pt(1.5, 2.5)); d != 0 {
		t.Errorf("Dist to self = %v, want 0", d)
	}
}

func TestLength(t *testing.T) {
	if l := Pt(1, 1).Length(); math.Abs(l-math.Sqrt2) > 1e-12 {
		t.Errorf("Length = %v, want sqrt(2)", l)
	}
}

func TestSub(t *testing.T) {
	got := Pt(5, 3).Sub(Pt(2, 7))
	if got != (Point2D{3, -4}) {
		t.Errorf("Sub = %+v, want {3 -4}", got)
	}
}
