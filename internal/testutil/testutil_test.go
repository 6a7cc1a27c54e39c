package testutil

import (
	"math"
	"testing"
)

func TestRingSweep(t *testing.T) {
	pts := RingSweep(8, 2.5)
	if len(pts) != 8 {
		t.Fatalf("len = %d, want 8", len(pts))
	}
	for i, p := range pts {
		if p.Radius != 2.5 {
			t.Errorf("sample %d: radius %v, want 2.5", i, p.Radius)
		}
		if i > 0 && pts[i].Theta <= pts[i-1].Theta {
			t.Errorf("sweep not ascending at %d", i)
		}
	}
	if pts[0].Theta != -math.Pi {
		t.Errorf("first theta = %v, want -pi", pts[0].Theta)
	}
}

func TestSpikedSweep(t *testing.T) {
	pts := SpikedSweep(8, 2.5, 0.1)
	if pts[4].Radius != 0.1 {
		t.Fatalf("spike radius = %v, want 0.1", pts[4].Radius)
	}
	spikes := 0
	for _, p := range pts {
		if p.Radius != 2.5 {
			spikes++
		}
	}
	if spikes != 1 {
		t.Fatalf("spike count = %d, want 1", spikes)
	}
}
