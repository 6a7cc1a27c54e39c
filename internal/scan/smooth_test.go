package scan

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSmoothMinRadiusRejectsUnsorted(t *testing.T) {
	_, err := SmoothMinRadius([]PointRT{{1, 0.5}, {1, -0.5}}, DefaultSmoothingHalfWidth)
	if !errors.Is(err, ErrUnsorted) {
		t.Fatalf("err = %v, want ErrUnsorted", err)
	}
}

func TestSmoothMinRadiusWindowBoundary(t *testing.T) {
	const dt = DefaultSmoothingHalfWidth
	pts := []PointRT{
		{Radius: 5, Theta: 0},
		{Radius: 1, Theta: dt / 2},
		{Radius: 5, Theta: 2 * dt},
	}
	out, err := SmoothMinRadius(pts, dt)
	if err != nil {
		t.Fatalf("SmoothMinRadius: %v", err)
	}

	// The spike at dt/2 is inside the first sample's window and pulls it in;
	// the sample at 2*dt is 1.5*dt away from the spike, outside the window.
	if out[0].Radius != 1 {
		t.Errorf("radius at theta=0 = %v, want 1", out[0].Radius)
	}
	if out[1].Radius != 1 {
		t.Errorf("radius at theta=dt/2 = %v, want 1", out[1].Radius)
	}
	if out[2].Radius != 5 {
		t.Errorf("radius at theta=2dt = %v, want 5", out[2].Radius)
	}
	for i := range pts {
		if out[i].Theta != pts[i].Theta {
			t.Errorf("sample %d: theta changed from %v to %v", i, pts[i].Theta, out[i].Theta)
		}
	}
}

func TestSmoothMinRadiusMonotoneReduction(t *testing.T) {
	pts := make([]PointRT, 0, 64)
	for i := 0; i < 64; i++ {
		theta := -math.Pi + float64(i)*(2*math.Pi/64)
		radius := 3 + 2*math.Sin(7*theta)
		pts = append(pts, PointRT{Radius: radius, Theta: theta})
	}
	out, err := SmoothMinRadius(pts, 0.2)
	if err != nil {
		t.Fatalf("SmoothMinRadius: %v", err)
	}
	for i := range pts {
		if out[i].Radius > pts[i].Radius {
			t.Errorf("sample %d: smoothed radius %v exceeds original %v", i, out[i].Radius, pts[i].Radius)
		}
	}
}

func TestSmoothMinRadiusUsesFrozenSnapshot(t *testing.T) {
	// Three samples inside one shared window: minima must come from the input
	// values, not from radii already overwritten earlier in the pass. A second
	// pass over the output is then a no-op.
	pts := []PointRT{
		{Radius: 3, Theta: 0},
		{Radius: 1, Theta: 0.001},
		{Radius: 2, Theta: 0.002},
	}
	out, err := SmoothMinRadius(pts, 0.01)
	if err != nil {
		t.Fatalf("SmoothMinRadius: %v", err)
	}
	for i, want := range []float64{1, 1, 1} {
		if out[i].Radius != want {
			t.Errorf("sample %d: radius %v, want %v", i, out[i].Radius, want)
		}
	}
	if pts[0].Radius != 3 || pts[1].Radius != 1 || pts[2].Radius != 2 {
		t.Fatalf("input slice was modified: %v", pts)
	}

	again, err := SmoothMinRadius(out, 0.01)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if diff := cmp.Diff(out, again); diff != "" {
		t.Fatalf("second smoothing pass changed data (-first +second):\n%s", diff)
	}
}

func TestSmoothedPolarEndToEnd(t *testing.T) {
	f := NewFrameFromRT([]PointRT{
		{Radius: 2, Theta: 0.3},
		{Radius: 2, Theta: -0.1},
		{Radius: 2, Theta: 0.2},
		{Radius: 2, Theta: -0.3},
		{Radius: 2, Theta: 0.1},
	})
	got := f.SmoothedPolar()

	// No two bearings are within the default window of each other, so the
	// filter leaves every radius alone and the result is purely sorted.
	want := []PointRT{
		{Radius: 2, Theta: -0.3},
		{Radius: 2, Theta: -0.1},
		{Radius: 2, Theta: 0.1},
		{Radius: 2, Theta: 0.2},
		{Radius: 2, Theta: 0.3},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("SmoothedPolar mismatch (-want +got):\n%s", diff)
	}
}

func TestSmoothedPolarDoesNotMutateStoredRadii(t *testing.T) {
	const dt = DefaultSmoothingHalfWidth
	f := NewFrameFromRT([]PointRT{
		{Radius: 5, Theta: 0},
		{Radius: 1, Theta: dt / 2},
	})

	smoothed := f.SmoothedPolar()
	if smoothed[0].Radius != 1 {
		t.Fatalf("smoothed radius = %v, want 1", smoothed[0].Radius)
	}

	raw := f.Polar(true)
	if raw[0].Radius != 5 {
		t.Fatalf("stored radius = %v after smoothing, want raw 5", raw[0].Radius)
	}
}
