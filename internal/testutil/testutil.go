// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"math"
	"testing"

	"github.com/banshee-data/navscan/internal/scan"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertInDelta checks that got is within delta of want.
func AssertInDelta(t *testing.T, got, want, delta float64) {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("got %v, want %v (±%v)", got, want, delta)
	}
}

// RingSweep returns n polar samples of constant radius evenly spaced over
// [-pi, pi), sorted by theta. Useful as a featureless baseline sweep.
func RingSweep(n int, radius float64) []scan.PointRT {
	pts := make([]scan.PointRT, 0, n)
	for i := 0; i < n; i++ {
		theta := -math.Pi + float64(i)*(2*math.Pi/float64(n))
		pts = append(pts, scan.PointRT{Radius: radius, Theta: theta})
	}
	return pts
}

// SpikedSweep returns RingSweep(n, radius) with a single close-range spike of
// spikeRadius at index n/2.
func SpikedSweep(n int, radius, spikeRadius float64) []scan.PointRT {
	pts := RingSweep(n, radius)
	pts[n/2].Radius = spikeRadius
	return pts
}
