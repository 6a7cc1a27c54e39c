package scan_test

import (
	"testing"

	"github.com/banshee-data/navscan/internal/scan"
	"github.com/banshee-data/navscan/internal/testutil"
)

func TestSpikeSuppressionOnDenseSweep(t *testing.T) {
	// 4096 samples over the full circle puts neighbors ~0.0015 rad apart,
	// inside the default window, so a single spike drags its neighbors down.
	pts := testutil.SpikedSweep(4096, 4.0, 0.5)
	f := scan.NewFrameFromRT(pts)

	smoothed := f.SmoothedPolar()
	spiked := 0
	for _, p := range smoothed {
		if p.Radius == 0.5 {
			spiked++
		}
	}
	if spiked < 3 {
		t.Fatalf("spike suppressed %d samples, want at least the spike and both neighbors", spiked)
	}
	for i, p := range smoothed {
		if p.Radius > 4.0 {
			t.Fatalf("sample %d: smoothed radius %v above baseline", i, p.Radius)
		}
	}
}

func BenchmarkSmoothedPolar(b *testing.B) {
	pts := testutil.SpikedSweep(4096, 4.0, 0.5)
	f := scan.NewFrameFromRT(pts)
	f.Polar(true) // pre-sort so the benchmark measures the filter

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.SmoothedPolar()
	}
}

func BenchmarkPolarFromCartesian(b *testing.B) {
	pts := testutil.RingSweep(4096, 4.0)
	xy := scan.NewFrameFromRT(pts).Cartesian()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := scan.NewFrameFromXY(xy)
		_ = f.Polar(true)
	}
}
