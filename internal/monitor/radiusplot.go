package monitor

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/navscan/internal/scan"
)

// SmoothingStats summarizes what the window-minimum filter did to a sweep.
type SmoothingStats struct {
	Points        int
	MeanRawRadius float64
	MeanSmoothed  float64
	MaxReduction  float64 // largest radius drop across the sweep, meters
	Touched       int     // samples whose radius changed
}

// SmoothingSummary computes before/after statistics for a smoothing pass.
// raw and smoothed must be index-aligned.
func SmoothingSummary(raw, smoothed []scan.PointRT) (SmoothingStats, error) {
	if len(raw) != len(smoothed) {
		return SmoothingStats{}, fmt.Errorf("length mismatch: raw=%d smoothed=%d", len(raw), len(smoothed))
	}
	st := SmoothingStats{Points: len(raw)}
	if len(raw) == 0 {
		return st, nil
	}

	rawR := make([]float64, len(raw))
	smR := make([]float64, len(raw))
	reductions := make([]float64, len(raw))
	for i := range raw {
		rawR[i] = raw[i].Radius
		smR[i] = smoothed[i].Radius
		reductions[i] = raw[i].Radius - smoothed[i].Radius
		if reductions[i] != 0 {
			st.Touched++
		}
	}
	st.MeanRawRadius = stat.Mean(rawR, nil)
	st.MeanSmoothed = stat.Mean(smR, nil)
	st.MaxReduction = floats.Max(reductions)
	return st, nil
}

// SaveRadiusPlot writes a radius-vs-bearing line plot comparing the raw and
// smoothed sweeps to a PNG at path. Both sweeps must be sorted by theta and
// index-aligned.
func SaveRadiusPlot(path, sensorID string, raw, smoothed []scan.PointRT) error {
	if len(raw) == 0 || len(raw) != len(smoothed) {
		return fmt.Errorf("need equal non-empty sweeps, got raw=%d smoothed=%d", len(raw), len(smoothed))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Radius vs Bearing (%s)", sensorID)
	p.X.Label.Text = "theta (rad)"
	p.Y.Label.Text = "radius (m)"

	rawPts := make(plotter.XYs, len(raw))
	smPts := make(plotter.XYs, len(smoothed))
	for i := range raw {
		rawPts[i].X = raw[i].Theta
		rawPts[i].Y = raw[i].Radius
		smPts[i].X = smoothed[i].Theta
		smPts[i].Y = smoothed[i].Radius
	}

	rawLine, err := plotter.NewLine(rawPts)
	if err != nil {
		return fmt.Errorf("raw line: %w", err)
	}
	rawLine.Width = vg.Points(1)
	rawLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}

	smLine, err := plotter.NewLine(smPts)
	if err != nil {
		return fmt.Errorf("smoothed line: %w", err)
	}
	smLine.Width = vg.Points(1)
	smLine.Color = color.RGBA{R: 220, G: 60, B: 60, A: 255}

	p.Add(rawLine, smLine)
	p.Legend.Add("raw", rawLine)
	p.Legend.Add("smoothed", smLine)

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving radius plot: %w", err)
	}
	return nil
}
