// Package monitor renders debug visualizations of captured sweeps. These are
// developer aids for eyeballing the smoothing filter and conversion math, not
// part of the scan data path.
package monitor

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/navscan/internal/scan"
)

// RenderSweepScatter writes a standalone HTML scatter chart of one sweep in
// Cartesian form. Points are downsampled by stride to stay within maxPoints
// (<= 0 means the default of 8000). Each point carries its radius as a third
// dimension for the color ramp.
func RenderSweepScatter(w io.Writer, sensorID string, frame *scan.Frame, maxPoints int) error {
	pts := frame.Cartesian()
	if len(pts) == 0 {
		return fmt.Errorf("empty sweep")
	}
	if maxPoints <= 0 {
		maxPoints = 8000
	}

	// Downsample by stride to stay within maxPoints
	stride := 1
	if len(pts) > maxPoints {
		stride = int(math.Ceil(float64(len(pts)) / float64(maxPoints)))
	}

	radii := frame.Polar(false)
	data := make([]opts.ScatterData, 0, len(pts)/stride+1)
	maxAbs := 0.0
	maxRadius := 0.0
	for i := 0; i < len(pts); i += stride {
		p := pts[i]
		if math.Abs(p.X) > maxAbs {
			maxAbs = math.Abs(p.X)
		}
		if math.Abs(p.Y) > maxAbs {
			maxAbs = math.Abs(p.Y)
		}
		r := radii[i].Radius
		if r > maxRadius {
			maxRadius = r
		}
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y, r}})
	}

	// Small padding so points at the edges stay visible, square axes so the
	// sweep is not distorted.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	if maxRadius == 0 {
		maxRadius = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Scan Sweep (Polar->XY)", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Range Sweep", Subtitle: fmt.Sprintf("sensor=%s points=%d stride=%d", sensorID, len(data), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxRadius),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#31688e", "#35b779", "#fde725"}},
		}),
	)

	scatter.AddSeries("sweep", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	return scatter.Render(w)
}
