// Command scanviz renders debug charts for captured range sweeps. It can
// synthesize a sweep with a close-range spike, smooth it, and write an HTML
// scatter plus a radius-vs-bearing PNG; with a sweep database it can also
// record sweeps and replay stored ones.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/banshee-data/navscan/internal/config"
	"github.com/banshee-data/navscan/internal/monitor"
	"github.com/banshee-data/navscan/internal/scan"
	"github.com/banshee-data/navscan/internal/scandb"
	"github.com/banshee-data/navscan/internal/units"
	"github.com/banshee-data/navscan/internal/version"
)

var (
	configPath = flag.String("config", "", "Path to scan tuning JSON (defaults apply when empty)")
	dbPath     = flag.String("db", "", "Sweep database path (default from config)")
	sensorID   = flag.String("sensor", "bench", "Sensor ID for recorded sweeps")
	outDir     = flag.String("out", "plots", "Output directory for charts")
	points     = flag.Int("points", 4096, "Synthetic sweep size")
	radius     = flag.Float64("radius", 4.0, "Synthetic sweep baseline radius (m)")
	spike      = flag.Float64("spike", 0.5, "Synthetic close-range spike radius (m)")
	record     = flag.Bool("record", false, "Record the sweep to the database")
	loadSweep  = flag.String("load", "", "Load an existing sweep by ID instead of synthesizing")
	listSweeps = flag.Bool("list", false, "List recent sweeps for the sensor and exit")
	showVer    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("scanviz", version.String())
		return
	}

	cfg := config.EmptyScanConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadScanConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	path := cfg.GetDBPath()
	if *dbPath != "" {
		path = *dbPath
	}

	var store *scandb.SweepStore
	if *record || *loadSweep != "" || *listSweeps {
		db, err := scandb.Open(path)
		if err != nil {
			log.Fatalf("failed to open sweep database: %v", err)
		}
		defer db.Close()
		if err := db.MigrateUp(cfg.GetMigrationsDir()); err != nil {
			log.Fatalf("failed to migrate sweep database: %v", err)
		}
		store = scandb.NewSweepStore(db)
	}

	if *listSweeps {
		sweeps, err := store.ListSweeps(*sensorID, 20)
		if err != nil {
			log.Fatalf("failed to list sweeps: %v", err)
		}
		for _, s := range sweeps {
			fmt.Printf("%s  sensor=%s points=%d captured=%s\n",
				s.SweepID, s.SensorID, s.PointCount, s.CapturedAt.Format(time.RFC3339))
		}
		return
	}

	var frame *scan.Frame
	switch {
	case *loadSweep != "":
		rec, loaded, err := store.GetSweep(*loadSweep)
		if err != nil {
			log.Fatalf("failed to load sweep %s: %v", *loadSweep, err)
		}
		if rec == nil {
			log.Fatalf("sweep %s not found", *loadSweep)
		}
		log.Printf("loaded sweep %s: sensor=%s points=%d", rec.SweepID, rec.SensorID, rec.PointCount)
		frame = loaded
	default:
		frame = syntheticSweep(*points, *radius, *spike)
		log.Printf("synthesized sweep: points=%d radius=%.2fm spike=%.2fm", *points, *radius, *spike)
	}

	if *record {
		sweepID, err := store.InsertSweep(*sensorID, frame)
		if err != nil {
			log.Fatalf("failed to record sweep: %v", err)
		}
		log.Printf("recorded sweep %s", sweepID)
	}

	halfWidth := cfg.GetSmoothingHalfWidthRad()
	log.Printf("smoothing window: ±%.4f° (%.6f rad)", units.RadToDeg(halfWidth), halfWidth)

	raw := frame.Polar(true)
	smoothed := frame.SmoothedPolarWithin(halfWidth)

	stats, err := monitor.SmoothingSummary(raw, smoothed)
	if err != nil {
		log.Fatalf("failed to summarize smoothing: %v", err)
	}
	log.Printf("smoothing: points=%d touched=%d mean %.3fm -> %.3fm max reduction %.3fm",
		stats.Points, stats.Touched, stats.MeanRawRadius, stats.MeanSmoothed, stats.MaxReduction)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}

	htmlPath := filepath.Join(*outDir, "sweep.html")
	htmlFile, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", htmlPath, err)
	}
	if err := monitor.RenderSweepScatter(htmlFile, *sensorID, frame, cfg.GetChartMaxPoints()); err != nil {
		log.Fatalf("failed to render sweep chart: %v", err)
	}
	if err := htmlFile.Close(); err != nil {
		log.Fatalf("failed to close %s: %v", htmlPath, err)
	}

	pngPath := filepath.Join(*outDir, "radius.png")
	if err := monitor.SaveRadiusPlot(pngPath, *sensorID, raw, smoothed); err != nil {
		log.Fatalf("failed to save radius plot: %v", err)
	}

	log.Printf("wrote %s and %s", htmlPath, pngPath)
}

// syntheticSweep builds a full-circle sweep of the given baseline radius with
// one close-range spike a quarter turn in, which is what the window-minimum
// filter exists to flatten.
func syntheticSweep(n int, baseRadius, spikeRadius float64) *scan.Frame {
	f := scan.NewFrameAt(time.Now())
	f.Reserve(n)
	for i := 0; i < n; i++ {
		theta := -math.Pi + float64(i)*(2*math.Pi/float64(n))
		r := baseRadius + 0.25*math.Sin(3*theta)
		if i == n/4 {
			r = spikeRadius
		}
		f.AppendPolar(scan.PointRT{Radius: r, Theta: theta}, true)
	}
	return f
}
