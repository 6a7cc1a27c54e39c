package scan

import (
	"errors"
	"math"
)

// DefaultSmoothingHalfWidth is the angular half-width of the window-minimum
// filter, in radians. It matches half the beam spacing of a 1024-step quarter
// sweep (~0.0031 rad), which is where spurious close-range spikes show up.
const DefaultSmoothingHalfWidth = 0.5 * math.Pi / 512

// ErrUnsorted is returned by SmoothMinRadius when the input sweep is not
// ascending by theta. The filter walks contiguous indices as an angular
// neighborhood, which only holds for sorted input.
var ErrUnsorted = errors.New("scan: polar sweep not sorted by theta")

// SmoothMinRadius replaces each sample's radius with the minimum radius among
// itself and every neighbor within halfWidth radians of its bearing. Bearings
// are unchanged. The input must be sorted ascending by theta so that the
// contiguous index runs on either side of a sample cover exactly its angular
// neighborhood; unsorted input returns ErrUnsorted.
//
// Minima are taken against the input snapshot, never against already-smoothed
// values, so the result is order-independent and a second pass over the output
// is a no-op. The input slice is not modified. Radii are not validated;
// negative or non-finite values propagate into the result.
func SmoothMinRadius(pts []PointRT, halfWidth float64) ([]PointRT, error) {
	for i := 1; i < len(pts); i++ {
		if pts[i].Theta < pts[i-1].Theta {
			return nil, ErrUnsorted
		}
	}

	out := make([]PointRT, len(pts))
	copy(out, pts)
	for i := range pts {
		minR := pts[i].Radius
		for j := i - 1; j >= 0; j-- {
			if pts[i].Theta-pts[j].Theta > halfWidth {
				break
			}
			minR = math.Min(minR, pts[j].Radius)
		}
		for j := i + 1; j < len(pts); j++ {
			if pts[j].Theta-pts[i].Theta > halfWidth {
				break
			}
			minR = math.Min(minR, pts[j].Radius)
		}
		out[i].Radius = minR
	}
	return out, nil
}
