// Package nav holds the small boundary types shared between the scan layer
// and the navigation controller: planned path points and the controller mode.
package nav

import "sort"

// WayPoint is one planned path point: where the platform should be at a given
// mission time, which way it should face, and a one-byte tag for the planner's
// own bookkeeping.
type WayPoint struct {
	TimestampSec float64
	Position     [3]float64
	Direction    [3]float64
	Tag          byte
}

// NewWayPoint returns a WayPoint with the conventional defaults: an invalid
// timestamp of -1, zero position and direction, and a zero tag.
func NewWayPoint() WayPoint {
	return WayPoint{TimestampSec: -1}
}

// Before reports whether w is ordered ahead of other. Way points order by
// mission timestamp ascending.
func (w WayPoint) Before(other WayPoint) bool {
	return w.TimestampSec < other.TimestampSec
}

// SortByTimestamp sorts a planned path in place, earliest point first.
func SortByTimestamp(path []WayPoint) {
	sort.Slice(path, func(i, j int) bool { return path[i].Before(path[j]) })
}
