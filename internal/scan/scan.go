// Package scan holds the single-sweep range scan representation used by the
// navigation pipeline. A Frame owns one sweep of range samples and lets
// callers read it in either Cartesian or polar form without committing to one
// representation up front. Conversion happens lazily in the read accessors and
// the polar view tracks whether it is sorted ascending by bearing.
package scan

import (
	"math"
	"sort"
	"time"
)

// PointXY is a Cartesian sample in the sensor frame, in meters.
type PointXY struct {
	X float64
	Y float64
}

// PointRT is a polar sample: radius in meters, theta in radians.
//
// Theta derived from Cartesian data lands in [-pi, pi] (atan2). Theta supplied
// directly by a producer keeps whatever range the source used; the frame does
// not normalize it.
type PointRT struct {
	Radius float64
	Theta  float64
}

// XYToRT converts one Cartesian sample to polar form. Theta is in [-pi, pi].
func XYToRT(p PointXY) PointRT {
	return PointRT{
		Radius: math.Hypot(p.X, p.Y),
		Theta:  math.Atan2(p.Y, p.X),
	}
}

// RTToXY converts one polar sample to Cartesian form.
func RTToXY(p PointRT) PointXY {
	return PointXY{
		X: p.Radius * math.Cos(p.Theta),
		Y: p.Radius * math.Sin(p.Theta),
	}
}

// repState tags which backing slice holds live data. Writes keep the frame in
// a single-representation state; only the read accessors move it to repBoth,
// where the second slice is a cached derivation of the first.
type repState uint8

const (
	repEmpty repState = iota
	repCartesian
	repPolar
	repBoth
)

// Frame is one sweep of range samples with a capture timestamp.
//
// At most one backing slice holds live data after any write; a read through
// the opposite representation caches the derived slice alongside the live one
// (repBoth) rather than clearing it. Callers must not rely on exactly one
// slice being populated after calling Cartesian or Polar.
//
// Frame has no internal locking. It assumes a single owner at a time; note
// that Polar mutates cache state, so even readers need write-level exclusion
// if a frame is ever shared.
type Frame struct {
	ts     time.Time
	xy     []PointXY
	rt     []PointRT
	rep    repState
	sorted bool // rt known to be ascending by Theta
}

// NewFrame returns an empty frame with a zero timestamp.
func NewFrame() *Frame {
	return &Frame{}
}

// NewFrameAt returns an empty frame captured at ts.
func NewFrameAt(ts time.Time) *Frame {
	return &Frame{ts: ts}
}

// NewFrameFromXY returns a frame populated with Cartesian samples.
func NewFrameFromXY(pts []PointXY) *Frame {
	f := &Frame{}
	f.SetCartesian(pts)
	return f
}

// NewFrameFromXYAt returns a frame populated with Cartesian samples captured at ts.
func NewFrameFromXYAt(pts []PointXY, ts time.Time) *Frame {
	f := NewFrameFromXY(pts)
	f.ts = ts
	return f
}

// NewFrameFromRT returns a frame populated with polar samples. The samples are
// treated as unsorted; use SetPolar with assumeSorted when the producer
// guarantees bearing order.
func NewFrameFromRT(pts []PointRT) *Frame {
	f := &Frame{}
	f.SetPolar(pts, false)
	return f
}

// NewFrameFromRTAt returns a frame populated with polar samples captured at ts.
func NewFrameFromRTAt(pts []PointRT, ts time.Time) *Frame {
	f := NewFrameFromRT(pts)
	f.ts = ts
	return f
}

// SetTimestamp records the capture time of the sweep.
func (f *Frame) SetTimestamp(ts time.Time) {
	f.ts = ts
}

// Timestamp returns the capture time of the sweep.
func (f *Frame) Timestamp() time.Time {
	return f.ts
}

// SetCartesian replaces the sweep with Cartesian samples and drops any cached
// polar view.
func (f *Frame) SetCartesian(pts []PointXY) {
	f.xy = append(f.xy[:0], pts...)
	f.rt = f.rt[:0]
	f.sorted = false
	if len(f.xy) == 0 {
		f.rep = repEmpty
		return
	}
	f.rep = repCartesian
}

// SetPolar replaces the sweep with polar samples and drops any cached
// Cartesian view. assumeSorted is the caller's assertion that the samples are
// already ascending by theta; it is trusted, not verified.
func (f *Frame) SetPolar(pts []PointRT, assumeSorted bool) {
	f.rt = append(f.rt[:0], pts...)
	f.xy = f.xy[:0]
	f.sorted = assumeSorted
	if len(f.rt) == 0 {
		f.rep = repEmpty
		return
	}
	f.rep = repPolar
}

// AppendCartesian adds one Cartesian sample. Any cached polar view is dropped:
// a single append invalidates the whole derived sweep.
func (f *Frame) AppendCartesian(pt PointXY) {
	f.xy = append(f.xy, pt)
	f.rt = f.rt[:0]
	f.sorted = false
	f.rep = repCartesian
}

// AppendPolar adds one polar sample and drops any cached Cartesian view.
// assumeInOrder asserts that the sweep remains ascending by theta after the
// append; like SetPolar it is trusted, not verified.
func (f *Frame) AppendPolar(pt PointRT, assumeInOrder bool) {
	f.rt = append(f.rt, pt)
	f.xy = f.xy[:0]
	f.sorted = assumeInOrder
	f.rep = repPolar
}

// Size returns the number of samples in the sweep. When both representations
// are cached the Cartesian one wins; they have the same length anyway.
func (f *Frame) Size() int {
	if len(f.xy) > 0 {
		return len(f.xy)
	}
	return len(f.rt)
}

// Clear empties both representations and resets the sort state. The timestamp
// is kept; it is set independently of the samples.
func (f *Frame) Clear() {
	f.xy = f.xy[:0]
	f.rt = f.rt[:0]
	f.sorted = false
	f.rep = repEmpty
}

// Reserve pre-sizes both backing slices for n samples. It has no observable
// semantic effect.
func (f *Frame) Reserve(n int) {
	if cap(f.xy) < n {
		xy := make([]PointXY, len(f.xy), n)
		copy(xy, f.xy)
		f.xy = xy
	}
	if cap(f.rt) < n {
		rt := make([]PointRT, len(f.rt), n)
		copy(rt, f.rt)
		f.rt = rt
	}
}

// Cartesian returns a snapshot of the sweep in Cartesian form. If only the
// polar representation is live it derives the Cartesian samples one-to-one in
// index order and caches them alongside the polar slice (repBoth); the polar
// data is not cleared.
func (f *Frame) Cartesian() []PointXY {
	if len(f.xy) == 0 && len(f.rt) > 0 {
		debugf("scan: deriving %d cartesian samples from polar", len(f.rt))
		f.xy = make([]PointXY, len(f.rt))
		for i, p := range f.rt {
			f.xy[i] = RTToXY(p)
		}
		f.rep = repBoth
	}
	out := make([]PointXY, len(f.xy))
	copy(out, f.xy)
	return out
}

// Polar returns a snapshot of the sweep in polar form. If only the Cartesian
// representation is live it derives the polar samples one-to-one in index
// order (theta in [-pi, pi]) and caches them alongside the Cartesian slice;
// the derived sweep follows insertion order, not bearing order.
//
// With needSorted the cached polar sweep is sorted ascending by theta before
// the snapshot is taken. The sort happens at most once per mutation: the sort
// state is remembered, so repeated sorted reads of unchanged data do no work.
// Sorting reorders only the polar slice; a Cartesian slice cached beforehand
// keeps insertion order, so index correspondence across the two views ends at
// the first sorted read.
//
// Polar does not smooth. Use SmoothedPolar or SmoothMinRadius for the
// window-minimum filtered view.
func (f *Frame) Polar(needSorted bool) []PointRT {
	if len(f.rt) == 0 && len(f.xy) > 0 {
		debugf("scan: deriving %d polar samples from cartesian", len(f.xy))
		f.rt = make([]PointRT, len(f.xy))
		for i, p := range f.xy {
			f.rt[i] = XYToRT(p)
		}
		f.sorted = false
		f.rep = repBoth
	}
	if needSorted && !f.sorted {
		sort.Slice(f.rt, func(i, j int) bool { return f.rt[i].Theta < f.rt[j].Theta })
		f.sorted = true
	}
	out := make([]PointRT, len(f.rt))
	copy(out, f.rt)
	return out
}

// SmoothedPolar returns the sorted polar sweep with the window-minimum radius
// filter applied at the default half-width. The filter runs on a snapshot;
// the frame's cached samples keep their raw radii.
func (f *Frame) SmoothedPolar() []PointRT {
	return f.SmoothedPolarWithin(DefaultSmoothingHalfWidth)
}

// SmoothedPolarWithin is SmoothedPolar with an explicit angular half-width in
// radians.
func (f *Frame) SmoothedPolarWithin(halfWidth float64) []PointRT {
	pts := f.Polar(true)
	// Polar(true) guarantees ascending theta, so the filter cannot reject.
	out, _ := SmoothMinRadius(pts, halfWidth)
	return out
}
