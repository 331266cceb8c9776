package soundboard

import "time"

// Burst detection defaults: three triggers inside ten seconds counts
// as rapid usage.
const (
	DefaultBurstWindow    = 10 * time.Second
	DefaultBurstThreshold = 3
)

// BurstDetector is a sliding-window rate counter over trigger times.
// Calls are expected to be sequential; there is no locking.
type BurstDetector struct {
	window    time.Duration
	threshold int
	now       func() time.Time
	stamps    []time.Time
}

// BurstOption configures a BurstDetector.
type BurstOption func(*BurstDetector)

// WithClock replaces the time source. Used by tests.
func WithClock(now func() time.Time) BurstOption {
	return func(d *BurstDetector) { d.now = now }
}

// NewBurstDetector creates a detector with the given window and
// threshold. Non-positive values fall back to the defaults.
func NewBurstDetector(window time.Duration, threshold int, opts ...BurstOption) *BurstDetector {
	if window <= 0 {
		window = DefaultBurstWindow
	}
	if threshold <= 0 {
		threshold = DefaultBurstThreshold
	}
	d := &BurstDetector{
		window:    window,
		threshold: threshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Record registers a trigger at the current time and reports whether
// the trailing window now holds at least threshold triggers. The
// window is pruned and the trigger recorded on every call, regardless
// of the result.
func (d *BurstDetector) Record() bool {
	now := d.now()
	cutoff := now.Add(-d.window)

	kept := d.stamps[:0]
	for _, ts := range d.stamps {
		// Only strictly older entries age out; a trigger exactly one
		// window old still counts.
		if !ts.Before(cutoff) {
			kept = append(kept, ts)
		}
	}
	d.stamps = append(kept, now)

	return len(d.stamps) >= d.threshold
}

// Len returns the number of triggers currently inside the window.
func (d *BurstDetector) Len() int {
	return len(d.stamps)
}
