package app

// Binder is the one-time attachment guard for interactive regions. The
// render pipeline re-runs many times per session while the surrounding
// containers survive, so handler attachment must be idempotent: the marker
// is checked before attaching and set immediately after, and all calls
// happen on the single event-processing goroutine.
type Binder struct {
	bound map[string]bool
}

func NewBinder() *Binder {
	return &Binder{bound: make(map[string]bool)}
}

// Bind attaches the region's handlers exactly once. Returns false, without
// calling attach, when the region is already bound.
func (b *Binder) Bind(region string, attach func()) bool {
	if b.bound[region] {
		return false
	}
	b.bound[region] = true
	if attach != nil {
		attach()
	}
	return true
}

// Bound reports whether a region has been bound.
func (b *Binder) Bound(region string) bool { return b.bound[region] }
