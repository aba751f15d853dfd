package generate

// dedupWindow is a bounded set of already-emitted candidates. When the
// entry cap is reached the set is cleared entirely, trading perfect
// deduplication for bounded memory. Duplicates that straddle a clear are
// therefore emitted twice; collaborators must tolerate a small duplicate
// rate on very large runs.
type dedupWindow struct {
	cap    int
	seen   map[string]struct{}
	clears int
}

func newDedupWindow(cap int) *dedupWindow {
	if cap < 1 {
		cap = 1
	}
	return &dedupWindow{
		cap:  cap,
		seen: make(map[string]struct{}),
	}
}

// observe records candidate and reports whether it was already present
// in the current window.
func (d *dedupWindow) observe(candidate string) bool {
	if _, ok := d.seen[candidate]; ok {
		return true
	}
	if len(d.seen) >= d.cap {
		clear(d.seen)
		d.clears++
	}
	d.seen[candidate] = struct{}{}
	return false
}
