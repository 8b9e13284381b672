package viewstate

// FocusTracker remembers the task count seen on the previous render.
type FocusTracker struct {
	last   int
	primed bool
}

// Observe records count and reports whether exactly one task disappeared
// since the previous observation.
func (f *FocusTracker) Observe(count int) bool {
	removedOne := f.primed && count-f.last == -1
	f.last = count
	f.primed = true
	return removedOne
}
