// Package frame drives the per-frame update of the rotating cube: it builds
// the rotation transforms, projects the cube onto a Surface and strokes its
// edges, once per tick of a Scheduler.
package frame

import "image/color"

// Surface is a 2D drawing target with canvas-style path semantics: Stroke
// draws every segment of the current path, ClosePath adds a segment back to
// the start of the current subpath and BeginPath discards the path.
type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(c color.Color)
	ClosePath()
}

// Scheduler invokes fn on the next display refresh. Only one callback is
// pending at a time.
type Scheduler interface {
	ScheduleNextFrame(fn func() error)
}

// ManualScheduler holds the pending callback until Step is called. It lets
// tests and the headless recorder advance frames synchronously.
type ManualScheduler struct {
	next func() error
}

// ScheduleNextFrame replaces the pending callback with fn
func (m *ManualScheduler) ScheduleNextFrame(fn func() error) {
	m.next = fn
}

// Pending reports whether a callback is waiting
func (m *ManualScheduler) Pending() bool {
	return m.next != nil
}

// Step runs the pending callback, if any. ran is false when nothing was
// scheduled.
func (m *ManualScheduler) Step() (ran bool, err error) {
	fn := m.next
	if fn == nil {
		return false, nil
	}
	m.next = nil
	return true, fn()
}
