package selection

import "sync"

// Scroller is a surface whose independent scrolling can be switched off
// while an overlay covers it.
type Scroller interface {
	Scrollable() bool
	SetScrollable(bool)
}

// LockScroll makes s inert and returns the function that restores it.
// The release function puts back exactly the state observed at acquisition
// and is safe to call more than once.
func LockScroll(s Scroller) (release func()) {
	prior := s.Scrollable()
	s.SetScrollable(false)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.SetScrollable(prior)
		})
	}
}

// FlagScroller is a Scroller backed by a plain boolean.
// Useful for hosts that compute their scroll state on every render.
type FlagScroller struct {
	Locked bool
}

// Scrollable implements Scroller.
func (f *FlagScroller) Scrollable() bool {
	return !f.Locked
}

// SetScrollable implements Scroller.
func (f *FlagScroller) SetScrollable(v bool) {
	f.Locked = !v
}
