package selection

import (
	"fmt"

	"github.com/muurk/weighguide/internal/content"
)

// Reason identifies what dismissed the modal.
type Reason int

const (
	// ReasonCloseControl is the explicit close button.
	ReasonCloseControl Reason = iota
	// ReasonBackdrop is a click or tap outside the modal content.
	ReasonBackdrop
	// ReasonEscape is the escape key.
	ReasonEscape
	// ReasonTeardown is the host going away while the modal is open.
	ReasonTeardown
)

// String returns the wire name of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonCloseControl:
		return "close"
	case ReasonBackdrop:
		return "backdrop"
	case ReasonEscape:
		return "escape"
	case ReasonTeardown:
		return "teardown"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ParseReason maps a wire name back to a Reason. Teardown is not accepted
// from outside.
func ParseReason(s string) (Reason, bool) {
	switch s {
	case "close":
		return ReasonCloseControl, true
	case "backdrop":
		return ReasonBackdrop, true
	case "escape":
		return ReasonEscape, true
	default:
		return 0, false
	}
}

// EventKind classifies modal events.
type EventKind int

const (
	// EventOpened fires when a step is shown (including a switch from another step).
	EventOpened EventKind = iota
	// EventDismissed fires when an open modal is closed.
	EventDismissed
	// EventRejected fires when a step without detail was requested.
	EventRejected
)

// String returns a lowercase name for logs and metrics.
func (k EventKind) String() string {
	switch k {
	case EventOpened:
		return "opened"
	case EventDismissed:
		return "dismissed"
	case EventRejected:
		return "rejected"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes a modal transition.
type Event struct {
	Kind   EventKind
	Step   int
	Reason Reason // only meaningful for EventDismissed
}

// DetailSource looks up a step and its detail record.
// *content.Store satisfies it.
type DetailSource interface {
	StepWithDetail(n int) (content.FlowStep, content.StepDetail, error)
}

// View is what an open modal displays.
type View struct {
	Step   content.FlowStep
	Detail content.StepDetail
}

// Option configures a Modal.
type Option func(*Modal)

// WithObserver registers a callback for every modal event.
func WithObserver(fn func(Event)) Option {
	return func(m *Modal) {
		m.observer = fn
	}
}

// Modal is the step detail popup state machine.
//
// It is Closed until Open succeeds and Closed again after Dismiss. While
// open, the scroller behind it is locked; the lock is released on every
// path back to Closed. Hosts should defer Close so that teardown releases
// the lock as well.
//
// A Modal is not safe for concurrent use; it belongs to one UI event loop.
type Modal struct {
	source   DetailSource
	scroller Scroller
	sel      Selection
	release  func()
	observer func(Event)
}

// NewModal creates a closed modal reading details from source and locking
// scroller while open.
func NewModal(source DetailSource, scroller Scroller, opts ...Option) *Modal {
	m := &Modal{
		source:   source,
		scroller: scroller,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open shows step n. Opening while another step is shown replaces it in
// place. If n has no detail record the modal fails closed and Open
// returns false.
func (m *Modal) Open(n int) bool {
	if _, _, err := m.source.StepWithDetail(n); err != nil {
		if !m.sel.IsEmpty() {
			m.clear()
		}
		m.emit(Event{Kind: EventRejected, Step: n})
		return false
	}

	m.sel.Select(n)
	if m.release == nil {
		m.release = LockScroll(m.scroller)
	}
	m.emit(Event{Kind: EventOpened, Step: n})
	return true
}

// Dismiss closes the modal. It reports whether the modal was open;
// dismissing a closed modal does nothing.
func (m *Modal) Dismiss(reason Reason) bool {
	step, open := m.sel.Current()
	if !open {
		return false
	}
	m.clear()
	m.emit(Event{Kind: EventDismissed, Step: step, Reason: reason})
	return true
}

// Close is the teardown path. It is equivalent to Dismiss(ReasonTeardown).
func (m *Modal) Close() {
	m.Dismiss(ReasonTeardown)
}

// IsOpen reports whether a step is selected.
func (m *Modal) IsOpen() bool {
	return !m.sel.IsEmpty()
}

// Selection returns a copy of the current selection.
func (m *Modal) Selection() Selection {
	return m.sel
}

// View returns what to display. It returns false when the modal is closed
// or when the selected step no longer resolves to a detail record.
func (m *Modal) View() (View, bool) {
	n, open := m.sel.Current()
	if !open {
		return View{}, false
	}
	step, detail, err := m.source.StepWithDetail(n)
	if err != nil {
		return View{}, false
	}
	return View{Step: step, Detail: detail}, true
}

func (m *Modal) clear() {
	m.sel.Clear()
	if m.release != nil {
		m.release()
		m.release = nil
	}
}

func (m *Modal) emit(e Event) {
	if m.observer != nil {
		m.observer(e)
	}
}
