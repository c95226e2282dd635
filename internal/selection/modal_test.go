package selection

import (
	"strings"
	"testing"

	"github.com/muurk/weighguide/internal/content"
)

func newTestModal(t *testing.T, scroller Scroller, opts ...Option) *Modal {
	t.Helper()
	store, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	return NewModal(store, scroller, opts...)
}

func TestModal_InitiallyClosed(t *testing.T) {
	scroller := &FlagScroller{}
	m := newTestModal(t, scroller)

	if m.IsOpen() {
		t.Error("new modal should be closed")
	}
	if _, ok := m.View(); ok {
		t.Error("View() on closed modal should report nothing to show")
	}
	if !scroller.Scrollable() {
		t.Error("page should be scrollable before any open")
	}
}

func TestModal_DismissPathsRestoreState(t *testing.T) {
	reasons := []Reason{ReasonCloseControl, ReasonBackdrop, ReasonEscape, ReasonTeardown}

	for _, reason := range reasons {
		t.Run(reason.String(), func(t *testing.T) {
			scroller := &FlagScroller{}
			m := newTestModal(t, scroller)

			if !m.Open(3) {
				t.Fatal("Open(3) = false, want true")
			}
			if scroller.Scrollable() {
				t.Error("page should be locked while modal is open")
			}

			if !m.Dismiss(reason) {
				t.Error("Dismiss() on open modal = false, want true")
			}
			if !m.Selection().IsEmpty() {
				t.Error("selection should be empty after dismiss")
			}
			if !scroller.Scrollable() {
				t.Error("page should be scrollable again after dismiss")
			}
			if _, ok := m.View(); ok {
				t.Error("View() after dismiss should report nothing to show")
			}
		})
	}
}

func TestModal_RestoresPriorScrollStateExactly(t *testing.T) {
	// A page that was already locked by something else stays locked.
	scroller := &FlagScroller{Locked: true}
	m := newTestModal(t, scroller)

	m.Open(1)
	m.Dismiss(ReasonEscape)

	if scroller.Scrollable() {
		t.Error("prior locked state should be restored, got scrollable")
	}
}

func TestModal_LastWriteWins(t *testing.T) {
	scroller := &FlagScroller{}
	m := newTestModal(t, scroller)

	m.Open(2)
	m.Open(6)

	n, ok := m.Selection().Current()
	if !ok || n != 6 {
		t.Fatalf("Current() = (%d, %v), want (6, true)", n, ok)
	}
	view, ok := m.View()
	if !ok || view.Step.Step != 6 {
		t.Errorf("View() step = %d, want 6", view.Step.Step)
	}

	// Switching steps must not stack scroll locks.
	m.Dismiss(ReasonCloseControl)
	if !scroller.Scrollable() {
		t.Error("single dismiss after switching steps should unlock the page")
	}
}

func TestModal_DismissIsIdempotent(t *testing.T) {
	var events []Event
	scroller := &FlagScroller{}
	m := newTestModal(t, scroller, WithObserver(func(e Event) {
		events = append(events, e)
	}))

	m.Open(4)
	m.Dismiss(ReasonBackdrop)
	if m.Dismiss(ReasonEscape) {
		t.Error("second Dismiss() = true, want false")
	}
	m.Close()

	if len(events) != 2 {
		t.Fatalf("events = %v, want opened + one dismissal", events)
	}
	if events[1].Kind != EventDismissed || events[1].Reason != ReasonBackdrop || events[1].Step != 4 {
		t.Errorf("dismiss event = %+v", events[1])
	}
	if !scroller.Scrollable() {
		t.Error("page should be scrollable")
	}
}

func TestModal_FailsClosedOnMissingDetail(t *testing.T) {
	var events []Event
	scroller := &FlagScroller{}
	m := newTestModal(t, scroller, WithObserver(func(e Event) {
		events = append(events, e)
	}))

	if m.Open(42) {
		t.Error("Open(42) = true, want false")
	}
	if m.IsOpen() {
		t.Error("modal should stay closed")
	}
	if !scroller.Scrollable() {
		t.Error("rejected open must not lock the page")
	}

	// A bad request while open closes rather than showing stale content.
	m.Open(1)
	m.Open(0)
	if m.IsOpen() {
		t.Error("modal should be closed after a rejected open")
	}
	if !scroller.Scrollable() {
		t.Error("rejected open should release the lock")
	}

	if len(events) != 3 || events[0].Kind != EventRejected || events[2].Kind != EventRejected {
		t.Errorf("events = %v", events)
	}
}

func TestModal_StepFiveScenario(t *testing.T) {
	scroller := &FlagScroller{}
	m := newTestModal(t, scroller)
	defer m.Close()

	if !m.Open(5) {
		t.Fatal("Open(5) = false")
	}
	view, ok := m.View()
	if !ok {
		t.Fatal("View() reported nothing for step 5")
	}

	joined := strings.Join(view.Detail.Details, "|")
	for _, want := range []string{"Net Weight", "Quantity / Rate / Amount"} {
		if !strings.Contains(joined, want) {
			t.Errorf("details %q missing %q", joined, want)
		}
	}
	if !strings.Contains(view.Detail.WhatToFill, "Net Weight (First − Second)") {
		t.Errorf("WhatToFill = %q", view.Detail.WhatToFill)
	}

	m.Dismiss(ReasonEscape)
	if m.IsOpen() || !scroller.Scrollable() {
		t.Error("escape should return to the initial state")
	}
}

func TestLockScroll_ReleaseOnce(t *testing.T) {
	scroller := &FlagScroller{}
	release := LockScroll(scroller)
	if scroller.Scrollable() {
		t.Fatal("LockScroll should lock")
	}
	release()
	scroller.Locked = true
	release()
	if scroller.Scrollable() {
		t.Error("second release must not touch the scroller again")
	}
}

func TestParseReason(t *testing.T) {
	tests := []struct {
		in   string
		want Reason
		ok   bool
	}{
		{"close", ReasonCloseControl, true},
		{"backdrop", ReasonBackdrop, true},
		{"escape", ReasonEscape, true},
		{"teardown", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseReason(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseReason(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSelection_ClearIsNoOp(t *testing.T) {
	var s Selection
	s.Clear()
	if !s.IsEmpty() {
		t.Error("cleared zero selection should be empty")
	}
	s.Select(3)
	s.Clear()
	s.Clear()
	if n, ok := s.Current(); ok || n != 0 {
		t.Errorf("Current() = (%d, %v), want (0, false)", n, ok)
	}
}
