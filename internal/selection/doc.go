// Package selection implements the step detail popup state.
//
// The only mutable value on the page is which flow step's detail is open.
// Selection holds it; Modal wraps it in a two-state machine:
//
//	Closed --Open(n)--> Open(n) --Open(m)--> Open(m)
//	Open(n) --Dismiss(close|backdrop|escape)--> Closed
//	Open(n) --Close() (teardown)--> Closed
//
// Three independent dismissal triggers converge on the same transition,
// and dismissing a closed modal is a no-op, so duplicate signals are safe.
//
// # Scroll lock
//
// While open, the surface behind the modal must not scroll on its own.
// LockScroll switches a Scroller off and returns a release function that
// restores the exact prior state; Modal acquires it on the first Open and
// releases it on every transition back to Closed.
//
// # Fail closed
//
// A step ordinal without a detail record never renders: Open returns false
// and View reports nothing to show.
package selection
