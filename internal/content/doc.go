// Package content holds the weighing-system reference content.
//
// The content (flow steps, per-step details, data fields, destinations and
// screenshots) is fixed reference data. A default document is compiled into
// the binary from weighing.yaml; an operator may point the server at another
// file with the same shape.
//
// # Loading
//
//	store, err := content.Open("")            // embedded content
//	store, err := content.Open("site.yaml")   // external file
//
// Every load runs Validate, which rejects documents whose step ordinals are
// not 1..N or whose steps and details do not pair up one to one. Errors wrap
// ErrInvalidContent and can be inspected as *ValidationError.
//
// # Immutability
//
// A Store never changes after construction and hands out copies. The server
// publishes the current Store through a Holder so that a content reload is a
// single atomic pointer swap.
package content
