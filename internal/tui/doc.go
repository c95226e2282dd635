// Package tui is the terminal rendition of the weighing reference page.
//
// The page (flow cards, destinations, screenshot list and field table) sits
// in a scrollable viewport. Selecting a card and pressing enter opens the
// step popup, drawn centred over a dimmed backdrop.
//
// # Closing the popup
//
//	x            close control
//	esc          escape key
//	mouse click  anywhere outside the popup (backdrop)
//
// While the popup is open the viewport behind it does not scroll. Left and
// right switch the popup to the neighbouring step without closing it.
//
// # Usage Example
//
//	store, _ := content.Default()
//	if err := tui.Run(ctx, store, tui.Options{Mouse: true}); err != nil {
//	    return err
//	}
package tui
