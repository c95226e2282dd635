// Package page renders the weighing reference as a single HTML document.
//
// The page has four sections (flow diagram, destinations, screenshot
// gallery, field table) and, while a step is selected, the step detail
// popup. Every section is a template component reading from a
// content.Store; the popup reads from a selection.Modal.
//
// The page is rendered on the server. Step cards link to "?step=N"; the
// close control, the backdrop and the escape key listener link to
// "?step=N&dismiss=<reason>" so the host can record which trigger closed
// the popup. When the popup is closed the rendered page contains no popup
// markup and no key listener.
package page
