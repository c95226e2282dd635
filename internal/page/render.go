package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/selection"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Data is everything one page render needs.
type Data struct {
	Page         content.Page
	Steps        []content.FlowStep
	Destinations []content.Destination
	Images       []content.ScreenImage
	Fields       []content.DataField

	// Modal is nil while the popup is closed; nothing is rendered for it then.
	Modal *selection.View
	// ScrollLocked hides body overflow while the popup covers the page.
	ScrollLocked bool
	// LiveReload adds the websocket client that reloads the page on content change.
	LiveReload bool
	Generator  string
}

// Build assembles render data from the store and the current modal state.
func Build(store *content.Store, modal *selection.Modal, scroller selection.Scroller) Data {
	d := Data{
		Page:         store.Page(),
		Steps:        store.Steps(),
		Destinations: store.Destinations(),
		Images:       store.Images(),
		Fields:       store.Fields(),
	}
	if modal != nil {
		if v, ok := modal.View(); ok {
			d.Modal = &v
		}
	}
	if scroller != nil {
		d.ScrollLocked = !scroller.Scrollable()
	}
	return d
}

// Renderer renders the reference page from parsed, embedded templates.
// It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("weighguide").Funcs(template.FuncMap{
		"glyph": content.Glyph,
		"last": func(i, n int) bool {
			return i == n-1
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page. Output is buffered so that a template
// error never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, data Data) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the embedded stylesheet and scripts, rooted so that
// "style.css" is at the top level.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}
