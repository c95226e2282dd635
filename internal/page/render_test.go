package page

import (
	"bytes"
	"html"
	"io/fs"
	"strconv"
	"strings"
	"testing"

	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/selection"
)

func render(t *testing.T, step int) string {
	t.Helper()
	store, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	scroller := &selection.FlagScroller{}
	modal := selection.NewModal(store, scroller)
	defer modal.Close()
	if step > 0 {
		modal.Open(step)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, Build(store, modal, scroller)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestRender_ClosedHasNoModal(t *testing.T) {
	out := render(t, 0)

	for _, unwanted := range []string{`id="step-modal"`, `role="dialog"`, "escape.js", "overflow:hidden"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("closed page contains %q", unwanted)
		}
	}
}

func TestRender_Metadata(t *testing.T) {
	out := render(t, 0)

	wants := []string{
		`<html lang="en">`,
		"<title>Weighing System – Flow &amp; Data</title>",
		`content="Weighing system flow diagram and data reference"`,
		"viewport-fit=cover",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRender_FlowCards(t *testing.T) {
	out := render(t, 0)

	for n := 1; n <= 8; n++ {
		if !strings.Contains(out, `href="/?step=`+strconv.Itoa(n)+`#flow"`) {
			t.Errorf("missing card link for step %d", n)
		}
	}
	// Arrows go between cards only.
	if got := strings.Count(out, `class="flow-arrow"`); got != 7 {
		t.Errorf("arrow count = %d, want 7", got)
	}
	if strings.Index(out, "Step 1<") > strings.Index(out, "Step 8<") {
		t.Error("steps should render in ordinal order")
	}
}

func TestRender_StepFiveModal(t *testing.T) {
	out := render(t, 5)

	wants := []string{
		`id="step-modal"`,
		"Step 5: Net weight</h3>",
		`<p class="modal-description">First − Second = Net</p>`,
		"In this section – details",
		"What should be filled",
		"See screen (based on image data)",
		"Net Weight",
		"Quantity / Rate / Amount",
		"Net Weight (First − Second)",
		"dismiss=close",
		"dismiss=backdrop",
		"dismiss=escape",
		"escape.js",
		`<body style="overflow:hidden">`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("open page missing %q", want)
		}
	}
	if got := strings.Count(out, `id="step-modal"`); got != 1 {
		t.Errorf("modal count = %d, want 1", got)
	}
}

func TestRender_SectionHeadings(t *testing.T) {
	out := render(t, 0)

	headings := []string{
		"<h2>What is happening (flow)</h2>",
		"<h2>Where stored data goes</h2>",
		"<h2>Screens – where truck and data are filled</h2>",
		"<h2>What kind of data and details</h2>",
	}
	last := -1
	for _, h := range headings {
		i := strings.Index(out, h)
		if i < 0 {
			t.Errorf("page missing %q", h)
			continue
		}
		if i < last {
			t.Errorf("%q is out of order", h)
		}
		last = i
	}
}

func TestRender_OdooHasNoPaymentBlock(t *testing.T) {
	out := render(t, 0)

	start := strings.Index(out, `class="destination destination-odoo"`)
	end := strings.Index(out, `class="destination destination-server"`)
	if start < 0 || end < 0 || end < start {
		t.Fatalf("destination cards not found in order (odoo=%d, server=%d)", start, end)
	}
	odoo := out[start:end]
	server := out[end:]

	if strings.Contains(odoo, "Mode of payment") || strings.Contains(odoo, "payment-modes") {
		t.Error("odoo card should have no payment block")
	}
	if !strings.Contains(server, "Mode of payment") {
		t.Error("server card should have a payment block")
	}
	if got := strings.Count(out, `class="payment-mode"`); got != 3 {
		t.Errorf("payment mode count = %d, want 3", got)
	}
}

func TestRender_SampleRecordVerbatim(t *testing.T) {
	store, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, 0)

	var sample *content.ScreenData
	for _, img := range store.Images() {
		if img.Data != nil {
			sample = img.Data
		}
	}
	if sample == nil {
		t.Fatal("no image carries sample data")
	}

	for _, f := range sample.Fields() {
		want := `<dd class="field-` + f.Key + `">` + html.EscapeString(f.Value) + "</dd>"
		if !strings.Contains(out, want) {
			t.Errorf("sample field %s: missing %q", f.Key, want)
		}
	}
	if !strings.Contains(out, `<dd class="field-srNo">9113</dd>`) {
		t.Error("srNo should render as 9113")
	}
	if got := strings.Count(out, "Data from this screen (when truck leaves)"); got != 1 {
		t.Errorf("data card count = %d, want 1", got)
	}
}

func TestRender_FieldTable(t *testing.T) {
	out := render(t, 0)

	if !strings.Contains(out, "<th>Field</th><th>Where it is filled</th><th>Meaning</th>") {
		t.Error("field table header missing")
	}
	if got := strings.Count(out, "<tr><td>"); got != 13 {
		t.Errorf("field rows = %d, want 13", got)
	}
}

func TestRender_LiveReloadScript(t *testing.T) {
	store, _ := content.Default()
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	data := Build(store, nil, nil)

	var without, with bytes.Buffer
	_ = r.Render(&without, data)
	data.LiveReload = true
	_ = r.Render(&with, data)

	if strings.Contains(without.String(), "livereload.js") {
		t.Error("live reload script present when disabled")
	}
	if !strings.Contains(with.String(), "livereload.js") {
		t.Error("live reload script missing when enabled")
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"style.css", "escape.js", "livereload.js"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("Static() missing %s: %v", name, err)
		}
	}
}
