package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/weighguide/internal/content"
)

func defaultStore(t *testing.T) *content.Store {
	t.Helper()
	store, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	return store
}

func TestRenderDestination_PaymentBlock(t *testing.T) {
	store := defaultStore(t)

	for _, d := range store.Destinations() {
		got := strings.Contains(renderDestination(d, 60), "Mode of payment")
		if got != d.HasPaymentModes() {
			t.Errorf("destination %q: payment block shown = %v, want %v", d.ID, got, d.HasPaymentModes())
		}
	}
}

func TestRenderFlow_Arrows(t *testing.T) {
	store := defaultStore(t)
	steps := store.Steps()

	// Wide enough for every card on one row.
	out := renderFlow(steps, 0, 400)
	if got := strings.Count(out, "→"); got != len(steps)-1 {
		t.Errorf("arrows = %d, want %d", got, len(steps)-1)
	}
	for _, s := range steps {
		if !strings.Contains(out, s.Title) {
			t.Errorf("flow missing step %q", s.Title)
		}
	}
}

func TestRenderPage_Sections(t *testing.T) {
	out := renderPage(defaultStore(t), 0, 120)

	for _, want := range []string{
		"What is happening (flow)",
		"Where stored data goes",
		"Screens – where truck and data are filled",
		"What kind of data and details",
		"Data from this screen (when truck leaves)",
		"9113",
		"AL JAMEEL INTERNATIONAL",
		"Where it is filled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(out, "What should be filled") {
		t.Error("page should not contain popup content")
	}
}

func TestModalBounds(t *testing.T) {
	tests := []struct {
		name   string
		cw, ch int
		tw, th int
		want   Rect
	}{
		{"even gap", 20, 10, 100, 40, Rect{X: 40, Y: 15, Width: 20, Height: 10}},
		{"odd gap", 21, 11, 100, 40, Rect{X: 39, Y: 14, Width: 21, Height: 11}},
		{"too large", 120, 50, 100, 40, Rect{X: 0, Y: 0, Width: 120, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModalBounds(tt.cw, tt.ch, tt.tw, tt.th); got != tt.want {
				t.Errorf("ModalBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModalBounds_MatchesRenderModal(t *testing.T) {
	box := lipgloss.NewStyle().Width(7).Height(3).Background(lipgloss.Color("1")).Render("#######\n#######\n#######")
	out := strings.Split(RenderModal(box, 30, 12), "\n")
	r := ModalBounds(lipgloss.Width(box), lipgloss.Height(box), 30, 12)

	if len(out) != 12 {
		t.Fatalf("rendered height = %d, want 12", len(out))
	}
	for y, line := range out {
		hasContent := strings.Contains(line, "#")
		if hasContent != (y >= r.Y && y < r.Y+r.Height) {
			t.Errorf("row %d: content = %v, bounds %+v", y, hasContent, r)
		}
	}
}

func TestSafeModalWidth(t *testing.T) {
	tests := []struct {
		requested, terminal, want int
	}{
		{64, 100, 64},
		{64, 50, 46},
		{64, 10, 30},
	}
	for _, tt := range tests {
		if got := SafeModalWidth(tt.requested, tt.terminal); got != tt.want {
			t.Errorf("SafeModalWidth(%d, %d) = %d, want %d", tt.requested, tt.terminal, got, tt.want)
		}
	}
}
