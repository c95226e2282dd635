package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/muurk/weighguide/internal/content"
)

func newTestModel(t *testing.T) BrowseModel {
	t.Helper()
	store, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	m := NewBrowseModel(store)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(BrowseModel)
}

func send(m BrowseModel, msgs ...tea.Msg) BrowseModel {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(BrowseModel)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyX     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestBrowse_InitiallyClosed(t *testing.T) {
	m := newTestModel(t)

	if m.Modal().IsOpen() {
		t.Error("popup should start closed")
	}
	if strings.Contains(m.View(), "In this section – details") {
		t.Error("closed view should contain no popup")
	}
	if !m.Scrollable() {
		t.Error("page should scroll while closed")
	}
	if (m.ModalBox() != Rect{}) {
		t.Errorf("ModalBox() = %+v, want empty", m.ModalBox())
	}
}

func TestBrowse_StepFiveThenEscape(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keyRight, keyRight, keyRight, keyRight, keyEnter)

	n, ok := m.Modal().Selection().Current()
	if !ok || n != 5 {
		t.Fatalf("selection = (%d, %v), want (5, true)", n, ok)
	}
	view := m.View()
	for _, want := range []string{"Step 5: Net weight", "First − Second = Net", "Net Weight", "Quantity / Rate / Amount", "Net Weight (First − Second)"} {
		if !strings.Contains(view, want) {
			t.Errorf("popup missing %q", want)
		}
	}
	if m.Scrollable() {
		t.Error("page should be locked while the popup is open")
	}

	m = send(m, keyEsc)
	if m.Modal().IsOpen() {
		t.Error("esc should close the popup")
	}
	if strings.Contains(m.View(), "What should be filled") {
		t.Error("closed view should contain no popup")
	}
	if !m.Scrollable() {
		t.Error("page should scroll again after esc")
	}
}

func TestBrowse_DismissPaths(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"close control", keyX},
		{"escape", keyEsc},
		{"backdrop", click(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(newTestModel(t), keyEnter)
			if !m.Modal().IsOpen() {
				t.Fatal("enter should open the popup")
			}

			m = send(m, tt.msg)
			if m.Modal().IsOpen() {
				t.Errorf("%s should close the popup", tt.name)
			}
			if !m.Modal().Selection().IsEmpty() {
				t.Error("selection should be empty")
			}
			if !m.Scrollable() {
				t.Error("page should scroll again")
			}
		})
	}
}

func TestBrowse_ClickInsidePopupKeepsItOpen(t *testing.T) {
	m := send(newTestModel(t), keyEnter)
	box := m.ModalBox()
	if box.Width == 0 || box.Height == 0 {
		t.Fatalf("ModalBox() = %+v, want non-empty", box)
	}

	m = send(m, click(box.X+box.Width/2, box.Y+box.Height/2))
	if !m.Modal().IsOpen() {
		t.Error("click inside the popup should not dismiss it")
	}

	m = send(m, click(box.X+box.Width, box.Y))
	if m.Modal().IsOpen() {
		t.Error("click just right of the popup should dismiss it")
	}
}

func TestBrowse_SwitchStepWhileOpen(t *testing.T) {
	m := send(newTestModel(t), keyRight, keyEnter, keyRight, keyRight, keyRight, keyRight)

	n, ok := m.Modal().Selection().Current()
	if !ok || n != 6 {
		t.Errorf("selection = (%d, %v), want (6, true)", n, ok)
	}

	// One dismissal unlocks the page regardless of how many steps were shown.
	m = send(m, keyX)
	if !m.Scrollable() {
		t.Error("page should scroll after a single dismissal")
	}

	m = send(m, keyLeft)
	if m.Cursor != 4 {
		t.Errorf("Cursor = %d, want 4", m.Cursor)
	}
}

func TestBrowse_SwitchStepWhileOpenMovesHighlight(t *testing.T) {
	// The focused card is only distinguishable with colours.
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(prev)

	m := newTestModel(t)
	m = send(m, keyEnter, keyRight, keyRight, keyRight, keyEsc)

	if m.Cursor != 3 {
		t.Fatalf("Cursor = %d, want 3", m.Cursor)
	}
	fresh := m
	fresh.refreshPage()
	if got, want := m.viewport.View(), fresh.viewport.View(); got != want {
		t.Errorf("page after dismissal does not highlight card %d", m.Cursor+1)
	}

	unmoved := send(newTestModel(t))
	if unmoved.viewport.View() == m.viewport.View() {
		t.Error("highlight did not move away from the first card")
	}
}

func TestBrowse_ScrollLock(t *testing.T) {
	m := newTestModel(t)

	m = send(m, keyDown)
	if m.YOffset() != 1 {
		t.Fatalf("YOffset() after down = %d, want 1", m.YOffset())
	}

	m = send(m, keyEnter, keyDown, keyDown,
		tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.YOffset() != 1 {
		t.Errorf("YOffset() while open = %d, want 1 (locked)", m.YOffset())
	}

	m = send(m, keyEsc, keyDown)
	if m.YOffset() != 2 {
		t.Errorf("YOffset() after close = %d, want 2", m.YOffset())
	}
}

func TestBrowse_CursorWraps(t *testing.T) {
	m := send(newTestModel(t), keyLeft)
	if m.Cursor != 7 {
		t.Errorf("Cursor = %d, want 7", m.Cursor)
	}
	m = send(m, keyRight)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
}

func TestBrowse_Quit(t *testing.T) {
	m := send(newTestModel(t), keyEnter)
	_, cmd := m.Update(keyQ)
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBrowse_NotReady(t *testing.T) {
	store, _ := content.Default()
	m := NewBrowseModel(store)
	if m.View() != "Loading…" {
		t.Errorf("View() before size = %q", m.View())
	}
	// Scrolling before the first size message must not panic.
	send(m, keyDown)
}
