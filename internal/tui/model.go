package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/logging"
	"github.com/muurk/weighguide/internal/selection"
)

// viewportScroller gates the page viewport. While it is locked the page
// ignores scroll keys and the mouse wheel.
type viewportScroller struct {
	enabled bool
}

// Scrollable implements selection.Scroller.
func (s *viewportScroller) Scrollable() bool {
	return s.enabled
}

// SetScrollable implements selection.Scroller.
func (s *viewportScroller) SetScrollable(v bool) {
	s.enabled = v
}

// BrowseModel is the terminal rendition of the reference page.
type BrowseModel struct {
	store    *content.Store
	modal    *selection.Modal
	scroller *viewportScroller
	viewport viewport.Model

	// Cursor is the index of the focused flow card.
	Cursor int

	// UI state
	Width  int
	Height int
	ready  bool

	Help help.Model
	Keys browseKeyMap
}

// NewBrowseModel creates the model with the popup closed.
func NewBrowseModel(store *content.Store) BrowseModel {
	scroller := &viewportScroller{enabled: true}
	return BrowseModel{
		store:    store,
		scroller: scroller,
		modal: selection.NewModal(store, scroller, selection.WithObserver(func(e selection.Event) {
			reason := ""
			if e.Kind == selection.EventDismissed {
				reason = e.Reason.String()
			}
			logging.LogModalEvent("tui", e.Kind.String(), e.Step, reason)
		})),
		Help: help.New(),
		Keys: newBrowseKeyMap(),
	}
}

// Modal returns the popup state machine.
func (m BrowseModel) Modal() *selection.Modal {
	return m.modal
}

// Scrollable reports whether the page currently accepts scrolling.
func (m BrowseModel) Scrollable() bool {
	return m.scroller.Scrollable()
}

// YOffset returns the page scroll position.
func (m BrowseModel) YOffset() int {
	return m.viewport.YOffset
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		w, h := ContentSize(msg.Width, msg.Height)
		if !m.ready {
			m.viewport = viewport.New(w, h)
			m.viewport.MouseWheelEnabled = true
			m.ready = true
		} else {
			m.viewport.Width = w
			m.viewport.Height = h
		}
		m.Help.Width = w
		m.refreshPage()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		if m.modal.IsOpen() {
			return m.updateModal(msg)
		}
		return m.updatePage(msg)

	case tea.MouseMsg:
		if m.modal.IsOpen() {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
				!m.ModalBox().Contains(msg.X, msg.Y) {
				m.modal.Dismiss(selection.ReasonBackdrop)
			}
			return m, nil
		}
		return m.forwardToViewport(msg)
	}

	return m, nil
}

// updateModal handles keys while the popup is open. Scrolling is locked;
// stepping left or right replaces the popup content in place.
func (m BrowseModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Escape):
		m.modal.Dismiss(selection.ReasonEscape)
	case key.Matches(msg, m.Keys.Close):
		m.modal.Dismiss(selection.ReasonCloseControl)
	case key.Matches(msg, m.Keys.Prev):
		m.moveCursor(-1)
		m.refreshPage()
		m.modal.Open(m.currentStep())
	case key.Matches(msg, m.Keys.Next):
		m.moveCursor(1)
		m.refreshPage()
		m.modal.Open(m.currentStep())
	}
	return m, nil
}

func (m BrowseModel) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Prev):
		m.moveCursor(-1)
		m.refreshPage()
		return m, nil
	case key.Matches(msg, m.Keys.Next):
		m.moveCursor(1)
		m.refreshPage()
		return m, nil
	case key.Matches(msg, m.Keys.Open):
		m.modal.Open(m.currentStep())
		return m, nil
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	case key.Matches(msg, m.Keys.Up), key.Matches(msg, m.Keys.Down):
		return m.forwardToViewport(msg)
	}
	return m, nil
}

func (m BrowseModel) forwardToViewport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.ready || !m.scroller.Scrollable() {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *BrowseModel) moveCursor(delta int) {
	n := len(m.store.Steps())
	if n == 0 {
		return
	}
	m.Cursor = (m.Cursor + delta + n) % n
}

func (m BrowseModel) currentStep() int {
	steps := m.store.Steps()
	if m.Cursor < 0 || m.Cursor >= len(steps) {
		return 0
	}
	return steps[m.Cursor].Step
}

func (m *BrowseModel) refreshPage() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderPage(m.store, m.Cursor, m.viewport.Width))
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if !m.ready {
		return "Loading…"
	}

	if v, ok := m.modal.View(); ok {
		return RenderModal(m.modalContent(v), m.Width, m.Height)
	}

	return RenderApplicationContainer(m.viewport.View(), m.Help.View(m.Keys), m.Width, m.Height)
}

// ModalBox returns where the popup is drawn for the current state, or an
// empty Rect when it is closed.
func (m BrowseModel) ModalBox() Rect {
	v, ok := m.modal.View()
	if !ok {
		return Rect{}
	}
	box := m.modalContent(v)
	return ModalBounds(lipgloss.Width(box), lipgloss.Height(box), m.Width, m.Height)
}

func (m BrowseModel) modalContent(v selection.View) string {
	return renderModalContent(v, m.Help.View(m.Keys.modal()), m.Width)
}
