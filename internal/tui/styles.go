package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/weighguide/internal/version"
)

// Application branding constants
const (
	AppName = "WEIGHING SYSTEM GUIDE"
	AppURL  = "github.com/muurk/weighguide"
)

// AppVersion returns the application version from the centralized version package.
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Narrowest layout we try to keep readable
	ModalWidth       = 64 // Preferred step popup width
	CardWidth        = 22 // Inner width of a flow step card
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#0F766E") // Teal
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	OdooColor      = lipgloss.Color("#7C3AED") // Purple
	ServerColor    = lipgloss.Color("#0284C7") // Blue
	WarningColor   = lipgloss.Color("#FFA500") // Orange

	TextColor   = lipgloss.Color("#FFFFFF")
	SubtleColor = lipgloss.Color("#626262")
	BorderColor = lipgloss.Color("#0F766E")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginTop(1)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1).
			Width(CardWidth)

	SelectedCardStyle = CardStyle.
				BorderForeground(SecondaryColor)

	StepNumberStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)

	CloseControlStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// destinationColor picks the accent for a destination card.
func destinationColor(id string) lipgloss.Color {
	switch id {
	case "odoo":
		return OdooColor
	case "server":
		return ServerColor
	default:
		return SubtleColor
	}
}

// BuildHeaderContent creates header content with app name and project URL.
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// Rows taken by RenderApplicationContainer around the content area:
// outer border (2), header with its rule (2), footer with its rule (2).
const containerChromeHeight = 6

// ContentSize returns the usable content area inside the container.
func ContentSize(terminalWidth, terminalHeight int) (int, int) {
	w := terminalWidth - 4
	h := terminalHeight - containerChromeHeight
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// RenderApplicationContainer wraps a screen with the header, a footer
// carrying help text, and an outer border that fills the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(SubtleStyle.Render(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// SafeModalWidth returns the smaller of requestedWidth and what the
// terminal can hold, never below a usable minimum.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 30 {
		maxWidth = 30
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}

// Rect is a screen area in cells.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ModalBounds returns where RenderModal places content of the given size.
// lipgloss.Place centres by putting floor(gap/2) cells before the content.
func ModalBounds(contentWidth, contentHeight, terminalWidth, terminalHeight int) Rect {
	x := (terminalWidth - contentWidth) / 2
	y := (terminalHeight - contentHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, Width: contentWidth, Height: contentHeight}
}

// RenderModal centres modalContent on a dimmed backdrop filling the terminal.
// Everything outside the content is backdrop.
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
