package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// CheckStatus is the outcome of one check.
type CheckStatus int

const (
	CheckPending CheckStatus = iota // Not run, usually because an earlier check failed
	CheckPassed
	CheckFailed
)

// Check is one line of a checklist.
type Check struct {
	Name    string
	Status  CheckStatus
	Message string // Optional note (e.g., "8 steps")
}

// Checklist shows a list of checks with a bar for the passed fraction.
type Checklist struct {
	Label  string
	Checks []Check
	Width  int
	bar    progress.Model
}

// NewChecklist creates an empty checklist.
func NewChecklist(label string) *Checklist {
	c := &Checklist{Label: label}
	return c.SetWidth(GetTerminalWidth())
}

// SetWidth sets the terminal width and resizes the bar to fit.
func (c *Checklist) SetWidth(width int) *Checklist {
	c.Width = width
	barWidth := width - 20 // Leave room for percentage and count
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	c.bar = progress.New(
		progress.WithGradient(string(PrimaryColor), string(SuccessColor)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return c
}

// Pass records a passed check.
func (c *Checklist) Pass(name, message string) {
	c.Checks = append(c.Checks, Check{Name: name, Status: CheckPassed, Message: message})
}

// Fail records a failed check.
func (c *Checklist) Fail(name, message string) {
	c.Checks = append(c.Checks, Check{Name: name, Status: CheckFailed, Message: message})
}

// Skip records a check that was not run.
func (c *Checklist) Skip(name string) {
	c.Checks = append(c.Checks, Check{Name: name, Status: CheckPending})
}

// Passed returns how many checks passed.
func (c *Checklist) Passed() int {
	n := 0
	for _, ch := range c.Checks {
		if ch.Status == CheckPassed {
			n++
		}
	}
	return n
}

// OK reports whether every check passed.
func (c *Checklist) OK() bool {
	return len(c.Checks) > 0 && c.Passed() == len(c.Checks)
}

// Percent returns the passed fraction in 0..1.
func (c *Checklist) Percent() float64 {
	if len(c.Checks) == 0 {
		return 0
	}
	return float64(c.Passed()) / float64(len(c.Checks))
}

// Render returns the styled checklist as a string.
func (c *Checklist) Render() string {
	var b strings.Builder

	if c.Label != "" {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(c.Label))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(fmt.Sprintf("%s  %3.0f%%  [%d/%d]",
		c.bar.ViewAs(c.Percent()), c.Percent()*100, c.Passed(), len(c.Checks))))
	b.WriteString("\n\n")

	lines := make([]string, 0, len(c.Checks))
	for i, ch := range c.Checks {
		lines = append(lines, c.renderCheck(i+1, ch))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// renderCheck renders a single check line.
func (c *Checklist) renderCheck(n int, ch Check) string {
	var marker string
	var style lipgloss.Style
	switch ch.Status {
	case CheckPassed:
		marker, style = PassMarker, CheckPassStyle
	case CheckFailed:
		marker, style = FailureMarker, ErrorTitleStyle
	default:
		marker, style = SkipMarker, CheckSkipStyle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  [%d/%d] ", n, len(c.Checks)))
	b.WriteString(style.Render(ch.Name))

	// Keep the marker in a consistent column
	padding := 36 - lipgloss.Width(ch.Name)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(style.Render(marker))

	if ch.Message != "" {
		b.WriteString("  ")
		b.WriteString(CheckNoteStyle.Render("(" + ch.Message + ")"))
	}
	return b.String()
}

// String implements fmt.Stringer.
func (c *Checklist) String() string {
	return c.Render()
}
