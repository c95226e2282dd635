package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/weighguide/internal/content"
	"github.com/muurk/weighguide/internal/selection"
)

// renderPage renders the scrollable page: flow diagram, destinations,
// screenshots and the field table. cursor is the index of the focused card.
func renderPage(store *content.Store, cursor, width int) string {
	p := store.Page()
	wrap := lipgloss.NewStyle().Width(width)

	sections := []string{
		TitleStyle.Render(p.Title),
		wrap.Render(SubtleStyle.Render(p.FlowIntro)),
		SectionStyle.Render(p.FlowHeading),
		renderFlow(store.Steps(), cursor, width),
		SectionStyle.Render(p.DestinationsHeading),
		wrap.Render(SubtleStyle.Render(p.DestinationsIntro)),
		renderDestinations(store.Destinations(), width),
		SectionStyle.Render(p.ScreensHeading),
		wrap.Render(SubtleStyle.Render(p.ScreensIntro)),
		renderGallery(store.Images(), width),
		SectionStyle.Render(p.FieldsHeading),
		wrap.Render(SubtleStyle.Render(p.FieldsIntro)),
		renderFieldTable(store.Fields(), width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCard renders one flow step card.
func renderCard(s content.FlowStep, selected bool) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		StepNumberStyle.Render(fmt.Sprintf("Step %d", s.Step)),
		HeadingStyle.Render(content.Glyph(s.Icon)+" "+s.Title),
		SubtleStyle.Render(s.Description),
	))
}

// renderFlow lays the cards out in rows that fit width, with an arrow
// after every card but the last.
func renderFlow(steps []content.FlowStep, cursor, width int) string {
	const arrow = " → "
	cardOuter := CardWidth + 2
	perRow := (width + len([]rune(arrow))) / (cardOuter + len([]rune(arrow)))
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(steps); start += perRow {
		end := min(start+perRow, len(steps))
		var cells []string
		for i := start; i < end; i++ {
			card := renderCard(steps[i], i == cursor)
			cells = append(cells, card)
			if i < len(steps)-1 {
				h := lipgloss.Height(card)
				cells = append(cells, lipgloss.PlaceVertical(h, lipgloss.Center, SubtleStyle.Render(arrow)))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDestination renders one destination card. The payment block is
// only present when the destination has payment modes.
func renderDestination(d content.Destination, width int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(destinationColor(d.ID)).Bold(true).
			Render(content.Glyph(d.Icon) + " " + d.Title),
		SubtleStyle.Render(d.Description),
		"",
	}
	for _, u := range d.Uses {
		lines = append(lines, "• "+u)
	}
	if d.HasPaymentModes() {
		modes := make([]string, 0, len(d.PaymentModes))
		for _, pm := range d.PaymentModes {
			modes = append(modes, content.Glyph(pm.Icon)+" "+pm.Label)
		}
		lines = append(lines, "", HeadingStyle.Render("Mode of payment"), strings.Join(modes, "   "))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(destinationColor(d.ID)).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderDestinations places the cards side by side when there is room.
func renderDestinations(dests []content.Destination, width int) string {
	if len(dests) == 0 {
		return ""
	}
	if width >= 2*40 {
		cardWidth := width/len(dests) - 2
		cards := make([]string, 0, len(dests))
		for _, d := range dests {
			cards = append(cards, renderDestination(d, cardWidth))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	cards := make([]string, 0, len(dests))
	for _, d := range dests {
		cards = append(cards, renderDestination(d, width-2))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderGallery lists the screenshots. The terminal cannot show the images,
// so each entry shows its label, what to look for, and the file.
func renderGallery(images []content.ScreenImage, width int) string {
	blocks := make([]string, 0, len(images))
	wrap := lipgloss.NewStyle().Width(width).PaddingLeft(2)
	for _, img := range images {
		lines := []string{
			HeadingStyle.Render("▣ " + img.Label),
			wrap.Render(img.Highlight),
			wrap.Render(SubtleStyle.Render(img.Src)),
		}
		if img.Data != nil {
			lines = append(lines, renderScreenData(*img.Data))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderScreenData renders a sample record. Values are shown verbatim.
func renderScreenData(d content.ScreenData) string {
	fields := d.Fields()
	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}

	lines := []string{HeadingStyle.Render("Data from this screen (when truck leaves)")}
	for _, f := range fields {
		value := f.Value
		if f.Key == "status" {
			value = StatusValueStyle.Render(value)
		}
		label := SubtleStyle.Render(fmt.Sprintf("%-*s", labelWidth, f.Label))
		lines = append(lines, label+"  "+value)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(PrimaryColor).
		MarginLeft(2).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}

// renderFieldTable renders the field reference with lipgloss/table.
func renderFieldTable(fields []content.DataField, width int) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Field, f.Where, f.Meaning})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SubtleColor)).
		Headers("Field", "Where it is filled", "Meaning").
		Rows(rows...).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
	return t.Render()
}

// renderModalContent renders the step popup body.
func renderModalContent(v selection.View, helpText string, terminalWidth int) string {
	width := SafeModalWidth(ModalWidth, terminalWidth)
	inner := width - 4 // padding

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(inner-3).Render(
			StepNumberStyle.Render(fmt.Sprintf("%s Step %d: %s", content.Glyph(v.Step.Icon), v.Step.Step, v.Step.Title)),
		),
		CloseControlStyle.Render("[x]"),
	)

	wrap := lipgloss.NewStyle().Width(inner)
	lines := []string{
		header,
		wrap.Render(SubtleStyle.Render(v.Step.Description)),
		"",
		HeadingStyle.Render("In this section – details"),
	}
	for _, d := range v.Detail.Details {
		lines = append(lines, wrap.Render("• "+d))
	}
	lines = append(lines,
		"",
		HeadingStyle.Render("What should be filled"),
		wrap.Render(v.Detail.WhatToFill),
		"",
		HeadingStyle.Render("See screen (based on image data)"),
		wrap.Render(SubtleStyle.Render(v.Detail.ImageLabel)),
	)
	if helpText != "" {
		lines = append(lines, "", wrap.Render(helpText))
	}

	return ModalStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
