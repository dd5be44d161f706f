package searchview

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent   = lipgloss.Color("#2563EB")
	muted    = lipgloss.Color("#6B7280")
	disabled = lipgloss.Color("#D1D5DB")
	failure  = lipgloss.Color("#DC2626")
	border   = lipgloss.Color("#E5E7EB")
)

type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Strong   lipgloss.Style
	Error    lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Table    table.Styles
}

func DefaultStyles() Styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border).
		BorderBottom(true).
		Bold(true)
	// The table is display-only; no row is highlighted.
	tableStyles.Selected = lipgloss.NewStyle()

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Label:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Strong:   lipgloss.NewStyle().Bold(true),
		Error:    lipgloss.NewStyle().Foreground(failure),
		Button:   lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		Disabled: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(disabled).Foreground(disabled),
		Table:    tableStyles,
	}
}
