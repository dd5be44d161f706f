package searchview

import (
	"fmt"
	"strconv"
	"strings"

	"advocate-directory/internal/delivery/dto"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	loadingText = "Refreshing results..."
	emptyTerm   = "—"
)

var columnTitles = []string{
	"First Name",
	"Last Name",
	"City",
	"Degree",
	"Specialties",
	"Years of Experience",
	"Phone Number",
}

// columns shares the terminal width out between the table columns, giving
// the specialties column whatever is left.
func columns(width int) []table.Column {
	widths := []int{12, 12, 14, 8, 30, 19, 12}
	if width > 0 {
		fixed := 0
		for i, w := range widths {
			if i != 4 {
				fixed += w + 2
			}
		}
		if rest := width - fixed - 2; rest > widths[4] {
			widths[4] = rest
		}
	}

	cols := make([]table.Column, len(columnTitles))
	for i, title := range columnTitles {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

func advocateRow(advocate dto.AdvocateResponse) table.Row {
	return table.Row{
		advocate.FirstName,
		advocate.LastName,
		advocate.City,
		advocate.Degree,
		strings.Join(advocate.Specialties, ", "),
		strconv.Itoa(advocate.YearsOfExperience),
		strconv.FormatInt(advocate.PhoneNumber, 10),
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Solace Advocates"))
	b.WriteString("\n")

	b.WriteString(m.styles.Label.Render("Search: "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	term := strings.TrimSpace(m.state.Search)
	if term == "" {
		term = emptyTerm
	}
	b.WriteString(m.styles.Muted.Render("Searching for: "))
	b.WriteString(m.styles.Strong.Render(term))
	b.WriteString("\n\n")

	switch {
	case m.state.Loading:
		b.WriteString(m.styles.Muted.Render(loadingText))
	case m.state.Err != nil:
		b.WriteString(m.styles.Error.Render("Could not load advocates"))
	}
	b.WriteString("\n")

	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	b.WriteString(m.pager())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("Link: " + m.link))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("pgup/ctrl+p prev • pgdown/ctrl+n next • ctrl+r reset • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) pager() string {
	prev := m.styles.Button.Render("Prev")
	if !m.state.CanPrev() {
		prev = m.styles.Disabled.Render("Prev")
	}
	next := m.styles.Button.Render("Next")
	if !m.state.CanNext() {
		next = m.styles.Disabled.Render("Next")
	}

	status := fmt.Sprintf("Page %s of %s",
		m.styles.Strong.Render(strconv.Itoa(m.state.Page)),
		m.styles.Strong.Render(strconv.Itoa(m.state.TotalPages)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "  "+status+"  ", next)
}
