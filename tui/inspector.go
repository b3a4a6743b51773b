package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/x11tap/x11tap/clipboard"
)

func (m Model) updateInspect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if msg.String() == "ctrl+c" {
			m.unsub()
			return m, tea.Quit
		}
		m.view = viewList
		return m, nil
	case "c":
		if rec := m.cursorRecord(); rec != nil {
			_ = clipboard.CopySelection(context.Background(), rec.Line, clipboard.Clipboard)
		}
		return m, nil
	case "C":
		if rec := m.cursorRecord(); rec != nil {
			_ = clipboard.CopySelection(context.Background(), rec.Line, clipboard.Primary)
		}
		return m, nil
	case "j", "down":
		maxScroll := max(len(m.inspectLines())-m.inspectVisibleRows(), 0)
		if m.inspectScroll < maxScroll {
			m.inspectScroll++
		}
		return m, nil
	case "k", "up":
		if m.inspectScroll > 0 {
			m.inspectScroll--
		}
		return m, nil
	}
	return m, nil
}

func (m Model) inspectLines() []string {
	rec := m.cursorRecord()
	if rec == nil {
		return nil
	}
	var lines []string
	lines = append(lines, "Conn:      "+fmt.Sprintf("%d", rec.ConnID))
	lines = append(lines, "Direction: "+rec.Direction)
	lines = append(lines, "Kind:      "+rec.Kind)
	lines = append(lines, "Name:      "+rec.Name)
	lines = append(lines, fmt.Sprintf("Code:      %d", rec.Code))
	if rec.HasSeq {
		lines = append(lines, fmt.Sprintf("Seq:       %d", rec.Seq))
	}
	lines = append(lines, fmt.Sprintf("Bytes:     %d", rec.Bytes))
	lines = append(lines, "")
	lines = append(lines, "Body:")
	for l := range strings.SplitSeq(rec.Body, "\n") {
		lines = append(lines, "  "+l)
	}
	return lines
}

func (m Model) inspectVisibleRows() int {
	return max(m.height-2, 3) // -2 for top/bottom border
}

func (m Model) renderInspector() string {
	innerWidth := max(m.width-4, 20)
	visibleRows := m.inspectVisibleRows()

	lines := m.inspectLines()
	if lines == nil {
		return ""
	}

	maxScroll := max(len(lines)-visibleRows, 0)
	if m.inspectScroll > maxScroll {
		m.inspectScroll = maxScroll
	}

	end := min(m.inspectScroll+visibleRows, len(lines))
	visible := lines[m.inspectScroll:end]
	content := strings.Join(visible, "\n")

	borderColor := lipgloss.Color("240")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(innerWidth).
		BorderForeground(borderColor).
		Render(content)

	boxLines := strings.Split(box, "\n")
	if len(boxLines) > 0 {
		borderFg := lipgloss.NewStyle().Foreground(borderColor)
		titleStyle := lipgloss.NewStyle().Bold(true)
		title := " Inspector "
		dashes := max(innerWidth-len([]rune(title)), 0)
		boxLines[0] = borderFg.Render("╭") +
			titleStyle.Render(title) +
			borderFg.Render(strings.Repeat("─", dashes)+"╮")
	}

	if n := len(boxLines); n > 0 {
		borderFg := lipgloss.NewStyle().Foreground(borderColor)
		help := " q: back  j/k: scroll  c: copy line "
		dashes := max(innerWidth-len([]rune(help)), 0)
		boxLines[n-1] = borderFg.Render("╰") +
			lipgloss.NewStyle().Faint(true).Render(help) +
			borderFg.Render(strings.Repeat("─", dashes)+"╯")
	}

	return strings.Join(boxLines, "\n")
}
