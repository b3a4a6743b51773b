package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/x11tap/x11tap/broker"
)

func recordStatus(rec broker.Record) string {
	if rec.Kind == "ERROR" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("ERR")
	}
	if strings.HasPrefix(rec.Kind, "EVENT(generated)") {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("GEN")
	}
	return ""
}

// Column widths.
const (
	colMarker = 2
	colConn   = 5
	colDir    = 6
	colKind   = 9
	colCode   = 4
	colBytes  = 7
	colStatus = 4
)

func (m Model) renderList(maxRows int) string {
	innerWidth := max(m.width-4, 20)
	colName := max(innerWidth-colMarker-colConn-colDir-colKind-colCode-colBytes-colStatus-8, 10)

	var title string
	if m.searchQuery != "" || m.filterQuery != "" {
		title = fmt.Sprintf(" x11tap (%d/%d records) ", len(m.displayIdx), len(m.records))
	} else {
		title = fmt.Sprintf(" x11tap (%d records) ", len(m.records))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(innerWidth)

	dataRows := max(maxRows-1, 1) // -1 for header row

	start := 0
	if len(m.displayIdx) > dataRows {
		start = max(m.cursor-dataRows/2, 0)
		if start+dataRows > len(m.displayIdx) {
			start = len(m.displayIdx) - dataRows
		}
	}
	end := min(start+dataRows, len(m.displayIdx))

	header := fmt.Sprintf("  %-*s %-*s %-*s %-*s %-*s %-*s",
		colConn, "Conn",
		colDir, "Dir",
		colKind, "Kind",
		colName, "Name",
		colCode, "Code",
		colBytes, "Bytes",
	)

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render(header))
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRecordRow(i, colName))
	}

	borderColor := lipgloss.Color("240")
	border = border.BorderForeground(borderColor)
	content := strings.Join(rows, "\n")

	box := border.Render(content)
	lines := strings.Split(box, "\n")
	if len(lines) > 0 {
		borderFg := lipgloss.NewStyle().Foreground(borderColor)
		titleStyle := lipgloss.NewStyle().Bold(true)
		dashes := max(innerWidth-len([]rune(title)), 0)
		lines[0] = borderFg.Render("╭") +
			titleStyle.Render(title) +
			borderFg.Render(strings.Repeat("─", dashes)+"╮")
		box = strings.Join(lines, "\n")
	}

	return box
}

func (m Model) renderRecordRow(drIdx int, colName int) string {
	rec := m.records[m.displayIdx[drIdx]]
	marker := "  "
	if drIdx == m.cursor {
		marker = "▶ "
	}

	name := truncate(rec.Name, colName)
	row := fmt.Sprintf("%s%-*d %-*s %-*s %-*s %-*d %-*d",
		marker,
		colConn, rec.ConnID,
		colDir, rec.Direction,
		colKind, rec.Kind,
		colName, name,
		colCode, rec.Code,
		colBytes, rec.Bytes,
	) + " " + recordStatus(rec)

	if drIdx == m.cursor {
		return lipgloss.NewStyle().Bold(true).Render(row)
	}
	return row
}

func (m Model) renderPreview() string {
	innerWidth := max(m.width-4, 20)

	if m.cursor < 0 || m.cursor >= len(m.displayIdx) {
		return ""
	}
	rec := m.records[m.displayIdx[m.cursor]]

	var lines []string
	lines = append(lines, "Kind:  "+rec.Kind)
	lines = append(lines, "Name:  "+fmt.Sprintf("%s(%d)", rec.Name, rec.Code))
	if rec.HasSeq {
		lines = append(lines, fmt.Sprintf("Seq:   %d", rec.Seq))
	}
	lines = append(lines, "Body:  "+truncate(rec.Body, max(innerWidth-9, 20)))

	content := strings.Join(lines, "\n")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(innerWidth).
		BorderForeground(lipgloss.Color("240"))

	return border.Render(content)
}
