// Package tui is the x11tap terminal dashboard: an in-process Bubble Tea
// program that subscribes to the broker and renders decoded wire records
// as they arrive.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/x11tap/x11tap/broker"
	"github.com/x11tap/x11tap/clipboard"
)

type viewMode int

const (
	viewList viewMode = iota
	viewInspect
)

// Model is the Bubble Tea model for the x11tap TUI.
type Model struct {
	br    *broker.Broker
	ch    <-chan broker.Record
	unsub func()

	records []broker.Record
	cursor  int
	follow  bool
	width   int
	height  int
	view    viewMode

	searchMode   bool
	searchQuery  string
	searchCursor int
	filterMode   bool
	filterQuery  string
	filterCursor int

	displayIdx []int // indices into records that pass filter+search

	inspectScroll int

	exportDir string
	exportMsg string
}

// recordMsg carries one Record received from the broker.
type recordMsg struct{ Record broker.Record }

// doneMsg signals the broker subscription was closed.
type doneMsg struct{}

// New creates a Model subscribed to b. exportDir is where 'w'/'W' export
// the currently visible records to; empty disables export.
func New(b *broker.Broker, exportDir string) Model {
	ch, unsub := b.Subscribe()
	return Model{
		br:        b,
		ch:        ch,
		unsub:     unsub,
		follow:    true,
		exportDir: exportDir,
	}
}

func waitForRecord(ch <-chan broker.Record) tea.Cmd {
	return func() tea.Msg {
		rec, ok := <-ch
		if !ok {
			return doneMsg{}
		}
		return recordMsg{Record: rec}
	}
}

// Init starts listening for broker records.
func (m Model) Init() tea.Cmd {
	return waitForRecord(m.ch)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordMsg:
		m.records = append(m.records, msg.Record)
		if m.view == viewList {
			m.displayIdx = m.rebuildDisplayIdx()
			if m.follow {
				m.cursor = max(len(m.displayIdx)-1, 0)
			}
		}
		return m, waitForRecord(m.ch)

	case doneMsg:
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewInspect:
			return m.updateInspect(msg)
		case viewList:
			return m.updateList(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if len(m.records) == 0 {
		return "Waiting for X11 traffic..."
	}

	switch m.view {
	case viewInspect:
		return m.renderInspector()
	case viewList:
	}

	var footer string
	switch {
	case m.searchMode:
		footer = "  / " + renderInputWithCursor(m.searchQuery, m.searchCursor)
	case m.filterMode:
		footer = "  filter: " + renderInputWithCursor(m.filterQuery, m.filterCursor)
	default:
		items := []string{
			"q: quit", "j/k: navigate", "enter: inspect", "c: copy",
			"/: search", "f: filter", "w: export json", "W: export text",
		}
		footer = wrapFooterItems(items, m.width)
		if m.filterQuery != "" {
			footer += "\n  " + "[filter: " + describeFilter(m.filterQuery) + "]"
		}
		if m.searchQuery != "" || m.filterQuery != "" {
			footer += "  esc: clear"
		}
		if m.exportMsg != "" {
			footer += "\n  " + m.exportMsg
		}
	}

	footerLines := strings.Count(footer, "\n") + 1
	listHeight := m.listHeight(footerLines)

	return strings.Join([]string{
		m.renderList(listHeight),
		m.renderPreview(),
		footer,
	}, "\n")
}

func (m Model) listHeight(footerLines int) int {
	extra := max(footerLines-1, 0)
	return max(m.height-12-extra, 3)
}

func (m Model) rebuildDisplayIdx() []int {
	var conds []filterCondition
	if m.filterQuery != "" {
		conds = parseFilter(m.filterQuery)
	}
	searchLower := strings.ToLower(m.searchQuery)

	var idx []int
	for i, rec := range m.records {
		if len(conds) > 0 && !matchAllConditions(rec, conds) {
			continue
		}
		if searchLower != "" && !strings.Contains(strings.ToLower(rec.Line), searchLower) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// cursorRecord returns the Record at the cursor, or nil.
func (m Model) cursorRecord() *broker.Record {
	if m.cursor < 0 || m.cursor >= len(m.displayIdx) {
		return nil
	}
	rec := m.records[m.displayIdx[m.cursor]]
	return &rec
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchMode {
		return m.updateSearch(msg)
	}
	if m.filterMode {
		return m.updateFilter(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.unsub()
		return m, tea.Quit
	case "enter":
		if len(m.displayIdx) > 0 {
			m.view = viewInspect
			m.inspectScroll = 0
		}
		return m, nil
	case "c":
		return m.copyLine(clipboard.Clipboard), nil
	case "C":
		return m.copyLine(clipboard.Primary), nil
	case "w":
		return m.doExport(exportJSON), nil
	case "W":
		return m.doExport(exportText), nil
	case "/":
		m.searchMode = true
		m.searchQuery = ""
		m.searchCursor = 0
		return m, nil
	case "f":
		m.filterMode = true
		m.filterQuery = ""
		m.filterCursor = 0
		return m, nil
	case "esc":
		return m.clearFilter(), nil
	case "j", "down", "k", "up":
		return m.navigateCursor(msg.String()), nil
	case "ctrl+d", "pgdown", "ctrl+u", "pgup":
		return m.pageScroll(msg.String()), nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchQuery = ""
		m.displayIdx = m.rebuildDisplayIdx()
		m.cursor = min(m.cursor, max(len(m.displayIdx)-1, 0))
		return m, nil
	case "backspace":
		if m.searchCursor > 0 {
			runes := []rune(m.searchQuery)
			m.searchQuery = string(runes[:m.searchCursor-1]) + string(runes[m.searchCursor:])
			m.searchCursor--
			m.displayIdx = m.rebuildDisplayIdx()
			m.cursor = min(m.cursor, max(len(m.displayIdx)-1, 0))
		}
		return m, nil
	case "ctrl+c":
		m.unsub()
		return m, tea.Quit
	case "left":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil
	case "right":
		if m.searchCursor < len([]rune(m.searchQuery)) {
			m.searchCursor++
		}
		return m, nil
	case "up", "down":
		return m.navigateCursor(msg.String()), nil
	}

	r := msg.Runes
	if len(r) == 0 {
		return m, nil
	}
	runes := []rune(m.searchQuery)
	m.searchQuery = string(runes[:m.searchCursor]) + string(r) + string(runes[m.searchCursor:])
	m.searchCursor += len(r)
	m.displayIdx = m.rebuildDisplayIdx()
	m.cursor = min(m.cursor, max(len(m.displayIdx)-1, 0))
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filterMode = false
		return m, nil
	case "esc":
		m.filterMode = false
		m.filterQuery = ""
		m.displayIdx = m.rebuildDisplayIdx()
		m.cursor = min(m.cursor, max(len(m.displayIdx)-1, 0))
		return m, nil
	case "backspace":
		if m.filterCursor > 0 {
			runes := []rune(m.filterQuery)
			m.filterQuery = string(runes[:m.filterCursor-1]) + string(runes[m.filterCursor:])
			m.filterCursor--
			m.displayIdx = m.rebuildDisplayIdx()
			m.cursor = min(m.cursor, max(len(m.displayIdx)-1, 0))
		}
		return m, nil
	case "ctrl+c":
		m.unsub()
		return m, tea.Quit
	case "left":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
		return m, nil
	case "right":
		if m.filterCursor < len([]rune(m.filterQuery)) {
			m.filterCursor++
		}
		return m, nil
	case "up", "down":
		return m.navigateCursor(msg.String()), nil
	}

	r := msg.Runes
	if len(r) == 0 {
		return m, nil
	}
	runes := []rune(m.filterQuery)
	m.filterQuery = string(runes[:m.filterCursor]) + string(r) + string(runes[m.filterCursor:])
	m.filterCursor += len(r)
	m.displayIdx = m.rebuildDisplayIdx()
	m.cursor = min(m.cursor, max(len(m.displayIdx)-1, 0))
	return m, nil
}

func (m Model) pageScroll(key string) Model {
	half := max(m.listHeight(1)/2, 1)
	switch key {
	case "ctrl+d", "pgdown":
		m.cursor = min(m.cursor+half, max(len(m.displayIdx)-1, 0))
		if len(m.displayIdx) > 0 && m.cursor == len(m.displayIdx)-1 {
			m.follow = true
		}
	case "ctrl+u", "pgup":
		m.cursor = max(m.cursor-half, 0)
		m.follow = false
	}
	return m
}

func (m Model) navigateCursor(key string) Model {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.follow = false
		}
	case "down", "j":
		if len(m.displayIdx) > 0 && m.cursor < len(m.displayIdx)-1 {
			m.cursor++
		}
		if len(m.displayIdx) > 0 && m.cursor == len(m.displayIdx)-1 {
			m.follow = true
		}
	}
	return m
}

func (m Model) copyLine(sel clipboard.Selection) Model {
	if rec := m.cursorRecord(); rec != nil {
		_ = clipboard.CopySelection(context.Background(), rec.Line, sel)
	}
	return m
}

func (m Model) clearFilter() Model {
	changed := false
	if m.searchQuery != "" {
		m.searchQuery = ""
		changed = true
	}
	if m.filterQuery != "" {
		m.filterQuery = ""
		changed = true
	}
	if changed {
		m.displayIdx = m.rebuildDisplayIdx()
		m.cursor = min(m.cursor, max(len(m.displayIdx)-1, 0))
	}
	return m
}

func (m Model) doExport(format exportFormat) Model {
	if m.exportDir == "" {
		m.exportMsg = "export disabled (no -export-dir)"
		return m
	}
	path, err := m.exportVisible(m.exportDir, format)
	if err != nil {
		m.exportMsg = "export failed: " + err.Error()
		return m
	}
	m.exportMsg = "exported to " + path
	return m
}
