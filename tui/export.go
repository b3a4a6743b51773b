package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type exportFormat int

const (
	exportJSON exportFormat = iota
	exportText
)

func (f exportFormat) ext() string {
	if f == exportText {
		return "log"
	}
	return "json"
}

type exportRecord struct {
	ConnID    uint32 `json:"conn_id"`
	Direction string `json:"direction"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Code      uint8  `json:"code"`
	Seq       uint16 `json:"seq,omitempty"`
	Bytes     int    `json:"bytes"`
	Body      string `json:"body"`
}

type exportData struct {
	Captured int            `json:"captured"`
	Exported int            `json:"exported"`
	Filter   string         `json:"filter"`
	Search   string         `json:"search"`
	Records  []exportRecord `json:"records"`
}

// exportVisible writes the currently filtered/searched records to a
// timestamped file under dir in the given format.
func (m Model) exportVisible(dir string, format exportFormat) (string, error) {
	recs := make([]exportRecord, 0, len(m.displayIdx))
	for _, idx := range m.displayIdx {
		r := m.records[idx]
		recs = append(recs, exportRecord{
			ConnID:    r.ConnID,
			Direction: r.Direction,
			Kind:      r.Kind,
			Name:      r.Name,
			Code:      r.Code,
			Seq:       r.Seq,
			Bytes:     r.Bytes,
			Body:      r.Body,
		})
	}

	name := fmt.Sprintf("x11tap-export-%d.%s", exportTimestamp(), format.ext())
	path := filepath.Join(dir, name)

	var content []byte
	var err error
	switch format {
	case exportJSON:
		content, err = json.MarshalIndent(exportData{
			Captured: len(m.records),
			Exported: len(recs),
			Filter:   m.filterQuery,
			Search:   m.searchQuery,
			Records:  recs,
		}, "", "  ")
	case exportText:
		content = []byte(renderTextExport(m))
	}
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func renderTextExport(m Model) string {
	var out []byte
	for _, idx := range m.displayIdx {
		out = append(out, []byte(m.records[idx].Line)...)
		out = append(out, '\n')
	}
	return string(out)
}

// exportTimestamp is a seam so tests can avoid depending on wall-clock
// time; production always calls through to time.Now().
var exportTimestamp = func() int64 { return time.Now().Unix() }
