package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/x11tap/x11tap/broker"
)

func testModel(recs ...broker.Record) Model {
	m := Model{records: recs}
	idx := make([]int, len(recs))
	for i := range recs {
		idx[i] = i
	}
	m.displayIdx = idx
	return m
}

func TestExportVisibleJSON(t *testing.T) {
	restore := stubExportTimestamp(1234)
	defer restore()

	dir := t.TempDir()
	m := testModel(
		broker.Record{ConnID: 1, Direction: "C->S", Kind: "REQUEST", Name: "InternAtom", Code: 16, Seq: 1, Bytes: 8, Body: "{}", Line: "line one"},
		broker.Record{ConnID: 1, Direction: "S->C", Kind: "REPLY", Name: "InternAtom", Code: 16, Seq: 1, Bytes: 32, Body: "{atom=1}", Line: "line two"},
	)

	path, err := m.exportVisible(dir, exportJSON)
	if err != nil {
		t.Fatalf("exportVisible: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("path = %q, want it under %q", path, dir)
	}
	if !strings.HasSuffix(path, "x11tap-export-1234.json") {
		t.Fatalf("path = %q, want x11tap-export-1234.json suffix", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var data exportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if data.Captured != 2 || data.Exported != 2 {
		t.Fatalf("Captured=%d Exported=%d, want 2 and 2", data.Captured, data.Exported)
	}
	if len(data.Records) != 2 || data.Records[0].Name != "InternAtom" {
		t.Fatalf("Records = %+v, want 2 entries starting with InternAtom", data.Records)
	}
}

func TestExportVisibleText(t *testing.T) {
	restore := stubExportTimestamp(5678)
	defer restore()

	dir := t.TempDir()
	m := testModel(
		broker.Record{Line: "line one"},
		broker.Record{Line: "line two"},
	)

	path, err := m.exportVisible(dir, exportText)
	if err != nil {
		t.Fatalf("exportVisible: %v", err)
	}
	if !strings.HasSuffix(path, "x11tap-export-5678.log") {
		t.Fatalf("path = %q, want .log suffix", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(raw) != "line one\nline two\n" {
		t.Fatalf("content = %q, want joined lines", string(raw))
	}
}

// Only records currently passing the filter/search (displayIdx) are
// exported, not the full capture buffer.
func TestExportVisibleRespectsDisplayFilter(t *testing.T) {
	restore := stubExportTimestamp(1)
	defer restore()

	dir := t.TempDir()
	m := Model{
		records: []broker.Record{
			{Line: "kept"},
			{Line: "dropped"},
		},
		displayIdx: []int{0},
	}

	path, err := m.exportVisible(dir, exportText)
	if err != nil {
		t.Fatalf("exportVisible: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(raw) != "kept\n" {
		t.Fatalf("content = %q, want only the displayed record", string(raw))
	}
}

func TestExportFormatExt(t *testing.T) {
	t.Parallel()
	if got := exportJSON.ext(); got != "json" {
		t.Fatalf("exportJSON.ext() = %q, want json", got)
	}
	if got := exportText.ext(); got != "log" {
		t.Fatalf("exportText.ext() = %q, want log", got)
	}
}

func stubExportTimestamp(v int64) func() {
	prev := exportTimestamp
	exportTimestamp = func() int64 { return v }
	return func() { exportTimestamp = prev }
}
