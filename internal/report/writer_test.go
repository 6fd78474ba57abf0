package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// MockWriter collects conflict rows for validation.
type MockWriter struct {
	Rows []ConflictRow
}

func (w *MockWriter) WriteConflict(row ConflictRow) error {
	w.Rows = append(w.Rows, row)
	return nil
}

// MockBatchWriter records whether the batch path was used.
type MockBatchWriter struct {
	MockWriter
	Batches int
}

func (w *MockBatchWriter) WriteConflicts(rows []ConflictRow) error {
	w.Batches++
	w.Rows = append(w.Rows, rows...)
	return nil
}

func TestStdoutWriterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &StdoutWriter{out: buf}
	row := ConflictRow{RunID: "r1", PrimaryID: "A", ConflictingID: "B", Timestamp: time.Unix(0, 0)}
	if err := w.WriteConflict(row); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"run_id":"r1"`) {
		t.Fatalf("expected JSON output, got %q", out)
	}
}

func TestMultiWriterFanOut(t *testing.T) {
	a := &MockWriter{}
	b := &MockBatchWriter{}
	mw := NewMultiWriter(a, b)

	rows := []ConflictRow{{RunID: "r1"}, {RunID: "r1"}}
	if err := mw.WriteConflicts(rows); err != nil {
		t.Fatalf("WriteConflicts: %v", err)
	}
	if len(a.Rows) != 2 || len(b.Rows) != 2 {
		t.Errorf("fan-out incomplete: %d and %d rows", len(a.Rows), len(b.Rows))
	}
	if b.Batches != 1 {
		t.Errorf("batch-capable writer called %d times in batch mode, want 1", b.Batches)
	}
}

func TestWriteAll(t *testing.T) {
	plain := &MockWriter{}
	if err := WriteAll(plain, []ConflictRow{{RunID: "a"}, {RunID: "b"}}); err != nil {
		t.Fatal(err)
	}
	if len(plain.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(plain.Rows))
	}

	batch := &MockBatchWriter{}
	if err := WriteAll(batch, []ConflictRow{{RunID: "a"}}); err != nil {
		t.Fatal(err)
	}
	if batch.Batches != 1 {
		t.Errorf("batch path not taken")
	}
}

func TestFileWriterAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conflicts.jsonl")
	fw, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	rows := []ConflictRow{
		{RunID: "r1", PrimaryID: "A", ConflictingID: "B", MinDistance: 1.25, Timestamp: time.Unix(10, 0).UTC()},
		{RunID: "r1", PrimaryID: "A", ConflictingID: "C", MinDistance: 4.5, Timestamp: time.Unix(10, 0).UTC()},
	}
	if err := fw.WriteConflicts(rows); err != nil {
		t.Fatalf("WriteConflicts: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(strings.TrimSpace(string(data)), "\n") + 1; lines != 2 {
		t.Errorf("expected 2 JSONL lines, got %d", lines)
	}

	sink := &MockWriter{}
	if err := ReplayLogFile(path, sink, 0); err != nil {
		t.Fatalf("ReplayLogFile: %v", err)
	}
	if len(sink.Rows) != 2 {
		t.Fatalf("replayed %d rows, want 2", len(sink.Rows))
	}
	if sink.Rows[1].ConflictingID != "C" || sink.Rows[1].MinDistance != 4.5 {
		t.Errorf("replayed row mismatch: %+v", sink.Rows[1])
	}
}
