// Writer implementation printing conflict rows to STDOUT
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// StdoutWriter prints conflict rows as JSON lines.
type StdoutWriter struct {
	out io.Writer
}

// NewStdoutWriter creates a writer targeting os.Stdout.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{out: os.Stdout}
}

// WriteConflict outputs a single conflict row.
func (w *StdoutWriter) WriteConflict(row ConflictRow) error {
	out := w.out
	if out == nil {
		out = os.Stdout
	}
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// WriteConflicts outputs multiple conflict rows.
func (w *StdoutWriter) WriteConflicts(rows []ConflictRow) error {
	for _, r := range rows {
		if err := w.WriteConflict(r); err != nil {
			return err
		}
	}
	return nil
}
