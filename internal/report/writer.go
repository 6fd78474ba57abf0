package report

// ConflictWriter is an interface to support different conflict sinks.
type ConflictWriter interface {
	WriteConflict(ConflictRow) error
}

// Optional: writers can also support batch mode.
type batchConflictWriter interface {
	WriteConflicts([]ConflictRow) error
}

// WriteAll sends rows through a writer, preferring batch mode when the
// writer supports it.
func WriteAll(w ConflictWriter, rows []ConflictRow) error {
	if bw, ok := w.(batchConflictWriter); ok {
		return bw.WriteConflicts(rows)
	}
	for _, r := range rows {
		if err := w.WriteConflict(r); err != nil {
			return err
		}
	}
	return nil
}

// MultiWriter fans conflict rows out to multiple writers.
type MultiWriter struct {
	writers []ConflictWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(ws ...ConflictWriter) *MultiWriter {
	return &MultiWriter{writers: ws}
}

// WriteConflict sends a row to all writers.
func (mw *MultiWriter) WriteConflict(row ConflictRow) error {
	for _, w := range mw.writers {
		if err := w.WriteConflict(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteConflicts sends multiple rows to all writers, using batch mode where
// supported.
func (mw *MultiWriter) WriteConflicts(rows []ConflictRow) error {
	for _, w := range mw.writers {
		if bw, ok := w.(batchConflictWriter); ok {
			if err := bw.WriteConflicts(rows); err != nil {
				return err
			}
			continue
		}
		for _, r := range rows {
			if err := w.WriteConflict(r); err != nil {
				return err
			}
		}
	}
	return nil
}
