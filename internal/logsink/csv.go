package logsink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CSVSink appends rows to a comma-separated file with no header. The file is
// opened per append so external rotation or deletion is picked up.
type CSVSink struct {
	path string
	mu   sync.Mutex
}

// NewCSVSink prepares path for appending, creating its directory.
func NewCSVSink(path string) (*CSVSink, error) {
	if path == "" {
		return nil, fmt.Errorf("csv sink: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("csv sink: create dir: %w", err)
	}
	return &CSVSink{path: path}, nil
}

// Path returns the file the sink appends to.
func (s *CSVSink) Path() string { return s.path }

func (s *CSVSink) Append(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Rows must not interleave when handlers append concurrently.
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("csv sink: open: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(rec.Row()); err != nil {
		f.Close()
		return fmt.Errorf("csv sink: write: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("csv sink: flush: %w", err)
	}
	return f.Close()
}

func (s *CSVSink) Close() error { return nil }

var _ Sink = (*CSVSink)(nil)
