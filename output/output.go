// Package output is the thin sink x11proto's formatted trace lines are
// written to: one small function, no buffering decisions left implicit.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer serializes writes to an underlying io.Writer so concurrent
// connection goroutines can share one trace sink without interleaving
// partial lines.
type Writer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
}

// New wraps w. Open should be preferred when the destination is a path
// string from Settings.Out.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Open resolves path ("-" for stdout, else a file path opened for
// append) and returns a Writer over it.
func Open(path string) (*Writer, error) {
	if path == "" || path == "-" {
		return New(os.Stdout), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("output: open %s: %w", path, err)
	}
	w := New(f)
	w.closer = f
	return w, nil
}

// WriteLine writes line followed by a newline, flushing immediately so
// the trace is visible to tail -f style readers without buffering delay.
func (w *Writer) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.WriteString(line); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes and closes the underlying file, if one was opened.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.w.Flush()
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
