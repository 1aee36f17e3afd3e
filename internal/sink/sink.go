// Package sink persists generated test code. The render engine never
// performs I/O itself; every write goes through a Sink chosen by the caller.
package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink takes generated text and a destination name and persists it.
type Sink interface {
	Write(name, code string) error
}

// FileSink writes generated files under a base directory.
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Write persists code to <dir>/<name>, creating parent directories as
// needed.
func (s *FileSink) Write(name, code string) error {
	path := filepath.Join(s.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// StdoutSink prints generated code instead of persisting it, for dry runs.
// Writes are serialized so concurrent batch output stays readable.
type StdoutSink struct {
	W io.Writer

	mu sync.Mutex
}

func (s *StdoutSink) Write(name, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.W
	if w == nil {
		w = os.Stdout
	}
	if _, err := fmt.Fprintf(w, "// --- %s ---\n%s", name, code); err != nil {
		return err
	}
	return nil
}
