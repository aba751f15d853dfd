package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// DefaultChunkSize is the number of candidates buffered per chunk when
// the caller does not configure one.
const DefaultChunkSize = 100000

// FileWriter writes candidates to a file in sorted, deduplicated
// chunks. It implements the assembler's Sink contract. FileWriter is not
// safe for concurrent use; the generation pipeline is sequential by
// design.
type FileWriter struct {
	path      string
	tmpPath   string
	file      *os.File
	buf       *bufio.Writer
	chunk     []string
	chunkSize int
	append    bool
	written   int
	closed    bool
}

// FileWriterOption configures a FileWriter.
type FileWriterOption func(*FileWriter)

// WithChunkSize sets the number of candidates buffered per chunk.
// Values below one select DefaultChunkSize.
func WithChunkSize(n int) FileWriterOption {
	return func(w *FileWriter) {
		if n > 0 {
			w.chunkSize = n
		}
	}
}

// WithAppend opens the destination for appending instead of the
// overwrite-via-temporary-file mode. Appending writes in place, so an
// interrupted append leaves previously appended lines behind.
func WithAppend(append bool) FileWriterOption {
	return func(w *FileWriter) {
		w.append = append
	}
}

// NewFileWriter opens a candidate file writer for path. In overwrite
// mode the data goes to a temporary file in the destination directory
// and moves into place on Close.
func NewFileWriter(path string, opts ...FileWriterOption) (*FileWriter, error) {
	w := &FileWriter{
		path:      path,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.chunk = make([]string, 0, w.chunkSize)

	if w.append {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open output file: %w", err)
		}
		w.file = f
	} else {
		dir := filepath.Dir(path)
		f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create temporary output file: %w", err)
		}
		w.file = f
		w.tmpPath = f.Name()
	}

	w.buf = bufio.NewWriter(w.file)
	return w, nil
}

// WriteCandidate buffers one candidate, flushing the current chunk when
// it is full.
func (w *FileWriter) WriteCandidate(candidate string) error {
	w.chunk = append(w.chunk, candidate)
	if len(w.chunk) >= w.chunkSize {
		return w.flushChunk()
	}
	return nil
}

// flushChunk sorts and deduplicates the buffered chunk and writes it as
// newline-terminated lines. Deduplication here is per chunk only; the
// assembler's window handles the cross-chunk cases it can afford to.
func (w *FileWriter) flushChunk() error {
	if len(w.chunk) == 0 {
		return nil
	}

	slices.Sort(w.chunk)
	w.chunk = slices.Compact(w.chunk)

	for _, c := range w.chunk {
		if _, err := w.buf.WriteString(c); err != nil {
			return fmt.Errorf("failed to write chunk: %w", err)
		}
		if err := w.buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write chunk: %w", err)
		}
	}
	w.written += len(w.chunk)
	w.chunk = w.chunk[:0]
	return nil
}

// Written returns the number of lines written to the file so far,
// excluding candidates still buffered in the current chunk.
func (w *FileWriter) Written() int { return w.written }

// Close flushes the tail chunk and, in overwrite mode, renames the
// temporary file to the destination path. Close must be called exactly
// once on success paths.
func (w *FileWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.flushChunk(); err != nil {
		return err
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if w.tmpPath != "" {
		if err := os.Rename(w.tmpPath, w.path); err != nil {
			return fmt.Errorf("failed to finalize output file: %w", err)
		}
	}
	return nil
}

// Abort discards buffered data and removes the temporary file. Call it
// instead of Close when generation fails; in append mode it only closes
// the file.
func (w *FileWriter) Abort() {
	if w.closed {
		return
	}
	w.closed = true

	_ = w.file.Close()
	if w.tmpPath != "" {
		_ = os.Remove(w.tmpPath)
	}
}
