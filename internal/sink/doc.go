// Package sink persists generated candidates as newline-delimited text.
// Candidates are buffered into chunks that are sorted, deduplicated, and
// flushed through a buffered writer; in overwrite mode the file is
// written to a temporary sibling and atomically renamed on successful
// completion, so an interrupted run never leaves a partial file at the
// destination path.
package sink
