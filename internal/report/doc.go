// Package report renders the pre-flight combinatorial analysis in
// human-readable, JSON, and Markdown formats. The command layer shows
// the human-readable form before the confirmation prompt; the JSON and
// Markdown writers exist for tooling and documentation.
package report
