// Package generate streams password candidates to a sink: for each
// combination size it walks every ordered word arrangement, forms the
// cartesian product of the per-word variant sets with depth-first length
// pruning, applies special-character padding, and emits each surviving
// candidate exactly once per bounded deduplication window. Output order
// is deterministic for a given word set and configuration.
package generate
