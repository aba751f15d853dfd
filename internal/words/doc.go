// Package words collects seed words from command-line arguments and
// input files into an order-stable, deduplicated word set.
package words
