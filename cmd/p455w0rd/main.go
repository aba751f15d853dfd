// Package main provides the entry point for the p455w0rd CLI.
//
// p455w0rd mutates a small set of seed words into a large, length-
// filtered wordlist of password candidates: leet substitutions, case
// permutations, multi-word combinations, and special-character padding.
//
// Usage:
//
//	p455w0rd generate admin password
//	p455w0rd analyze --input words.txt
//
// See --help for all available options.
package main

// main is the entry point for p455w0rd.
func main() {
	Execute()
}
