// Package mutate generates per-word candidate variants: leet character
// substitutions combined with capitalization patterns, and
// special-character padding of base strings. The counting package
// depends on the exact enumeration behavior defined here; any change to
// the variant rules must be mirrored there.
package mutate
