// Package model defines the data structures shared by the candidate
// generation pipeline: the combination configuration, the combinatorial
// analysis produced before generation, and the progress snapshot emitted
// during generation.
package model
