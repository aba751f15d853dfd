// Package combin computes, without enumerating candidates, how many
// candidates the generation pipeline will emit. The exact counter
// convolves per-word variant length histograms across every word
// arrangement, honoring the length window and special-character padding
// exactly as the assembler enumerates them. All arithmetic saturates;
// exact counts cap at model.ExactCountCap.
//
// The package also provides a deliberately conservative estimator for
// progress denominators and human-readable formatting for counts and
// file sizes.
package combin
