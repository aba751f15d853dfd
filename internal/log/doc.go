// Package log provides logging for p455w0rd on top of the standard
// slog package, with automatic masking of candidate material.
//
// Generated candidates are password guesses for real targets; they
// belong in the output file, never in logs that may be shared or
// stored. The RedactHandler masks attribute values under
// candidate-carrying keys, even in verbose mode.
//
//	logger := log.NewLogger(os.Stderr, true) // verbose
//	logger.Debug("emitting", "candidate", "4Dmin!") // value is masked
//	slog.SetDefault(logger)
package log
