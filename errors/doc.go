// Package errors provides structured error types for the cesu8str tools.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// Encoding faults carry the absolute stream offset, the length of the faulty
// run and a few bytes of surrounding context.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidSequence).
//		Offset(1024).
//		Length(3).
//		Context(window[1020:1031]).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidSequence(errors.PhaseEncode, 17, 1, ctx)
//	err := errors.IO(errors.PhaseWrite, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
