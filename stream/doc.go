// Package stream implements the chunked UTF-8 ⇄ CESU-8 transcoding engine.
//
// # Data Flow
//
//	┌────────┐ fill  ┌──────────────┐ window ┌───────┐ output ┌────────┐
//	│ Input  │──────▶│ Buffer       │───────▶│ step  │───────▶│ Output │
//	└────────┘       │ [start, end) │◀───────│ codec │        └────────┘
//	                 └──────────────┘ consume└───────┘
//
// Each iteration compacts the Buffer, refills it when the window is at most a
// quarter full (or when the previous step stopped inside a unit), hands the
// window to the codec and writes whatever output the valid prefix produced
// before looking at more input.
//
// # Faults
//
// Offsets in faults are absolute positions in the original stream, not
// positions inside the buffer. An invalid unit is logged, skipped, and ends
// reading; bytes already buffered are still transcoded. A stream that ends
// inside a unit is a truncation fault. Peer disconnection on either side is
// not a fault: the handle is closed and the run winds down.
//
// # Outcome
//
// Run composes the final Outcome with the priority
//
//	IOFault > EncodingFault > Success
//
// and Outcome.ExitCode maps these to 1, 2 and 0.
//
// # Thread Safety
//
// A run is single-threaded. Run may be called concurrently with distinct
// readers and writers.
package stream
