// Package cesu8str converts byte streams between standard UTF-8 and CESU-8,
// including the JVM's Modified UTF-8 variant.
//
// CESU-8 represents scalar values outside the Basic Multilingual Plane as two
// 3-byte sequences, one per UTF-16 surrogate half, where UTF-8 uses a single
// 4-byte sequence. Modified UTF-8 additionally encodes the nul byte as the
// overlong pair 0xC0 0x80 so that encoded text never contains a zero byte.
//
// # Architecture Overview
//
//	cesu8str/            Root package with the Variant and Direction enums
//	├── codec/           Unit scanning and encode/decode primitives, x/text Transformers
//	├── stream/          Chunked streaming engine with byte-exact fault offsets
//	├── errors/          Structured error types for diagnostics
//	├── internal/config/ Defaults, environment, and YAML configuration
//	└── cmd/cesu8str/    Command-line tool
//
// # Quick Start
//
// Transcode a whole string:
//
//	out, err := codec.EncodeString("😀", cesu8str.Java)
//
// Transcode a stream chunk by chunk:
//
//	report := stream.Run(stream.Options{
//	    Direction: cesu8str.Encode,
//	    Variant:   cesu8str.Standard,
//	}, os.Stdin, os.Stdout)
//	os.Exit(report.Outcome.ExitCode())
//
// The engine never holds more than one chunk of input in memory and reports
// every fault with its absolute offset in the original stream.
package cesu8str
