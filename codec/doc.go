// Package codec implements the unit-level CESU-8 and Modified UTF-8 primitives.
//
// # Units
//
// A unit is the byte sequence that encodes one scalar value:
//
//	Scalar range        UTF-8     CESU-8
//	──────────────────────────────────────
//	U+0000              1         1 (standard) / 2: C0 80 (java)
//	U+0001..U+007F      1         1
//	U+0080..U+07FF      2         2
//	U+0800..U+FFFF      3         3 (surrogates excluded)
//	U+10000..U+10FFFF   4         6 (surrogate pair)
//
// # Scanning
//
// ScanUTF8 and ScanCESU8 classify a byte run into a Result:
//
//	Complete{Len}            every byte belongs to a valid unit
//	Incomplete{Valid}        the run ends inside a unit that may still become valid
//	Invalid{Valid, BadLen}   the unit at Valid can never become valid
//
// BadLen is the length of the maximal subpart: the longest prefix of a
// well-formed unit that the bad sequence starts with, and at least 1. Scans
// only decide once enough bytes are present, so the classification of a
// stream never depends on how it was split into runs.
//
// # Transforming
//
// Encode and Decode scan a run and transform exactly its valid prefix.
// NewEncoder and NewDecoder wrap the same primitives as
// golang.org/x/text/transform Transformers.
package codec
