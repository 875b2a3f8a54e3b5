package cesu8str

import (
	"fmt"
	"strings"
)

// Variant selects the CESU-8 flavour.
type Variant uint8

const (
	// Standard is plain CESU-8: the nul byte is left literal.
	Standard Variant = iota
	// Java is the JVM's Modified UTF-8: the nul byte is encoded as 0xC0 0x80.
	Java
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Java:
		return "java"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// ParseVariant accepts "standard", "cesu8", "java" or "mutf8".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "cesu8", "cesu-8":
		return Standard, nil
	case "java", "mutf8", "mutf-8":
		return Java, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// Direction is the transcoding direction.
type Direction uint8

const (
	// Encode converts UTF-8 into CESU-8 or Modified UTF-8.
	Encode Direction = iota
	// Decode converts CESU-8 or Modified UTF-8 into UTF-8.
	Decode
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// SourceName names the encoding read in this direction.
func (d Direction) SourceName() string {
	if d == Decode {
		return "cesu-8"
	}
	return "utf-8"
}

// ParseDirection accepts "encode" or "decode".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "encode":
		return Encode, nil
	case "decode":
		return Decode, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
