package codec

import "github.com/wippyai/cesu8str"

type unitStatus uint8

const (
	unitOK    unitStatus = iota // n is the unit length
	unitShort                   // p ends inside a unit
	unitBad                     // n is the maximal subpart length
)

const (
	locb = 0x80 // lowest continuation byte
	hicb = 0xBF // highest continuation byte
)

// utf8Unit classifies the unit starting at p[0]. p must not be empty.
func utf8Unit(p []byte) (int, unitStatus) {
	b := p[0]
	var size int
	lo, hi := byte(locb), byte(hicb)
	switch {
	case b < 0x80:
		return 1, unitOK
	case b >= 0xC2 && b <= 0xDF:
		size = 2
	case b == 0xE0:
		size, lo = 3, 0xA0
	case b == 0xED:
		size, hi = 3, 0x9F
	case b >= 0xE1 && b <= 0xEF:
		size = 3
	case b == 0xF0:
		size, lo = 4, 0x90
	case b >= 0xF1 && b <= 0xF3:
		size = 4
	case b == 0xF4:
		size, hi = 4, 0x8F
	default:
		return 1, unitBad
	}
	return continuation(p, 1, size, lo, hi)
}

// cesu8Unit classifies the CESU-8 unit starting at p[0]. p must not be empty.
func cesu8Unit(p []byte, v cesu8str.Variant) (int, unitStatus) {
	b := p[0]
	switch {
	case b == 0x00:
		if v == cesu8str.Java {
			return 1, unitBad
		}
		return 1, unitOK
	case b < 0x80:
		return 1, unitOK
	case b == 0xC0:
		if v != cesu8str.Java {
			return 1, unitBad
		}
		if len(p) < 2 {
			return 0, unitShort
		}
		if p[1] != 0x80 {
			return 1, unitBad
		}
		return 2, unitOK
	case b >= 0xC2 && b <= 0xDF:
		return continuation(p, 1, 2, locb, hicb)
	case b == 0xE0:
		return continuation(p, 1, 3, 0xA0, hicb)
	case b == 0xED:
		return surrogateUnit(p)
	case b >= 0xE1 && b <= 0xEF:
		return continuation(p, 1, 3, locb, hicb)
	default:
		// C1, stray continuation bytes and every 4-byte lead.
		return 1, unitBad
	}
}

// surrogateUnit handles the ED lead byte: either a plain BMP scalar, a
// high surrogate that must be followed by a low surrogate, or a lone low
// surrogate.
func surrogateUnit(p []byte) (int, unitStatus) {
	if len(p) < 2 {
		return 0, unitShort
	}
	switch s := p[1]; {
	case s >= 0x80 && s <= 0x9F:
		return continuation(p, 2, 3, locb, hicb)
	case s >= 0xA0 && s <= 0xAF:
		n, st := continuation(p, 2, 3, locb, hicb)
		if st != unitOK {
			return n, st
		}
		if len(p) < 4 {
			return 0, unitShort
		}
		if p[3] != 0xED {
			return 3, unitBad
		}
		if len(p) < 5 {
			return 0, unitShort
		}
		if p[4] < 0xB0 || p[4] > 0xBF {
			return 3, unitBad
		}
		return continuation(p, 5, 6, locb, hicb)
	case s >= 0xB0 && s <= 0xBF:
		// A low surrogate with no preceding high surrogate.
		n, st := continuation(p, 2, 3, locb, hicb)
		if st == unitShort {
			return n, st
		}
		if st == unitOK {
			return 3, unitBad
		}
		return n, unitBad
	default:
		return 1, unitBad
	}
}

// continuation checks p[from:size]. The byte at index 1 must lie in
// [lo, hi]; every other byte must be a continuation byte.
func continuation(p []byte, from, size int, lo, hi byte) (int, unitStatus) {
	for k := from; k < size; k++ {
		if k >= len(p) {
			return 0, unitShort
		}
		l, h := byte(locb), byte(hicb)
		if k == 1 {
			l, h = lo, hi
		}
		if c := p[k]; c < l || c > h {
			return k, unitBad
		}
	}
	return size, unitOK
}

// ScanUTF8 classifies src as standard UTF-8.
func ScanUTF8(src []byte) Result {
	return scan(src, utf8Unit)
}

// ScanCESU8 classifies src as CESU-8 under v.
func ScanCESU8(src []byte, v cesu8str.Variant) Result {
	return scan(src, func(p []byte) (int, unitStatus) { return cesu8Unit(p, v) })
}

func scan(src []byte, unit func([]byte) (int, unitStatus)) Result {
	i := 0
	for i < len(src) {
		// ASCII fast path; nul is left to the unit function.
		if c := src[i]; c > 0 && c < 0x80 {
			i++
			continue
		}
		n, st := unit(src[i:])
		switch st {
		case unitShort:
			return Incomplete{Valid: i}
		case unitBad:
			return Invalid{Valid: i, BadLen: n}
		}
		i += n
	}
	return Complete{Len: len(src)}
}

// Valid reports whether src is entirely valid CESU-8 under v.
func Valid(src []byte, v cesu8str.Variant) bool {
	_, ok := ScanCESU8(src, v).(Complete)
	return ok
}
