package codec

import (
	"golang.org/x/text/transform"

	"github.com/wippyai/cesu8str"
	"github.com/wippyai/cesu8str/errors"
)

// contextRadius is how many bytes around a fault are kept for diagnostics.
const contextRadius = 4

// NewEncoder returns a Transformer from UTF-8 to CESU-8 under v.
//
// Fault offsets in returned errors are relative to the src of the failing
// Transform call.
func NewEncoder(v cesu8str.Variant) transform.Transformer {
	return &transcoder{variant: v, dir: cesu8str.Encode}
}

// NewDecoder returns a Transformer from CESU-8 under v to UTF-8.
func NewDecoder(v cesu8str.Variant) transform.Transformer {
	return &transcoder{variant: v, dir: cesu8str.Decode}
}

type transcoder struct {
	transform.NopResetter
	variant cesu8str.Variant
	dir     cesu8str.Direction
}

func (t *transcoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var scratch [MaxCESU8UnitLen]byte
	for nSrc < len(src) {
		n, st := t.unit(src[nSrc:])
		switch st {
		case unitShort:
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errors.Truncated(t.phase(), int64(nSrc), len(src)-nSrc)
		case unitBad:
			return nDst, nSrc, errors.InvalidSequence(t.phase(), int64(nSrc), n,
				Context(src, nSrc, n, contextRadius))
		}

		out := t.convert(scratch[:0], src[nSrc:nSrc+n])
		if len(dst)-nDst < len(out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += n
	}
	return nDst, nSrc, nil
}

func (t *transcoder) unit(p []byte) (int, unitStatus) {
	if t.dir == cesu8str.Decode {
		return cesu8Unit(p, t.variant)
	}
	return utf8Unit(p)
}

func (t *transcoder) convert(dst, unit []byte) []byte {
	if t.dir == cesu8str.Decode {
		return AppendDecode(dst, unit, t.variant)
	}
	return AppendEncode(dst, unit, t.variant)
}

func (t *transcoder) phase() errors.Phase {
	if t.dir == cesu8str.Decode {
		return errors.PhaseDecode
	}
	return errors.PhaseEncode
}

// Context returns up to radius bytes on each side of the run p[at:at+n],
// clipped to p.
func Context(p []byte, at, n, radius int) []byte {
	lo := max(at-radius, 0)
	hi := min(at+n+radius, len(p))
	if lo > hi {
		return nil
	}
	return p[lo:hi]
}

// EncodeString converts a UTF-8 string to CESU-8 under v.
func EncodeString(s string, v cesu8str.Variant) (string, error) {
	out, _, err := transform.String(NewEncoder(v), s)
	return out, err
}

// DecodeString converts a CESU-8 string under v to UTF-8.
func DecodeString(s string, v cesu8str.Variant) (string, error) {
	out, _, err := transform.String(NewDecoder(v), s)
	return out, err
}

// EncodeBytes converts UTF-8 bytes to CESU-8 under v.
func EncodeBytes(p []byte, v cesu8str.Variant) ([]byte, error) {
	out, _, err := transform.Bytes(NewEncoder(v), p)
	return out, err
}

// DecodeBytes converts CESU-8 bytes under v to UTF-8.
func DecodeBytes(p []byte, v cesu8str.Variant) ([]byte, error) {
	out, _, err := transform.Bytes(NewDecoder(v), p)
	return out, err
}
