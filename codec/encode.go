package codec

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wippyai/cesu8str"
)

// Encode scans src as UTF-8 and appends the CESU-8 form of its valid prefix
// to dst.
func Encode(dst, src []byte, v cesu8str.Variant) ([]byte, Result) {
	res := ScanUTF8(src)
	return AppendEncode(dst, src[:res.ValidLen()], v), res
}

// AppendEncode appends the CESU-8 form of src to dst. src must be valid UTF-8.
func AppendEncode(dst, src []byte, v cesu8str.Variant) []byte {
	run := 0 // start of bytes that are copied unchanged
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == 0 && v == cesu8str.Java:
			dst = append(dst, src[run:i]...)
			dst = append(dst, 0xC0, 0x80)
			i++
			run = i
		case c < 0xF0:
			i += utf8LeadLen(c)
		default:
			dst = append(dst, src[run:i]...)
			r, n := utf8.DecodeRune(src[i:])
			dst = appendSurrogates(dst, r)
			i += n
			run = i
		}
	}
	return append(dst, src[run:]...)
}

// EncodedLen returns the CESU-8 length of src. src must be valid UTF-8.
func EncodedLen(src []byte, v cesu8str.Variant) int {
	n := 0
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == 0 && v == cesu8str.Java:
			n += 2
			i++
		case c < 0xF0:
			l := utf8LeadLen(c)
			n += l
			i += l
		default:
			n += 6
			i += 4
		}
	}
	return n
}

func appendSurrogates(dst []byte, r rune) []byte {
	hi, lo := utf16.EncodeRune(r)
	return appendThree(appendThree(dst, hi), lo)
}

func appendThree(dst []byte, c rune) []byte {
	return append(dst,
		0xE0|byte(c>>12),
		0x80|byte(c>>6)&0x3F,
		0x80|byte(c)&0x3F)
}

func utf8LeadLen(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0xE0:
		return 2
	case c < 0xF0:
		return 3
	default:
		return 4
	}
}
