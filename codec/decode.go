package codec

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wippyai/cesu8str"
)

// Decode scans src as CESU-8 under v and appends the UTF-8 form of its
// valid prefix to dst.
func Decode(dst, src []byte, v cesu8str.Variant) ([]byte, Result) {
	res := ScanCESU8(src, v)
	return AppendDecode(dst, src[:res.ValidLen()], v), res
}

// AppendDecode appends the UTF-8 form of src to dst. src must be valid
// CESU-8 under v.
func AppendDecode(dst, src []byte, v cesu8str.Variant) []byte {
	run := 0
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == 0xC0 && v == cesu8str.Java:
			dst = append(dst, src[run:i]...)
			dst = append(dst, 0x00)
			i += 2
			run = i
		case c == 0xED && i+1 < len(src) && src[i+1] >= 0xA0:
			dst = append(dst, src[run:i]...)
			hi := threeByte(src[i:])
			lo := threeByte(src[i+3:])
			dst = utf8.AppendRune(dst, utf16.DecodeRune(hi, lo))
			i += 6
			run = i
		default:
			i += utf8LeadLen(c)
		}
	}
	return append(dst, src[run:]...)
}

// DecodedLen returns the UTF-8 length of src. src must be valid CESU-8 under v.
func DecodedLen(src []byte, v cesu8str.Variant) int {
	n := 0
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == 0xC0 && v == cesu8str.Java:
			n++
			i += 2
		case c == 0xED && i+1 < len(src) && src[i+1] >= 0xA0:
			n += 4
			i += 6
		default:
			l := utf8LeadLen(c)
			n += l
			i += l
		}
	}
	return n
}

func threeByte(p []byte) rune {
	return rune(p[0]&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F)
}
