package codec

import "github.com/wippyai/cesu8str"

// Result classifies a byte run. It is one of Complete, Incomplete or Invalid.
type Result interface {
	// ValidLen is the number of leading bytes that form complete, valid units.
	ValidLen() int
	result()
}

// Complete means all Len bytes formed valid units.
type Complete struct {
	Len int
}

// Incomplete means the first Valid bytes are valid and the rest is a proper
// prefix of a unit that needs more bytes.
type Incomplete struct {
	Valid int
}

// Invalid means the first Valid bytes are valid and the next BadLen bytes
// are a malformed unit.
type Invalid struct {
	Valid  int
	BadLen int
}

func (r Complete) ValidLen() int   { return r.Len }
func (r Incomplete) ValidLen() int { return r.Valid }
func (r Invalid) ValidLen() int    { return r.Valid }

func (Complete) result()   {}
func (Incomplete) result() {}
func (Invalid) result()    {}

const (
	// MaxUTF8UnitLen is the longest UTF-8 unit.
	MaxUTF8UnitLen = 4
	// MaxCESU8UnitLen is the longest CESU-8 unit, a surrogate pair.
	MaxCESU8UnitLen = 6
)

// MaxUnitLen returns the longest unit of the source encoding for d.
// A buffer must hold at least this many bytes to make progress.
func MaxUnitLen(d cesu8str.Direction) int {
	if d == cesu8str.Decode {
		return MaxCESU8UnitLen
	}
	return MaxUTF8UnitLen
}
