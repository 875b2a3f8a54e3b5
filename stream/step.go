package stream

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/cesu8str"
	"github.com/wippyai/cesu8str/codec"
	"github.com/wippyai/cesu8str/errors"
)

// contextRadius bounds the bytes kept on each side of an invalid unit.
const contextRadius = 4

// step transcodes the current window once. It returns the output for the
// valid prefix and whether the run must stop after that output is written.
func (e *engine) step() ([]byte, bool) {
	window := e.buf.Window()
	pos := e.track.Absolute()
	e.pending = false

	out, res := e.transcode(e.scratch[:0], window)
	e.scratch = out[:0]

	switch r := res.(type) {
	case codec.Complete:
		e.log.Debug("chunk complete",
			zap.Int64("from", pos),
			zap.Int64("to", pos+int64(r.Len)))
		e.consume(r.Len)

	case codec.Incomplete:
		e.consume(r.Valid)
		left := len(window) - r.Valid
		if e.in.Open() {
			e.log.Debug("need more bytes",
				zap.Int64("at", pos+int64(r.Valid)),
				zap.Int("left", left))
			e.pending = true
			break
		}
		if e.failFast {
			// Reading stopped at an earlier fault; the cut unit is not a truncation.
			e.log.Debug("discarding tail after invalid input", zap.Int("left", left))
			e.buf.Consume(left)
			break
		}
		err := errors.Truncated(e.phase(), pos+int64(r.Valid), left)
		e.log.Error("encoding error: input truncated",
			zap.Int64("offset", err.Offset),
			zap.Int("pending", left))
		e.track.Fault(err)
		return out, true

	case codec.Invalid:
		at := pos + int64(r.Valid)
		ctx := codec.Context(window, r.Valid, r.BadLen, contextRadius)
		err := errors.InvalidSequence(e.phase(), at, r.BadLen, ctx)
		e.log.Error("input error: invalid source sequence",
			zap.String("source", e.opts.Direction.SourceName()),
			zap.Int("length", r.BadLen),
			zap.Int64("offset", at),
			zap.String("offset_hex", fmt.Sprintf("0x%X", at)),
			zap.String("context", errors.HexContext(ctx)))
		e.track.Fault(err)
		e.consume(r.Valid + r.BadLen)
		e.failFast = true
		e.pump.closeInput()

	default:
		panic(fmt.Sprintf("stream: unexpected codec result %T", res))
	}
	return out, false
}

func (e *engine) transcode(dst, src []byte) ([]byte, codec.Result) {
	if e.opts.Direction == cesu8str.Decode {
		return codec.Decode(dst, src, e.opts.Variant)
	}
	return codec.Encode(dst, src, e.opts.Variant)
}

// consume advances both the window and the absolute position.
func (e *engine) consume(k int) {
	e.buf.Consume(k)
	e.track.Advance(k)
}

func (e *engine) phase() errors.Phase {
	if e.opts.Direction == cesu8str.Decode {
		return errors.PhaseDecode
	}
	return errors.PhaseEncode
}
