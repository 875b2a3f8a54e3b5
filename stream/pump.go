package stream

import (
	stderrors "errors"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/cesu8str/errors"
)

// maxConsecutiveEmptyReads matches bufio: a reader returning (0, nil) this
// many times in a row is treated as broken.
const maxConsecutiveEmptyReads = 100

// pump moves bytes between the handles and the buffer.
type pump struct {
	in         *Input
	out        *Output
	track      *Tracker
	log        *zap.Logger
	emptyReads int
}

// tryFill reads once into the free tail of buf.
func (p *pump) tryFill(buf *Buffer) {
	tail := buf.Tail()
	n, err := p.in.Read(tail)
	if n < 0 || n > len(tail) {
		p.failRead(stderrors.New("reader returned invalid count"))
		return
	}
	if n > 0 {
		p.log.Debug("read input",
			zap.Int("end", buf.Start()+buf.Len()),
			zap.Int("n", n))
		buf.Extend(n)
		p.track.Read()
		p.emptyReads = 0
	}

	switch {
	case err == nil:
		if n == 0 {
			p.emptyReads++
			if p.emptyReads >= maxConsecutiveEmptyReads {
				p.failRead(io.ErrNoProgress)
			}
		}
	case stderrors.Is(err, io.EOF):
		p.log.Debug("input exhausted")
		p.closeInput()
	case IsDisconnect(err):
		p.log.Debug("input disconnected", zap.Error(err))
		p.closeInput()
	default:
		p.failRead(err)
	}
}

func (p *pump) failRead(err error) {
	p.log.Error("input error", zap.Error(err))
	p.track.Fault(errors.IO(errors.PhaseRead, err))
	p.closeInput()
}

func (p *pump) closeInput() {
	if err := p.in.Close(); err != nil {
		p.log.Debug("closing input", zap.Error(err))
	}
}

// drain writes data and reports whether the run may continue.
func (p *pump) drain(data []byte) bool {
	if !p.out.Open() {
		return false
	}
	p.log.Debug("writing output", zap.Int("n", len(data)))
	n, err := p.out.Write(data)
	p.track.Produced(n)
	switch {
	case err == nil:
		return true
	case IsDisconnect(err):
		p.log.Debug("output disconnected", zap.Error(err))
		if cerr := p.out.Close(); cerr != nil {
			p.log.Debug("closing output", zap.Error(cerr))
		}
		return false
	default:
		p.log.Error("output error", zap.Error(err))
		p.track.Fault(errors.IO(errors.PhaseWrite, err))
		return false
	}
}

// release closes both handles. A failing output close loses data and is
// recorded as an I/O fault.
func (p *pump) release() {
	p.closeInput()
	if err := p.out.Close(); err != nil {
		p.log.Error("closing output", zap.Error(err))
		p.track.Fault(errors.IO(errors.PhaseWrite, err))
	}
}
