package stream

import (
	"errors"
	"io"
	"net"
	"syscall"
)

// ErrHandleClosed is returned by Read or Write on a closed handle.
var ErrHandleClosed = errors.New("stream: handle closed")

type handleState uint8

const (
	handleOpen handleState = iota
	handleClosed
)

// Input is a one-way closable input handle. Once closed it never reopens
// and the underlying reader is released.
type Input struct {
	r     io.Reader
	state handleState
}

// NewInput wraps r. A nil reader yields a closed handle.
func NewInput(r io.Reader) *Input {
	if r == nil {
		return &Input{state: handleClosed}
	}
	return &Input{r: r}
}

// Open reports whether the handle can still be read.
func (h *Input) Open() bool { return h.state == handleOpen }

func (h *Input) Read(p []byte) (int, error) {
	if h.state != handleOpen {
		return 0, ErrHandleClosed
	}
	return h.r.Read(p)
}

// Close drops the reader, closing it when it is an io.Closer.
// Closing twice is a no-op.
func (h *Input) Close() error {
	if h.state != handleOpen {
		return nil
	}
	r := h.r
	h.r = nil
	h.state = handleClosed
	if c, ok := r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Output is a one-way closable output handle.
type Output struct {
	w     io.Writer
	state handleState
}

// NewOutput wraps w. A nil writer yields a closed handle.
func NewOutput(w io.Writer) *Output {
	if w == nil {
		return &Output{state: handleClosed}
	}
	return &Output{w: w}
}

// Open reports whether the handle can still be written.
func (h *Output) Open() bool { return h.state == handleOpen }

// Write writes all of p or returns an error; a short write without an error
// from the writer is reported as io.ErrShortWrite.
func (h *Output) Write(p []byte) (int, error) {
	if h.state != handleOpen {
		return 0, ErrHandleClosed
	}
	n, err := h.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Close drops the writer, closing it when it is an io.Closer.
func (h *Output) Close() error {
	if h.state != handleOpen {
		return nil
	}
	w := h.w
	h.w = nil
	h.state = handleClosed
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// IsDisconnect reports whether err means the peer on the other end of a
// pipe or socket went away.
func IsDisconnect(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed)
}
