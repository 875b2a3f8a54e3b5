package stream

import "fmt"

// Buffer is a fixed-capacity sliding window over a byte array.
// Bytes outside [start, end) are never read.
type Buffer struct {
	buf   []byte
	start int
	end   int
}

// NewBuffer allocates a buffer of size bytes. It is never reallocated.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Len returns the number of unconsumed bytes.
func (b *Buffer) Len() int { return b.end - b.start }

// Start returns the window start index.
func (b *Buffer) Start() int { return b.start }

// HasData reports whether the window is non-empty.
func (b *Buffer) HasData() bool { return b.end > b.start }

// RemainingCapacity returns the free space after the window.
func (b *Buffer) RemainingCapacity() int { return len(b.buf) - b.end }

// NeedsFill reports whether the window is at most a quarter of the capacity.
func (b *Buffer) NeedsFill() bool { return b.Len() <= len(b.buf)/4 }

// Window returns the unconsumed bytes. The slice is only valid until the
// next Compact or Extend.
func (b *Buffer) Window() []byte { return b.buf[b.start:b.end:b.end] }

// Tail returns the free space a read may fill.
func (b *Buffer) Tail() []byte { return b.buf[b.end:] }

// Compact moves the window to the front of the array and reports whether
// anything moved.
func (b *Buffer) Compact() bool {
	if b.start == 0 {
		return false
	}
	copy(b.buf, b.buf[b.start:b.end])
	b.end -= b.start
	b.start = 0
	return true
}

// Extend marks n bytes of Tail as filled.
func (b *Buffer) Extend(n int) {
	if n < 0 || n > b.RemainingCapacity() {
		panic(fmt.Sprintf("stream: extend by %d with %d bytes free", n, b.RemainingCapacity()))
	}
	b.end += n
}

// Consume drops n bytes from the front of the window.
func (b *Buffer) Consume(n int) {
	if n < 0 || n > b.Len() {
		panic(fmt.Sprintf("stream: consume %d of %d bytes", n, b.Len()))
	}
	b.start += n
}
