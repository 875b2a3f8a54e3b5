package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead   Phase = "read"   // pulling bytes from the input
	PhaseWrite  Phase = "write"  // pushing bytes to the output
	PhaseEncode Phase = "encode" // UTF-8 to CESU-8
	PhaseDecode Phase = "decode" // CESU-8 to UTF-8
	PhaseConfig Phase = "config" // options and flags
)

// Kind categorizes the error
type Kind string

const (
	KindIO              Kind = "io"
	KindInvalidSequence Kind = "invalid_sequence"
	KindTruncated       Kind = "truncated"
	KindInvalidInput    Kind = "invalid_input"
)

// NoOffset marks an error that is not tied to a stream position.
const NoOffset int64 = -1

// Error is the structured error type used throughout the module
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Detail  string
	Context []byte
	Offset  int64
	Length  int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.FormatInt(e.Offset, 10))
		b.WriteString(" (0x")
		b.WriteString(strings.ToUpper(strconv.FormatInt(e.Offset, 16)))
		b.WriteByte(')')
	}

	if e.Length > 0 {
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(e.Length))
		if e.Length == 1 {
			b.WriteString(" byte")
		} else {
			b.WriteString(" bytes")
		}
	}

	if e.Detail != "" {
		if e.Length > 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if len(e.Context) > 0 {
		b.WriteString(" (context ")
		b.WriteString(HexContext(e.Context))
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Encoding reports whether the error is an encoding fault.
func (e *Error) Encoding() bool {
	return e.Kind == KindInvalidSequence || e.Kind == KindTruncated
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Offset sets the absolute stream offset
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Length sets the length of the faulty run
func (b *Builder) Length(n int) *Builder {
	b.err.Length = n
	return b
}

// Context sets the surrounding bytes. The slice is copied.
func (b *Builder) Context(ctx []byte) *Builder {
	b.err.Context = append([]byte(nil), ctx...)
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidSequence creates an invalid unit error at an absolute offset
func InvalidSequence(phase Phase, offset int64, length int, context []byte) *Error {
	return New(phase, KindInvalidSequence).
		Offset(offset).
		Length(length).
		Context(context).
		Detail("invalid source %s sequence", sourceName(phase)).
		Build()
}

// Truncated creates an error for a stream that ended inside a unit
func Truncated(phase Phase, offset int64, pending int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Offset: offset,
		Length: pending,
		Detail: "input truncated",
	}
}

// IO creates an I/O fault
func IO(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Offset: NoOffset,
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}

// IsEncoding reports whether err wraps an encoding fault.
func IsEncoding(err error) bool {
	var e *Error
	for _, leaf := range leaves(err) {
		if stderrors.As(leaf, &e) && e.Encoding() {
			return true
		}
	}
	return false
}

// IsIO reports whether err wraps an I/O fault.
func IsIO(err error) bool {
	var e *Error
	for _, leaf := range leaves(err) {
		if stderrors.As(leaf, &e) && e.Kind == KindIO {
			return true
		}
	}
	return false
}

// leaves flattens errors.Join trees so every fault is inspected, not just the first.
func leaves(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, leaves(e)...)
		}
		return out
	}
	return []error{err}
}

// HexContext renders bytes as space-separated upper-case hex pairs.
func HexContext(p []byte) string {
	const digits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(p)*3 + 2)
	b.WriteByte('[')
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[c>>4])
		b.WriteByte(digits[c&0x0f])
	}
	b.WriteByte(']')
	return b.String()
}

func sourceName(phase Phase) string {
	if phase == PhaseDecode {
		return "cesu-8"
	}
	return "utf-8"
}
