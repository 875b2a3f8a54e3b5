package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		absent   []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseDecode,
				Kind:    KindInvalidSequence,
				Offset:  255,
				Length:  3,
				Context: []byte{0x41, 0xed, 0xa0, 0x80, 0x42},
				Detail:  "lone surrogate",
			},
			contains: []string{"[decode]", "invalid_sequence", "offset 255", "0xFF", "3 bytes", "lone surrogate", "[41 ED A0 80 42]"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseRead,
				Kind:   KindIO,
				Offset: NoOffset,
			},
			contains: []string{"[read]", "io"},
			absent:   []string{"offset", "context"},
		},
		{
			name: "single byte",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindInvalidSequence,
				Offset: 0,
				Length: 1,
			},
			contains: []string{"offset 0 (0x0)", "1 byte"},
			absent:   []string{"1 bytes"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseWrite,
				Kind:   KindIO,
				Offset: NoOffset,
				Detail: "disk full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[write]", "io", "disk full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := IO(PhaseRead, cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(fmt.Errorf("wrapped: %w", err), cause) {
		t.Error("errors.Is did not reach cause through wrapping")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidSequence(PhaseEncode, 10, 1, nil)

	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindInvalidSequence}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidSequence}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseEncode, Kind: KindTruncated}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseEncode, Kind: KindInvalidSequence}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	ctx := []byte{1, 2, 3}
	err := New(PhaseDecode, KindTruncated).
		Offset(4096).
		Length(2).
		Context(ctx).
		Cause(cause).
		Detail("need %d more bytes", 1).
		Build()

	ctx[0] = 0xff

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindTruncated {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
	}
	if err.Offset != 4096 {
		t.Errorf("Offset = %d, want 4096", err.Offset)
	}
	if err.Length != 2 {
		t.Errorf("Length = %d, want 2", err.Length)
	}
	if err.Context[0] != 1 {
		t.Errorf("Context was not copied: %v", err.Context)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "need 1 more bytes" {
		t.Errorf("Detail = %v, want 'need 1 more bytes'", err.Detail)
	}
}

func TestBuilder_DefaultOffset(t *testing.T) {
	err := New(PhaseConfig, KindInvalidInput).Build()
	if err.Offset != NoOffset {
		t.Errorf("Offset = %d, want NoOffset", err.Offset)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidSequence", func(t *testing.T) {
		err := InvalidSequence(PhaseDecode, 7, 3, []byte{0xed})
		if err.Kind != KindInvalidSequence || err.Offset != 7 || err.Length != 3 {
			t.Errorf("got %+v", err)
		}
		if !strings.Contains(err.Detail, "cesu-8") {
			t.Errorf("Detail = %q, should name cesu-8 source", err.Detail)
		}
		if !err.Encoding() {
			t.Error("InvalidSequence should be an encoding fault")
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(PhaseEncode, 5, 2)
		if err.Kind != KindTruncated || err.Offset != 5 || err.Length != 2 {
			t.Errorf("got %+v", err)
		}
		if !err.Encoding() {
			t.Error("Truncated should be an encoding fault")
		}
	})

	t.Run("IO", func(t *testing.T) {
		err := IO(PhaseWrite, errors.New("boom"))
		if err.Kind != KindIO || err.Offset != NoOffset {
			t.Errorf("got %+v", err)
		}
		if err.Encoding() {
			t.Error("IO should not be an encoding fault")
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "chunk size too small")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseConfig, KindInvalidInput, cause, "load config")
		if !errors.Is(err, cause) {
			t.Error("Wrap should preserve cause")
		}
	})
}

func TestClassification(t *testing.T) {
	enc := InvalidSequence(PhaseEncode, 0, 1, nil)
	ioErr := IO(PhaseRead, errors.New("eio"))

	tests := []struct {
		name     string
		err      error
		encoding bool
		io       bool
	}{
		{"nil", nil, false, false},
		{"plain", errors.New("x"), false, false},
		{"encoding", enc, true, false},
		{"io", ioErr, false, true},
		{"wrapped encoding", fmt.Errorf("run: %w", enc), true, false},
		{"joined", errors.Join(enc, ioErr), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEncoding(tt.err); got != tt.encoding {
				t.Errorf("IsEncoding = %v, want %v", got, tt.encoding)
			}
			if got := IsIO(tt.err); got != tt.io {
				t.Errorf("IsIO = %v, want %v", got, tt.io)
			}
		})
	}
}

func TestHexContext(t *testing.T) {
	if got := HexContext(nil); got != "[]" {
		t.Errorf("HexContext(nil) = %q", got)
	}
	if got := HexContext([]byte{0x00, 0xc0, 0x80}); got != "[00 C0 80]" {
		t.Errorf("HexContext = %q", got)
	}
}
