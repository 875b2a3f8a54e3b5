package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_FillConsumeCompact(t *testing.T) {
	b := NewBuffer(8)
	if b.HasData() || b.Cap() != 8 || b.RemainingCapacity() != 8 {
		t.Fatalf("new buffer: len=%d cap=%d free=%d", b.Len(), b.Cap(), b.RemainingCapacity())
	}

	n := copy(b.Tail(), "abcdef")
	b.Extend(n)
	if diff := cmp.Diff("abcdef", string(b.Window())); diff != "" {
		t.Errorf("window mismatch:\n%s", diff)
	}

	b.Consume(4)
	if b.Start() != 4 || b.Len() != 2 || b.RemainingCapacity() != 2 {
		t.Errorf("after consume: start=%d len=%d free=%d", b.Start(), b.Len(), b.RemainingCapacity())
	}

	if !b.Compact() {
		t.Error("Compact should move a non-zero start")
	}
	if b.Start() != 0 || string(b.Window()) != "ef" || b.RemainingCapacity() != 6 {
		t.Errorf("after compact: start=%d window=%q free=%d", b.Start(), b.Window(), b.RemainingCapacity())
	}
	if b.Compact() {
		t.Error("Compact at start 0 should be a no-op")
	}
}

func TestBuffer_WindowCannotGrowIntoTail(t *testing.T) {
	b := NewBuffer(4)
	b.Extend(copy(b.Tail(), "ab"))
	w := b.Window()
	if cap(w) != 2 {
		t.Errorf("window cap = %d, want 2", cap(w))
	}
}

func TestBuffer_NeedsFill(t *testing.T) {
	tests := []struct {
		size, fill int
		want       bool
	}{
		{16, 0, true},
		{16, 4, true},
		{16, 5, false},
		{6, 1, true},
		{6, 2, false},
		{4, 1, true},
	}
	for _, tt := range tests {
		b := NewBuffer(tt.size)
		b.Extend(tt.fill)
		if got := b.NeedsFill(); got != tt.want {
			t.Errorf("size %d fill %d: NeedsFill = %v, want %v", tt.size, tt.fill, got, tt.want)
		}
	}
}

func TestBuffer_Bounds(t *testing.T) {
	t.Run("extend past capacity", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewBuffer(2).Extend(3)
	})

	t.Run("consume past window", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		b := NewBuffer(4)
		b.Extend(1)
		b.Consume(2)
	})
}
