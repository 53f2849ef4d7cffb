package bitboard

import "testing"

func TestSetUnsetIsSet(t *testing.T) {
	var b Board
	b.Set(28)
	if !b.IsSet(28) {
		t.Fatalf("expected square 28 to be set")
	}
	b.Unset(28)
	if b.IsSet(28) {
		t.Fatalf("expected square 28 to be cleared")
	}
}

func TestFirstOneAndPop(t *testing.T) {
	var b Board
	b.Set(3)
	b.Set(40)
	if got := b.FirstOne(); got != 3 {
		t.Fatalf("FirstOne() = %d, want 3", got)
	}
	got := b.Pop()
	if got != 3 {
		t.Fatalf("Pop() = %d, want 3", got)
	}
	if b.FirstOne() != 40 {
		t.Fatalf("expected square 40 to remain after pop")
	}
}

func TestCount(t *testing.T) {
	var b Board
	for _, s := range []int{0, 5, 10, 63} {
		b.Set(s)
	}
	if got := b.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}
}
