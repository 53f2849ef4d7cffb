package square

import "testing"

func TestNewRankFile(t *testing.T) {
	cases := []struct {
		rank, file, want int
	}{
		{0, 0, 0},
		{1, 4, 12},
		{7, 7, 63},
	}
	for _, c := range cases {
		if got := New(c.rank, c.file); got != c.want {
			t.Fatalf("New(%d,%d) = %d, want %d", c.rank, c.file, got, c.want)
		}
		if Rank(c.want) != c.rank || File(c.want) != c.file {
			t.Fatalf("Rank/File(%d) = (%d,%d), want (%d,%d)", c.want, Rank(c.want), File(c.want), c.rank, c.file)
		}
	}
}

func TestString(t *testing.T) {
	if got := String(New(1, 4)); got != "e2" {
		t.Fatalf("String(e2) = %q, want e2", got)
	}
	if got := String(New(0, 0)); got != "a1" {
		t.Fatalf("String(a1) = %q, want a1", got)
	}
}

func TestOnBoard(t *testing.T) {
	if !OnBoard(0) || !OnBoard(63) {
		t.Fatalf("expected 0 and 63 to be on board")
	}
	if OnBoard(-1) || OnBoard(64) {
		t.Fatalf("expected -1 and 64 to be off board")
	}
}
