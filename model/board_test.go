package model

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewBoard(%d, %d): expected ErrInvalidDimensions, got %v", dims[0], dims[1], err)
		}
	}
}

func TestFromRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{"rectangular", [][]int{{0, 1, 0}, {1, 0, 0}}, nil},
		{"single cell", [][]int{{1}}, nil},
		{"empty", nil, ErrInvalidDimensions},
		{"empty row", [][]int{{}}, ErrInvalidDimensions},
		{"ragged", [][]int{{0, 1, 0}, {1, 0}}, ErrNonRectangular},
		{"bad value", [][]int{{0, 2}}, ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromRows(tt.rows)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if b.Rows() != len(tt.rows) || b.Cols() != len(tt.rows[0]) {
					t.Fatalf("dimensions %dx%d", b.Rows(), b.Cols())
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBoardAccessors(t *testing.T) {
	b, err := NewBoard(2, 3)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	b.Set(Cell{1, 2}, Alive)
	b.Set(Cell{2, 0}, Alive) // ignored

	if !b.IsAlive(Cell{1, 2}) {
		t.Fatal("expected (1,2) alive")
	}
	if b.InBounds(Cell{2, 0}) || b.InBounds(Cell{0, 3}) || b.InBounds(Cell{-1, 0}) {
		t.Fatal("out-of-range cell reported in bounds")
	}
	if b.Get(Cell{0, -1}) != Dead {
		t.Fatal("out-of-range cell should read dead")
	}
	if b.CountLiving() != 1 {
		t.Fatalf("expected 1 living cell, got %d", b.CountLiving())
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLiveCellsRowMajor(t *testing.T) {
	b, _ := FromRows([][]int{
		{0, 1, 1},
		{1, 0, 0},
		{0, 0, 1},
	})

	got := b.LiveCells()

	want := []Cell{{0, 1}, {0, 2}, {1, 0}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("live cells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("live cells = %v, want %v", got, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := DefaultBoard()
	c := b.Clone()
	if !b.Equal(c) || b.Hash() != c.Hash() {
		t.Fatal("clone differs from original")
	}

	c.Set(Cell{0, 0}, Alive)
	if b.IsAlive(Cell{0, 0}) {
		t.Fatal("mutating the clone changed the original")
	}
	if b.Equal(c) || b.Hash() == c.Hash() {
		t.Fatal("expected boards to differ")
	}
}

func TestToRowsRoundTrip(t *testing.T) {
	rows := [][]int{{1, 0}, {0, 1}, {1, 1}}
	b, _ := FromRows(rows)
	back, err := FromRows(b.ToRows())
	if err != nil {
		t.Fatalf("from rows: %v", err)
	}
	if !b.Equal(back) {
		t.Fatalf("round trip = %v, want %v", back.ToRows(), rows)
	}
}

func TestDefaultBoard(t *testing.T) {
	b := DefaultBoard()
	if b.Rows() != DefaultBoardSize || b.Cols() != DefaultBoardSize {
		t.Fatalf("expected %dx%d, got %dx%d", DefaultBoardSize, DefaultBoardSize, b.Rows(), b.Cols())
	}
	if b.CountLiving() != 7 {
		t.Fatalf("expected 7 live cells, got %d", b.CountLiving())
	}
}

func TestPatterns(t *testing.T) {
	b, _ := NewBoard(6, 6)
	b.AddGlider(1, 1)
	want, _ := FromRows([][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	if !b.Equal(want) {
		t.Fatalf("glider = %v", b.ToRows())
	}

	b.Clear()
	b.AddBlinker(4, 0) // clipped at the bottom edge
	if got := b.LiveCells(); len(got) != 2 {
		t.Fatalf("expected clipped blinker of 2 cells, got %v", got)
	}

	rng := rand.New(rand.NewSource(1))
	b.Randomize(0, rng)
	if b.CountLiving() != 0 {
		t.Fatal("density 0 should leave the board empty")
	}
	b.Randomize(1, rng)
	if b.CountLiving() != 36 {
		t.Fatal("density 1 should fill the board")
	}
}

func TestBoardPool(t *testing.T) {
	pool := NewBoardPool()
	b := pool.Get(3, 4)
	if b.Rows() != 3 || b.Cols() != 4 || b.CountLiving() != 0 {
		t.Fatalf("unexpected pooled board %dx%d with %d live", b.Rows(), b.Cols(), b.CountLiving())
	}
	b.Set(Cell{1, 1}, Alive)
	BoardToPool(b, pool)
	BoardToPool(b, nil)

	again := pool.Get(2, 2)
	if again.Rows() != 2 || again.Cols() != 2 || again.CountLiving() != 0 {
		t.Fatal("pooled board was not reset")
	}
	if err := again.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
