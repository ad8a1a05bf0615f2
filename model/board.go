package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// State is the value of a single board position
type State uint8

const (
	Dead  State = 0
	Alive State = 1
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be at least 1x1")
	ErrNonRectangular    = errors.New("board rows differ in length")
	ErrInvalidState      = errors.New("cell state must be 0 or 1")
)

// Cell is a zero-based (row, column) board coordinate
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offset is a relative (row, column) step from one cell to a neighbor
type Offset struct {
	DRow int
	DCol int
}

// Offsets is the Moore neighborhood in N, NE, E, SE, S, SW, W, NW order.
// Neighbor enumeration follows this order.
var Offsets = [8]Offset{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Move returns the cell reached by applying o to c
func (c Cell) Move(o Offset) Cell {
	return Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// Board is a rectangular grid of cell states indexed by (row, column)
type Board struct {
	rows  int
	cols  int
	cells [][]State
}

// NewBoard creates an all-dead board with the given dimensions
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] got %dx%d", rows, cols)
	}
	return newBoard(rows, cols), nil
}

func newBoard(rows, cols int) *Board {
	cells := make([][]State, rows)
	for i := range cells {
		cells[i] = make([]State, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// FromRows builds a board from plain 0/1 rows, rejecting ragged input
func FromRows(rows [][]int) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[FromRows] got %d rows", len(rows))
	}
	b := newBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != b.cols {
			return nil, errors.Wrapf(ErrNonRectangular, "[FromRows] row %d has %d columns, want %d", r, len(row), b.cols)
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				b.cells[r][c] = Alive
			default:
				return nil, errors.Wrapf(ErrInvalidState, "[FromRows] value %d at %v", v, Cell{r, c})
			}
		}
	}
	return b, nil
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.cols
}

// Validate checks the board's structural invariants. Boards built with NewBoard
// or FromRows always pass; the zero value does not.
func (b *Board) Validate() error {
	if b == nil || b.rows < 1 || b.cols < 1 {
		return ErrInvalidDimensions
	}
	if len(b.cells) != b.rows {
		return errors.Wrapf(ErrNonRectangular, "[Validate] %d rows stored, want %d", len(b.cells), b.rows)
	}
	for r, row := range b.cells {
		if len(row) != b.cols {
			return errors.Wrapf(ErrNonRectangular, "[Validate] row %d has %d columns, want %d", r, len(row), b.cols)
		}
	}
	return nil
}

// InBounds reports whether c lies in [0, rows) x [0, cols)
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Get returns the state of a cell; out-of-range cells read as dead
func (b *Board) Get(c Cell) State {
	if !b.InBounds(c) {
		return Dead
	}
	return b.cells[c.Row][c.Col]
}

// IsAlive reports whether c is in range and alive
func (b *Board) IsAlive(c Cell) bool {
	return b.Get(c) == Alive
}

// Set sets a cell's state; out-of-range cells are ignored
func (b *Board) Set(c Cell, s State) {
	if b.InBounds(c) {
		b.cells[c.Row][c.Col] = s
	}
}

// Reset resizes the board and clears every cell
func (b *Board) Reset(rows, cols int) {
	b.rows = rows
	b.cols = cols

	// Resize cells if needed
	if len(b.cells) != rows {
		b.cells = make([][]State, rows)
	}
	for i := range b.cells {
		if len(b.cells[i]) != cols {
			b.cells[i] = make([]State, cols)
		} else {
			clear(b.cells[i])
		}
	}
}

// Clear sets every cell to dead
func (b *Board) Clear() {
	for r := range b.cells {
		clear(b.cells[r])
	}
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	next := newBoard(b.rows, b.cols)
	b.CopyInto(next)
	return next
}

// CopyInto overwrites dst with b's dimensions and cells
func (b *Board) CopyInto(dst *Board) {
	dst.Reset(b.rows, b.cols)
	for r := range b.cells {
		copy(dst.cells[r], b.cells[r])
	}
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// LiveCells scans the board once in row-major order and returns every alive cell
func (b *Board) LiveCells() []Cell {
	var live []Cell
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] == Alive {
				live = append(live, Cell{Row: r, Col: c})
			}
		}
	}
	return live
}

// CountLiving returns the total number of living cells
func (b *Board) CountLiving() (count int) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r][c] == Alive {
				count++
			}
		}
	}
	return
}

// ToRows returns the board as plain 0/1 rows
func (b *Board) ToRows() [][]int {
	out := make([][]int, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = make([]int, b.cols)
		for c := 0; c < b.cols; c++ {
			out[r][c] = int(b.cells[r][c])
		}
	}
	return out
}

// Hash returns an MD5 hash of the current board state
func (b *Board) Hash() string {
	h := md5.New()
	row := make([]byte, b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			row[c] = byte(b.cells[r][c])
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
