// Package life computes Game of Life generations.
//
// Engine tracks an explicit live-cell set alongside the board: each tick only
// the tracked cells and their dead neighbors are examined. Every count for
// generation N is taken against generation N's board; the next board is a
// patched copy.
package life

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

var (
	ErrMalformedBoard   = errors.New("malformed board")
	ErrCellOutOfRange   = errors.New("live cell out of range")
	ErrInconsistentCell = errors.New("live cell is dead on the board")
)

// Stepper advances a (board, live cells) pair by one generation
type Stepper interface {
	Step(board *model.Board, cells []model.Cell) (*Result, error)
}

// Result is the next generation produced by a Stepper
type Result struct {
	Board *model.Board
	// Cells is the next live-cell set: newborns first, then survivors
	Cells  []model.Cell
	Births []model.Cell
	Deaths []model.Cell
}

// Option configures an Engine
type Option func(*Engine)

// WithPool makes the engine take its output boards from pool
func WithPool(pool *model.BoardPool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

// Engine is the tracked-set transition engine. It holds no state between
// calls and is safe for concurrent use on independent inputs.
type Engine struct {
	pool *model.BoardPool
}

// NewEngine creates an Engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step computes the next generation from board and its live-cell set.
// Duplicate entries in cells are collapsed. The input board is never modified.
func (e *Engine) Step(board *model.Board, cells []model.Cell) (*Result, error) {
	live, err := validate(board, cells)
	if err != nil {
		return nil, errors.Wrap(err, "[Step] invalid input")
	}

	deaths := ClassifyDeaths(board, live)
	survivors := make([]model.Cell, 0, live.Len())
	for _, c := range live.Cells() {
		if !deaths.Has(c) {
			survivors = append(survivors, c)
		}
	}
	births := ClassifyBirths(board, BirthCandidates(board, survivors))

	next := e.newBoard(board)
	for _, c := range births {
		next.Set(c, model.Alive)
	}
	dead := deaths.Cells()
	for _, c := range dead {
		next.Set(c, model.Dead)
	}

	nextCells := make([]model.Cell, 0, len(births)+len(survivors))
	nextCells = append(nextCells, births...)
	nextCells = append(nextCells, survivors...)

	return &Result{
		Board:  next,
		Cells:  nextCells,
		Births: births,
		Deaths: dead,
	}, nil
}

func (e *Engine) newBoard(board *model.Board) *model.Board {
	if e.pool == nil {
		return board.Clone()
	}
	next := e.pool.Get(board.Rows(), board.Cols())
	board.CopyInto(next)
	return next
}

// validate rejects malformed boards and live cells that are out of range or
// dead on the board, returning the deduplicated live set
func validate(board *model.Board, cells []model.Cell) (*model.CellSet, error) {
	if board == nil {
		return nil, errors.Wrap(ErrMalformedBoard, "nil board")
	}
	if err := board.Validate(); err != nil {
		return nil, errors.Wrap(ErrMalformedBoard, err.Error())
	}
	live := model.NewCellSet()
	for _, c := range cells {
		if !board.InBounds(c) {
			return nil, errors.Wrapf(ErrCellOutOfRange, "%v on a %dx%d board", c, board.Rows(), board.Cols())
		}
		if !board.IsAlive(c) {
			return nil, errors.Wrapf(ErrInconsistentCell, "%v", c)
		}
		live.Add(c)
	}
	return live, nil
}

// CountLiveNeighbors counts the alive cells among c's in-range Moore neighbors.
// The grid does not wrap.
func CountLiveNeighbors(board *model.Board, c model.Cell) int {
	count := 0
	for _, o := range model.Offsets {
		if board.IsAlive(c.Move(o)) {
			count++
		}
	}
	return count
}

// ClassifyDeaths returns the members of cells that die this tick. Every member
// is assumed alive on board.
func ClassifyDeaths(board *model.Board, cells *model.CellSet) *model.CellSet {
	deaths := model.NewCellSet()
	for _, c := range cells.Cells() {
		if rules.Dies(CountLiveNeighbors(board, c)) {
			deaths.Add(c)
		}
	}
	return deaths
}

// BirthCandidates collects the in-range dead neighbors of the survivors,
// each at most once, in survivor then offset order
func BirthCandidates(board *model.Board, survivors []model.Cell) *model.CellSet {
	candidates := model.NewCellSet()
	for _, s := range survivors {
		for _, o := range model.Offsets {
			n := s.Move(o)
			if board.InBounds(n) && !board.IsAlive(n) {
				candidates.Add(n)
			}
		}
	}
	return candidates
}

// ClassifyBirths returns the candidates with exactly three live neighbors,
// in candidate order
func ClassifyBirths(board *model.Board, candidates *model.CellSet) []model.Cell {
	var births []model.Cell
	for _, c := range candidates.Cells() {
		if rules.Born(CountLiveNeighbors(board, c)) {
			births = append(births, c)
		}
	}
	return births
}
