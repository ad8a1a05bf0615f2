package life

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// FullScan evaluates every cell of the board each tick, splitting rows across
// workers. The live-cell argument is validated but not consulted, so births
// next to cells that die in the same tick are found too.
type FullScan struct {
	pool    *model.BoardPool
	workers int
}

// NewFullScan creates a FullScan stepper using one worker per CPU
func NewFullScan(opts ...Option) *FullScan {
	e := NewEngine(opts...)
	return &FullScan{
		pool:    e.pool,
		workers: runtime.NumCPU(),
	}
}

// Step computes the next generation. Result cells are in row-major order.
func (f *FullScan) Step(board *model.Board, cells []model.Cell) (*Result, error) {
	if _, err := validate(board, cells); err != nil {
		return nil, errors.Wrap(err, "[FullScan.Step] invalid input")
	}

	var next *model.Board
	if f.pool != nil {
		next = f.pool.Get(board.Rows(), board.Cols())
	} else {
		next, _ = model.NewBoard(board.Rows(), board.Cols())
	}

	var (
		eg            errgroup.Group
		rows          = board.Rows()
		numWorkers    = max(1, f.workers)
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			for r := startRow; r < endRow; r++ {
				for c := 0; c < board.Cols(); c++ {
					cell := model.Cell{Row: r, Col: c}
					if rules.ApplyConwayRules(CountLiveNeighbors(board, cell), board.IsAlive(cell)) {
						next.Set(cell, model.Alive)
					}
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[FullScan.Step] worker failed")
	}

	res := &Result{Board: next, Cells: next.LiveCells()}
	for r := 0; r < rows; r++ {
		for c := 0; c < board.Cols(); c++ {
			cell := model.Cell{Row: r, Col: c}
			was, is := board.IsAlive(cell), next.IsAlive(cell)
			switch {
			case was && !is:
				res.Deaths = append(res.Deaths, cell)
			case !was && is:
				res.Births = append(res.Births, cell)
			}
		}
	}
	return res, nil
}
