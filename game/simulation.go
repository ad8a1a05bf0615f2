// Package game drives a Stepper tick by tick: render, step, check stop
// conditions, wait.
package game

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/life"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const ReasonInterrupted = "interrupted"

// Renderer draws the board between ticks
type Renderer interface {
	Clear()
	Display(b *model.Board)
	Status(f model.Frame, b *model.Board)
}

// Summary describes how a run ended
type Summary struct {
	Generations int
	Reason      string
	Board       *model.Board
	Cells       []model.Cell
}

// Option configures a Simulation
type Option func(*Simulation)

// WithInterval sets the delay between ticks
func WithInterval(d time.Duration) Option {
	return func(s *Simulation) {
		s.interval = d
	}
}

// WithStop adds stop conditions, checked in order after every tick
func WithStop(conds ...StopCondition) Option {
	return func(s *Simulation) {
		s.stops = append(s.stops, conds...)
	}
}

// WithStats records per-tick statistics into stats
func WithStats(stats *utils.Stats) Option {
	return func(s *Simulation) {
		s.stats = stats
	}
}

// WithPool returns replaced boards to pool
func WithPool(pool *model.BoardPool) Option {
	return func(s *Simulation) {
		s.pool = pool
	}
}

// Simulation holds the driver settings; the (board, cells) pair lives in Run
type Simulation struct {
	stepper  life.Stepper
	renderer Renderer
	interval time.Duration
	stops    []StopCondition
	stats    *utils.Stats
	pool     *model.BoardPool
}

// New creates a Simulation
func New(stepper life.Stepper, renderer Renderer, opts ...Option) *Simulation {
	s := &Simulation{
		stepper:  stepper,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run renders generation 0 and advances until ctx is done, a stop condition
// fires, or the stepper fails. The caller's board is never returned to the pool.
func (s *Simulation) Run(ctx context.Context, board *model.Board, cells []model.Cell) (Summary, error) {
	var (
		hist       history
		generation = 0
		frame      = model.Frame{Population: board.CountLiving()}
		initial    = board
	)
	s.render(frame, board)
	hist.record(board)

	for {
		if ctx.Err() != nil {
			return Summary{Generations: generation, Reason: ReasonInterrupted, Board: board, Cells: cells}, nil
		}

		frameStart := time.Now()
		res, err := s.stepper.Step(board, cells)
		if err != nil {
			return Summary{Generations: generation, Board: board, Cells: cells},
				errors.Wrapf(err, "[Run] generation %d", generation+1)
		}
		if board != initial {
			model.BoardToPool(board, s.pool)
		}
		board, cells = res.Board, res.Cells
		generation++

		frame = model.Frame{
			Generation: generation,
			Population: board.CountLiving(),
			Births:     len(res.Births),
			Deaths:     len(res.Deaths),
		}
		if s.stats != nil {
			s.stats.Update(generation, frame.Population, frame.Births, frame.Deaths, time.Since(frameStart))
		}
		s.render(frame, board)

		tick := Tick{Generation: generation, Board: board, Cells: cells, Repeating: hist.repeats(board)}
		hist.record(board)
		for _, stop := range s.stops {
			if reason := stop(tick); reason != "" {
				return Summary{Generations: generation, Reason: reason, Board: board, Cells: cells}, nil
			}
		}

		if !sleep(ctx, s.interval) {
			return Summary{Generations: generation, Reason: ReasonInterrupted, Board: board, Cells: cells}, nil
		}
	}
}

func (s *Simulation) render(f model.Frame, b *model.Board) {
	if s.renderer == nil {
		return
	}
	s.renderer.Clear()
	s.renderer.Status(f, b)
	s.renderer.Display(b)
}

// sleep waits for d and reports false if ctx ended first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
