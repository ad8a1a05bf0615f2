package game

import "github.com/sheikhrachel/go-life/model"

// Tick is what a stop condition sees after each generation
type Tick struct {
	Generation int
	Board      *model.Board
	Cells      []model.Cell
	// Repeating is true when the board matches one of the last three states
	Repeating bool
}

// StopCondition returns a non-empty reason when the simulation should end
type StopCondition func(t Tick) string

// MaxGenerations stops once n generations have been computed
func MaxGenerations(n int) StopCondition {
	return func(t Tick) string {
		if t.Generation >= n {
			return "max generations reached"
		}
		return ""
	}
}

// Extinct stops when no cell is alive
func Extinct() StopCondition {
	return func(t Tick) string {
		if t.Board.CountLiving() == 0 {
			return "extinction"
		}
		return ""
	}
}

// Stagnant stops after threshold consecutive generations that repeat a recent state
func Stagnant(threshold int) StopCondition {
	count := 0
	return func(t Tick) string {
		if !t.Repeating {
			count = 0
			return ""
		}
		count++
		if count >= threshold {
			return "stagnation detected"
		}
		return ""
	}
}
