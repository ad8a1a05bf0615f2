package model

import "math/rand"

// DefaultBoardSize is the side length of the built-in start board
const DefaultBoardSize = 21

// DefaultBoard returns the built-in 21x21 start position: a small cluster
// that evolves for a while before settling.
func DefaultBoard() *Board {
	b := newBoard(DefaultBoardSize, DefaultBoardSize)
	for _, c := range []Cell{
		{6, 14},
		{7, 8}, {7, 9},
		{8, 9}, {8, 13}, {8, 14}, {8, 15},
	} {
		b.Set(c, Alive)
	}
	return b
}

// AddGlider adds a glider pattern with its top-left corner at (row, col)
func (b *Board) AddGlider(row, col int) {
	pattern := [][]State{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}

	for r, line := range pattern {
		for c, s := range line {
			b.Set(Cell{Row: row + r, Col: col + c}, s)
		}
	}
}

// AddBlinker adds a vertical blinker oscillator starting at (row, col)
func (b *Board) AddBlinker(row, col int) {
	for r := 0; r < 3; r++ {
		b.Set(Cell{Row: row + r, Col: col}, Alive)
	}
}

// Randomize sets each cell alive with the given probability
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			s := Dead
			if rng.Float64() < density {
				s = Alive
			}
			b.cells[r][c] = s
		}
	}
}
