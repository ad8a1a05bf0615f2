package rules

const (
	// MinSurvivors is the fewest live neighbors a live cell needs to survive.
	MinSurvivors = 2
	// MaxSurvivors is the most live neighbors a live cell can have and survive.
	MaxSurvivors = 3
	// BirthNeighbors is the exact live neighbor count that brings a dead cell to life.
	BirthNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return !Dies(neighbors)
	}
	return Born(neighbors)
}

// Dies reports whether a live cell with the given neighbor count dies this tick,
// by underpopulation (< 2) or overpopulation (> 3)
func Dies(neighbors int) bool {
	return neighbors < MinSurvivors || neighbors > MaxSurvivors
}

// Born reports whether a dead cell with the given neighbor count comes alive
func Born(neighbors int) bool {
	return neighbors == BirthNeighbors
}
