package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	alive, neighbors < 2  -> dead
	alive, neighbors 2..3 -> alive
	alive, neighbors > 3  -> dead
	dead,  neighbors == 3 -> alive
	dead,  otherwise      -> dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
