package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// CountCellType counts the total number of cells of a specific type in the grid
func CountCellType(grid Grid, cellType CellType) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == cellType {
				count++
			}
		}
	}
	return count
}

// DirectionBetween returns the direction leading from one position to an
// adjacent one. The second result is false when the positions are not neighbours.
func DirectionBetween(from, to Position) (Direction, bool) {
	for _, dir := range Directions {
		if from.Add(dir) == to {
			return dir, true
		}
	}
	return "", false
}
