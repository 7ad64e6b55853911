// Package solver finds walkable routes through a level using A*.
package solver

import (
	"github.com/beefsack/go-astar"
	"github.com/wricardo/maze-game/game/engine"
)

// world tracks all floor tiles and is used for astar traversal.
type world struct {
	tiles map[engine.Position]*tile
}

// tile represents a floor cell on the map.
type tile struct {
	position engine.Position
	world    *world
}

// PathNeighbors is used by beefsack/astar to traverse.
func (t *tile) PathNeighbors() []astar.Pather {
	neighbors := []astar.Pather{}
	for _, dir := range engine.Directions {
		if neighbor, ok := t.world.tiles[t.position.Add(dir)]; ok {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// PathNeighborCost is used by beefsack/astar to determine the cost of a move.
func (t *tile) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost is used by beefsack/astar to estimate the remaining distance.
func (t *tile) PathEstimatedCost(to astar.Pather) float64 {
	return float64(engine.ManhattanDistance(t.position, to.(*tile).position))
}

func newWorld(grid engine.Grid) *world {
	w := &world{tiles: make(map[engine.Position]*tile)}
	for y, row := range grid {
		for x, cell := range row {
			if cell != engine.Floor {
				continue
			}
			p := engine.Position{X: x, Y: y}
			w.tiles[p] = &tile{position: p, world: w}
		}
	}
	return w
}

// Path returns the shortest walkable route from one position to another,
// both ends included. The second result is false when no route exists or
// either end is not a floor tile.
func Path(grid engine.Grid, from, to engine.Position) ([]engine.Position, bool) {
	w := newWorld(grid)
	fromTile, ok := w.tiles[from]
	if !ok {
		return nil, false
	}
	toTile, ok := w.tiles[to]
	if !ok {
		return nil, false
	}

	path, _, found := astar.Path(toTile, fromTile)
	if !found {
		return nil, false
	}

	positions := make([]engine.Position, len(path))
	for i, p := range path {
		positions[i] = p.(*tile).position
	}
	if positions[0] != from {
		reverse(positions)
	}
	return positions, true
}

// ShortestPath returns the route from the level's player start to its goal
func ShortestPath(level *engine.Level) ([]engine.Position, bool) {
	return Path(level.Map, level.Player, level.Goal)
}

// Directions converts a route into the inputs that walk it
func Directions(path []engine.Position) []engine.Direction {
	if len(path) < 2 {
		return nil
	}
	dirs := make([]engine.Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		dir, ok := engine.DirectionBetween(path[i-1], path[i])
		if !ok {
			return nil
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// Reachable returns every floor position reachable from start
func Reachable(grid engine.Grid, start engine.Position) map[engine.Position]bool {
	w := newWorld(grid)
	seen := make(map[engine.Position]bool)
	first, ok := w.tiles[start]
	if !ok {
		return seen
	}

	queue := []*tile{first}
	seen[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.PathNeighbors() {
			next := n.(*tile)
			if !seen[next.position] {
				seen[next.position] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}

func reverse(positions []engine.Position) {
	for i, j := 0, len(positions)-1; i < j; i, j = i+1, j-1 {
		positions[i], positions[j] = positions[j], positions[i]
	}
}
