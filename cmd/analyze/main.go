// Command analyze prints quick, human-readable statistics about the level
// files in a level directory (default "levels"). It summarizes dimensions,
// wall density, reachable floor and the length of the shortest path from the
// player start to the goal compared with the straight-line distance.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wricardo/maze-game/game/config"
	"github.com/wricardo/maze-game/game/engine"
	"github.com/wricardo/maze-game/game/solver"
)

// Analysis holds the statistics reported for one level.
type Analysis struct {
	Columns      int
	Rows         int
	Walls        int
	Floor        int
	Reachable    int
	Manhattan    int
	PathLength   int // -1 when the goal cannot be reached
	Directions   []engine.Direction
	WallRatio    float64
	DetourFactor float64
}

func main() {
	levelDir := "levels"
	if len(os.Args) > 1 {
		levelDir = os.Args[1]
	}

	if err := run(os.Stdout, levelDir); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, levelDir string) error {
	manager, err := config.NewManager(levelDir)
	if err != nil {
		return fmt.Errorf("failed to open level directory: %w", err)
	}

	levels, err := manager.ListLevels()
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		fmt.Fprintf(w, "No valid levels found in %s\n", levelDir)
		return nil
	}

	for _, info := range levels {
		level, err := manager.Load(info.LevelID)
		if err != nil {
			fmt.Fprintf(w, "Error loading %s: %v\n", info.Filename, err)
			continue
		}

		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", info.Filename)
		printAnalysis(w, level, analyzeLevel(level))
	}
	return nil
}

func analyzeLevel(level *engine.Level) Analysis {
	a := Analysis{
		Columns:    level.Map.Width(),
		Rows:       level.Map.Height(),
		Walls:      engine.CountCellType(level.Map, engine.Wall),
		Floor:      engine.CountCellType(level.Map, engine.Floor),
		Reachable:  len(solver.Reachable(level.Map, level.Player)),
		Manhattan:  engine.ManhattanDistance(level.Player, level.Goal),
		PathLength: -1,
	}

	if cells := a.Columns * a.Rows; cells > 0 {
		a.WallRatio = float64(a.Walls) / float64(cells)
	}

	if path, ok := solver.ShortestPath(level); ok {
		a.PathLength = len(path) - 1
		a.Directions = solver.Directions(path)
		if a.Manhattan > 0 {
			a.DetourFactor = float64(a.PathLength) / float64(a.Manhattan)
		}
	}
	return a
}

func printAnalysis(w io.Writer, level *engine.Level, a Analysis) {
	fmt.Fprintf(w, "Theme: %s\n", level.ThemeName())
	fmt.Fprintf(w, "Grid Size: %d x %d\n", a.Columns, a.Rows)
	fmt.Fprintf(w, "Walls: %d (%.0f%%)\n", a.Walls, a.WallRatio*100)
	fmt.Fprintf(w, "Player: (%d, %d)  Goal: (%d, %d)\n", level.Player.X, level.Player.Y, level.Goal.X, level.Goal.Y)

	if a.Reachable < a.Floor {
		fmt.Fprintf(w, "⚠️  WARNING: %d of %d floor cells can never be reached\n", a.Floor-a.Reachable, a.Floor)
	} else {
		fmt.Fprintf(w, "✅ All %d floor cells are reachable\n", a.Floor)
	}

	if a.PathLength < 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: the goal is unreachable from the start\n")
		return
	}

	fmt.Fprintf(w, "✅ Shortest path: %d moves (Manhattan distance %d", a.PathLength, a.Manhattan)
	if a.DetourFactor > 0 {
		fmt.Fprintf(w, ", detour x%.2f", a.DetourFactor)
	}
	fmt.Fprintln(w, ")")

	if len(a.Directions) > 0 {
		names := make([]string, len(a.Directions))
		for i, d := range a.Directions {
			names[i] = string(d)
		}
		fmt.Fprintf(w, "   Route: %s\n", strings.Join(names, " "))
	}
}
