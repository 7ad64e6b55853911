// Package validate checks level JSON files. It reports:
//   - JSON structure and the fields a level needs
//   - Grid consistency and allowed cell codes (0 floor, 1 wall)
//   - Player and goal inside the grid and not on a wall
//   - Connectivity: the goal is reachable from the player start
//   - Floor cells that can never be reached and unknown themes (warnings only)
package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/maze-game/game/engine"
	"github.com/wricardo/maze-game/game/solver"
	"github.com/wricardo/maze-game/render/theme"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateFile loads and validates a single level file
func ValidateFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	level, missing, err := engine.DecodeLevel(data)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}
	if len(missing) > 0 {
		result.Valid = false
		for _, problem := range missing {
			result.Errors = append(result.Errors, problem.Error())
		}
		return result
	}

	return validateLevel(result, level)
}

// ValidateLevel validates an in-memory level under the given display name
func ValidateLevel(name string, level *engine.Level) ValidationResult {
	return validateLevel(ValidationResult{File: name, Valid: true, Errors: []string{}}, level)
}

func validateLevel(result ValidationResult, level *engine.Level) ValidationResult {
	for _, problem := range engine.LevelProblems(level) {
		result.Valid = false
		result.Errors = append(result.Errors, problem.Error())
	}
	if !result.Valid {
		return result
	}

	connectivity := validateConnectivity(level)
	if !connectivity.Valid {
		result.Valid = false
		result.Errors = append(result.Errors, connectivity.Errors...)
		return result
	}
	result.Errors = append(result.Errors, connectivity.Errors...)
	result.Warnings = append(result.Warnings, connectivity.Warnings...)

	if _, ok := theme.Lookup(level.ThemeName()); !ok {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown theme %q, renderers fall back to %s (known: %s)",
			level.Theme, engine.DefaultTheme, strings.Join(theme.Names(), ", ")))
	}
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", level.Map.Width(), level.Map.Height()))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Walls: %d", engine.CountCellType(level.Map, engine.Wall)))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Player: (%d,%d) Goal: (%d,%d)", level.Player.X, level.Player.Y, level.Goal.X, level.Goal.Y))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Theme: %s", level.ThemeName()))
	return result
}

// validateConnectivity ensures the goal can be reached from the player start
// using 4-directional movement over floor cells, and warns about floor cells
// that can never be visited.
func validateConnectivity(level *engine.Level) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	path, ok := solver.ShortestPath(level)
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Connectivity failure: goal (%d,%d) unreachable from player (%d,%d)",
			level.Goal.X, level.Goal.Y, level.Player.X, level.Player.Y))
		return result
	}
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Connectivity: goal reachable in %d moves", len(path)-1))

	reachable := solver.Reachable(level.Map, level.Player)
	for y, row := range level.Map {
		for x, cell := range row {
			if cell == engine.Floor && !reachable[engine.Position{X: x, Y: y}] {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Unreachable floor at (%d,%d)", x, y))
			}
		}
	}

	return result
}

// ValidateDir validates every *.json file in dir, sorted by name
func ValidateDir(dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("error finding level files: %w", err)
	}
	sort.Strings(files)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, ValidateFile(file))
	}
	return results, nil
}

// ValidatePaths validates files and directories. Directories are expanded to
// the level files they contain.
func ValidatePaths(paths []string) ([]ValidationResult, error) {
	var results []ValidationResult
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			results = append(results, ValidationResult{
				File:   filepath.Base(path),
				Errors: []string{fmt.Sprintf("Failed to read file: %v", err)},
			})
			continue
		}

		if !info.IsDir() {
			results = append(results, ValidateFile(path))
			continue
		}

		dirResults, err := ValidateDir(path)
		if err != nil {
			return nil, err
		}
		results = append(results, dirResults...)
	}
	return results, nil
}

// WriteReport prints a concise report and returns whether every level was
// valid.
func WriteReport(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
		for _, warning := range result.Warnings {
			fmt.Fprintln(w, "  ⚠ "+warning)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	switch {
	case len(results) == 0:
		fmt.Fprintln(w, "No level files found")
	case allValid:
		fmt.Fprintln(w, "✅ All levels are valid!")
	default:
		fmt.Fprintln(w, "❌ Some levels have errors")
	}
	return allValid
}
