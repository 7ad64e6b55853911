package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidLevel wraps every level validation failure
var ErrInvalidLevel = errors.New("invalid level")

// LevelProblems returns every validation problem found in the level
func LevelProblems(level *Level) []error {
	if level == nil {
		return []error{fmt.Errorf("%w: level is nil", ErrInvalidLevel)}
	}

	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf("%w: "+format, append([]any{ErrInvalidLevel}, args...)...))
	}

	// Validate grid shape
	if len(level.Map) == 0 {
		fail("map must have at least one row")
		return problems
	}
	width := len(level.Map[0])
	if width == 0 {
		fail("map rows must have at least one column")
		return problems
	}

	for y, row := range level.Map {
		if len(row) != width {
			fail("row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, cell := range row {
			if !cell.Valid() {
				fail("unknown cell code %d at (%d,%d)", int(cell), x, y)
			}
		}
	}

	// Validate positions
	checkPosition := func(name string, p Position) {
		cell, ok := level.Map.At(p)
		switch {
		case !ok:
			fail("%s (%d,%d) is outside the %dx%d map", name, p.X, p.Y, width, len(level.Map))
		case cell == Wall:
			fail("%s (%d,%d) is on a wall", name, p.X, p.Y)
		}
	}
	checkPosition("player", level.Player)
	checkPosition("goal", level.Goal)

	return problems
}

// ValidateLevel returns the first validation problem, or nil
func ValidateLevel(level *Level) error {
	if problems := LevelProblems(level); len(problems) > 0 {
		return problems[0]
	}
	return nil
}

// levelRecord mirrors the level JSON with pointer fields so missing keys can
// be told apart from zero values
type levelRecord struct {
	Map    *Grid     `json:"map"`
	Player *Position `json:"player"`
	Goal   *Position `json:"goal"`
	Theme  string    `json:"theme"`
}

// DecodeLevel decodes a level JSON record without validating its contents.
// The returned problems name every missing required field; err is set only
// when the data is not valid JSON for a level.
func DecodeLevel(data []byte) (level *Level, problems []error, err error) {
	var record levelRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil, err
	}

	level = &Level{Theme: record.Theme}
	missing := func(field string) {
		problems = append(problems, fmt.Errorf("%w: missing required field %q", ErrInvalidLevel, field))
	}
	if record.Map == nil {
		missing("map")
	} else {
		level.Map = *record.Map
	}
	if record.Player == nil {
		missing("player")
	} else {
		level.Player = *record.Player
	}
	if record.Goal == nil {
		missing("goal")
	} else {
		level.Goal = *record.Goal
	}
	return level, problems, nil
}

// ParseLevel decodes and validates a level JSON record. The theme is kept
// as written; see Level.ThemeName.
func ParseLevel(data []byte) (*Level, error) {
	level, problems, err := DecodeLevel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if len(problems) > 0 {
		return nil, problems[0]
	}

	if err := ValidateLevel(level); err != nil {
		return nil, err
	}
	return level, nil
}

// LoadLevel loads a level from a JSON file
func LoadLevel(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file '%s': %w", filename, err)
	}

	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level file '%s': %w", filename, err)
	}
	return level, nil
}

// DefaultLevel returns a fresh copy of the built-in level
func DefaultLevel() *Level {
	return &Level{
		Map: Grid{
			{1, 1, 0, 0, 1},
			{1, 0, 0, 0, 0},
			{0, 0, 1, 1, 0},
			{0, 0, 0, 1, 0},
			{0, 1, 0, 1, 0},
		},
		Player: Position{X: 0, Y: 4},
		Goal:   Position{X: 4, Y: 1},
		Theme:  DefaultTheme,
	}
}
