package engine

import (
	"strings"
	"time"
)

// CellType represents the two kinds of grid cells
type CellType int

const (
	Floor CellType = 0
	Wall  CellType = 1
)

const (
	// DefaultTileDim is the edge length of one tile in renderer units
	DefaultTileDim = 32

	// DefaultTheme is used when a level does not name one
	DefaultTheme = "default"
)

var cellNames = [...]string{
	Floor: "floor",
	Wall:  "wall",
}

// String returns the tile type name used by renderers
func (c CellType) String() string {
	if c.Valid() {
		return cellNames[c]
	}
	return "unknown"
}

// Valid reports whether c is a known cell code
func (c CellType) Valid() bool {
	return c == Floor || c == Wall
}

// Grid is a rectangular, row-major tile map indexed as grid[y][x]
type Grid [][]CellType

// Height returns the number of rows
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns of the first row
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether p addresses a cell of the grid
func (g Grid) InBounds(p Position) bool {
	if p.Y < 0 || p.Y >= len(g) {
		return false
	}
	return p.X >= 0 && p.X < len(g[p.Y])
}

// At returns the cell at p. The second result is false when p is out of bounds.
func (g Grid) At(p Position) (CellType, bool) {
	if !g.InBounds(p) {
		return Wall, false
	}
	return g[p.Y][p.X], true
}

// Position represents x,y coordinates (column, row)
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position one step away in direction d
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four movement signals
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every direction in input order
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit offset of d. Unknown directions yield (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Valid reports whether d is one of the four directions
func (d Direction) Valid() bool {
	dx, dy := d.Delta()
	return dx != 0 || dy != 0
}

// ParseDirection maps a direction or arrow key name to a Direction.
// Names are case-insensitive; "up" and "ArrowUp" both map to Up.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "arrowup":
		return Up, true
	case "down", "arrowdown":
		return Down, true
	case "left", "arrowleft":
		return Left, true
	case "right", "arrowright":
		return Right, true
	}
	return "", false
}

// Status is the derived game state
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
)

// Won reports whether s is StatusWon
func (s Status) Won() bool {
	return s == StatusWon
}

// Level is the static configuration a game is built from
type Level struct {
	Map    Grid     `json:"map"`
	Player Position `json:"player"`
	Goal   Position `json:"goal"`
	Theme  string   `json:"theme"`
}

// ThemeName returns the theme identifier, or DefaultTheme when none is set
func (l *Level) ThemeName() string {
	if l.Theme == "" {
		return DefaultTheme
	}
	return l.Theme
}

// Clone returns a deep copy of the level
func (l *Level) Clone() *Level {
	grid := make(Grid, len(l.Map))
	for y, row := range l.Map {
		grid[y] = append([]CellType(nil), row...)
	}
	return &Level{
		Map:    grid,
		Player: l.Player,
		Goal:   l.Goal,
		Theme:  l.Theme,
	}
}

// PositionObserver is notified after the player position changes
type PositionObserver func(from, to Position)

// MoveHistoryEntry represents a single move attempt in the game history
type MoveHistoryEntry struct {
	Action       Direction `json:"action"`
	FromPosition Position  `json:"from_position"`
	ToPosition   Position  `json:"to_position"`
	Timestamp    int64     `json:"timestamp"`
	Success      bool      `json:"success"`
	MoveNumber   int       `json:"move_number"`
}

func newMoveHistoryEntry(action Direction, from, to Position, success bool, number int) MoveHistoryEntry {
	return MoveHistoryEntry{
		Action:       action,
		FromPosition: from,
		ToPosition:   to,
		Timestamp:    time.Now().Unix(),
		Success:      success,
		MoveNumber:   number,
	}
}
