package engine

// Engine provides the main interface for game operations
type Engine interface {
	// Game state
	CheckGoal() Status
	PlayerPosition() Position
	GoalPosition() Position
	Theme() string
	Grid() Grid

	// Movement operations
	Move(direction Direction) bool
	CanMove(direction Direction) bool
	PossibleMoves() []Direction

	// Rendering
	PopulateMap(tileDim int) Layout
	OnPositionChange(observer PositionObserver)

	// History
	MoveHistory() []MoveHistoryEntry
	LastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	grid      Grid
	theme     string
	player    Position
	goal      Position
	history   []MoveHistoryEntry
	observers []PositionObserver
}

var _ Engine = (*GameEngine)(nil)

// NewEngine creates a new game engine for the provided level.
// Player and goal are copied; the grid is shared and never written.
func NewEngine(level *Level) (*GameEngine, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	return &GameEngine{
		grid:    level.Map,
		theme:   level.ThemeName(),
		player:  level.Player,
		goal:    level.Goal,
		history: []MoveHistoryEntry{},
	}, nil
}

// Move attempts to move the player one tile in the specified direction.
// Blocked moves leave the state untouched and return false.
func (e *GameEngine) Move(direction Direction) bool {
	from := e.player
	to, success := e.movePlayer(direction)

	e.addMoveToHistory(direction, from, to, success)

	if success {
		e.notifyPositionChange(from, to)
	}
	return success
}

// CanMove checks if the player can move in the specified direction
func (e *GameEngine) CanMove(direction Direction) bool {
	if !direction.Valid() {
		return false
	}
	return e.CanMoveTo(e.player.Add(direction))
}

// PossibleMoves returns all valid directions the player can move
func (e *GameEngine) PossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// CheckGoal returns StatusWon while the player stands on the goal
func (e *GameEngine) CheckGoal() Status {
	if e.player == e.goal {
		return StatusWon
	}
	return StatusPlaying
}

// PlayerPosition returns the current player position
func (e *GameEngine) PlayerPosition() Position {
	return e.player
}

// GoalPosition returns the goal position
func (e *GameEngine) GoalPosition() Position {
	return e.goal
}

// Theme returns the level's theme identifier
func (e *GameEngine) Theme() string {
	return e.theme
}

// Grid returns the level grid. Callers must treat it as read-only.
func (e *GameEngine) Grid() Grid {
	return e.grid
}

// OnPositionChange registers an observer for committed moves
func (e *GameEngine) OnPositionChange(observer PositionObserver) {
	if observer == nil {
		return
	}
	e.observers = append(e.observers, observer)
}

// MoveHistory returns a copy of every move attempt so far
func (e *GameEngine) MoveHistory() []MoveHistoryEntry {
	return append([]MoveHistoryEntry(nil), e.history...)
}

// LastMove returns the last move attempt, or nil if no moves
func (e *GameEngine) LastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	last := e.history[len(e.history)-1]
	return &last
}
