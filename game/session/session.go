package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wricardo/maze-game/game/engine"
)

// Session represents one play-through of a level
type Session struct {
	ID        string
	CreatedAt time.Time

	engine    *engine.GameEngine
	tileDim   int
	status    engine.Status
	steps     int
	pending   []GameEvent
	listeners []Listener
	mu        sync.RWMutex
}

// New creates a session for the level. The level is validated by the engine.
func New(level *engine.Level) (*Session, error) {
	return NewWithTileDim(level, engine.DefaultTileDim)
}

// NewWithTileDim creates a session whose snapshots use the given tile size
func NewWithTileDim(level *engine.Level, tileDim int) (*Session, error) {
	eng, err := engine.NewEngine(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	if tileDim <= 0 {
		tileDim = engine.DefaultTileDim
	}

	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		engine:    eng,
		tileDim:   tileDim,
		status:    eng.CheckGoal(),
	}

	eng.OnPositionChange(func(from, to engine.Position) {
		s.pending = append(s.pending, GameEvent{
			Type:      EventMoved,
			Message:   fmt.Sprintf("Moved from (%d,%d) to (%d,%d)", from.X, from.Y, to.X, to.Y),
			Timestamp: time.Now(),
			Position:  to,
		})
	})

	return s, nil
}

// HandleKey handles a key or direction name. Unrecognised names are
// ignored and reported with ok == false.
func (s *Session) HandleKey(name string) (step Step, ok bool) {
	direction, ok := engine.ParseDirection(name)
	if !ok {
		return Step{}, false
	}
	return s.Handle(direction), true
}

// Handle applies one move attempt followed by one goal check and notifies
// listeners with the resulting step
func (s *Session) Handle(direction engine.Direction) Step {
	s.mu.Lock()
	step := s.apply(direction)
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(step)
	}
	return step
}

func (s *Session) apply(direction engine.Direction) Step {
	from := s.engine.PlayerPosition()
	s.pending = s.pending[:0]

	moved := s.engine.Move(direction)
	status := s.engine.CheckGoal()
	s.steps++

	step := Step{
		Number:    s.steps,
		Direction: direction,
		From:      from,
		To:        s.engine.PlayerPosition(),
		Moved:     moved,
		Status:    status,
		Events:    append([]GameEvent(nil), s.pending...),
	}

	if !moved {
		step.Events = append(step.Events, GameEvent{
			Type:      EventBlocked,
			Message:   s.blockedMessage(direction),
			Timestamp: time.Now(),
			Position:  from,
		})
	}

	switch {
	case status.Won() && !s.status.Won():
		step.Events = append(step.Events, GameEvent{
			Type:      EventGoalReached,
			Message:   "Goal reached!",
			Timestamp: time.Now(),
			Position:  step.To,
		})
	case !status.Won() && s.status.Won():
		step.Events = append(step.Events, GameEvent{
			Type:      EventGoalLeft,
			Message:   "Left the goal",
			Timestamp: time.Now(),
			Position:  step.To,
		})
	}
	s.status = status

	return step
}

// blockedMessage names what stopped the last move attempt
func (s *Session) blockedMessage(direction engine.Direction) string {
	last := s.engine.LastMove()
	if last == nil || !direction.Valid() {
		return fmt.Sprintf("Unknown direction %q", direction)
	}

	target := last.ToPosition
	cell, ok := s.engine.Grid().At(target)
	if !ok {
		return fmt.Sprintf("Can't move %s: (%d,%d) is out of bounds", direction, target.X, target.Y)
	}
	return fmt.Sprintf("Can't move %s: (%d,%d) is a %s", direction, target.X, target.Y, cell)
}

// Subscribe registers a listener for every future step
func (s *Session) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Status returns the status computed by the last goal check
func (s *Session) Status() engine.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns the current frame state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		SessionID: s.ID,
		Player:    s.engine.PlayerPosition(),
		Goal:      s.engine.GoalPosition(),
		Status:    s.status,
		Steps:     s.steps,
		Layout:    s.engine.PopulateMap(s.tileDim),
	}
}

// History returns every move attempt so far
func (s *Session) History() []engine.MoveHistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.MoveHistory()
}

// Theme returns the level's theme identifier
func (s *Session) Theme() string {
	return s.engine.Theme()
}
