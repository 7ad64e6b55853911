package session

import (
	"time"

	"github.com/wricardo/maze-game/game/engine"
)

// EventType names something that happened while handling an input
type EventType string

const (
	EventMoved       EventType = "moved"
	EventBlocked     EventType = "blocked"
	EventGoalReached EventType = "goal_reached"
	EventGoalLeft    EventType = "goal_left"
)

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      EventType       `json:"type"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position"`
}

// Step is the outcome of one directional input
type Step struct {
	Number    int              `json:"number"`
	Direction engine.Direction `json:"direction"`
	From      engine.Position  `json:"from"`
	To        engine.Position  `json:"to"`
	Moved     bool             `json:"moved"`
	Status    engine.Status    `json:"status"`
	Events    []GameEvent      `json:"events,omitempty"`
}

// HasEvent reports whether the step produced an event of the given type
func (s Step) HasEvent(t EventType) bool {
	for _, e := range s.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Listener receives every step after it has been applied
type Listener func(step Step)

// Snapshot is a read-only view of the session for drawing a frame
type Snapshot struct {
	SessionID string          `json:"session_id"`
	Player    engine.Position `json:"player"`
	Goal      engine.Position `json:"goal"`
	Status    engine.Status   `json:"status"`
	Steps     int             `json:"steps"`
	Layout    engine.Layout   `json:"layout"`
}
