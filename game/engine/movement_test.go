package engine

import (
	"testing"
)

func createTestEngine(t *testing.T) *GameEngine {
	t.Helper()
	game, err := NewEngine(DefaultLevel())
	if err != nil {
		t.Fatalf("NewEngine(DefaultLevel()) failed: %v", err)
	}
	return game
}

func TestCanMoveTo_ValidPositions(t *testing.T) {
	game := createTestEngine(t)

	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"floor cell", Position{X: 0, Y: 3}, true},
		{"floor cell far corner", Position{X: 4, Y: 4}, true},
		{"wall cell", Position{X: 1, Y: 2}, false},
		{"wall cell top left", Position{X: 0, Y: 0}, false},
		{"out of bounds negative x", Position{X: -1, Y: 3}, false},
		{"out of bounds negative y", Position{X: 2, Y: -1}, false},
		{"out of bounds positive x", Position{X: 5, Y: 1}, false},
		{"out of bounds positive y", Position{X: 0, Y: 5}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := game.CanMoveTo(test.pos)
			if result != test.expected {
				t.Errorf("CanMoveTo(%v): expected %v, got %v", test.pos, test.expected, result)
			}
		})
	}
}

func TestMove_DirectionMapping(t *testing.T) {
	open := &Level{
		Map: Grid{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		},
		Player: Position{X: 1, Y: 1},
		Goal:   Position{X: 0, Y: 0},
	}

	tests := []struct {
		direction Direction
		deltaX    int
		deltaY    int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, test := range tests {
		t.Run(string(test.direction), func(t *testing.T) {
			game, err := NewEngine(open)
			if err != nil {
				t.Fatalf("NewEngine failed: %v", err)
			}

			if !game.Move(test.direction) {
				t.Fatalf("Expected move %s to succeed", test.direction)
			}

			expected := Position{X: 1 + test.deltaX, Y: 1 + test.deltaY}
			if game.PlayerPosition() != expected {
				t.Errorf("Expected position %v, got %v", expected, game.PlayerPosition())
			}
		})
	}
}

func TestMove_BlockedByBoundary(t *testing.T) {
	level := &Level{
		Map:    Grid{{0}},
		Player: Position{X: 0, Y: 0},
		Goal:   Position{X: 0, Y: 0},
	}
	game, err := NewEngine(level)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	for _, dir := range Directions {
		if game.Move(dir) {
			t.Errorf("Expected move %s off a 1x1 map to be rejected", dir)
		}
		if game.PlayerPosition() != (Position{}) {
			t.Errorf("Player moved to %v after blocked move %s", game.PlayerPosition(), dir)
		}
	}
}

func TestMove_InvalidDirection(t *testing.T) {
	game := createTestEngine(t)
	start := game.PlayerPosition()

	if game.Move(Direction("sideways")) {
		t.Error("Expected unknown direction to be rejected")
	}
	if game.PlayerPosition() != start {
		t.Errorf("Player moved on unknown direction: %v", game.PlayerPosition())
	}

	last := game.LastMove()
	if last == nil || last.Success {
		t.Errorf("Expected a failed history entry, got %+v", last)
	}
}

// Every reachable position stays in bounds, off walls, and each attempt
// either keeps p or lands on exactly p+delta.
func TestMove_InvariantsOverAllSequences(t *testing.T) {
	level := DefaultLevel()

	type node struct {
		pos   Position
		depth int
	}
	seen := map[Position]bool{level.Player: true}
	queue := []node{{level.Player, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth > 12 {
			continue
		}

		for _, dir := range Directions {
			l := level.Clone()
			l.Player = cur.pos
			game, err := NewEngine(l)
			if err != nil {
				t.Fatalf("NewEngine at %v failed: %v", cur.pos, err)
			}

			moved := game.Move(dir)
			got := game.PlayerPosition()

			if moved && got != cur.pos.Add(dir) {
				t.Fatalf("Move %s from %v landed on %v", dir, cur.pos, got)
			}
			if !moved && got != cur.pos {
				t.Fatalf("Rejected move %s from %v changed position to %v", dir, cur.pos, got)
			}
			if cell, ok := game.Grid().At(got); !ok || cell == Wall {
				t.Fatalf("Player at %v is out of bounds or on a wall", got)
			}

			if !seen[got] {
				seen[got] = true
				queue = append(queue, node{got, cur.depth + 1})
			}
		}
	}

	if !seen[level.Goal] {
		t.Errorf("Expected goal %v to be reachable, visited %d cells", level.Goal, len(seen))
	}
}

func TestPositionAdd(t *testing.T) {
	p := Position{X: 2, Y: 2}
	if got := p.Add(Up); got != (Position{X: 2, Y: 1}) {
		t.Errorf("Add(Up) = %v", got)
	}
	if got := p.Add(Direction("bogus")); got != p {
		t.Errorf("Add(bogus) = %v, expected unchanged", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
		ok       bool
	}{
		{"up", Up, true},
		{"ArrowUp", Up, true},
		{" DOWN ", Down, true},
		{"arrowleft", Left, true},
		{"Right", Right, true},
		{"w", "", false},
		{"Enter", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			dir, ok := ParseDirection(test.input)
			if ok != test.ok || dir != test.expected {
				t.Errorf("ParseDirection(%q) = (%q, %v), expected (%q, %v)", test.input, dir, ok, test.expected, test.ok)
			}
		})
	}
}
