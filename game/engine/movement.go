package engine

// CanMoveTo checks if the player can stand on the given position
func (e *GameEngine) CanMoveTo(p Position) bool {
	cell, ok := e.grid.At(p)
	if !ok {
		return false
	}
	return cell == Floor
}

// movePlayer applies one move attempt and reports whether it committed
func (e *GameEngine) movePlayer(direction Direction) (Position, bool) {
	if !direction.Valid() {
		return e.player, false
	}

	next := e.player.Add(direction)
	if !e.CanMoveTo(next) {
		return next, false
	}

	e.player = next
	return next, true
}

// addMoveToHistory records a move attempt
func (e *GameEngine) addMoveToHistory(action Direction, from, to Position, success bool) {
	e.history = append(e.history, newMoveHistoryEntry(action, from, to, success, len(e.history)+1))
}

// notifyPositionChange calls every observer in registration order
func (e *GameEngine) notifyPositionChange(from, to Position) {
	for _, observer := range e.observers {
		observer(from, to)
	}
}
