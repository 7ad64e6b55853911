// Package engine provides the core game logic for the maze game.
//
// The engine package implements the game mechanics including:
//   - Tile grid representation (floor and wall cells)
//   - Directional movement with bounds and wall collision checks
//   - Goal detection as an explicit Status value
//   - Layout descriptors consumed by renderers
//   - Level parsing and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Level is the static configuration a game is
// built from, loaded from JSON records of the form
//
//	{"map": [[1,1,0],[0,0,0]], "player": {"x":0,"y":1}, "goal": {"x":2,"y":0}, "theme": "default"}
//
// Usage:
//
//	level, err := engine.LoadLevel("levels/default.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewEngine(level)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game.Move(engine.Up)
//	if game.CheckGoal().Won() {
//		fmt.Println("goal reached")
//	}
//
// Game Rules:
//
// The player moves one tile at a time. Moves that would leave the grid or
// enter a wall are ignored. The game is won while the player stands on the
// goal tile; stepping off the goal returns the game to playing.
package engine
