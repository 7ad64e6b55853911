// Package config resolves and caches the maze level a game is started with.
//
// Levels are JSON files of the form
//
//	{
//	  "map": [[1,1,0,0,1],[1,0,0,0,0],[0,0,1,1,0],[0,0,0,1,0],[0,1,0,1,0]],
//	  "player": {"x": 0, "y": 4},
//	  "goal": {"x": 4, "y": 1},
//	  "theme": "default"
//	}
//
// where 0 is floor and 1 is wall.
//
// Usage:
//
//	manager, err := config.NewManager("levels")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load by name ("levels/spiral.json") or by path
//	level, err := manager.Load("spiral")
//
//	// Fall back to default.json or the built-in level
//	level = manager.GetDefault()
//
// Every level handed out is a private copy; the cache cannot be modified
// through it.
package config
