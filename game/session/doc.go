// Package session drives a single maze game from directional input.
//
// A Session owns one engine instance and applies the input contract of the
// game: each input produces exactly one move attempt followed by exactly
// one goal check, whether or not the move committed. The resulting Step is
// handed to every subscribed Listener, which is how renderers learn about
// position and status changes without holding references into the engine.
//
// Core Types:
//
// Session wraps the engine and exposes Handle, HandleKey, Snapshot and
// History. Step describes the outcome of one input and carries the events
// it produced (moved, blocked, goal_reached, goal_left). Snapshot is a
// read-only view for drawing a frame.
//
// Usage:
//
//	sess, err := session.New(level)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess.Subscribe(func(step session.Step) {
//		log.Printf("%s -> %v (%s)", step.Direction, step.To, step.Status)
//	})
//
//	if step, ok := sess.HandleKey("ArrowUp"); ok && step.Status.Won() {
//		fmt.Println("goal reached")
//	}
//
// Concurrency:
//
// Inputs are expected one at a time from a single event loop. Snapshot may
// be called from a separate draw loop; internal locking keeps the two
// consistent.
package session
