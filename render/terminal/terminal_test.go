package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/wricardo/maze-game/game/engine"
	"github.com/wricardo/maze-game/game/session"
	"github.com/wricardo/maze-game/render/theme"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New(engine.DefaultLevel())
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	return sess
}

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key      tcell.Key
		expected engine.Direction
		ok       bool
	}{
		{tcell.KeyUp, engine.Up, true},
		{tcell.KeyDown, engine.Down, true},
		{tcell.KeyLeft, engine.Left, true},
		{tcell.KeyRight, engine.Right, true},
		{tcell.KeyEnter, "", false},
		{tcell.KeyTab, "", false},
	}

	for _, test := range tests {
		dir, ok := keyDirection(tcell.NewEventKey(test.key, 0, tcell.ModNone))
		if ok != test.ok || dir != test.expected {
			t.Errorf("keyDirection(%v) = (%q, %v), expected (%q, %v)", test.key, dir, ok, test.expected, test.ok)
		}
	}

	if _, ok := keyDirection(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)); ok {
		t.Error("Expected letter keys to be ignored")
	}
}

func TestIsQuitKey(t *testing.T) {
	if !isQuitKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to quit")
	}
	if !isQuitKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to quit")
	}
	if isQuitKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("Expected x not to quit")
	}
}

func TestDrawBoard(t *testing.T) {
	screen := newSimulationScreen(t)
	sess := newTestSession(t)
	palette, _ := theme.Lookup("default")

	drawBoard(screen, 1, 1, sess.Snapshot(), palette)

	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"wall tile (0,0) left half", 1, 1, wallRune},
		{"wall tile (0,0) right half", 2, 1, wallRune},
		{"floor tile (2,0)", 5, 1, floorRune},
		{"goal sprite (4,1)", 9, 2, goalRune},
		{"player sprite (0,4)", 1, 5, playerRune},
		{"player sprite padding", 2, 5, floorRune},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mainc, _, _, _ := screen.GetContent(test.x, test.y)
			if mainc != test.expected {
				t.Errorf("GetContent(%d,%d) = %q, expected %q", test.x, test.y, mainc, test.expected)
			}
		})
	}

	_, _, style, _ := screen.GetContent(9, 2)
	fg, _, _ := style.Decompose()
	if fg != toColor(palette.Goal) {
		t.Errorf("Expected goal colour, got %v", fg)
	}
}

func TestDrawBoard_FollowsPlayer(t *testing.T) {
	screen := newSimulationScreen(t)
	sess := newTestSession(t)
	palette, _ := theme.Lookup("default")

	sess.Handle(engine.Up)
	drawBoard(screen, 0, 0, sess.Snapshot(), palette)

	if mainc, _, _, _ := screen.GetContent(0, 3); mainc != playerRune {
		t.Errorf("Expected player at row 3, got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(0, 4); mainc != floorRune {
		t.Errorf("Expected floor at old player position, got %q", mainc)
	}
}

func TestStatusText(t *testing.T) {
	sess := newTestSession(t)
	if text := statusText(sess.Snapshot()); !strings.Contains(text, "Moves: 0") {
		t.Errorf("Unexpected status %q", text)
	}

	for _, dir := range []engine.Direction{engine.Up, engine.Up, engine.Right, engine.Up, engine.Right, engine.Right, engine.Right} {
		sess.Handle(dir)
	}
	if text := statusText(sess.Snapshot()); !strings.Contains(text, "goal in 7 moves") {
		t.Errorf("Unexpected won status %q", text)
	}
}

func TestBorderColor(t *testing.T) {
	palette, _ := theme.Lookup("forest")
	if borderColor(engine.StatusWon, palette) != toColor(palette.Success) {
		t.Error("Expected success colour while won")
	}
	if borderColor(engine.StatusPlaying, palette) != toColor(palette.Text) {
		t.Error("Expected text colour while playing")
	}
}

func TestView_HandleKey(t *testing.T) {
	sess := newTestSession(t)
	view := NewView(sess)

	if got := view.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)); got != nil {
		t.Error("Expected arrow key to be consumed")
	}
	if sess.Snapshot().Player != (engine.Position{X: 0, Y: 3}) {
		t.Errorf("Expected player at (0,3), got %v", sess.Snapshot().Player)
	}

	enter := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	if got := view.handleKey(enter); got != enter {
		t.Error("Expected other keys to pass through")
	}
	if sess.Snapshot().Steps != 1 {
		t.Errorf("Expected 1 step, got %d", sess.Snapshot().Steps)
	}

	if !strings.Contains(view.status.GetText(false), "Moves: 1") {
		t.Errorf("Status bar not refreshed: %q", view.status.GetText(false))
	}
}
