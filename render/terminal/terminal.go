// Package terminal renders a maze session in the terminal and drives it
// with the arrow keys.
package terminal

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
	"github.com/wricardo/maze-game/game/engine"
	"github.com/wricardo/maze-game/game/session"
	"github.com/wricardo/maze-game/render/theme"
)

// cellWidth is the number of terminal columns per tile, which keeps tiles
// roughly square
const cellWidth = 2

const (
	wallRune   = '█'
	floorRune  = ' '
	playerRune = '@'
	goalRune   = '*'
)

// View renders the game and handles user interaction.
type View struct {
	Session *session.Session
	App     *tview.Application
	palette theme.Palette
	board   *tview.Box
	status  *tview.TextView
}

// NewView constructs a View for the session.
func NewView(sess *session.Session) *View {
	palette, ok := theme.Lookup(sess.Theme())
	if !ok {
		log.Printf("Unknown theme %q, using %s", sess.Theme(), palette.Name)
	}

	view := &View{
		Session: sess,
		App:     tview.NewApplication(),
		palette: palette,
		board:   tview.NewBox(),
		status:  tview.NewTextView(),
	}

	view.board.SetBorder(true).SetTitle(" maze ")
	view.board.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		drawBoard(screen, x+1, y+1, view.Session.Snapshot(), view.palette)
		return x + 1, y + 1, width - 2, height - 2
	})
	view.board.SetInputCapture(view.handleKey)

	view.status.SetTextAlign(tview.AlignCenter)

	sess.Subscribe(view.onStep)
	view.refresh(sess.Snapshot().Status)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(view.board, 0, 1, true).
		AddItem(view.status, 1, 0, false)

	view.App.SetRoot(root, true).SetFocus(view.board)
	return view
}

// Start runs the terminal event loop until the player quits.
func (v *View) Start() error {
	return v.App.Run()
}

// handleKey turns arrow keys into moves and q/Esc into quitting. Every
// other key is passed through untouched.
func (v *View) handleKey(e *tcell.EventKey) *tcell.EventKey {
	if isQuitKey(e) {
		v.App.Stop()
		return nil
	}

	direction, ok := keyDirection(e)
	if !ok {
		return e
	}

	v.Session.Handle(direction)
	return nil
}

// onStep is called synchronously from the event loop after every move attempt
func (v *View) onStep(step session.Step) {
	for _, event := range step.Events {
		log.Printf("[MOVE] session=%s #%d %s %s", v.Session.ID, step.Number, event.Type, event.Message)
	}
	v.refresh(step.Status)
}

// refresh updates the success indicator
func (v *View) refresh(status engine.Status) {
	v.board.SetBorderColor(borderColor(status, v.palette))
	v.status.SetText(statusText(v.Session.Snapshot()))
}

// borderColor lights the border up while the player stands on the goal
func borderColor(status engine.Status, palette theme.Palette) tcell.Color {
	if status.Won() {
		return toColor(palette.Success)
	}
	return toColor(palette.Text)
}

// keyDirection maps arrow keys to directions
func keyDirection(e *tcell.EventKey) (engine.Direction, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return engine.Up, true
	case tcell.KeyDown:
		return engine.Down, true
	case tcell.KeyLeft:
		return engine.Left, true
	case tcell.KeyRight:
		return engine.Right, true
	}
	return "", false
}

func isQuitKey(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape {
		return true
	}
	return e.Key() == tcell.KeyRune && (e.Rune() == 'q' || e.Rune() == 'Q')
}

// statusText renders the one-line status bar
func statusText(snap session.Snapshot) string {
	if snap.Status.Won() {
		return fmt.Sprintf("You reached the goal in %d moves! (arrows: move, q: quit)", snap.Steps)
	}
	return fmt.Sprintf("Moves: %d | find the %c (arrows: move, q: quit)", snap.Steps, goalRune)
}

// drawBoard paints the tiles and sprites of the snapshot with their top-left
// corner at (x, y)
func drawBoard(screen tcell.Screen, x, y int, snap session.Snapshot, palette theme.Palette) {
	for _, tile := range snap.Layout.Tiles {
		r := floorRune
		if tile.Type == engine.Wall {
			r = wallRune
		}
		style := tcell.StyleDefault.
			Foreground(toColor(palette.Cell(tile.Type))).
			Background(toColor(palette.Floor))
		setTile(screen, x+tile.X*cellWidth, y+tile.Y, r, r, style)
	}

	for _, sprite := range snap.Layout.Sprites {
		r := playerRune
		if sprite.Kind == engine.SpriteGoal {
			r = goalRune
		}
		style := tcell.StyleDefault.
			Foreground(toColor(palette.Sprite(sprite.Kind))).
			Background(toColor(palette.Floor)).
			Bold(true)
		setTile(screen, x+sprite.X*cellWidth, y+sprite.Y, r, floorRune, style)
	}
}

func setTile(screen tcell.Screen, x, y int, first, second rune, style tcell.Style) {
	screen.SetContent(x, y, first, nil, style)
	screen.SetContent(x+1, y, second, nil, style)
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
