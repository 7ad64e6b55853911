//go:build desktop

// Package desktop renders a maze session in a window using ebiten.
package desktop

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/wricardo/maze-game/game/engine"
	"github.com/wricardo/maze-game/game/session"
	"github.com/wricardo/maze-game/render/theme"
)

const (
	headerHeight = 24 // Status line above the map
	tileGap      = 1
	minWidth     = 200 // Keeps the status line readable on small maps
)

var arrowKeys = []struct {
	key       ebiten.Key
	direction engine.Direction
}{
	{ebiten.KeyArrowUp, engine.Up},
	{ebiten.KeyArrowDown, engine.Down},
	{ebiten.KeyArrowLeft, engine.Left},
	{ebiten.KeyArrowRight, engine.Right},
}

// Game implements ebiten.Game for one session
type Game struct {
	session     *session.Session
	palette     theme.Palette
	justPressed func(ebiten.Key) bool
}

// NewGame creates a desktop game for the session. Tile size comes from the
// session's layout.
func NewGame(sess *session.Session) *Game {
	palette, ok := theme.Lookup(sess.Theme())
	if !ok {
		log.Printf("Unknown theme %q, using %s", sess.Theme(), palette.Name)
	}

	return &Game{
		session:     sess,
		palette:     palette,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Run opens the window and blocks until it is closed or Esc is pressed
func Run(sess *session.Session) error {
	game := NewGame(sess)

	width, height := game.windowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(fmt.Sprintf("Maze - %s", game.palette.Name))

	log.Printf("[DESKTOP] session=%s window %dx%d", sess.ID, width, height)
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Update handles keyboard input. At most one move is applied per frame.
func (g *Game) Update() error {
	if g.justPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, k := range arrowKeys {
		if g.justPressed(k.key) {
			step := g.session.Handle(k.direction)
			for _, event := range step.Events {
				log.Printf("[MOVE] session=%s #%d %s %s", g.session.ID, step.Number, event.Type, event.Message)
			}
			break
		}
	}
	return nil
}

// Draw renders the frame
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	screen.Fill(g.palette.Frame(snap.Status))

	for _, tile := range snap.Layout.Tiles {
		vector.DrawFilledRect(screen,
			float32(tile.Left),
			float32(tile.Top+headerHeight),
			float32(snap.Layout.TileDim-tileGap),
			float32(snap.Layout.TileDim-tileGap),
			g.palette.Cell(tile.Type), false)
	}

	for _, sprite := range snap.Layout.Sprites {
		cx, cy, r := spriteCircle(sprite, snap.Layout.TileDim)
		vector.DrawFilledCircle(screen, cx, cy+headerHeight, r, g.palette.Sprite(sprite.Kind), true)
	}

	ebitenutil.DebugPrintAt(screen, statusText(snap), 4, 4)
}

// Layout returns the logical screen size, which is fixed by the map
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.windowSize()
}

func (g *Game) windowSize() (int, int) {
	layout := g.session.Snapshot().Layout
	return windowSize(layout)
}

func windowSize(layout engine.Layout) (int, int) {
	width := layout.Width
	if width < minWidth {
		width = minWidth
	}
	return width, layout.Height + headerHeight
}

// spriteCircle returns the centre and radius of a sprite drawn inside its
// tile
func spriteCircle(sprite engine.Sprite, tileDim int) (cx, cy, r float32) {
	half := float32(tileDim) / 2
	r = half * 0.7
	if sprite.Kind == engine.SpriteGoal {
		r = half * 0.45
	}
	return float32(sprite.Left) + half, float32(sprite.Top) + half, r
}

func statusText(snap session.Snapshot) string {
	if snap.Status.Won() {
		return fmt.Sprintf("Goal reached in %d moves!", snap.Steps)
	}
	return fmt.Sprintf("Moves: %d  (Esc: quit)", snap.Steps)
}
