// Package theme maps a level's theme identifier to the colours renderers use.
package theme

import (
	"image/color"
	"sort"
	"strings"

	"github.com/wricardo/maze-game/game/engine"
)

// Palette holds the colours for one theme
type Palette struct {
	Name       string
	Background color.RGBA
	Floor      color.RGBA
	Wall       color.RGBA
	Player     color.RGBA
	Goal       color.RGBA
	Success    color.RGBA
	Text       color.RGBA
}

// Cell returns the colour for a tile type
func (p Palette) Cell(c engine.CellType) color.RGBA {
	if c == engine.Wall {
		return p.Wall
	}
	return p.Floor
}

// Sprite returns the colour for a sprite kind
func (p Palette) Sprite(kind engine.SpriteKind) color.RGBA {
	if kind == engine.SpriteGoal {
		return p.Goal
	}
	return p.Player
}

// Frame returns the colour of the area around the map, which doubles as
// the success indicator
func (p Palette) Frame(status engine.Status) color.RGBA {
	if status.Won() {
		return p.Success
	}
	return p.Background
}

var palettes = map[string]Palette{
	engine.DefaultTheme: {
		Name:       engine.DefaultTheme,
		Background: color.RGBA{34, 34, 34, 255},
		Floor:      color.RGBA{200, 200, 200, 255},
		Wall:       color.RGBA{80, 80, 80, 255},
		Player:     color.RGBA{230, 60, 60, 255},
		Goal:       color.RGBA{60, 180, 75, 255},
		Success:    color.RGBA{40, 120, 60, 255},
		Text:       color.RGBA{240, 240, 240, 255},
	},
	"dungeon": {
		Name:       "dungeon",
		Background: color.RGBA{15, 10, 20, 255},
		Floor:      color.RGBA{110, 90, 70, 255},
		Wall:       color.RGBA{45, 35, 50, 255},
		Player:     color.RGBA{240, 200, 60, 255},
		Goal:       color.RGBA{150, 80, 220, 255},
		Success:    color.RGBA{90, 50, 140, 255},
		Text:       color.RGBA{230, 220, 200, 255},
	},
	"forest": {
		Name:       "forest",
		Background: color.RGBA{20, 40, 20, 255},
		Floor:      color.RGBA{150, 190, 110, 255},
		Wall:       color.RGBA{30, 80, 40, 255},
		Player:     color.RGBA{200, 90, 40, 255},
		Goal:       color.RGBA{250, 220, 90, 255},
		Success:    color.RGBA{120, 160, 40, 255},
		Text:       color.RGBA{240, 250, 230, 255},
	},
}

// Lookup returns the palette for name. Unknown names fall back to the
// default palette and report false.
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return palettes[engine.DefaultTheme], false
	}
	return p, true
}

// Names lists the known themes
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
