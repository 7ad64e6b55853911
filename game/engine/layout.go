package engine

// SpriteKind names the two sprites layered above the tiles
type SpriteKind string

const (
	SpriteGoal   SpriteKind = "goal"
	SpritePlayer SpriteKind = "player"
)

// Tile describes one grid cell for a renderer
type Tile struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type CellType `json:"type"`
	Name string   `json:"name"`
	Left int      `json:"left"`
	Top  int      `json:"top"`
}

// Sprite describes the player or goal token for a renderer
type Sprite struct {
	Kind SpriteKind `json:"kind"`
	X    int        `json:"x"`
	Y    int        `json:"y"`
	Left int        `json:"left"`
	Top  int        `json:"top"`
}

// Layout is everything a renderer needs to draw the current frame
type Layout struct {
	Theme   string   `json:"theme"`
	TileDim int      `json:"tile_dim"`
	Columns int      `json:"columns"`
	Rows    int      `json:"rows"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Tiles   []Tile   `json:"tiles"`
	Sprites []Sprite `json:"sprites"`
	Status  Status   `json:"status"`
}

// PopulateMap produces the tile descriptors in row-major order followed
// by the goal and player sprites. A non-positive tileDim selects DefaultTileDim.
func (e *GameEngine) PopulateMap(tileDim int) Layout {
	if tileDim <= 0 {
		tileDim = DefaultTileDim
	}

	tiles := make([]Tile, 0, e.grid.Height()*e.grid.Width())
	for y, row := range e.grid {
		for x, cell := range row {
			tiles = append(tiles, Tile{
				X:    x,
				Y:    y,
				Type: cell,
				Name: cell.String(),
				Left: x * tileDim,
				Top:  y * tileDim,
			})
		}
	}

	return Layout{
		Theme:   e.theme,
		TileDim: tileDim,
		Columns: e.grid.Width(),
		Rows:    e.grid.Height(),
		Width:   e.grid.Width() * tileDim,
		Height:  e.grid.Height() * tileDim,
		Tiles:   tiles,
		Sprites: []Sprite{
			newSprite(SpriteGoal, e.goal, tileDim),
			newSprite(SpritePlayer, e.player, tileDim),
		},
		Status: e.CheckGoal(),
	}
}


func newSprite(kind SpriteKind, p Position, tileDim int) Sprite {
	return Sprite{
		Kind: kind,
		X:    p.X,
		Y:    p.Y,
		Left: p.X * tileDim,
		Top:  p.Y * tileDim,
	}
}
