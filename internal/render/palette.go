package render

import (
	"github.com/ThePyromage/dungeonGenerator/internal/generation"
	"github.com/ThePyromage/dungeonGenerator/internal/models"
)

// Palette defines how each tile state is drawn
type Palette struct {
	Wall  string
	Floor string
	Door  string
	Route string
	Void  string // Outside the stage

	WallColor  string
	FloorColor string
	DoorColor  string
	RouteColor string
	VoidColor  string
}

// DefaultPalette returns the standard tile palette
func DefaultPalette() *Palette {
	return &Palette{
		Wall:       "#",
		Floor:      ".",
		Door:       "+",
		Route:      "*",
		Void:       "?",
		WallColor:  "#555555",
		FloorColor: "#c8c8c8",
		DoorColor:  "#c08040",
		RouteColor: "#ffd700",
		VoidColor:  "#2a2a2a",
	}
}

// regionColors cycles every 15 regions
var regionColors = [...]string{
	"#ff0000", "#0000ff", "#00ff00", "#00ffff", "#ffff00",
	"#ff00ff", "#4d9900", "#994d00", "#4d0099", "#99004d",
	"#00994d", "#004d99", "#4d994d", "#4d4d99", "#994d4d",
}

const regionGlyphs = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RegionColor returns the display color of a region, black for walls
func RegionColor(region int) string {
	if region < 0 {
		return "#000000"
	}
	return regionColors[region%len(regionColors)]
}

// RegionGlyph returns a single character standing for a region
func RegionGlyph(region int) string {
	if region < 0 {
		return " "
	}
	i := region % len(regionGlyphs)
	return regionGlyphs[i : i+1]
}

// Glyph returns the character drawn for a cell
func (p *Palette) Glyph(t generation.TileType, region int, regions bool) string {
	switch t {
	case generation.Door:
		return p.Door
	case generation.Empty:
		if regions {
			return RegionGlyph(region)
		}
		return p.Floor
	}
	return p.Wall
}

// Cell returns a cell as sent to clients
func (p *Palette) Cell(t generation.TileType, region int, regions bool) models.RenderedTile {
	tile := models.RenderedTile{Character: p.Glyph(t, region, regions)}
	switch {
	case t == generation.Door:
		tile.Color = p.DoorColor
	case t == generation.Empty && regions:
		tile.Color = RegionColor(region)
	case t == generation.Empty:
		tile.Color = p.FloorColor
	default:
		tile.Color = p.WallColor
	}
	return tile
}

// VoidCell is drawn for positions outside the stage
func (p *Palette) VoidCell() models.RenderedTile {
	return models.RenderedTile{Character: p.Void, Color: p.VoidColor}
}

// Legend maps each glyph to the tile it stands for
func (p *Palette) Legend() map[string]models.Tile {
	return map[string]models.Tile{
		p.Wall:  {Character: p.Wall, Color: p.WallColor, Type: generation.Wall.String(), Walkable: false},
		p.Floor: {Character: p.Floor, Color: p.FloorColor, Type: generation.Empty.String(), Walkable: true},
		p.Door:  {Character: p.Door, Color: p.DoorColor, Type: generation.Door.String(), Walkable: true},
	}
}
