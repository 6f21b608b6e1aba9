package models

// Position represents a coordinate on the stage
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile describes how one tile type is drawn
type Tile struct {
	Character string `json:"char"`
	Color     string `json:"color"`
	Type      string `json:"type"` // wall, empty, door
	Walkable  bool   `json:"walkable"`
}

// RenderedTile represents a tile as sent to the client
type RenderedTile struct {
	Character string `json:"char"`
	Color     string `json:"color"`
}

// TileGrid is a whole dungeon drawn as client tiles
type TileGrid struct {
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Seed   uint64           `json:"seed"`
	Tiles  [][]RenderedTile `json:"tiles"`
}

// ViewportData is a window of a dungeon centered on a cell
type ViewportData struct {
	Seed    uint64           `json:"seed"` // Replays the same dungeon
	Tiles   [][]RenderedTile `json:"tiles"`
	CenterX int              `json:"center_x"` // Relative to viewport
	CenterY int              `json:"center_y"` // Relative to viewport
	Region  *int             `json:"region,omitempty"`
}
