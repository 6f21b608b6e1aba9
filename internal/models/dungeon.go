package models

import "github.com/ThePyromage/dungeonGenerator/internal/generation"

// DungeonResponse is a finished dungeon as sent to clients
type DungeonResponse struct {
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Seed    uint64            `json:"seed"`
	Config  generation.Config `json:"config"`
	Tiles   []string          `json:"tiles"`
	Regions [][]int           `json:"regions,omitempty"`
	Rooms   []Room            `json:"rooms"`
	Stats   generation.Stats  `json:"stats"`
	Legend  map[string]Tile   `json:"legend"`
	Graph   *RegionGraph      `json:"graph,omitempty"`
}

// DungeonSummary is the short form pushed to stream watchers
type DungeonSummary struct {
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Seed   uint64           `json:"seed"`
	Stats  generation.Stats `json:"stats"`
}

// Room is a placed room and the region it was carved as
type Room struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Region int `json:"region"`
}

// Bounds defines a rectangular area
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// RegionGraph lists the regions and the doors joining them
type RegionGraph struct {
	Nodes     []RegionNode `json:"nodes"`
	Rooms     []int        `json:"rooms"` // Node ids of room regions
	Doors     []DoorEdge   `json:"doors"`
	Spanning  []DoorEdge   `json:"spanning"`
	Connected bool         `json:"connected"`
}

// RegionNode is one carved region
type RegionNode struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Cells  int    `json:"cells"`
	Bounds Bounds `json:"bounds"`
}

// DoorEdge is a door between two regions
type DoorEdge struct {
	From int      `json:"from"`
	To   int      `json:"to"`
	Door Position `json:"door"`
}

// BatchRequest asks for count dungeons sharing one configuration
type BatchRequest struct {
	Config generation.Config `json:"config"`
	Count  int               `json:"count"`
}

// BatchResponse holds one summary per generated dungeon, in request order
type BatchResponse struct {
	Dungeons []DungeonSummary `json:"dungeons"`
}
