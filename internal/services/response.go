package services

import (
	"github.com/ThePyromage/dungeonGenerator/internal/generation"
	"github.com/ThePyromage/dungeonGenerator/internal/models"
	"github.com/ThePyromage/dungeonGenerator/internal/render"
)

// ResponseOptions selects the optional parts of a DungeonResponse
type ResponseOptions struct {
	Regions bool // include the per-cell region map
	Graph   bool // include the region graph
}

// BuildResponse converts a dungeon into what clients receive, drawn with the service palette
func (s *DungeonService) BuildResponse(d *generation.Dungeon, opts ResponseOptions) *models.DungeonResponse {
	return BuildResponse(d, s.palette, opts)
}

// BuildResponse converts a dungeon into what clients receive
func BuildResponse(d *generation.Dungeon, p *render.Palette, opts ResponseOptions) *models.DungeonResponse {
	resp := &models.DungeonResponse{
		Width:  d.Width(),
		Height: d.Height(),
		Seed:   d.Seed,
		Config: d.Config,
		Tiles:  render.Rows(d, p, render.Options{}),
		Rooms:  make([]models.Room, 0, d.Stats.Rooms),
		Stats:  d.Stats,
		Legend: p.Legend(),
	}

	for i, room := range d.Rooms() {
		resp.Rooms = append(resp.Rooms, models.Room{
			X:      room.X,
			Y:      room.Y,
			Width:  room.Width,
			Height: room.Height,
			Region: d.RoomRegion(i),
		})
	}

	if opts.Regions {
		resp.Regions = render.RegionMap(d)
	}
	if opts.Graph {
		resp.Graph = BuildGraph(d)
	}

	return resp
}

// TileGrid draws every cell of a dungeon as a client tile
func (s *DungeonService) TileGrid(d *generation.Dungeon, regions bool) *models.TileGrid {
	return &models.TileGrid{
		Width:  d.Width(),
		Height: d.Height(),
		Seed:   d.Seed,
		Tiles:  render.Tiles(d, s.palette, regions),
	}
}

// Summary returns the short form of a dungeon
func Summary(d *generation.Dungeon) models.DungeonSummary {
	return models.DungeonSummary{
		Width:  d.Width(),
		Height: d.Height(),
		Seed:   d.Seed,
		Stats:  d.Stats,
	}
}

// BuildGraph converts a dungeon's region graph for clients
func BuildGraph(d *generation.Dungeon) *models.RegionGraph {
	g := d.RegionGraph()
	out := &models.RegionGraph{
		Nodes:    make([]models.RegionNode, 0, len(g.Nodes)),
		Rooms:    make([]int, 0, d.Stats.Rooms),
		Doors:    make([]models.DoorEdge, 0, len(g.Edges)),
		Spanning: make([]models.DoorEdge, 0),
	}

	ids := g.IDs()
	for _, id := range ids {
		n := g.Nodes[id]
		out.Nodes = append(out.Nodes, models.RegionNode{
			ID:    n.ID,
			Kind:  n.Kind,
			Cells: n.Cells,
			Bounds: models.Bounds{
				MinX: n.Bounds.MinX,
				MaxX: n.Bounds.MaxX,
				MinY: n.Bounds.MinY,
				MaxY: n.Bounds.MaxY,
			},
		})
	}
	for _, n := range g.Rooms() {
		out.Rooms = append(out.Rooms, n.ID)
	}
	for _, e := range g.Edges {
		out.Doors = append(out.Doors, doorEdge(e))
	}
	for _, e := range g.MST() {
		out.Spanning = append(out.Spanning, doorEdge(e))
	}
	out.Connected = len(ids) == 0 || g.IsConnected(ids[0])

	return out
}

func doorEdge(e *generation.Edge) models.DoorEdge {
	return models.DoorEdge{
		From: e.From,
		To:   e.To,
		Door: models.Position{X: e.Door.X, Y: e.Door.Y},
	}
}

// Viewport returns the tiles of a width x height window centered on center
func (s *DungeonService) Viewport(d *generation.Dungeon, center models.Position, width, height int, regions bool) *models.ViewportData {
	halfWidth := width / 2
	halfHeight := height / 2
	viewport := &models.ViewportData{
		Seed:    d.Seed,
		Tiles:   make([][]models.RenderedTile, height),
		CenterX: halfWidth,
		CenterY: halfHeight,
	}

	for y := 0; y < height; y++ {
		viewport.Tiles[y] = make([]models.RenderedTile, width)
		for x := 0; x < width; x++ {
			mapX := center.X - halfWidth + x
			mapY := center.Y - halfHeight + y

			// Out-of-bounds areas are drawn as void
			if !d.InBounds(mapX, mapY) {
				viewport.Tiles[y][x] = s.palette.VoidCell()
				continue
			}
			viewport.Tiles[y][x] = s.palette.Cell(d.Tile(mapX, mapY), d.Region(mapX, mapY), regions)
		}
	}

	if d.InBounds(center.X, center.Y) && d.Tile(center.X, center.Y).Open() {
		region := d.Region(center.X, center.Y)
		viewport.Region = &region
	}

	return viewport
}
