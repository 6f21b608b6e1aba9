package generation

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// connector is a wall cell touching two or more distinct regions
type connector struct {
	Pos Point
	// Regions holds the raw neighbor region ids in N,S,W,E order, no duplicates
	Regions []int
}

// findConnectors scans every interior wall for cells that border at least
// two different regions
func (g *Generator) findConnectors() []connector {
	var connectors []connector

	for y := 1; y < g.stage.Height-1; y++ {
		for x := 1; x < g.stage.Width-1; x++ {
			pos := Point{x, y}
			if g.stage.Tile(pos) != Wall {
				continue
			}

			seen := mapset.New[int]()
			regions := make([]int, 0, 4)
			for _, adj := range pos.Adjacent() {
				region := g.stage.Region(adj)
				if region == NoRegion || seen.Has(region) {
					continue
				}
				seen.Put(region)
				regions = append(regions, region)
			}

			if seen.Size() < 2 {
				continue
			}
			connectors = append(connectors, connector{Pos: pos, Regions: regions})
		}
	}

	return connectors
}

// connectRegions punches doors until every region is joined into one,
// occasionally adding redundant doors so the dungeon is not a pure tree
func (g *Generator) connectRegions() error {
	connectors := g.findConnectors()
	merged := newMergeTable(g.regions.Count())

	for merged.count() > 1 {
		if len(connectors) == 0 {
			return fmt.Errorf("%d regions left unjoined: %w", merged.count(), ErrDisconnected)
		}

		chosen := connectors[g.rng.Intn(len(connectors))]

		// pick one region arbitrarily and map all the others to it
		regions := merged.resolve(chosen.Regions)
		dest := regions[0]
		sources := regions[1:]

		g.carveDoor(chosen.Pos, dest)
		g.stats.Merges += merged.merge(dest, sources...)

		// drop connectors that no longer span different regions
		live := connectors[:0]
		for _, c := range connectors {
			if c.Pos == chosen.Pos {
				continue
			}
			if !merged.joined(c.Regions) {
				live = append(live, c)
				continue
			}

			// an unneeded connector still becomes a door now and then,
			// but never right next to another door
			if g.rng.Chance(g.config.ExtraConnectorChance) && !g.besideDoor(c.Pos) {
				g.carveDoor(c.Pos, dest)
				g.stats.ExtraDoors++
			}
		}
		connectors = live
	}

	return nil
}

func (g *Generator) carveDoor(pos Point, region int) {
	g.stage.CarveTile(pos, Door, region)
}

// besideDoor reports whether any orthogonal neighbor of pos is a door
func (g *Generator) besideDoor(pos Point) bool {
	for _, adj := range pos.Adjacent() {
		if g.stage.InBounds(adj) && g.stage.Tile(adj) == Door {
			return true
		}
	}
	return false
}
