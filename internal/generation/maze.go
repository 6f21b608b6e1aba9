package generation

// growMazes fills every lattice cell rooms did not claim with corridors,
// one region per maze run
func (g *Generator) growMazes() {
	for y := 1; y < g.stage.Height; y += 2 {
		for x := 1; x < g.stage.Width; x += 2 {
			pos := Point{x, y}
			if g.stage.Tile(pos) != Wall {
				continue
			}
			g.growMaze(pos)
		}
	}
}

// growMaze runs the growing tree algorithm from start. The most recently
// added cell is always the one extended, which gives long winding passages.
func (g *Generator) growMaze(start Point) {
	region := g.regions.start()
	g.stage.Carve(start, region)

	cells := []Point{start}
	lastDir := NoDirection
	open := make([]Direction, 0, 4)

	for len(cells) > 0 {
		cell := cells[len(cells)-1]

		open = open[:0]
		for _, dir := range Directions {
			if g.canCarve(cell, dir) {
				open = append(open, dir)
			}
		}

		if len(open) == 0 {
			// dead end, back up
			cells = cells[:len(cells)-1]
			lastDir = NoDirection
			continue
		}

		var dir Direction
		if containsDirection(open, lastDir) && !g.rng.Chance(g.config.WindingPercent) {
			dir = lastDir
		} else {
			dir = Choice(g.rng, open)
		}

		next := cell.Step(dir, 2)
		g.stage.Carve(cell.Step(dir, 1), region)
		g.stage.Carve(next, region)
		cells = append(cells, next)

		lastDir = dir
	}
}

// canCarve reports whether the cell two steps from pos in dir can be opened.
// Both cells on the way must stay inside the border.
func (g *Generator) canCarve(pos Point, dir Direction) bool {
	if !g.stage.Interior(pos.Step(dir, 1)) || !g.stage.Interior(pos.Step(dir, 2)) {
		return false
	}
	return g.stage.Tile(pos.Step(dir, 2)) == Wall
}

func containsDirection(dirs []Direction, d Direction) bool {
	for _, o := range dirs {
		if o == d {
			return true
		}
	}
	return false
}
