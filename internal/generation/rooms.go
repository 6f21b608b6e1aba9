package generation

// Room is an axis-aligned rectangle carved as a single region
type Room struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Overlaps checks if two rooms share any cell. Rooms that only touch
// along an edge do not overlap.
func (r Room) Overlaps(other Room) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

// Bounds returns the inclusive cell bounds of the room
func (r Room) Bounds() Bounds {
	return Bounds{r.X, r.Y, r.X + r.Width - 1, r.Y + r.Height - 1}
}

// Contains checks if a cell lies inside the room
func (r Room) Contains(p Point) bool {
	return r.Bounds().Contains(p)
}

// Center returns the middle cell of the room
func (r Room) Center() Point {
	return r.Bounds().Center()
}

// randomRoom draws a room shape and a lattice anchor for a stage.
// ok is false when the drawn shape cannot fit on the stage at all.
func randomRoom(rng RNG, stageW, stageH, extraRoomSize int) (room Room, ok bool) {
	// pick a random odd size
	size := rng.Range(1, 3+extraRoomSize)*2 + 1

	// how rectangular the room is, always even so both sides stay odd
	rectangularity := rng.Range(0, 1+size/2) * 2

	width, height := size, size
	if rng.Intn(2) == 0 {
		width += rectangularity
	} else {
		height += rectangularity
	}

	// anchor on the odd lattice so room edges line up with maze corridors
	xSlots := (stageW - width) / 2
	ySlots := (stageH - height) / 2
	if xSlots <= 0 || ySlots <= 0 {
		return Room{}, false
	}
	x := rng.Range(0, xSlots)*2 + 1
	y := rng.Range(0, ySlots)*2 + 1

	return Room{X: x, Y: y, Width: width, Height: height}, true
}

// placeRooms makes tries placement attempts, carving every room that fits
// without overlapping one already placed
func (g *Generator) placeRooms() {
	for i := 0; i < g.config.RoomGenTries; i++ {
		room, ok := randomRoom(g.rng, g.stage.Width, g.stage.Height, g.config.ExtraRoomSize)
		if !ok {
			continue
		}

		overlaps := false
		for _, other := range g.rooms {
			if room.Overlaps(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		region := g.regions.start()
		g.rooms = append(g.rooms, room)
		g.roomRegions = append(g.roomRegions, region)
		g.stage.CarveRect(room.Bounds(), region)
	}
}
