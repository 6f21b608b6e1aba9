package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioConfig is the 21x21 layout used throughout these tests
func scenarioConfig(seed uint64) Config {
	return Config{
		Width:                21,
		Height:               21,
		RoomGenTries:         50,
		ExtraConnectorChance: 20,
		ExtraRoomSize:        2,
		WindingPercent:       50,
	}.WithSeed(seed)
}

// requireValidDungeon checks every layout property a finished dungeon holds
func requireValidDungeon(t *testing.T, d *Dungeon) {
	t.Helper()

	require.Equal(t, d.Config.Width, d.Width())
	require.Equal(t, d.Config.Height, d.Height())
	require.NoError(t, validateLayout(d.stage, d.rooms))

	open := 0
	d.Each(func(p Point, tile TileType, region int) {
		switch tile {
		case Wall:
			require.Equal(t, NoRegion, region, "wall %v", p)
		case Empty, Door:
			require.NotEqual(t, NoRegion, region, "open cell %v", p)
			require.True(t, d.stage.Interior(p), "open border cell %v", p)
			open++
		default:
			t.Fatalf("cell %v has tile %v", p, tile)
		}
	})
	require.Equal(t, open, d.Stats.OpenCells)
}

// TestGenerate_Scenario is the reference 21x21 layout.
func TestGenerate_Scenario(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 1337} {
		d, err := Generate(scenarioConfig(seed))
		require.NoError(t, err, "seed %d", seed)
		requireValidDungeon(t, d)

		assert.GreaterOrEqual(t, d.Stats.Rooms, 1, "seed %d", seed)
		assert.GreaterOrEqual(t, d.Stats.Doors, 1, "seed %d", seed)

		roomCells := 0
		for i, room := range d.Rooms() {
			assert.Equal(t, Empty, d.Tile(room.X, room.Y))
			assert.Equal(t, d.RoomRegion(i), d.Region(room.X, room.Y))
			roomCells += room.Width * room.Height
		}
		assert.Positive(t, roomCells)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := scenarioConfig(2024)
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := NewGenerator(cfg).Generate()
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Rooms(), b.Rooms())
	assert.Equal(t, a.Stats, b.Stats)

	c, err := Generate(scenarioConfig(2025))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String(), "different seeds should differ")
}

// TestGenerate_FreshStatePerCall reuses one generator and checks results stay independent.
func TestGenerate_FreshStatePerCall(t *testing.T) {
	g := NewGenerator(scenarioConfig(77))
	first, err := g.Generate()
	require.NoError(t, err)
	snapshot := first.String()

	second, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, snapshot, first.String(), "earlier result was modified")
	assert.Equal(t, snapshot, second.String())
}

// failingRNG gives normal draws until calls run out, then panics mid-pipeline
type failingRNG struct {
	inner RNG
	calls int
}

func (r *failingRNG) Intn(n int) int {
	r.tick()
	return r.inner.Intn(n)
}

func (r *failingRNG) Range(lo, hi int) int {
	r.tick()
	return r.inner.Range(lo, hi)
}

func (r *failingRNG) Chance(percent int) bool {
	r.tick()
	return r.inner.Chance(percent)
}

func (r *failingRNG) tick() {
	if r.calls == 0 {
		panic("random source exhausted")
	}
	r.calls--
}

func requireReleased(t *testing.T, g *Generator) {
	t.Helper()
	assert.Nil(t, g.stage)
	assert.Nil(t, g.regions)
	assert.Nil(t, g.rooms)
	assert.Nil(t, g.roomRegions)
	assert.Nil(t, g.rng)
}

// TestGenerate_ReleasesState checks the generator holds nothing after any return.
func TestGenerate_ReleasesState(t *testing.T) {
	g := NewGenerator(scenarioConfig(5))
	_, err := g.Generate()
	require.NoError(t, err)
	requireReleased(t, g)

	failing := NewGenerator(scenarioConfig(5), WithRand(&failingRNG{inner: NewRNG(5), calls: 40}))
	require.Panics(t, func() { _, _ = failing.Generate() })
	requireReleased(t, failing)

	g.config.Width = 20
	_, err = g.Generate()
	require.ErrorIs(t, err, ErrEvenDimension)
	requireReleased(t, g)
}

func TestGenerate_ClockSeedRecorded(t *testing.T) {
	cfg := scenarioConfig(0)
	cfg.Seed = nil

	d, err := Generate(cfg)
	require.NoError(t, err)
	require.NotNil(t, d.Config.Seed)
	assert.Equal(t, d.Seed, *d.Config.Seed)

	again, err := Generate(d.Config)
	require.NoError(t, err)
	assert.Equal(t, d.String(), again.String())
}

func TestGenerate_Options(t *testing.T) {
	cfg := scenarioConfig(0)
	cfg.Seed = nil

	a, err := NewGenerator(cfg, WithSeed(9)).Generate()
	require.NoError(t, err)
	b, err := Generate(cfg.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := NewGenerator(cfg, WithRand(NewRNG(9))).Generate()
	require.NoError(t, err)
	assert.Equal(t, a.String(), c.String(), "same stream, same dungeon")
	assert.Nil(t, c.Config.Seed, "custom sources have no seed to record")
}

// TestGenerate_PureMaze prunes a roomless maze, a tree, down to one cell.
func TestGenerate_PureMaze(t *testing.T) {
	cfg := scenarioConfig(5)
	cfg.RoomGenTries = 0

	d, err := Generate(cfg)
	require.NoError(t, err)
	requireValidDungeon(t, d)

	assert.Zero(t, d.Stats.Rooms)
	assert.Equal(t, 1, d.Stats.Regions)
	assert.Zero(t, d.Stats.Merges)
	assert.Zero(t, d.Stats.Doors)
	assert.Equal(t, 1, d.Stats.OpenCells)
}

func TestGenerate_Minimum(t *testing.T) {
	d, err := Generate(Config{Width: 3, Height: 3, RoomGenTries: 10, ExtraConnectorChance: 50, WindingPercent: 50}.WithSeed(1))
	require.NoError(t, err)
	requireValidDungeon(t, d)

	assert.Equal(t, "###\n#.#\n###\n", d.String())
	assert.Zero(t, d.Stats.Rooms)
	assert.Equal(t, 1, d.Stats.Regions)
	assert.Zero(t, d.Stats.Merges)
	assert.Zero(t, d.Stats.Pruned)
}

func TestGenerate_RejectsBadConfig(t *testing.T) {
	cfg := scenarioConfig(1)
	cfg.Width = 20

	d, err := Generate(cfg)
	require.Nil(t, d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEvenDimension))
	assert.True(t, IsConfigError(err))
}

// TestGenerate_Properties sweeps sizes and knobs and checks the layout invariants.
func TestGenerate_Properties(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"Default", DefaultConfig()},
		{"Wide", Config{Width: 61, Height: 11, RoomGenTries: 80, ExtraConnectorChance: 10, WindingPercent: 20}},
		{"Tall", Config{Width: 9, Height: 41, RoomGenTries: 40, ExtraConnectorChance: 50, WindingPercent: 80}},
		{"BigRooms", Config{Width: 45, Height: 45, RoomGenTries: 200, ExtraConnectorChance: 0, ExtraRoomSize: 4}},
		{"AlwaysExtra", Config{Width: 25, Height: 25, RoomGenTries: 60, ExtraConnectorChance: 100, WindingPercent: 100}},
		{"Tiny", Config{Width: 5, Height: 5, RoomGenTries: 5, ExtraConnectorChance: 20, WindingPercent: 30}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := uint64(0); seed < 8; seed++ {
				d, err := Generate(tc.cfg.WithSeed(seed))
				require.NoError(t, err, "seed %d", seed)
				requireValidDungeon(t, d)
				assert.Equal(t, len(d.Rooms()), d.Stats.Rooms)
				assert.GreaterOrEqual(t, d.Stats.Regions, d.Stats.Rooms)
				assert.Equal(t, d.Stats.Regions-1, d.Stats.Merges, "every region but one is merged away")
			}
		})
	}
}

func TestDungeon_AccessorsCopy(t *testing.T) {
	d, err := Generate(scenarioConfig(3))
	require.NoError(t, err)

	rooms := d.Rooms()
	require.NotEmpty(t, rooms)
	rooms[0].X = -100
	assert.NotEqual(t, -100, d.Rooms()[0].X)

	s := d.Stage()
	s.Reset()
	assert.NotEqual(t, s.String(), d.String())
	assert.True(t, d.InBounds(0, 0))
	assert.False(t, d.InBounds(d.Width(), 0))
}

func TestDungeon_FindPathBetweenRooms(t *testing.T) {
	d, err := Generate(scenarioConfig(42))
	require.NoError(t, err)

	rooms := d.Rooms()
	first, last := rooms[0].Center(), rooms[len(rooms)-1].Center()
	path := d.FindPath(first, last)
	require.NotEmpty(t, path)
	assert.Equal(t, first, path[0])
	assert.Equal(t, last, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, manhattanDist(path[i-1], path[i]), "step %d", i)
		assert.True(t, d.Tile(path[i].X, path[i].Y).Open())
	}
}
