// Package generation carves tile-grid dungeons: rooms on an odd lattice,
// growing-tree corridors between them, doors joining every region, and
// dead ends pruned away.
package generation

import (
	"fmt"
)

// Option customizes a Generator
type Option func(*Generator)

// WithRand supplies the random source, overriding Config.Seed
func WithRand(rng RNG) Option {
	return func(g *Generator) {
		g.customRNG = rng
	}
}

// WithSeed fixes the seed, overriding Config.Seed
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.config.Seed = &seed
	}
}

// Stats summarizes what one generation session did
type Stats struct {
	Rooms      int `json:"rooms"`
	Regions    int `json:"regions"`
	Merges     int `json:"merges"`
	Doors      int `json:"doors"`
	ExtraDoors int `json:"extra_doors"`
	Pruned     int `json:"pruned"`
	OpenCells  int `json:"open_cells"`
}

// Generator generates dungeon layouts from a configuration.
// A Generator is not safe for concurrent use; run one per goroutine.
type Generator struct {
	config    Config
	customRNG RNG

	seed    uint64
	rng     RNG
	stage   *Stage
	regions *regionCounter
	rooms   []Room
	stats   Stats

	roomRegions []int
}

// NewGenerator creates a generator for the given config
func NewGenerator(config Config, opts ...Option) *Generator {
	g := &Generator{config: config}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate is shorthand for NewGenerator(config).Generate()
func Generate(config Config) (*Dungeon, error) {
	return NewGenerator(config).Generate()
}

// Generate produces a complete dungeon. Nothing is returned unless every
// phase succeeded, and the generator keeps no reference to the result.
func (g *Generator) Generate() (*Dungeon, error) {
	// 1. Reject stages the lattice cannot align to
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 2. Fresh session state, all walls
	g.reset()
	defer g.release()

	// 3. Place rooms
	g.placeRooms()

	// 4. Fill the remaining lattice with mazes
	g.growMazes()

	// 5. Join every region through doors
	if err := g.connectRegions(); err != nil {
		return nil, fmt.Errorf("connecting regions: %w", err)
	}

	// 6. Fill in dead ends
	g.stats.Pruned = g.removeDeadEnds()

	// 7. Validate the finished layout
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// 8. Build output
	return g.buildOutput(), nil
}

func (g *Generator) reset() {
	switch {
	case g.customRNG != nil:
		g.rng = g.customRNG
	case g.config.Seed != nil:
		g.seed = *g.config.Seed
		g.rng = NewRNG(g.seed)
	default:
		g.seed = ClockSeed()
		g.rng = NewRNG(g.seed)
	}

	g.stage = NewStage(g.config.Width, g.config.Height)
	g.regions = newRegionCounter()
	g.rooms = make([]Room, 0)
	g.roomRegions = make([]int, 0)
	g.stats = Stats{}
}

func (g *Generator) buildOutput() *Dungeon {
	g.stats.Rooms = len(g.rooms)
	g.stats.Regions = g.regions.Count()
	g.stats.Doors = g.stage.Count(Door)
	g.stats.OpenCells = g.stats.Doors + g.stage.Count(Empty)

	config := g.config
	if g.customRNG == nil {
		seed := g.seed
		config.Seed = &seed
	}

	return &Dungeon{
		Seed:        g.seed,
		Config:      config,
		Stats:       g.stats,
		stage:       g.stage,
		rooms:       g.rooms,
		roomRegions: g.roomRegions,
	}
}

// release drops the session state once Generate returns, whether it succeeded or not
func (g *Generator) release() {
	g.rng = nil
	g.stage = nil
	g.regions = nil
	g.rooms = nil
	g.roomRegions = nil
}
