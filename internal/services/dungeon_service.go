package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ThePyromage/dungeonGenerator/internal/config"
	"github.com/ThePyromage/dungeonGenerator/internal/generation"
	"github.com/ThePyromage/dungeonGenerator/internal/render"
)

var (
	// ErrTooLarge indicates a stage bigger than the service allows
	ErrTooLarge = errors.New("services: stage exceeds size limit")
	// ErrBatchSize indicates a batch count outside [1, max batch]
	ErrBatchSize = errors.New("services: batch count out of range")
)

// cacheKey identifies a seeded dungeon by everything that shapes it
type cacheKey struct {
	width, height      int
	tries, extraChance int
	extraSize, winding int
	seed               uint64
}

func keyFor(c generation.Config) cacheKey {
	return cacheKey{
		width:       c.Width,
		height:      c.Height,
		tries:       c.RoomGenTries,
		extraChance: c.ExtraConnectorChance,
		extraSize:   c.ExtraRoomSize,
		winding:     c.WindingPercent,
		seed:        *c.Seed,
	}
}

// DungeonService generates dungeons and keeps recent seeded results.
// Every generation runs on its own Generator, so calls are safe from any goroutine.
type DungeonService struct {
	defaults  generation.Config
	maxBatch  int
	workers   int
	maxWidth  int
	maxHeight int
	palette   *render.Palette

	mu        sync.RWMutex
	cache     map[cacheKey]*generation.Dungeon
	order     []cacheKey // oldest first
	cacheSize int
}

// NewDungeonService creates a DungeonService from application settings
func NewDungeonService(cfg *config.Config) *DungeonService {
	return &DungeonService{
		defaults:  cfg.Generator,
		maxBatch:  cfg.MaxBatch,
		workers:   cfg.Workers,
		maxWidth:  cfg.MaxWidth,
		maxHeight: cfg.MaxHeight,
		palette:   render.DefaultPalette(),
		cache:     make(map[cacheKey]*generation.Dungeon),
		cacheSize: cfg.CacheSize,
	}
}

// Defaults returns the generator settings requests start from
func (s *DungeonService) Defaults() generation.Config {
	cfg := s.defaults
	if cfg.Seed != nil {
		// decoding into the copy must not write through to the defaults
		cfg = cfg.WithSeed(*cfg.Seed)
	}
	return cfg
}

// Palette returns the palette responses are drawn with
func (s *DungeonService) Palette() *render.Palette {
	return s.palette
}

// Generate validates cfg and returns a dungeon, reusing a cached one for a known seed
func (s *DungeonService) Generate(ctx context.Context, cfg generation.Config) (*generation.Dungeon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkLimits(cfg); err != nil {
		return nil, err
	}

	if cfg.Seed != nil {
		if d, ok := s.lookup(keyFor(cfg)); ok {
			return d, nil
		}
	}

	d, err := generation.Generate(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dungeon: %w", err)
	}

	s.store(keyFor(d.Config), d)
	return d, nil
}

// GenerateBatch generates count dungeons in parallel, seeded consecutively from
// cfg.Seed (or a clock seed). Results are returned in seed order.
func (s *DungeonService) GenerateBatch(ctx context.Context, cfg generation.Config, count int) ([]*generation.Dungeon, error) {
	if count < 1 || count > s.maxBatch {
		return nil, fmt.Errorf("count %d, max %d: %w", count, s.maxBatch, ErrBatchSize)
	}
	if err := s.checkLimits(cfg); err != nil {
		return nil, err
	}

	base := generation.ClockSeed()
	if cfg.Seed != nil {
		base = *cfg.Seed
	}

	start := time.Now()
	results := make([]*generation.Dungeon, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			d, err := s.Generate(ctx, cfg.WithSeed(base+uint64(i)))
			if err != nil {
				return fmt.Errorf("dungeon %d: %w", i, err)
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("Generated batch of %d %dx%d dungeons from seed %d in %s",
		count, cfg.Width, cfg.Height, base, time.Since(start))
	return results, nil
}

// Cached reports how many dungeons the cache holds
func (s *DungeonService) Cached() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

func (s *DungeonService) checkLimits(cfg generation.Config) error {
	if cfg.Width > s.maxWidth || cfg.Height > s.maxHeight {
		return fmt.Errorf("%dx%d, max %dx%d: %w", cfg.Width, cfg.Height, s.maxWidth, s.maxHeight, ErrTooLarge)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (s *DungeonService) lookup(key cacheKey) (*generation.Dungeon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.cache[key]
	return d, ok
}

// store caches d, evicting the oldest entry once the cache is full
func (s *DungeonService) store(key cacheKey, d *generation.Dungeon) {
	if s.cacheSize == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cache[key]; exists {
		return
	}
	for len(s.order) >= s.cacheSize {
		delete(s.cache, s.order[0])
		s.order = s.order[1:]
	}
	s.cache[key] = d
	s.order = append(s.order, key)
}
