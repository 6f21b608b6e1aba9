package generation

import "fmt"

// Config defines what should be generated for a dungeon
type Config struct {
	// Stage size, both odd
	Width  int `json:"width"`
	Height int `json:"height"`

	// RoomGenTries is how many placement attempts are made before giving up
	RoomGenTries int `json:"room_gen_tries"`
	// ExtraConnectorChance is the percent chance an already-joined connector still becomes a door
	ExtraConnectorChance int `json:"extra_connector_chance"`
	// ExtraRoomSize widens the range of room sizes
	ExtraRoomSize int `json:"extra_room_size"`
	// WindingPercent is the chance a corridor turns instead of running straight
	WindingPercent int `json:"winding_percent"`

	// Seed fixes the random stream; nil draws one from the clock
	Seed *uint64 `json:"seed,omitempty"`
}

// DefaultConfig returns the standard generation settings
func DefaultConfig() Config {
	return Config{
		Width:                51,
		Height:               31,
		RoomGenTries:         100,
		ExtraConnectorChance: 20,
		ExtraRoomSize:        0,
		WindingPercent:       30,
	}
}

// WithSeed returns a copy of c with the seed fixed
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}

// Validate rejects configurations that cannot produce a lattice-aligned stage
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrTooSmall)
	}
	if c.Width%2 == 0 || c.Height%2 == 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrEvenDimension)
	}
	if c.RoomGenTries < 0 {
		return fmt.Errorf("room_gen_tries %d: %w", c.RoomGenTries, ErrNegative)
	}
	if c.ExtraRoomSize < 0 {
		return fmt.Errorf("extra_room_size %d: %w", c.ExtraRoomSize, ErrNegative)
	}
	if c.ExtraConnectorChance < 0 || c.ExtraConnectorChance > 100 {
		return fmt.Errorf("extra_connector_chance %d: %w", c.ExtraConnectorChance, ErrPercentRange)
	}
	if c.WindingPercent < 0 || c.WindingPercent > 100 {
		return fmt.Errorf("winding_percent %d: %w", c.WindingPercent, ErrPercentRange)
	}
	return nil
}
