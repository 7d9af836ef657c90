package utils

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Point is a seed coordinate
type Point struct {
	X, Y int
}

// Config holds the run parameters for the game
type Config struct {
	Width       int
	Height      int
	Generations int
	Seed        []Point
}

// DefaultConfig returns the fixed parameters the program runs with
func DefaultConfig() Config {
	return Config{
		Width:       20,
		Height:      20,
		Generations: 60,
		Seed: []Point{
			{X: 4, Y: 5},
			{X: 4, Y: 6},
			{X: 5, Y: 5},
			{X: 3, Y: 6},
			{X: 3, Y: 4},
		},
	}
}

// Validate checks that the grid has an interior and every seed lands inside it
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid too small: %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative generations: %+v", c.Generations)
	}
	for _, p := range c.Seed {
		if p.X <= 0 || p.X >= c.Width || p.Y <= 0 || p.Y >= c.Height {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] seed outside interior: %+v", p)
		}
	}
	return nil
}
