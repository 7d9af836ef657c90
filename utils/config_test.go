package utils

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %+v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width too small", func(c *Config) { c.Width = 1 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"negative generations", func(c *Config) { c.Generations = -1 }},
		{"seed on border", func(c *Config) { c.Seed = append(c.Seed, Point{X: 0, Y: 4}) }},
		{"seed on far border", func(c *Config) { c.Seed = append(c.Seed, Point{X: 4, Y: c.Height}) }},
		{"seed outside grid", func(c *Config) { c.Seed = append(c.Seed, Point{X: 99, Y: 4}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); errors.Cause(err) != ErrInvalidConfig {
				t.Fatalf("got %v, want %v", err, ErrInvalidConfig)
			}
		})
	}
}
