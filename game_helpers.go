package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bordered-gol/model"
	"github.com/sheikhrachel/bordered-gol/utils"
)

// initializeGame builds the grid and seeds it with the configured cells
func initializeGame(config utils.Config) (*model.Grid, *model.TerminalRenderer, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame]")
	}

	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame]")
	}
	for _, p := range config.Seed {
		if err = grid.SetLiving(model.Coord{X: p.X, Y: p.Y}, true); err != nil {
			return nil, nil, errors.Wrap(err, "[initializeGame]")
		}
	}

	return grid, &model.TerminalRenderer{}, nil
}

// runGame prints a frame before each generation step and returns the run stats
func runGame(w io.Writer, config utils.Config) (*utils.Stats, error) {
	grid, renderer, err := initializeGame(config)
	if err != nil {
		return nil, err
	}

	// Collected once so every generation walks the same order
	coords := grid.Coordinates()
	stats := utils.NewStats(grid.CountLivingCells())

	for generation := 1; generation <= config.Generations; generation++ {
		if err = renderer.Display(w, grid); err != nil {
			return nil, errors.Wrapf(err, "[runGame] generation: %+v", generation)
		}
		if err = grid.Step(coords); err != nil {
			return nil, errors.Wrapf(err, "[runGame] generation: %+v", generation)
		}
		stats.Update(generation, grid.CountLivingCells())
	}

	return stats, nil
}

// displaySummary shows the final run statistics
func displaySummary(w io.Writer, stats *utils.Stats) {
	status := "Active"
	if stats.Extinct() {
		status = "Extinct"
	}
	fmt.Fprintf(w, "Gen: %d | Living: %d | Peak: %d (gen %d) | Avg Pop: %.1f | Status: %s\n",
		stats.TotalGenerations, stats.FinalPopulation, stats.PeakPopulation,
		stats.PeakGeneration, stats.AveragePopulation, status)
}
