package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bordered-gol/rules"
)

var (
	// ErrCellNotFound is returned when a coordinate lies outside the grid.
	ErrCellNotFound = errors.New("cell not found")
	// ErrInvalidDimensions is returned when a grid is too small to have an interior.
	ErrInvalidDimensions = errors.New("grid dimensions must be at least 2")
)

// neighborOffsets is the Moore neighborhood around a cell
var neighborOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Coord identifies a cell. X runs 0..=width, Y runs 0..=height.
type Coord struct {
	X, Y int
}

// Cell is the state held for one coordinate
type Cell struct {
	Living     bool
	Border     bool // fixed at creation
	NextLiving bool // staged by ComputeNextStates, consumed by CommitNextGeneration
}

// IsAlive reports whether the cell counts toward its neighbors' score.
// Border cells never do.
func (c Cell) IsAlive() bool {
	return c.Living && !c.Border
}

// Grid is the game board surrounded by a permanently dead border ring
type Grid struct {
	width  int // xlen, index of the last column
	height int // ylen, index of the last row
	cells  []Cell
}

// NewGrid creates a grid with one cell per coordinate in 0..=width x 0..=height,
// all dead, with the outer ring marked as border
func NewGrid(width, height int) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got width=%d height: %+v", width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, (width+1)*(height+1)),
	}
	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			g.cells[g.index(x, y)].Border = x == 0 || x == width || y == 0 || y == height
		}
	}
	return g, nil
}

// GetWidth returns the index of the last column
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the index of the last row
func (g *Grid) GetHeight() int {
	return g.height
}

func (g *Grid) index(x, y int) int {
	return y*(g.width+1) + x
}

func (g *Grid) lookup(c Coord) (int, error) {
	if c.X < 0 || c.X > g.width || c.Y < 0 || c.Y > g.height {
		return 0, errors.Wrapf(ErrCellNotFound, "[lookup] coordinate: %+v", c)
	}
	return g.index(c.X, c.Y), nil
}

// SetLiving overwrites the living state of a cell, preserving its border flag
func (g *Grid) SetLiving(c Coord, living bool) error {
	i, err := g.lookup(c)
	if err != nil {
		return errors.Wrap(err, "[SetLiving]")
	}
	g.cells[i].Living = living
	return nil
}

// Get returns a copy of the cell at c
func (g *Grid) Get(c Coord) (Cell, error) {
	i, err := g.lookup(c)
	if err != nil {
		return Cell{}, errors.Wrap(err, "[Get]")
	}
	return g.cells[i], nil
}

// Coordinates returns every coordinate in row-major order. Callers collect
// it once and reuse it across generations.
func (g *Grid) Coordinates() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for y := 0; y <= g.height; y++ {
		for x := 0; x <= g.width; x++ {
			coords = append(coords, Coord{X: x, Y: y})
		}
	}
	return coords
}

// CountNeighbors counts the living, non-border cells around c. A missing
// neighbor is an error, never an implicit dead cell.
func (g *Grid) CountNeighbors(c Coord) (int, error) {
	count := 0
	for _, off := range neighborOffsets {
		n, err := g.Get(Coord{X: c.X + off.X, Y: c.Y + off.Y})
		if err != nil {
			return 0, errors.Wrapf(err, "[CountNeighbors] neighbor of: %+v", c)
		}
		if n.IsAlive() {
			count++
		}
	}
	return count, nil
}

// ComputeNextStates stages the next generation for every non-border cell in
// coords. Only NextLiving is written, so the order of coords does not matter.
func (g *Grid) ComputeNextStates(coords []Coord) error {
	for _, c := range coords {
		i, err := g.lookup(c)
		if err != nil {
			return errors.Wrap(err, "[ComputeNextStates]")
		}
		if g.cells[i].Border {
			continue
		}

		neighbors, err := g.CountNeighbors(c)
		if err != nil {
			return errors.Wrap(err, "[ComputeNextStates]")
		}
		next, err := rules.ApplyConwayRules(neighbors, g.cells[i].Living)
		if err != nil {
			return errors.Wrapf(err, "[ComputeNextStates] cell: %+v", c)
		}
		g.cells[i].NextLiving = next
	}
	return nil
}

// CommitNextGeneration moves every staged state into the current state.
// Border cells are left untouched.
func (g *Grid) CommitNextGeneration() {
	for i := range g.cells {
		if g.cells[i].Border {
			continue
		}
		g.cells[i].Living = g.cells[i].NextLiving
		g.cells[i].NextLiving = false
	}
}

// Step advances the grid by one generation
func (g *Grid) Step(coords []Coord) error {
	if err := g.ComputeNextStates(coords); err != nil {
		return errors.Wrap(err, "[Step]")
	}
	g.CommitNextGeneration()
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c.Living {
			count++
		}
	}
	return
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// GetGridHash returns an MD5 hash of the current living state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for _, c := range g.cells {
		if c.Living {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
