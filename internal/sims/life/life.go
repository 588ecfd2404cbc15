// Package life runs Conway's Game of Life on a Z-order grid with hard,
// non-wrapping edges.
package life

import (
	"zlife/internal/core"
	"zlife/internal/zgrid"
)

// Life owns one board and counts the generations computed on it.
type Life struct {
	grid *zgrid.Grid
	gen  int
}

// New returns an empty Life board of the given side length.
func New(size int) (*Life, error) {
	g, err := zgrid.New(size)
	if err != nil {
		return nil, err
	}
	return &Life{grid: g}, nil
}

// NewWithConfig builds a board from cfg, seeding it when cfg.Random is set.
func NewWithConfig(cfg Config) (*Life, error) {
	l, err := New(cfg.Size)
	if err != nil {
		return nil, err
	}
	if cfg.Random {
		l.Reset(cfg.Seed)
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	s := l.grid.Size()
	return core.Size{W: s, H: s}
}

// Grid exposes the current board.
func (l *Life) Grid() *zgrid.Grid { return l.grid }

// SetGrid replaces the board and restarts the generation count. A nil grid is
// ignored so a failed load cannot leave the sim without a board.
func (l *Life) SetGrid(g *zgrid.Grid) {
	if g == nil {
		return
	}
	l.grid = g
	l.gen = 0
}

// Generation returns the number of ticks since the board was last replaced,
// cleared or reseeded.
func (l *Life) Generation() int { return l.gen }

// Reset fills the board with uniform noise from seed.
func (l *Life) Reset(seed int64) {
	l.grid.PopulateRandom(core.NewRNG(seed))
	l.gen = 0
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.grid.Clear()
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Tick(l.grid)
	l.gen++
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
